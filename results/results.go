// Package results provides a generic result type for the outcome of
// asynchronous operations.
//
// A Result is typically built from functions with the signature
//
//	func(context.Context) (R, error)
//
// either in one step:
//
//	val, err := op(ctx)
//	res := results.New(val, err)
//
// or by branch:
//
//	if err != nil {
//	    return results.Failure[R](err)
//	}
//	return results.Success(val)
package results

// Result combines a value of type R and an error. Exactly one of the two
// sides is meaningful: Err == nil means Val holds the success value.
type Result[R any] struct {
	Val R
	Err error
}

// New creates a Result from a (value, error) pair.
func New[R any](val R, err error) Result[R] {
	return Result[R]{Val: val, Err: err}
}

// Success creates a Result representing a successful operation that
// produced the provided value.
func Success[R any](val R) Result[R] {
	return Result[R]{Val: val}
}

// Failure creates a Result representing a failed operation.
func Failure[R any](err error) Result[R] {
	return Result[R]{Err: err}
}

// Ok reports whether the result is the success side.
func (r Result[R]) Ok() bool {
	return r.Err == nil
}
