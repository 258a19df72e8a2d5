package helper

// TypedValueOf safely asserts raw to the expected type T.
// Returns a zero value and false if the type assertion fails.
func TypedValueOf[T any](raw any) (res T, ok bool) {
	res, ok = raw.(T)
	return
}
