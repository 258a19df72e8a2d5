package reduce

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/on-the-ground/tea_extras_go/results"
	"github.com/on-the-ground/tea_extras_go/shared/helper"
)

// Receivable is the convention for messages carrying the outcome of
// asynchronous work: a message type with a single root case that wraps a
// nested results.Result. Implementing it enables the generic
// success/failure splitting done by CaseReceived and CaseReceivedFailure.
//
//	type quoteLoaded struct{ res results.Result[Quote] }
//
//	func (m quoteLoaded) ReceivedResult() results.Result[Quote] { return m.res }
type Receivable[V any] interface {
	ReceivedResult() results.Result[V]
}

// CaseReceived locates the nested success case of any Receivable[V]
// message and extracts the received value.
func CaseReceived[V any]() Case[V] {
	return func(msg tea.Msg) (V, bool) {
		r, ok := helper.TypedValueOf[Receivable[V]](msg)
		if !ok {
			var zero V
			return zero, false
		}
		res := r.ReceivedResult()
		if !res.Ok() {
			var zero V
			return zero, false
		}
		return res.Val, true
	}
}

// CaseReceivedFailure locates the nested failure case of any Receivable[V]
// message and extracts its error.
func CaseReceivedFailure[V any]() Case[error] {
	return func(msg tea.Msg) (error, bool) {
		r, ok := helper.TypedValueOf[Receivable[V]](msg)
		if !ok {
			return nil, false
		}
		res := r.ReceivedResult()
		if res.Ok() {
			return nil, false
		}
		return res.Err, true
	}
}

// OnReceive wraps base so that messages matching the value-bearing case c
// additionally apply the setter to the post-base state. The setter mutates
// the reducer's local copy of the model, keeping call sites in the
// assignment shape Bubble Tea models use.
func OnReceive[M, V any](base Update[M], c Case[V], set func(*M, V)) Update[M] {
	return func(m M, msg tea.Msg) (M, tea.Cmd) {
		m, cmd := base(m, msg)
		if v, ok := c(msg); ok {
			set(&m, v)
		}
		return m, cmd
	}
}

// OnReceived dispatches on the nested success case of the Receivable
// convention and applies the setter to the received value.
func OnReceived[M, V any](base Update[M], set func(*M, V)) Update[M] {
	return OnReceive(base, CaseReceived[V](), set)
}

// OnReceivedFailure dispatches on the nested failure case of the
// Receivable[V] convention. V is not inferable from the handler and must be
// named at the call site:
//
//	update = reduce.OnReceivedFailure[Model, Quote](update,
//	    reduce.SetFailure(func(m *Model, err error) { m.Err = err }))
func OnReceivedFailure[M, V any](base Update[M], handle FailureHandler[M]) Update[M] {
	return OnFailure(base, CaseReceivedFailure[V](), handle)
}
