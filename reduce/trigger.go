package reduce

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/on-the-ground/tea_extras_go/effects"
	"github.com/on-the-ground/tea_extras_go/results"
)

// OnTrigger wraps base so that observing the trigger case c schedules the
// asynchronous operation as a receive effect. The operation's outcome is
// wrapped in a results.Result and funneled through embed into a new
// message, which the host delivers back through the reducer.
//
// ctx should be the lifecycle context of the owning program; a canceled
// context turns pending operations into embedded failures. The scheduled
// command is merged with the base command and runs under the host's
// concurrent tea.Batch semantics.
//
// Usage:
//
//	update := reduce.OnTrigger(ctx, base, reduce.CaseOf[fetchQuote](),
//	    func(ctx context.Context, req fetchQuote) (Quote, error) {
//	        return store.Fetch(ctx, req.Topic)
//	    },
//	    func(res results.Result[Quote]) tea.Msg { return quoteLoaded{res: res} },
//	)
func OnTrigger[M, T, V any](
	ctx context.Context,
	base Update[M],
	c Case[T],
	op func(context.Context, T) (V, error),
	embed func(results.Result[V]) tea.Msg,
	opts ...effects.ReceiveOption,
) Update[M] {
	return func(m M, msg tea.Msg) (M, tea.Cmd) {
		m, cmd := base(m, msg)
		trigger, ok := c(msg)
		if !ok {
			return m, cmd
		}
		receive := effects.Receive(
			ctx,
			func(ctx context.Context) (V, error) { return op(ctx, trigger) },
			embed,
			opts...,
		)
		return m, mergeCmd(cmd, receive)
	}
}
