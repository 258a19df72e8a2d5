package effects

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"

	"github.com/on-the-ground/tea_extras_go/results"
)

// ReceiveOption configures a receive effect.
type ReceiveOption func(*receiveConfig)

// WithLogger enables debug logging of effect completion: one line per
// execution carrying the effect id, the execution timespan, and the error
// on the failure side.
func WithLogger(logger *zap.Logger) ReceiveOption {
	return func(cfg *receiveConfig) {
		cfg.logger = logger
	}
}

type receiveConfig struct {
	logger *zap.Logger
}

func newReceiveConfig(opts []ReceiveOption) receiveConfig {
	var cfg receiveConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Receive returns an effect that runs the asynchronous operation when the
// host executes it, wraps the outcome in a results.Result, and embeds it
// into the target message. The embedder is invoked exactly once per
// execution.
//
// Cancellation of ctx wins over the operation's own outcome: an operation
// that completes under a canceled context is embedded as the failure side
// carrying ctx.Err(), never as a stale success.
func Receive[V any](
	ctx context.Context,
	op func(context.Context) (V, error),
	embed func(results.Result[V]) tea.Msg,
	opts ...ReceiveOption,
) tea.Cmd {
	cfg := newReceiveConfig(opts)
	return func() tea.Msg {
		started := time.Now()
		res := runOp(ctx, op)
		cfg.logCompletion(started, res.Err)
		return embed(res)
	}
}

// ReceiveMapped is Receive with a transformation applied to the success
// value before embedding. Failures pass through untransformed.
func ReceiveMapped[V, T any](
	ctx context.Context,
	op func(context.Context) (V, error),
	transform func(V) T,
	embed func(results.Result[T]) tea.Msg,
	opts ...ReceiveOption,
) tea.Cmd {
	return Receive(
		ctx,
		func(ctx context.Context) (T, error) {
			v, err := op(ctx)
			if err != nil {
				var zero T
				return zero, err
			}
			return transform(v), nil
		},
		embed,
		opts...,
	)
}

func runOp[V any](ctx context.Context, op func(context.Context) (V, error)) results.Result[V] {
	if err := ctx.Err(); err != nil {
		return results.Failure[V](err)
	}
	val, err := op(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return results.Failure[V](ctxErr)
	}
	return results.New(val, err)
}

func (cfg receiveConfig) logCompletion(started time.Time, err error) {
	if cfg.logger == nil {
		return
	}
	span := timespan.BetweenTimes(started, time.Now())
	fields := []zap.Field{
		zap.String("effectId", uuid.NewString()),
		zap.Stringer("span", span),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	cfg.logger.Debug("receive effect completed", fields...)
}
