package reduce

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// FailureHandler decides what happens to an intercepted error: it maps the
// post-base state and the error to a new state plus follow-up effects.
type FailureHandler[M any] func(M, error) (M, tea.Cmd)

// SetFailure assigns the intercepted error into a state field.
// This is the silent, recoverable policy: no effects are scheduled.
func SetFailure[M any](set func(*M, error)) FailureHandler[M] {
	return func(m M, err error) (M, tea.Cmd) {
		set(&m, err)
		return m, nil
	}
}

// LogFailure leaves the state untouched and schedules a single structured
// error log as the handler's effect.
func LogFailure[M any](logger *zap.Logger, message string) FailureHandler[M] {
	return func(m M, err error) (M, tea.Cmd) {
		return m, logFailureCmd(logger, message, err)
	}
}

// SetAndLogFailure combines both policies: the error is assigned into the
// state and an error log is scheduled.
func SetAndLogFailure[M any](logger *zap.Logger, message string, set func(*M, error)) FailureHandler[M] {
	return func(m M, err error) (M, tea.Cmd) {
		set(&m, err)
		return m, logFailureCmd(logger, message, err)
	}
}

// OnFailure wraps base so that messages matching the error-bearing case c
// additionally run the failure handler. The base reducer always runs first;
// the handler observes the post-base state, and its effects are merged with
// the base effects.
//
// Each OnFailure instance intercepts exactly one case. There is no retry or
// backoff here: the failure boundary is the intercepted case itself.
//
// Usage:
//
//	update := reduce.OnFailure(base, caseLoadError,
//	    reduce.SetAndLogFailure(logger, "load failed", func(m *Model, err error) {
//	        m.LoadError = err
//	    }))
func OnFailure[M any](base Update[M], c Case[error], handle FailureHandler[M]) Update[M] {
	return func(m M, msg tea.Msg) (M, tea.Cmd) {
		m, cmd := base(m, msg)
		err, ok := c(msg)
		if !ok {
			return m, cmd
		}
		m, handled := handle(m, err)
		return m, mergeCmd(cmd, handled)
	}
}

func logFailureCmd(logger *zap.Logger, message string, err error) tea.Cmd {
	return func() tea.Msg {
		logger.Error(message, zap.Error(err))
		return nil
	}
}
