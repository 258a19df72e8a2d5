package effects

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Fail returns an effect that raises a developer assertion when executed,
// plus an optional error log line. The assertion goes through
// zap.Logger.DPanic: it panics for loggers built with the development
// option and logs loudly otherwise, making the failure developer-visible
// but non-fatal in production. The effect produces no follow-up message.
//
// A nil logger falls back to the process-global zap logger.
func Fail(logger *zap.Logger, message ...string) tea.Cmd {
	msg := normalizeMessage(message)
	return func() tea.Msg {
		l := logger
		if l == nil {
			l = zap.L()
		}
		if msg != "" {
			l.Error(msg)
		}
		l.DPanic("fail effect performed")
		return nil
	}
}

// normalizeMessage flattens the optional log line into a single string.
//
// Accepts either 0 or 1 messages. Panics if more than one is passed.
func normalizeMessage(message []string) string {
	switch len(message) {
	case 1:
		return message[0]
	case 0:
		return ""
	default:
		panic("normalizeMessage: only one or zero messages allowed")
	}
}
