package reduce

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/on-the-ground/tea_extras_go/shared/helper"
)

// Update is a reducer over a model of type M, in the shape Bubble Tea
// programs already use for their update functions.
type Update[M any] func(M, tea.Msg) (M, tea.Cmd)

// Case locates a single message case and extracts its payload.
// It reports false for every message that is not the located case.
type Case[V any] func(tea.Msg) (V, bool)

// CaseOf builds a Case that matches messages of type Msg by type assertion.
func CaseOf[Msg tea.Msg]() Case[Msg] {
	return func(msg tea.Msg) (Msg, bool) {
		return helper.TypedValueOf[Msg](msg)
	}
}

// mergeCmd combines a base command with an interceptor command.
// The base command is never substituted, only merged.
func mergeCmd(base, extra tea.Cmd) tea.Cmd {
	switch {
	case base == nil:
		return extra
	case extra == nil:
		return base
	default:
		return tea.Batch(base, extra)
	}
}
