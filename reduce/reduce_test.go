package reduce_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/tea_extras_go/reduce"
	"github.com/on-the-ground/tea_extras_go/results"
)

type appModel struct {
	ticks int
	quote string
	err   error
}

type tickMsg struct{}

type tickedMsg struct{}

type loadFailedMsg struct{ err error }

type fetchQuoteMsg struct{ topic string }

type quoteLoadedMsg struct{ res results.Result[string] }

func (m quoteLoadedMsg) ReceivedResult() results.Result[string] { return m.res }

// baseUpdate counts ticks and schedules a follow-up message for each one.
func baseUpdate(m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	if _, ok := msg.(tickMsg); ok {
		m.ticks++
		return m, func() tea.Msg { return tickedMsg{} }
	}
	return m, nil
}

func caseLoadFailed(msg tea.Msg) (error, bool) {
	f, ok := msg.(loadFailedMsg)
	if !ok {
		return nil, false
	}
	return f.err, true
}

// drainCmd executes a command tree and collects every produced message.
func drainCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drainCmd(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestCaseOf_MatchesOnlyItsMessageType(t *testing.T) {
	c := reduce.CaseOf[fetchQuoteMsg]()

	req, ok := c(fetchQuoteMsg{topic: "go"})
	require.True(t, ok)
	require.Equal(t, "go", req.topic)

	_, ok = c(tickMsg{})
	require.False(t, ok)
}

func TestWrappers_NonInterference(t *testing.T) {
	update := reduce.OnFailure(baseUpdate, caseLoadFailed,
		reduce.SetFailure(func(m *appModel, err error) { m.err = err }),
	)
	update = reduce.OnReceived(update, func(m *appModel, q string) { m.quote = q })

	// A message no case matches must flow through untouched.
	wrapped, wrappedCmd := update(appModel{}, tickMsg{})
	plain, plainCmd := baseUpdate(appModel{}, tickMsg{})

	require.Equal(t, plain, wrapped)
	require.Equal(t, drainCmd(plainCmd), drainCmd(wrappedCmd))
}
