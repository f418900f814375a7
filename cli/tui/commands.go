package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"
	"golang.design/x/clipboard"

	"docchat/internal/controller"
)

// wrapCommand lifts a controller command into a bubbletea command.
func wrapCommand(command controller.Command) tea.Cmd {
	return func() tea.Msg {
		return command()
	}
}

// submit starts a send for the current session. The controller enforces the
// guards (empty text, no selection, send already in flight); when it accepts,
// the input is cleared immediately so the next keystrokes are not lost.
func (m *Model) submit() tea.Cmd {
	text := m.textarea.Value()
	command, ok := m.chat.Submit(m.ctx, text)
	if !ok {
		return nil
	}

	m.history.Add(text)
	m.historyNavigating = false
	m.textarea.Reset()
	m.err = nil
	m.recalculateLayout()
	m.viewport.GotoBottom()

	return tea.Batch(wrapCommand(command), m.spinner.Tick)
}

// copyLastReply puts the latest assistant reply of the current session on the
// clipboard.
func (m *Model) copyLastReply() tea.Cmd {
	if !m.clipboardReady {
		return m.alert.NewAlertCmd(bubbleup.WarnKey, "Clipboard unavailable")
	}
	messages := m.store.Current().Messages
	if len(messages) == 0 {
		return nil
	}
	clipboard.Write(clipboard.FmtText, []byte(messages[len(messages)-1].Bot))
	return m.alert.NewAlertCmd(bubbleup.InfoKey, "Copied to clipboard!")
}
