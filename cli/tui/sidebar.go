package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"docchat/cli/tui/styles"
	"docchat/internal/api"
)

// sessionItem adapts a ChatSession to the bubbles list.
type sessionItem struct {
	session *api.ChatSession
}

func (i sessionItem) FilterValue() string { return i.session.Title }

// sessionDelegate renders sidebar rows: title plus a preview of the last
// user utterance. The row under edit shows the title editor instead.
type sessionDelegate struct {
	model *Model
}

func (d *sessionDelegate) Height() int  { return 2 }
func (d *sessionDelegate) Spacing() int { return 0 }

func (d *sessionDelegate) Update(msg tea.Msg, l *list.Model) tea.Cmd { return nil }

func (d *sessionDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	entry, ok := item.(sessionItem)
	if !ok {
		return
	}
	session := entry.session

	if d.model.sidebar.EditingID() == session.ID {
		fmt.Fprintf(w, "%s\n%s",
			d.model.titleInput.View(),
			styles.SidebarPreviewStyle.Render("Enter to save, Esc to cancel"))
		return
	}

	cursor := "  "
	titleStyle := styles.SidebarItemStyle
	if index == l.Index() {
		cursor = styles.SidebarCursorStyle.Render("> ")
	}
	if session.ID == d.model.store.CurrentID() {
		titleStyle = styles.SidebarCurrentStyle
	}

	preview := truncate(session.LastUserMessage(), styles.PreviewLength)
	if preview == "" {
		preview = "no messages yet"
	}
	fmt.Fprintf(w, "%s%s\n%s",
		cursor,
		titleStyle.Render(truncate(session.Title, styles.SidebarWidth-4)),
		styles.SidebarPreviewStyle.Render(preview))
}

func truncate(s string, maxLen int) string {
	if maxLen <= 3 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
