package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docchat/cli/tui/styles"
)

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if m.loadErr != nil {
		return m.renderLoadFailure()
	}

	if !m.ready || m.loading {
		return "Connecting..."
	}

	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(m.renderDocumentBar())
	b.WriteString("\n")

	b.WriteString(styles.ViewportStyle.Render(m.viewport.View()))
	b.WriteString("\n")

	if m.pendingDeleteID != "" {
		b.WriteString(m.renderDeleteConfirm())
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render("Press Y to delete, N or Esc to keep"))
	} else if m.chat.Busy() {
		b.WriteString(fmt.Sprintf("%s Thinking...\n", m.spinner.View()))
	} else {
		b.WriteString(styles.TextAreaStyle.Render(m.textarea.View()))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("Error: %s", userMessage(m.err))))
	}

	sidebar := styles.SidebarStyle.Height(m.height).Render(m.sessionList.View())
	view := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, b.String())
	return m.alert.Render(view)
}

func (m *Model) renderLoadFailure() string {
	var b strings.Builder
	b.WriteString(styles.ErrorStyle.Render("Failed to fetch chat sessions."))
	b.WriteString("\n\n")
	b.WriteString(userMessage(m.loadErr))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("Check that the backend server is running, then restart. Press any key to exit."))
	return styles.ConfirmBoxStyle.Render(b.String())
}

func (m *Model) renderTitle() string {
	current := m.store.Current()
	title := current.Title
	if title == "" {
		title = "no chat selected"
	}
	bar := fmt.Sprintf(" 💬 %s │ %d chats ", title, m.store.Len())
	width := m.width - styles.SidebarWidth - styles.SidebarStyle.GetHorizontalBorderSize()
	return styles.TitleStyle.Width(width).Render(bar)
}

// renderDocumentBar shows the upload flow state and the grounding toggle.
func (m *Model) renderDocumentBar() string {
	switch m.uploadState {
	case UploadPrompting:
		line := "Upload document: " + m.uploadInput.View()
		if m.uploadErr != nil {
			line += "  " + styles.ErrorStyle.Render(userMessage(m.uploadErr))
		}
		return line
	case UploadActive:
		return fmt.Sprintf("%s Processing document...", m.spinner.View())
	}

	if m.uploadErr != nil {
		return styles.ErrorStyle.Render("Upload failed: " + userMessage(m.uploadErr))
	}
	if !m.gate.HasDocument() {
		return styles.DocumentOffStyle.Render("No document loaded (Ctrl+O to upload)")
	}

	mode := "off"
	style := styles.DocumentOffStyle
	if m.gate.UseDocument() {
		mode = "on"
		style = styles.DocumentStyle
	}
	return style.Render(fmt.Sprintf("📄 %s │ document mode %s (Alt+D toggles)", m.gate.FileName(), mode))
}

func (m *Model) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(styles.ConfirmTitleStyle.Render("Delete this chat?"))
	b.WriteString("\n\n")
	title := m.pendingDeleteID
	if session := m.store.Get(m.pendingDeleteID); session != nil {
		title = session.Title
	}
	b.WriteString(fmt.Sprintf("%q will be gone for good.", title))
	return styles.ConfirmBoxStyle.Render(b.String())
}

// renderMessages renders the current session's transcript, oldest first.
func (m *Model) renderMessages() string {
	messages := m.store.Current().Messages
	if len(messages) == 0 {
		return styles.HelpStyle.Render("No messages yet. Say something!")
	}

	var b strings.Builder
	for i, exchange := range messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(styles.UserMessageStyle.Render(exchange.User))
		b.WriteString("\n")
		b.WriteString(styles.BotMessageStyle.Render(m.renderer.Render(exchange.Bot, i)))

		if len(exchange.Sources) > 0 {
			b.WriteString("\n")
			b.WriteString(styles.SourceLabelStyle.Render("Sources:"))
			for _, source := range exchange.Sources {
				b.WriteString("\n")
				b.WriteString(styles.SourceStyle.Render(fmt.Sprintf("Page %d - %s", source.Page, source.Source)))
			}
		}
	}
	return b.String()
}
