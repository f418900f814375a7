package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"go.dalton.dog/bubbleup"

	"docchat/internal/api"
	"docchat/internal/controller"
)

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Always update the alert model with every message
	outAlert, alertCmd := m.alert.Update(msg)
	m.alert = outAlert.(bubbleup.AlertModel)
	if alertCmd != nil {
		cmds = append(cmds, alertCmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalculateLayout()
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case controller.SessionsLoaded:
		m.loading = false
		if err := m.sidebar.ResolveLoad(msg); err != nil {
			log.Error("fetching sessions", "error", err)
			m.loadErr = err
			return m, tea.Batch(cmds...)
		}
		cmds = append(cmds, m.syncSessionList())
		m.moveCursorTo(m.store.CurrentID())
		m.refreshViewport(true)
		return m, tea.Batch(cmds...)

	case controller.SendResolved:
		if err := m.chat.Resolve(msg); err != nil {
			log.Error("sending message", "error", err)
			m.err = err
			m.recalculateLayout()
			return m, tea.Batch(cmds...)
		}
		cmds = append(cmds, m.syncSessionList())
		m.refreshViewport(msg.SessionID == m.store.CurrentID())
		return m, tea.Batch(cmds...)

	case controller.SessionCreated:
		if err := m.sidebar.ResolveCreate(msg); err != nil {
			log.Error("creating session", "error", err)
			cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.ErrorKey, "Failed to create chat"))
			return m, tea.Batch(cmds...)
		}
		cmds = append(cmds, m.syncSessionList())
		m.moveCursorTo(msg.Session.ID)
		m.renderer.Reset()
		m.refreshViewport(true)
		return m, tea.Batch(cmds...)

	case controller.SessionRenamed:
		if err := m.sidebar.ResolveRename(msg); err != nil {
			log.Error("renaming session", "error", err)
			cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.ErrorKey, "Failed to rename chat"))
			return m, tea.Batch(cmds...)
		}
		cmds = append(cmds, m.syncSessionList())
		return m, tea.Batch(cmds...)

	case controller.SessionDeleted:
		if err := m.sidebar.ResolveDelete(msg); err != nil {
			log.Error("deleting session", "error", err)
			cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.ErrorKey, "Failed to delete chat"))
			return m, tea.Batch(cmds...)
		}
		cmds = append(cmds, m.syncSessionList())
		m.moveCursorTo(m.store.CurrentID())
		m.renderer.Reset()
		m.refreshViewport(true)
		return m, tea.Batch(cmds...)

	case controller.DocumentUploaded:
		m.uploadState = UploadIdle
		if err := m.chat.ResolveUpload(msg); err != nil {
			log.Error("uploading document", "error", err)
			m.uploadErr = err
			return m, tea.Batch(cmds...)
		}
		m.uploadErr = nil
		m.setPlaceholder()
		cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.InfoKey, "Document ready: "+msg.FileName))
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		cmd, handled := m.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if handled {
			return m, tea.Batch(cmds...)
		}
	}

	// Route the remaining message to the focused component.
	switch m.focus {
	case FocusInput:
		if !m.chat.Busy() {
			var cmd tea.Cmd
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
			m.adjustTextareaHeight()
		}
	case FocusSidebar:
		var cmd tea.Cmd
		m.sessionList, cmd = m.sessionList.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Scroll keys reach the viewport unless the user is typing.
	if _, isKey := msg.(tea.KeyMsg); !isKey || m.focus != FocusInput || m.chat.Busy() {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKey routes a key press. It returns handled=false when the key should
// still reach the focused component.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	// Startup failure is blocking: the store never loaded.
	if m.loadErr != nil {
		switch msg.String() {
		case "q", "ctrl+c", "enter", "esc":
			m.quitting = true
			return tea.Quit, true
		}
		return nil, true
	}

	// Delete confirmation is a modal yes/no decision.
	if m.pendingDeleteID != "" {
		switch msg.String() {
		case "y", "Y", "enter":
			sessionID := m.pendingDeleteID
			m.pendingDeleteID = ""
			return wrapCommand(m.sidebar.Delete(m.ctx, sessionID)), true
		case "n", "N", "esc":
			m.pendingDeleteID = ""
		}
		return nil, true
	}

	// Upload path prompt.
	if m.uploadState == UploadPrompting {
		switch msg.Type {
		case tea.KeyEnter:
			return m.startUpload(), true
		case tea.KeyEsc:
			m.uploadState = UploadIdle
			m.uploadErr = nil
			return nil, true
		}
		var cmd tea.Cmd
		m.uploadInput, cmd = m.uploadInput.Update(msg)
		return cmd, true
	}

	// Title editor.
	if m.sidebar.EditState() == controller.Editing {
		switch msg.Type {
		case tea.KeyEnter:
			return m.commitTitleEdit(), true
		case tea.KeyEsc:
			m.sidebar.CancelEdit()
			m.titleInput.Blur()
			return nil, true
		case tea.KeyTab:
			// Moving focus away commits, like an input losing focus.
			cmd := m.commitTitleEdit()
			m.focus = FocusInput
			m.textarea.Focus()
			return cmd, true
		}
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		m.sidebar.SetBuffer(m.titleInput.Value())
		return cmd, true
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return tea.Quit, true

	case tea.KeyTab:
		m.toggleFocus()
		return nil, true

	case tea.KeyCtrlJ:
		if m.focus == FocusInput {
			return m.submit(), true
		}

	case tea.KeyCtrlO:
		if m.uploadState == UploadIdle {
			m.uploadState = UploadPrompting
			m.uploadErr = nil
			m.uploadInput.SetValue("")
			m.uploadInput.Focus()
			return nil, true
		}
	}

	switch msg.String() {
	case "alt+d":
		if err := m.gate.Toggle(); err != nil {
			return m.alert.NewAlertCmd(bubbleup.WarnKey, userMessage(err)), true
		}
		m.setPlaceholder()
		return nil, true

	case "alt+w":
		return m.copyLastReply(), true

	case "alt+p":
		if m.focus == FocusInput && !m.chat.Busy() {
			if entry, ok := m.history.Previous(m.textarea.Value()); ok {
				m.textarea.SetValue(entry)
				m.historyNavigating = true
				m.adjustTextareaHeight()
			}
			return nil, true
		}

	case "alt+n":
		if m.focus == FocusInput && !m.chat.Busy() {
			if entry, ok := m.history.Next(); ok {
				m.textarea.SetValue(entry)
				m.historyNavigating = true
				m.adjustTextareaHeight()
			}
			return nil, true
		}
	}

	// Editing the input abandons history navigation.
	if m.focus == FocusInput && m.historyNavigating {
		switch msg.Type {
		case tea.KeyRunes, tea.KeyBackspace, tea.KeyDelete:
			m.history.Reset()
			m.historyNavigating = false
		}
	}

	if m.focus == FocusSidebar {
		return m.handleSidebarKey(msg)
	}
	return nil, false
}

// handleSidebarKey handles keys while the sidebar has focus. The delete and
// rename targets are the row under the cursor; neither changes the current
// session selection.
func (m *Model) handleSidebarKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "enter":
		if sessionID := m.selectedSessionID(); sessionID != "" && sessionID != m.store.CurrentID() {
			m.store.Select(sessionID)
			m.renderer.Reset()
			m.refreshViewport(true)
		}
		return nil, true

	case "n":
		return wrapCommand(m.sidebar.Create(m.ctx)), true

	case "d":
		if sessionID := m.selectedSessionID(); sessionID != "" {
			m.pendingDeleteID = sessionID
		}
		return nil, true

	case "r":
		sessionID := m.selectedSessionID()
		if sessionID == "" || !m.sidebar.StartEdit(sessionID) {
			return nil, true
		}
		m.titleInput.SetValue(m.sidebar.Buffer())
		m.titleInput.CursorEnd()
		m.titleInput.Focus()
		return nil, true
	}
	return nil, false
}

func (m *Model) toggleFocus() {
	if m.focus == FocusInput {
		m.focus = FocusSidebar
		m.textarea.Blur()
	} else {
		m.focus = FocusInput
		m.textarea.Focus()
	}
}

// commitTitleEdit leaves the editor; a non-empty trimmed buffer issues the
// rename call.
func (m *Model) commitTitleEdit() tea.Cmd {
	m.titleInput.Blur()
	command, ok := m.sidebar.CommitEdit(m.ctx)
	if !ok {
		return nil
	}
	return wrapCommand(command)
}

// userMessage favors the API error's own message for display.
func userMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return err.Error()
}

// startUpload validates the prompted path and kicks off the upload.
func (m *Model) startUpload() tea.Cmd {
	path := strings.TrimSpace(m.uploadInput.Value())
	if path == "" {
		m.uploadState = UploadIdle
		return nil
	}
	command, err := m.chat.Upload(m.ctx, path)
	if err != nil {
		// Rejected locally; keep the prompt so the path can be fixed.
		m.uploadErr = err
		return nil
	}
	m.uploadState = UploadActive
	m.uploadErr = nil
	return tea.Batch(wrapCommand(command), m.spinner.Tick)
}
