// Package tui is the Bubble Tea projection of the session state: a sidebar
// of sessions, the transcript of the current one, and a single input box.
// All state lives in the store and the controllers; this package only
// renders it and routes key presses.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"

	"docchat/cli/tui/styles"
	"docchat/internal/api"
	"docchat/internal/configuration"
	"docchat/internal/controller"
	"docchat/internal/debug"
	"docchat/internal/history"
	"docchat/internal/markdown"
	"docchat/internal/state"
)

const (
	placeholderPlain    = "Type a message... (Ctrl+J to send, Tab for sidebar, Ctrl+C to quit)"
	placeholderGrounded = "Ask a question about the document... (Ctrl+J to send)"
)

var log *slog.Logger

// FocusedComponent tracks which pane receives key presses.
type FocusedComponent int

const (
	FocusInput FocusedComponent = iota
	FocusSidebar
)

// UploadState is the upload flow's machine, replacing scattered
// isUploading/error booleans.
type UploadState int

const (
	UploadIdle UploadState = iota
	UploadPrompting
	UploadActive
)

// Model is the Bubble Tea model for the whole client.
type Model struct {
	// Core dependencies
	ctx     context.Context
	config  *configuration.Config
	store   *state.Store
	gate    *state.DocumentGate
	chat    *controller.Chat
	sidebar *controller.Sidebar

	// UI components
	sessionList list.Model
	viewport    viewport.Model
	textarea    textarea.Model
	spinner     spinner.Model
	titleInput  textinput.Model
	uploadInput textinput.Model
	renderer    *markdown.Renderer
	alert       bubbleup.AlertModel

	// UI state
	width           int
	height          int
	ready           bool
	loading         bool
	loadErr         error
	err             error
	uploadErr       error
	quitting        bool
	focus           FocusedComponent
	uploadState     UploadState
	pendingDeleteID string
	clipboardReady  bool

	// Input history
	history           *history.History
	historyNavigating bool
}

// New builds the model. The store starts empty; Init issues the startup
// fetch.
func New(
	ctx context.Context,
	config *configuration.Config,
	client *api.Client,
	clipboardReady bool,
) (*Model, error) {
	log = debug.GetLogger()

	store := state.NewStore()
	gate := state.NewDocumentGate()
	chat := controller.NewChat(client, store, gate)
	sidebar := controller.NewSidebar(client, store, chat)

	ta := textarea.New()
	ta.Placeholder = placeholderPlain
	ta.Focus()
	ta.CharLimit = 0
	ta.SetHeight(styles.MinTextareaHeight)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(true)
	ta.Prompt = ""

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	titleInput := textinput.New()
	titleInput.CharLimit = 120
	titleInput.Prompt = ""

	uploadInput := textinput.New()
	uploadInput.Placeholder = "Path to a .pdf, .txt or .docx file"
	uploadInput.Prompt = "> "

	renderer, err := markdown.NewRenderer(80)
	if err != nil {
		return nil, err
	}

	m := &Model{
		ctx:            ctx,
		config:         config,
		store:          store,
		gate:           gate,
		chat:           chat,
		sidebar:        sidebar,
		textarea:       ta,
		spinner:        sp,
		titleInput:     titleInput,
		uploadInput:    uploadInput,
		renderer:       renderer,
		alert:          *bubbleup.NewAlertModel(40, true, 1),
		loading:        true,
		history:        history.NewHistory(),
		clipboardReady: clipboardReady,
	}

	delegate := &sessionDelegate{model: m}
	sessionList := list.New([]list.Item{}, delegate, styles.SidebarWidth, styles.MinViewportHeight)
	sessionList.Title = "Chats"
	sessionList.SetShowHelp(false)
	sessionList.SetFilteringEnabled(false)
	sessionList.SetShowPagination(false)
	sessionList.SetShowStatusBar(false)
	m.sessionList = sessionList

	return m, nil
}

// Init issues the startup session fetch.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.alert.Init(),
		wrapCommand(m.sidebar.Load(m.ctx)),
	)
}

// syncSessionList rebuilds the sidebar items from the store, keeping the
// cursor on the same session where possible.
func (m *Model) syncSessionList() tea.Cmd {
	selectedID := m.selectedSessionID()
	sessions := m.store.Sessions()
	items := make([]list.Item, len(sessions))
	cursor := -1
	for i, session := range sessions {
		items[i] = sessionItem{session: session}
		if session.ID == selectedID {
			cursor = i
		}
	}
	cmd := m.sessionList.SetItems(items)
	if cursor >= 0 {
		m.sessionList.Select(cursor)
	}
	return cmd
}

// selectedSessionID returns the id under the sidebar cursor, or "".
func (m *Model) selectedSessionID() string {
	item, ok := m.sessionList.SelectedItem().(sessionItem)
	if !ok {
		return ""
	}
	return item.session.ID
}

// moveCursorTo puts the sidebar cursor on the given session.
func (m *Model) moveCursorTo(sessionID string) {
	for i, item := range m.sessionList.Items() {
		if entry, ok := item.(sessionItem); ok && entry.session.ID == sessionID {
			m.sessionList.Select(i)
			return
		}
	}
}

// refreshViewport re-renders the transcript of the current session.
func (m *Model) refreshViewport(goToBottom bool) {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderMessages())
	if goToBottom {
		m.viewport.GotoBottom()
	}
}

// setPlaceholder reflects document mode in the input's placeholder.
func (m *Model) setPlaceholder() {
	if m.gate.UseDocument() {
		m.textarea.Placeholder = placeholderGrounded
	} else {
		m.textarea.Placeholder = placeholderPlain
	}
}
