package controller

import (
	"context"
	"strings"

	"docchat/internal/api"
	"docchat/internal/state"
)

// EditState is the title editor's micro machine.
type EditState int

const (
	Viewing EditState = iota
	Editing
)

// Sidebar orchestrates the session lifecycle: startup fetch, create, delete
// and the title editor. Deletes must be confirmed by the user before Delete
// is called; the confirmation step belongs to the presentation layer.
type Sidebar struct {
	client *api.Client
	store  *state.Store
	chat   *Chat

	editState EditState
	editID    string
	buffer    string
}

// NewSidebar builds a sidebar controller. The chat controller is needed to
// invalidate an in-flight send when its session is deleted.
func NewSidebar(client *api.Client, store *state.Store, chat *Chat) *Sidebar {
	return &Sidebar{client: client, store: store, chat: chat}
}

// Load fetches all sessions. Issued once at startup; a failure here is
// startup-critical.
func (s *Sidebar) Load(ctx context.Context) Command {
	client := s.client
	return func() Event {
		sessions, err := client.ListSessions(ctx)
		return SessionsLoaded{Sessions: sessions, Err: err}
	}
}

// ResolveLoad populates the store and selects the first session in display
// order when nothing is selected yet.
func (s *Sidebar) ResolveLoad(event SessionsLoaded) error {
	if event.Err != nil {
		return event.Err
	}
	for _, session := range event.Sessions {
		s.store.Upsert(session)
	}
	if s.store.CurrentID() == "" {
		if sessions := s.store.Sessions(); len(sessions) > 0 {
			s.store.Select(sessions[0].ID)
		}
	}
	return nil
}

// Create asks the server for a new session.
func (s *Sidebar) Create(ctx context.Context) Command {
	client := s.client
	return func() Event {
		session, err := client.CreateSession(ctx)
		return SessionCreated{Session: session, Err: err}
	}
}

// ResolveCreate appends the new session and makes it current.
func (s *Sidebar) ResolveCreate(event SessionCreated) error {
	if event.Err != nil {
		return event.Err
	}
	s.store.Upsert(event.Session)
	s.store.Select(event.Session.ID)
	return nil
}

// Delete issues the destructive call. The caller has already confirmed.
func (s *Sidebar) Delete(ctx context.Context, sessionID string) Command {
	client := s.client
	return func() Event {
		err := client.DeleteSession(ctx, sessionID)
		return SessionDeleted{SessionID: sessionID, Err: err}
	}
}

// ResolveDelete removes the session, repairing the current selection, and
// invalidates any send still in flight for it. Deleting the session under
// edit also abandons the editor.
func (s *Sidebar) ResolveDelete(event SessionDeleted) error {
	if event.Err != nil {
		return event.Err
	}
	s.chat.CancelPending(event.SessionID)
	if s.editState == Editing && s.editID == event.SessionID {
		s.CancelEdit()
	}
	s.store.Remove(event.SessionID)
	return nil
}

// EditState returns the title editor's state.
func (s *Sidebar) EditState() EditState { return s.editState }

// EditingID returns the id of the session under edit, or "".
func (s *Sidebar) EditingID() string {
	if s.editState != Editing {
		return ""
	}
	return s.editID
}

// Buffer returns the editor's working text.
func (s *Sidebar) Buffer() string { return s.buffer }

// SetBuffer replaces the editor's working text.
func (s *Sidebar) SetBuffer(text string) {
	if s.editState == Editing {
		s.buffer = text
	}
}

// StartEdit enters the editor for the given session, seeding the buffer with
// its current title.
func (s *Sidebar) StartEdit(sessionID string) bool {
	session := s.store.Get(sessionID)
	if session == nil {
		return false
	}
	s.editState = Editing
	s.editID = sessionID
	s.buffer = session.Title
	return true
}

// CommitEdit leaves the editor. A trimmed non-empty buffer produces a rename
// command; an empty one is discarded silently, with no call and no
// empty-title write.
func (s *Sidebar) CommitEdit(ctx context.Context) (Command, bool) {
	if s.editState != Editing {
		return nil, false
	}
	sessionID := s.editID
	title := strings.TrimSpace(s.buffer)
	s.CancelEdit()
	if title == "" {
		return nil, false
	}
	client := s.client
	return func() Event {
		session, err := client.RenameSession(ctx, sessionID, title)
		return SessionRenamed{SessionID: sessionID, Session: session, Err: err}
	}, true
}

// CancelEdit leaves the editor discarding the buffer.
func (s *Sidebar) CancelEdit() {
	s.editState = Viewing
	s.editID = ""
	s.buffer = ""
}

// ResolveRename merges the renamed session. Failures are reported for a
// non-blocking notification; the store keeps the old title.
func (s *Sidebar) ResolveRename(event SessionRenamed) error {
	if event.Err != nil {
		return event.Err
	}
	s.store.Upsert(event.Session)
	return nil
}
