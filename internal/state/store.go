// Package state owns the client-side copy of all chat sessions and the
// document-mode flags. Every mutation flows through the Store; the UI is a
// pure projection of it. All access happens on the event loop, so the Store
// takes no locks.
package state

import (
	"docchat/internal/api"
)

// emptySession backs Current() when nothing is selected, keeping the
// projection total.
var emptySession = &api.ChatSession{}

// Store is the authoritative in-memory session collection plus the currently
// selected id.
type Store struct {
	sessions map[string]*api.ChatSession
	order    []string // display order, ids only
	current  string   // "" when no session is selected
}

// NewStore returns an empty store with no selection.
func NewStore() *Store {
	return &Store{sessions: map[string]*api.ChatSession{}}
}

// Sessions returns all sessions in display order.
func (s *Store) Sessions() []*api.ChatSession {
	sessions := make([]*api.ChatSession, 0, len(s.order))
	for _, id := range s.order {
		sessions = append(sessions, s.sessions[id])
	}
	return sessions
}

// Len returns the number of sessions held.
func (s *Store) Len() int { return len(s.order) }

// Get returns the session with the given id, or nil.
func (s *Store) Get(id string) *api.ChatSession {
	return s.sessions[id]
}

// CurrentID returns the selected session id, or "" when none is selected.
func (s *Store) CurrentID() string { return s.current }

// Current returns the selected session. It never returns nil: with no
// selection it returns an empty session with no messages.
func (s *Store) Current() *api.ChatSession {
	if session, ok := s.sessions[s.current]; ok {
		return session
	}
	return emptySession
}

// Select makes id the current session. Selecting an unknown id is a no-op.
func (s *Store) Select(id string) bool {
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	s.current = id
	return true
}

// Upsert inserts a new session at the end of the display order, or replaces
// an existing one in place. Replacement never moves a session, so the active
// chat does not jump around the sidebar after every message.
func (s *Store) Upsert(session *api.ChatSession) {
	if _, ok := s.sessions[session.ID]; !ok {
		s.order = append(s.order, session.ID)
	}
	s.sessions[session.ID] = session
}

// Remove deletes a session and repairs the selection: if the removed session
// was current, the first remaining session in display order becomes current,
// or nothing if the store is now empty.
func (s *Store) Remove(id string) {
	if _, ok := s.sessions[id]; !ok {
		return
	}
	delete(s.sessions, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.current == id {
		s.current = ""
		if len(s.order) > 0 {
			s.current = s.order[0]
		}
	}
}
