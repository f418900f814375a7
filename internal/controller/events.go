// Package controller orchestrates the use cases behind the UI: sending a
// message, the session lifecycle, the title editor and the document upload.
// Controllers own the small state machines, validate input locally, and hand
// the presentation layer command thunks to run; they import no rendering
// code.
package controller

import (
	"github.com/google/uuid"

	"docchat/internal/api"
)

// Event is the resolution of a Command. The presentation layer feeds events
// back into the owning controller's Resolve method.
type Event any

// Command performs one remote operation and yields its event. It is shaped
// like a bubbletea command so the UI can wrap it directly.
type Command func() Event

// SessionsLoaded resolves the startup fetch.
type SessionsLoaded struct {
	Sessions []*api.ChatSession
	Err      error
}

// SendResolved resolves a message send. Token identifies the in-flight
// operation it answers; a stale token means the result must be discarded.
type SendResolved struct {
	Token     uuid.UUID
	SessionID string
	Session   *api.ChatSession
	Err       error
}

// SessionCreated resolves a create-session call.
type SessionCreated struct {
	Session *api.ChatSession
	Err     error
}

// SessionRenamed resolves a rename call.
type SessionRenamed struct {
	SessionID string
	Session   *api.ChatSession
	Err       error
}

// SessionDeleted resolves a delete call.
type SessionDeleted struct {
	SessionID string
	Err       error
}

// DocumentUploaded resolves a document upload.
type DocumentUploaded struct {
	FileName string
	Err      error
}
