package controller

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"docchat/internal/api"
	"docchat/internal/state"
)

// SendState is the chat controller's machine: at most one send is in flight
// at a time, globally, matching the single input box.
type SendState int

const (
	Idle SendState = iota
	Sending
)

// Chat orchestrates the send-message use case and the document upload.
type Chat struct {
	client *api.Client
	store  *state.Store
	gate   *state.DocumentGate

	sendState SendState
	token     uuid.UUID
	targetID  string
	cancel    context.CancelFunc
}

// NewChat builds a chat controller over the shared store and document gate.
func NewChat(client *api.Client, store *state.Store, gate *state.DocumentGate) *Chat {
	return &Chat{client: client, store: store, gate: gate}
}

// State returns the send machine's current state.
func (c *Chat) State() SendState { return c.sendState }

// Busy reports whether a send is in flight.
func (c *Chat) Busy() bool { return c.sendState == Sending }

// Submit starts a send for the current session. It is a no-op (nil command,
// false) when the trimmed text is empty, no session is selected, or a send is
// already in flight. On success the caller must clear its input immediately:
// the machine has entered Sending and the text now belongs to the request.
func (c *Chat) Submit(ctx context.Context, text string) (Command, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || c.sendState == Sending {
		return nil, false
	}
	sessionID := c.store.CurrentID()
	if sessionID == "" {
		return nil, false
	}

	sendCtx, cancel := context.WithCancel(ctx)
	token := uuid.New()
	c.sendState = Sending
	c.token = token
	c.targetID = sessionID
	c.cancel = cancel

	client := c.client
	useDocument := c.gate.UseDocument()
	return func() Event {
		session, err := client.SendMessage(sendCtx, sessionID, trimmed, useDocument)
		cancel()
		return SendResolved{Token: token, SessionID: sessionID, Session: session, Err: err}
	}, true
}

// Resolve merges a send result. A result whose token no longer matches the
// in-flight one (its session was deleted mid-send) frees the machine and is
// otherwise discarded, so a deleted session cannot be resurrected by a late
// response. The returned error, if any, is for the user; the store is never
// touched on failure.
func (c *Chat) Resolve(event SendResolved) error {
	if c.sendState != Sending {
		return nil
	}
	stale := event.Token != c.token
	c.sendState = Idle
	c.token = uuid.Nil
	c.targetID = ""
	c.cancel = nil
	if stale {
		return nil
	}
	if event.Err != nil {
		return event.Err
	}
	c.store.Upsert(event.Session)
	return nil
}

// CancelPending invalidates the in-flight send targeting sessionID, if any,
// aborting its request. Called when that session is deleted.
func (c *Chat) CancelPending(sessionID string) {
	if c.sendState != Sending || c.targetID != sessionID {
		return
	}
	c.token = uuid.Nil
	if c.cancel != nil {
		c.cancel()
	}
}

// Upload validates the file's extension locally, then returns a command that
// reads and uploads it. An unsupported extension is rejected here, before
// any file or network access.
func (c *Chat) Upload(ctx context.Context, path string) (Command, error) {
	fileName := filepath.Base(path)
	if err := state.ValidateFilename(fileName); err != nil {
		return nil, err
	}
	client := c.client
	return func() Event {
		data, err := os.ReadFile(path)
		if err != nil {
			return DocumentUploaded{FileName: fileName, Err: api.NewValidationError("reading %s: %v", path, err)}
		}
		err = client.UploadDocument(ctx, fileName, data)
		return DocumentUploaded{FileName: fileName, Err: err}
	}, nil
}

// ResolveUpload applies an upload result to the gate: success records the
// document and auto-enables document mode, failure leaves both flags off.
func (c *Chat) ResolveUpload(event DocumentUploaded) error {
	if event.Err != nil {
		return event.Err
	}
	c.gate.MarkUploaded(event.FileName)
	return nil
}
