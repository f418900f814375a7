package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func TestListSessions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/sessions", r.URL.Path)
		json.NewEncoder(w).Encode([]*ChatSession{
			{ID: "a", Title: "Chat 1"},
			{ID: "b", Title: "Chat 2"},
		})
	}))
	defer server.Close()

	sessions, err := NewClient(server.URL, 0).ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "a", sessions[0].ID)
	assert.Equal(t, "Chat 2", sessions[1].Title)
}

func TestCreateSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/sessions", r.URL.Path)
		json.NewEncoder(w).Encode(&ChatSession{ID: "c", Title: "New Chat"})
	}))
	defer server.Close()

	session, err := NewClient(server.URL, 0).CreateSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c", session.ID)
	assert.Equal(t, "New Chat", session.Title)
	assert.Empty(t, session.Messages)
}

func TestSendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/chat", r.URL.Path)

		body := struct {
			Message     string `json:"message"`
			SessionID   string `json:"sessionId"`
			UseDocument bool   `json:"useDocument"`
		}{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "what is this about?", body.Message)
		assert.Equal(t, "a", body.SessionID)
		assert.True(t, body.UseDocument)

		json.NewEncoder(w).Encode(map[string]any{
			"session": &ChatSession{
				ID:    "a",
				Title: "Chat 1",
				Messages: []*Exchange{{
					User:    body.Message,
					Bot:     "It is about birds.",
					Sources: []*SourceRef{{Page: 3, Source: "birds.pdf"}},
				}},
			},
		})
	}))
	defer server.Close()

	session, err := NewClient(server.URL, 0).SendMessage(ctx, "a", "what is this about?", true)
	require.NoError(t, err)
	require.Len(t, session.Messages, 1)
	assert.Equal(t, "It is about birds.", session.Messages[0].Bot)
	require.Len(t, session.Messages[0].Sources, 1)
	assert.Equal(t, 3, session.Messages[0].Sources[0].Page)
}

func TestSendMessageApplicationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Transport-level success carrying a business failure.
		json.NewEncoder(w).Encode(map[string]string{"error": "grounding service unavailable"})
	}))
	defer server.Close()

	_, err := NewClient(server.URL, 0).SendMessage(ctx, "a", "hello", false)
	require.Error(t, err)
	assert.Equal(t, KindApplication, KindOf(err))
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "grounding service unavailable", apiErr.UserMessage())
}

func TestRenameSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/sessions/a", r.URL.Path)

		body := struct {
			Title string `json:"title"`
		}{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(&ChatSession{ID: "a", Title: body.Title})
	}))
	defer server.Close()

	session, err := NewClient(server.URL, 0).RenameSession(ctx, "a", "Trip Planning")
	require.NoError(t, err)
	assert.Equal(t, "Trip Planning", session.Title)
}

func TestDeleteSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/sessions/a", r.URL.Path)
	}))
	defer server.Close()

	require.NoError(t, NewClient(server.URL, 0).DeleteSession(ctx, "a"))
}

func TestUploadDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/upload-document", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "report.pdf", header.Filename)

		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}))
	defer server.Close()

	err := NewClient(server.URL, 0).UploadDocument(ctx, "report.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
}

func TestUploadDocumentFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"error": "could not parse document"})
	}))
	defer server.Close()

	err := NewClient(server.URL, 0).UploadDocument(ctx, "report.pdf", []byte("not a pdf"))
	require.Error(t, err)
	assert.Equal(t, KindHTTP, KindOf(err))
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	// The body's message wins over the generic status line.
	assert.Equal(t, "could not parse document", apiErr.UserMessage())
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
}

func TestHTTPErrorWithoutBodyMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway exploded", http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, 0).ListSessions(ctx)
	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindHTTP, apiErr.Kind)
	assert.Equal(t, "server returned status 502", apiErr.UserMessage())
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Nothing listens anymore.

	_, err := NewClient(server.URL, 0).ListSessions(ctx)
	require.Error(t, err)
	assert.Equal(t, KindTransport, KindOf(err))
}

func TestValidationErrorKind(t *testing.T) {
	err := NewValidationError("bad input %d", 7)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "bad input 7", err.UserMessage())
}
