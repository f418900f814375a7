package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docchat/internal/api"
)

func TestLoadSelectsFirstSession(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode([]*api.ChatSession{
			chatSession("a", "Chat 1"),
			chatSession("b", "Chat 2"),
		})
	})

	event := f.sidebar.Load(ctx)().(SessionsLoaded)
	require.NoError(t, f.sidebar.ResolveLoad(event))

	assert.Equal(t, 2, f.store.Len())
	assert.Equal(t, "a", f.store.CurrentID())
}

func TestLoadKeepsExistingSelection(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]*api.ChatSession{
			chatSession("a", "Chat 1"),
			chatSession("b", "Chat 2"),
		})
	})
	f.store.Upsert(chatSession("b", "Chat 2"))
	f.store.Select("b")

	event := f.sidebar.Load(ctx)().(SessionsLoaded)
	require.NoError(t, f.sidebar.ResolveLoad(event))
	assert.Equal(t, "b", f.store.CurrentID())
}

func TestLoadFailureIsSurfaced(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	event := f.sidebar.Load(ctx)().(SessionsLoaded)
	err := f.sidebar.ResolveLoad(event)
	require.Error(t, err)
	assert.Equal(t, 0, f.store.Len())
}

func TestCreateSelectsNewSession(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatSession("c", "New Chat"))
	})
	f.store.Upsert(chatSession("a", "Chat 1"))
	f.store.Select("a")

	event := f.sidebar.Create(ctx)().(SessionCreated)
	require.NoError(t, f.sidebar.ResolveCreate(event))

	assert.Equal(t, "c", f.store.CurrentID())
	assert.Equal(t, 2, f.store.Len())
}

func TestDeleteRepairsSelection(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
	})
	f.store.Upsert(chatSession("a", "Chat 1"))
	f.store.Upsert(chatSession("b", "Chat 2"))
	f.store.Select("a")

	event := f.sidebar.Delete(ctx, "a")().(SessionDeleted)
	require.NoError(t, f.sidebar.ResolveDelete(event))

	assert.Nil(t, f.store.Get("a"))
	assert.Equal(t, "b", f.store.CurrentID())
}

func TestDeleteFailureKeepsSession(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "locked", http.StatusConflict)
	})
	f.store.Upsert(chatSession("a", "Chat 1"))
	f.store.Select("a")

	event := f.sidebar.Delete(ctx, "a")().(SessionDeleted)
	require.Error(t, f.sidebar.ResolveDelete(event))
	require.NotNil(t, f.store.Get("a"))
	assert.Equal(t, "a", f.store.CurrentID())
}

func TestDeleteAbandonsEditorForDeletedSession(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	f.store.Upsert(chatSession("a", "Chat 1"))

	require.True(t, f.sidebar.StartEdit("a"))
	require.Equal(t, Editing, f.sidebar.EditState())

	event := f.sidebar.Delete(ctx, "a")().(SessionDeleted)
	require.NoError(t, f.sidebar.ResolveDelete(event))
	assert.Equal(t, Viewing, f.sidebar.EditState())
	assert.Empty(t, f.sidebar.Buffer())
}

func TestStartEditSeedsBufferFromTitle(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	f.store.Upsert(chatSession("a", "Chat 1"))

	require.True(t, f.sidebar.StartEdit("a"))
	assert.Equal(t, "Chat 1", f.sidebar.Buffer())
	assert.Equal(t, "a", f.sidebar.EditingID())
}

func TestStartEditUnknownSession(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	assert.False(t, f.sidebar.StartEdit("missing"))
	assert.Equal(t, Viewing, f.sidebar.EditState())
}

func TestCommitEditTrimsTitle(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/sessions/a", r.URL.Path)

		body := struct {
			Title string `json:"title"`
		}{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Trip Planning", body.Title)
		json.NewEncoder(w).Encode(chatSession("a", body.Title))
	})
	f.store.Upsert(chatSession("a", "Chat 1"))

	require.True(t, f.sidebar.StartEdit("a"))
	f.sidebar.SetBuffer("  Trip Planning  ")

	command, ok := f.sidebar.CommitEdit(ctx)
	require.True(t, ok)
	assert.Equal(t, Viewing, f.sidebar.EditState())

	event := command().(SessionRenamed)
	require.NoError(t, f.sidebar.ResolveRename(event))
	assert.Equal(t, "Trip Planning", f.store.Get("a").Title)
}

func TestCommitEmptyBufferDiscardsSilently(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})
	f.store.Upsert(chatSession("a", "Chat 1"))

	require.True(t, f.sidebar.StartEdit("a"))
	f.sidebar.SetBuffer("   ")

	command, ok := f.sidebar.CommitEdit(ctx)
	assert.False(t, ok)
	assert.Nil(t, command)
	assert.Equal(t, Viewing, f.sidebar.EditState())
	assert.Equal(t, "Chat 1", f.store.Get("a").Title)
}

func TestCancelEditKeepsTitle(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})
	f.store.Upsert(chatSession("a", "Chat 1"))

	require.True(t, f.sidebar.StartEdit("a"))
	f.sidebar.SetBuffer("half typed")
	f.sidebar.CancelEdit()

	assert.Equal(t, Viewing, f.sidebar.EditState())
	assert.Equal(t, "Chat 1", f.store.Get("a").Title)
}

func TestRenameFailureKeepsOldTitle(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})
	f.store.Upsert(chatSession("a", "Chat 1"))

	require.True(t, f.sidebar.StartEdit("a"))
	f.sidebar.SetBuffer("Better Title")

	command, ok := f.sidebar.CommitEdit(ctx)
	require.True(t, ok)

	event := command().(SessionRenamed)
	require.Error(t, f.sidebar.ResolveRename(event))
	assert.Equal(t, "Chat 1", f.store.Get("a").Title)
}
