package client

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/domain/note"
	"notekeeper/internal/utils/logger"
)

func newTestApp(t *testing.T) (*App, *fakeBackend, *bytes.Buffer) {
	t.Helper()

	fb, srv := newFakeBackend(t)
	out := new(bytes.Buffer)

	app, err := New(testConfig(srv.URL), logger.Discard(), out)
	require.NoError(t, err)

	return app, fb, out
}

func TestNew_UnknownIDScheme(t *testing.T) {
	cfg := testConfig("http://localhost:8000")
	cfg.IDScheme = "sequence"

	_, err := New(cfg, logger.Discard(), new(bytes.Buffer))

	assert.ErrorIs(t, err, note.ErrUnknownIDScheme)
}

func TestApp_Start(t *testing.T) {
	app, fb, out := newTestApp(t)

	err := app.Start(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Hello, alice!")
	assert.Contains(t, out.String(), "    hi")

	session, ok := app.Board().Session()
	require.True(t, ok)
	assert.Equal(t, "alice", session.Username)
	assert.Equal(t, 1, app.Board().Len())

	calls := fb.calls(pathGetNotes)
	require.Len(t, calls, 1)
	assert.Equal(t, "1", calls[0].UserID)
}

func TestApp_Start_SessionFailure(t *testing.T) {
	app, fb, out := newTestApp(t)
	fb.respond(pathGetUsername, http.StatusUnauthorized, `{"detail": "User not logged in"}`)

	err := app.Start(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.NotContains(t, out.String(), "Hello")
	assert.Zero(t, app.Board().Len())
	assert.Empty(t, fb.calls(pathGetNotes))

	_, ok := app.Board().Session()
	assert.False(t, ok)
}

func TestApp_Start_NotesFailure(t *testing.T) {
	app, fb, out := newTestApp(t)
	fb.respond(pathGetNotes, http.StatusInternalServerError, `{"detail": "boom"}`)

	err := app.Start(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Hello, alice!")
	assert.Zero(t, app.Board().Len())
}

func TestApp_NewNote(t *testing.T) {
	app, _, _ := newTestApp(t)
	now := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

	n := app.NewNote(note.Session{UserID: "1", Username: "alice"}, "hello", now)

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, note.UserID("1"), n.UserID)
	assert.Equal(t, "hello", n.Content)
	assert.Equal(t, "3/5/2024 2:07:09 PM", n.Timestamp.Raw)
}
