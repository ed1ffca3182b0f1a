package hrmsclient

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())

	user := &SessionUser{ID: "u1", Email: "u1@example.com", Role: "MANAGER"}
	require.NoError(t, store.Save("tok", user))

	assert.Equal(t, "tok", store.Token())
	got := store.User()
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "MANAGER", got.Role)
}

func TestSessionStoreClearRemovesBoth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewSessionStore(path)
	require.NoError(t, store.Save("tok", &SessionUser{ID: "u1"}))

	store.Clear()

	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

// Two stores on the same path model two tabs sharing one browser
// profile: a clear in one must be visible to the other on next read.
func TestSessionStoreReadsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	tabA := NewSessionStore(path)
	tabB := NewSessionStore(path)

	require.NoError(t, tabA.Save("tok", &SessionUser{ID: "u1"}))
	assert.Equal(t, "tok", tabB.Token())

	tabA.Clear()
	assert.Empty(t, tabB.Token())
}
