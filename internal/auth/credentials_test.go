package auth

import (
	"os"
	"path/filepath"
	"testing"

	"arogya-storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialStore_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")

	store, err := NewCredentialStore(path, zerolog.Nop())
	require.NoError(t, err)

	assert.Empty(t, store.Token())
	_, ok := store.User()
	assert.False(t, ok)

	user := model.User{ID: "u1", Name: "Asha", Mobile: "9876543210"}
	require.NoError(t, store.Save("tok-abc", user))

	assert.Equal(t, "tok-abc", store.Token())
	got, ok := store.User()
	require.True(t, ok)
	assert.Equal(t, "Asha", got.Name)

	// A fresh store reads the same session back from disk.
	reopened, err := NewCredentialStore(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", reopened.Token())
	got, ok = reopened.User()
	require.True(t, ok)
	assert.Equal(t, "u1", got.ID)
}

func TestCredentialStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")

	store, err := NewCredentialStore(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, store.Save("tok", model.User{ID: "u1"}))

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Token())
	_, ok := store.User()
	assert.False(t, ok)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing again is a no-op, not an error.
	require.NoError(t, store.Clear())
}

func TestCredentialStore_CorruptFileDegradesToSignedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := NewCredentialStore(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, store.Token())
}
