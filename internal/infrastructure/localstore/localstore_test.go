package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetMissingKey(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Get("orders")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_SetAndGet(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("orders", []byte(`[{"id":"abc"}]`)))

	data, ok, err := store.Get("orders")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"abc"}]`, string(data))
}

func TestStore_SetOverwrites(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("theme", []byte("light")))
	require.NoError(t, store.Set("theme", []byte("dark")))

	data, ok, err := store.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", string(data))
}

func TestStore_Delete(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("orders", []byte("[]")))
	require.NoError(t, store.Delete("orders"))

	_, ok, err := store.Get("orders")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting again is fine
	assert.NoError(t, store.Delete("orders"))
}

func TestStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("orders", []byte("[]")))

	reopened, err := Open(dir)
	require.NoError(t, err)
	data, ok, err := reopened.Get("orders")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(data))
}

func TestStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("orders", []byte("[]")))

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
