package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_ReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "data.json")

	require.NoError(t, writeJSON(path, map[string]int{"a": 1}))
	require.NoError(t, writeJSON(path, map[string]int{"b": 2}))

	var got map[string]int
	found, err := readJSON(path, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, map[string]int{"b": 2}, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestReadJSON(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		var v []string
		found, err := readJSON(filepath.Join(dir, "none.json"), &v)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.json")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		var v []string
		found, err := readJSON(path, &v)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
		var v []string
		_, err := readJSON(path, &v)
		assert.Error(t, err)
	})
}
