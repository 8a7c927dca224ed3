package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("writes content with permissions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "save.json")

		require.NoError(t, WriteFileAtomic(path, []byte(`{"a":1}`), 0600))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(content))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("replaces existing file and leaves no temp files", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "save.json")

		require.NoError(t, WriteFileAtomic(path, []byte("first"), 0600))
		require.NoError(t, WriteFileAtomic(path, []byte("second"), 0600))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "second", string(content))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("returns error for missing directory", func(t *testing.T) {
		err := WriteFileAtomic("/nonexistent/path/file.json", []byte("x"), 0600)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create temp file")
	})
}
