package pathutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filemanpro/fmkit/pkg/pathutil"
)

func TestIsDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	assert.True(t, pathutil.IsDirectory(dir))
	assert.False(t, pathutil.IsDirectory(file))
	assert.False(t, pathutil.IsDirectory(filepath.Join(dir, "missing")))
}

func TestIsRegularFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	assert.True(t, pathutil.IsRegularFile(file))
	assert.False(t, pathutil.IsRegularFile(dir))
	assert.False(t, pathutil.IsRegularFile(filepath.Join(dir, "missing")))
}

func TestMakeDirs(t *testing.T) {
	t.Parallel()

	t.Run("creates missing intermediate levels", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		target := filepath.Join(dir, "one", "two")

		require.NoError(t, pathutil.MakeDirs(target))
		assert.True(t, pathutil.IsDirectory(target))

		// Idempotent on an existing directory.
		require.NoError(t, pathutil.MakeDirs(target))
	})

	t.Run("fails when component is a file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		file := filepath.Join(dir, "f")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

		require.Error(t, pathutil.MakeDirs(file))
		require.Error(t, pathutil.MakeDirs(filepath.Join(file, "sub")))
	})

	t.Run("fails on empty path", func(t *testing.T) {
		t.Parallel()

		require.Error(t, pathutil.MakeDirs(""))
	})

	t.Run("partial creation is kept on failure", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, pathutil.MakeDirs(filepath.Join(dir, "keep")))

		file := filepath.Join(dir, "keep", "f")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

		require.Error(t, pathutil.MakeDirs(filepath.Join(dir, "keep", "f", "sub")))
		assert.True(t, pathutil.IsDirectory(filepath.Join(dir, "keep")))
	})
}
