package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filemanpro/fmkit/cmd/fmkit/commands"
)

func TestTreeCmd(t *testing.T) {
	dir := newScanProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o600))

	tc := commands.NewRootCmd("test_tree", "", "")
	stdout := &bytes.Buffer{}

	tc.SetArgs([]string{"tree", dir})
	tc.SetOut(stdout)
	tc.SetErr(&bytes.Buffer{})

	err := tc.Execute()
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "main.go")
	assert.Contains(t, out, "logo.png")
	assert.Contains(t, out, "└──")
	assert.NotContains(t, out, ".hidden")
}

func TestTreeCmd_DepthCap(t *testing.T) {
	dir := newScanProject(t)

	tc := commands.NewRootCmd("test_tree", "", "")
	stdout := &bytes.Buffer{}

	tc.SetArgs([]string{"tree", "--depth", "1", dir})
	tc.SetOut(stdout)
	tc.SetErr(&bytes.Buffer{})

	err := tc.Execute()
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "assets")
	assert.NotContains(t, out, "logo.png")
}

func TestTreeCmd_Hidden(t *testing.T) {
	dir := newScanProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o600))

	tc := commands.NewRootCmd("test_tree", "", "")
	stdout := &bytes.Buffer{}

	tc.SetArgs([]string{"tree", "--hidden", dir})
	tc.SetOut(stdout)
	tc.SetErr(&bytes.Buffer{})

	err := tc.Execute()
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), ".hidden")
}

func TestTreeCmd_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	tc := commands.NewRootCmd("test_tree", "", "")

	tc.SetArgs([]string{"tree", path})
	tc.SetOut(&bytes.Buffer{})
	tc.SetErr(&bytes.Buffer{})

	err := tc.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
