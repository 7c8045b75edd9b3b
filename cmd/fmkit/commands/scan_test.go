package commands_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filemanpro/fmkit/cmd/fmkit/commands"
	"github.com/filemanpro/fmkit/pkg/fmerrors"
)

func newScanProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), make([]byte, 100), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), make([]byte, 10), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "logo.png"), make([]byte, 400), 0o600))

	return dir
}

func TestScanCmd_Stdout(t *testing.T) {
	dir := newScanProject(t)

	tc := commands.NewRootCmd("test_scan", "", "")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tc.SetArgs([]string{"scan", dir})
	tc.SetOut(stdout)
	tc.SetErr(stderr)

	err := tc.Execute()
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "files: 3")
	assert.Contains(t, out, "dirs: 1")
	assert.Contains(t, out, "extension: go")
	assert.Contains(t, out, "source: 1")
}

func TestScanCmd_OutputFile(t *testing.T) {
	dir := newScanProject(t)
	out := filepath.Join(t.TempDir(), "report.yaml")

	tc := commands.NewRootCmd("test_scan", "", "")

	tc.SetArgs([]string{"scan", "--output", out, dir})
	tc.SetOut(&bytes.Buffer{})
	tc.SetErr(&bytes.Buffer{})

	err := tc.Execute()
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "files: 3")
}

func TestScanCmd_GzipOutput(t *testing.T) {
	dir := newScanProject(t)
	out := filepath.Join(t.TempDir(), "report.yaml")

	tc := commands.NewRootCmd("test_scan", "", "")

	tc.SetArgs([]string{"scan", "--gzip", "--output", out, dir})
	tc.SetOut(&bytes.Buffer{})
	tc.SetErr(&bytes.Buffer{})

	err := tc.Execute()
	require.NoError(t, err)

	f, err := os.Open(out + ".gz")
	require.NoError(t, err)

	t.Cleanup(func() { _ = f.Close() })

	gz, err := gzip.NewReader(f)
	require.NoError(t, err)

	data, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Contains(t, string(data), "files: 3")
}

func TestScanCmd_CustomRules(t *testing.T) {
	dir := newScanProject(t)

	rules := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(rules, []byte("document:\n  - go\n  - md\n"), 0o600))

	tc := commands.NewRootCmd("test_scan", "", "")
	stdout := &bytes.Buffer{}

	tc.SetArgs([]string{"scan", "--rules", rules, dir})
	tc.SetOut(stdout)
	tc.SetErr(&bytes.Buffer{})

	err := tc.Execute()
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "document: 2")
}

func TestScanCmd_GzipStdout(t *testing.T) {
	dir := newScanProject(t)

	tc := commands.NewRootCmd("test_scan", "", "")
	stdout := &bytes.Buffer{}

	tc.SetArgs([]string{"scan", "--gzip", dir})
	tc.SetOut(stdout)
	tc.SetErr(&bytes.Buffer{})

	err := tc.Execute()
	require.NoError(t, err)

	gz, err := gzip.NewReader(stdout)
	require.NoError(t, err)

	data, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Contains(t, string(data), "files: 3")
}

func TestScanCmd_ReportDir(t *testing.T) {
	dir := newScanProject(t)
	reports := filepath.Join(t.TempDir(), "reports")

	for range 2 {
		tc := commands.NewRootCmd("test_scan", "", "")

		tc.SetArgs([]string{"scan", "--report-dir", reports, dir})
		tc.SetOut(&bytes.Buffer{})
		tc.SetErr(&bytes.Buffer{})

		require.NoError(t, tc.Execute())
	}

	des, err := os.ReadDir(reports)
	require.NoError(t, err)
	require.Len(t, des, 1)

	data, err := os.ReadFile(filepath.Join(reports, des[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "files: 3")
}

func TestScanCmd_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tc := commands.NewRootCmd("test_scan", "", "")

	tc.SetArgs([]string{"scan", newScanProject(t)})
	tc.SetOut(&bytes.Buffer{})
	tc.SetErr(&bytes.Buffer{})

	err := tc.ExecuteContext(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, fmerrors.ErrScanFailed)
}
