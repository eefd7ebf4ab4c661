package cli_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moondown/moondown/internal/cli"
	"github.com/moondown/moondown/pkg/config"
	"github.com/moondown/moondown/pkg/fsutil"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test", Commit: "abc", Date: "now"}
}

// runCommand executes the root command with args, returning combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRenumberDryRunWithChanges(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "list.md", "1. a\n1. b\n1. c\n")

	out, err := runCommand(t, "renumber", "--color", "never", path)
	require.ErrorIs(t, err, cli.ErrDifferencesFound)

	assert.Contains(t, out, "diff --git")
	assert.Contains(t, out, "-1. b")
	assert.Contains(t, out, "+2. b")
	assert.Contains(t, out, "need renumbering")

	// Dry run must not modify the file.
	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "1. a\n1. b\n1. c\n", string(content))
}

func TestRenumberDryRunClean(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "clean.md", "1. a\n2. b\n")

	out, err := runCommand(t, "renumber", "--color", "never", path)
	require.NoError(t, err)
	assert.Contains(t, out, "already numbered correctly")
}

func TestRenumberWrite(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "list.md", "1. a\n1. b\n")

	out, err := runCommand(t, "renumber", "--write", "--color", "never", path)
	require.NoError(t, err)
	assert.Contains(t, out, "fixed")

	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "1. a\n2. b\n", string(content))
}

func TestRenumberWriteWithBackup(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "list.md", "1. a\n1. b\n")

	_, err := runCommand(t, "renumber", "--write", "--backup", "--color", "never", path)
	require.NoError(t, err)

	backup, readErr := os.ReadFile(fsutil.BackupPath(path))
	require.NoError(t, readErr)
	assert.Equal(t, "1. a\n1. b\n", string(backup), "backup keeps the original content")
}

func TestRenumberMissingFile(t *testing.T) {
	t.Parallel()

	_, err := runCommand(t, "renumber", filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeFor(err))
}

func TestRenumberConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, config.ConfigFileName, "write: true\n")
	mdPath := writeFile(t, dir, "list.md", "1. a\n1. b\n")

	_, err := runCommand(t, "renumber", "--config", cfgPath, "--color", "never", mdPath)
	require.NoError(t, err)

	content, readErr := os.ReadFile(mdPath)
	require.NoError(t, readErr)
	assert.Equal(t, "1. a\n2. b\n", string(content), "config write flag should apply")
}

func TestRenumberInvalidConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, config.ConfigFileName, "flavor: nonsense\n")
	mdPath := writeFile(t, dir, "list.md", "1. a\n")

	_, err := runCommand(t, "renumber", "--config", cfgPath, mdPath)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCodeFor(err))
}

func TestRenumberMultipleFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	one := writeFile(t, dir, "one.md", "1. a\n1. b\n")
	two := writeFile(t, dir, "two.md", "1. x\n2. y\n")

	out, err := runCommand(t, "renumber", "--color", "never", one, two)
	require.ErrorIs(t, err, cli.ErrDifferencesFound)
	assert.Contains(t, out, "1 of 2 files need renumbering")
}

func TestRenumberRequiresArgs(t *testing.T) {
	t.Parallel()

	_, err := runCommand(t, "renumber")
	require.Error(t, err)
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFor(nil))
	assert.Equal(t, cli.ExitDifferences, cli.ExitCodeFor(cli.ErrDifferencesFound))
	assert.Equal(t, cli.ExitConfigError, cli.ExitCodeFor(config.ErrInvalid))
	assert.Equal(t, cli.ExitIOError,
		cli.ExitCodeFor(&fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}))
	assert.Equal(t, cli.ExitInternalError, cli.ExitCodeFor(errors.New("boom")))
}
