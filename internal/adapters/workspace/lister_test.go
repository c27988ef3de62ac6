package workspace_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/smelt/internal/adapters/logger"
	"go.trai.ch/smelt/internal/adapters/manifest"
	"go.trai.ch/smelt/internal/adapters/workspace"
)

func quietLogger() *logger.Logger {
	return logger.NewWithWriter(&bytes.Buffer{}, slog.LevelInfo)
}

func addPackage(t *testing.T, root, dir, name string) {
	t.Helper()
	pkgDir := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(pkgDir, 0o750))
	content := fmt.Sprintf(`{"name": %q, "version": "1.0.0"}`, name)
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "package.json"), []byte(content), 0o600))
}

// echoCommand builds a lister command that prints the given JSON on stdout.
func echoCommand(output string) []string {
	return []string{"sh", "-c", "printf '%s' " + shellQuote(output)}
}

func shellQuote(s string) string {
	return "'" + s + "'"
}

func TestList_Success(t *testing.T) {
	root := t.TempDir()
	addPackage(t, root, "packages/util", "@family/util")
	addPackage(t, root, "packages/core", "@family/core")

	out := `[
		{"name": "@family/util", "location": "packages/util"},
		{"name": "@family/core", "location": "packages/core"}
	]`
	l := workspace.NewLister(echoCommand(out), manifest.NewLoader(), quietLogger())

	pkgs, err := l.List(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, pkgs, 2)

	// Sorted by name.
	assert.Equal(t, "@family/core", pkgs[0].Name)
	assert.Equal(t, "@family/util", pkgs[1].Name)
	assert.Equal(t, filepath.Join(root, "packages/core"), pkgs[0].Location)
	require.NotNil(t, pkgs[0].Manifest)
	assert.Equal(t, "1.0.0", pkgs[0].Manifest.Version)
}

func TestList_AbsoluteLocations(t *testing.T) {
	root := t.TempDir()
	addPackage(t, root, "packages/core", "@family/core")

	abs := filepath.Join(root, "packages/core")
	out := fmt.Sprintf(`[{"name": "@family/core", "location": %q}]`, abs)
	l := workspace.NewLister(echoCommand(out), manifest.NewLoader(), quietLogger())

	pkgs, err := l.List(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.Equal(t, abs, pkgs[0].Location)
}

func TestList_CommandFails(t *testing.T) {
	l := workspace.NewLister([]string{"sh", "-c", "echo boom >&2; exit 2"}, manifest.NewLoader(), quietLogger())

	_, err := l.List(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workspace lister command failed")
}

func TestList_BadOutput(t *testing.T) {
	l := workspace.NewLister(echoCommand("not json"), manifest.NewLoader(), quietLogger())

	_, err := l.List(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse workspace lister output")
}

func TestList_MissingManifest(t *testing.T) {
	root := t.TempDir()
	// Location exists in the listing but has no package.json.
	out := `[{"name": "@family/ghost", "location": "packages/ghost"}]`
	l := workspace.NewLister(echoCommand(out), manifest.NewLoader(), quietLogger())

	_, err := l.List(context.Background(), root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read package manifest")
}

func TestList_NoCommand(t *testing.T) {
	l := workspace.NewLister(nil, manifest.NewLoader(), quietLogger())

	_, err := l.List(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no workspace lister command configured")
}
