package extractor_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/smelt/internal/adapters/extractor"
	"go.trai.ch/smelt/internal/adapters/logger"
	"go.trai.ch/smelt/internal/core/domain"
)

// fakeTool writes an executable shell script standing in for the extractor
// binary. The runner invokes it as: <bin> run --config <path> --state-dir <dir>.
func fakeTool(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-extractor")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o700)) //nolint:gosec // test fixture must be executable
	return path
}

func writeTsconfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tsconfig.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"compilerOptions": {"outDir": "dist"}}`), 0o600))
	return path
}

func quietLogger() *logger.Logger {
	return logger.NewWithWriter(&bytes.Buffer{}, slog.LevelInfo)
}

func TestExtract_SuccessWithWarnings(t *testing.T) {
	bin := fakeTool(t, `
echo "analyzing project"
echo '{"errorCount":0,"warningCount":2}'
`)
	r := extractor.NewRunner(bin, quietLogger())

	rep, err := r.Extract(context.Background(), domain.ExtractConfig{
		PackageName:  "@family/core",
		TsconfigPath: writeTsconfig(t),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, rep.ErrorCount)
	assert.Equal(t, 2, rep.WarningCount)
	assert.True(t, rep.OK())
}

func TestExtract_CompletedWithErrors(t *testing.T) {
	// The tool exits nonzero but still prints a report: that is a completed
	// run, not a crash. The caller decides what to do with the counts.
	bin := fakeTool(t, `
echo '{"errorCount":3,"warningCount":1}'
exit 1
`)
	r := extractor.NewRunner(bin, quietLogger())

	rep, err := r.Extract(context.Background(), domain.ExtractConfig{
		PackageName:  "@family/core",
		TsconfigPath: writeTsconfig(t),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, rep.ErrorCount)
	assert.False(t, rep.OK())
}

func TestExtract_Crash(t *testing.T) {
	bin := fakeTool(t, `
echo "segfault or similar"
exit 3
`)
	r := extractor.NewRunner(bin, quietLogger())

	_, err := r.Extract(context.Background(), domain.ExtractConfig{
		PackageName:  "@family/core",
		TsconfigPath: writeTsconfig(t),
	})
	require.ErrorIs(t, err, domain.ErrExtractorCrashed)
}

func TestExtract_MissingBinary(t *testing.T) {
	r := extractor.NewRunner(filepath.Join(t.TempDir(), "nope"), quietLogger())

	_, err := r.Extract(context.Background(), domain.ExtractConfig{
		PackageName:  "@family/core",
		TsconfigPath: writeTsconfig(t),
	})
	require.ErrorIs(t, err, domain.ErrExtractorCrashed)
}

func TestExtract_MissingTsconfig(t *testing.T) {
	bin := fakeTool(t, `echo '{"errorCount":0,"warningCount":0}'`)
	r := extractor.NewRunner(bin, quietLogger())

	_, err := r.Extract(context.Background(), domain.ExtractConfig{
		PackageName:  "@family/core",
		TsconfigPath: filepath.Join(t.TempDir(), "tsconfig.json"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "state key")
}

func TestExtract_ConfigFileContents(t *testing.T) {
	dir := t.TempDir()
	captured := filepath.Join(dir, "captured.json")

	// $3 is the --config value; copy it aside before answering.
	bin := fakeTool(t, `
cp "$3" `+captured+`
echo '{"errorCount":0,"warningCount":0}'
`)
	r := extractor.NewRunner(bin, quietLogger())

	_, err := r.Extract(context.Background(), domain.ExtractConfig{
		PackageName:  "@family/filters",
		EntryPath:    "dist/types/filters/src/index.d.ts",
		RollupPath:   "packages/filters/index.d.ts",
		TsconfigPath: writeTsconfig(t),
		SuppressInfo: true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(captured)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"mainEntryPointFilePath": "dist/types/filters/src/index.d.ts"`)
	assert.Contains(t, string(data), `"untrimmedFilePath": "packages/filters/index.d.ts"`)
	assert.Contains(t, string(data), `"informationLevel": "none"`)
}

func TestExtract_SharedStateDir(t *testing.T) {
	dir := t.TempDir()
	calls := filepath.Join(dir, "calls.txt")

	// $5 is the --state-dir value; record it per invocation.
	bin := fakeTool(t, `
echo "$5" >> `+calls+`
echo '{"errorCount":0,"warningCount":0}'
`)
	r := extractor.NewRunner(bin, quietLogger())

	tsconfig := writeTsconfig(t)
	for range 3 {
		_, err := r.Extract(context.Background(), domain.ExtractConfig{
			PackageName:  "@family/core",
			TsconfigPath: tsconfig,
		})
		require.NoError(t, err)
	}

	data, err := os.ReadFile(calls)
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, lines[0], lines[1])
	assert.Equal(t, lines[1], lines[2])
	assert.NotEmpty(t, bytes.TrimSpace(lines[0]))
}
