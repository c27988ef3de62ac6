// Package extractor runs the external declaration extraction tool.
package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DeclarationExtractor = (*Runner)(nil)

// Runner implements ports.DeclarationExtractor by invoking the extractor
// binary once per package. All invocations of one Runner share a compiler
// state directory so the tool can reuse its compiler program across packages.
//
// A Runner is used strictly sequentially; it is not safe for concurrent use.
type Runner struct {
	bin    string
	logger ports.Logger

	stateOnce sync.Once
	stateDir  string
	stateErr  error
}

// NewRunner creates a Runner invoking bin.
func NewRunner(bin string, logger ports.Logger) *Runner {
	return &Runner{
		bin:    bin,
		logger: logger,
	}
}

// extractorConfig is the configuration file written for each tool invocation.
type extractorConfig struct {
	MainEntryPointFilePath string          `json:"mainEntryPointFilePath"`
	DtsRollup              dtsRollupConfig `json:"dtsRollup"`
	Messages               messagesConfig  `json:"messages"`
}

type dtsRollupConfig struct {
	Enabled           bool   `json:"enabled"`
	UntrimmedFilePath string `json:"untrimmedFilePath"`
}

type messagesConfig struct {
	InformationLevel string `json:"informationLevel,omitzero"`
}

// report is the JSON summary the tool prints as its last stdout line.
type report struct {
	ErrorCount   *int `json:"errorCount"`
	WarningCount *int `json:"warningCount"`
}

// Extract runs the tool for one package. A parseable report is returned even
// when the tool exits nonzero; anything else counts as a crash.
func (r *Runner) Extract(ctx context.Context, cfg domain.ExtractConfig) (*domain.ExtractReport, error) {
	stateDir, err := r.sharedStateDir(cfg.TsconfigPath)
	if err != nil {
		return nil, err
	}

	cfgPath, err := r.writeConfig(stateDir, cfg)
	if err != nil {
		return nil, err
	}
	defer os.Remove(cfgPath) //nolint:errcheck // best-effort cleanup

	cmd := exec.CommandContext(ctx, r.bin, "run", "--config", cfgPath, "--state-dir", stateDir) //nolint:gosec // binary comes from tool config

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &logWriter{logger: r.logger}

	runErr := cmd.Run()

	if rep, ok := parseReport(stdout.Bytes()); ok {
		return rep, nil
	}

	// Wrap before attaching metadata so errors.Is still sees the sentinel.
	err = zerr.Wrap(domain.ErrExtractorCrashed, "no extraction report produced")
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			err = zerr.With(err, "exit_code", exitErr.ExitCode())
		}
		err = zerr.With(err, "cause", runErr.Error())
	}
	err = zerr.With(err, "package", cfg.PackageName)
	return nil, zerr.With(err, "output", strings.TrimSpace(stdout.String()))
}

// sharedStateDir creates (once) the compiler state directory for this run,
// keyed by the tsconfig contents. A Runner serves a single workspace, so the
// first invocation's tsconfig fixes the key.
func (r *Runner) sharedStateDir(tsconfigPath string) (string, error) {
	r.stateOnce.Do(func() {
		data, err := os.ReadFile(tsconfigPath) //nolint:gosec // path comes from rollup options
		if err != nil {
			r.stateErr = zerr.Wrap(err, "failed to read tsconfig for state key")
			return
		}

		dir := filepath.Join(os.TempDir(), fmt.Sprintf("smelt-extractor-%016x", xxhash.Sum64(data)))
		if err := os.MkdirAll(dir, 0o750); err != nil {
			r.stateErr = zerr.Wrap(err, "failed to create extractor state directory")
			return
		}
		r.stateDir = dir
	})
	return r.stateDir, r.stateErr
}

// writeConfig writes the per-package extraction config file.
func (r *Runner) writeConfig(stateDir string, cfg domain.ExtractConfig) (string, error) {
	ec := extractorConfig{
		MainEntryPointFilePath: cfg.EntryPath,
		DtsRollup: dtsRollupConfig{
			Enabled:           true,
			UntrimmedFilePath: cfg.RollupPath,
		},
	}
	if cfg.SuppressInfo {
		ec.Messages.InformationLevel = "none"
	}

	data, err := json.MarshalIndent(ec, "", "  ")
	if err != nil {
		return "", zerr.Wrap(err, "failed to marshal extractor config")
	}

	f, err := os.CreateTemp(stateDir, "extract-*.json")
	if err != nil {
		return "", zerr.Wrap(err, "failed to create extractor config file")
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return "", zerr.Wrap(err, "failed to write extractor config file")
	}
	return f.Name(), f.Close()
}

// parseReport scans stdout from the last line backwards for the tool's
// summary report.
func parseReport(out []byte) (*domain.ExtractReport, bool) {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		var rep report
		if err := json.Unmarshal([]byte(line), &rep); err != nil {
			continue
		}
		if rep.ErrorCount == nil || rep.WarningCount == nil {
			continue
		}
		return &domain.ExtractReport{
			ErrorCount:   *rep.ErrorCount,
			WarningCount: *rep.WarningCount,
		}, true
	}
	return nil, false
}

// logWriter forwards a process output stream to the logger line by line.
type logWriter struct {
	logger ports.Logger
	buf    bytes.Buffer
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Keep the partial line buffered for the next write.
			w.buf.WriteString(line)
			break
		}
		if msg := strings.TrimRight(line, "\n"); msg != "" {
			w.logger.Warn(msg)
		}
	}
	return len(p), nil
}
