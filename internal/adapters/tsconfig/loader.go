// Package tsconfig provides the workspace compiler configuration loader.
package tsconfig

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TsconfigLoader = (*Loader)(nil)

// Loader implements ports.TsconfigLoader.
type Loader struct{}

// NewLoader creates a new tsconfig Loader.
func NewLoader() *Loader {
	return &Loader{}
}

type tsconfigFile struct {
	CompilerOptions struct {
		OutDir string `json:"outDir"`
	} `json:"compilerOptions"`
}

// Load reads the tsconfig at path. A missing file or a missing
// compilerOptions.outDir is a configuration error.
func (l *Loader) Load(path string) (*domain.CompilerSettings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Wrap before attaching metadata so errors.Is still sees the sentinel.
			return nil, zerr.With(zerr.Wrap(domain.ErrMissingTsconfig, "failed to load tsconfig"), "path", path)
		}
		return nil, zerr.Wrap(err, "failed to read tsconfig")
	}

	var cfg tsconfigFile
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse tsconfig"), "path", path)
	}

	if cfg.CompilerOptions.OutDir == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingOutDir, "failed to load tsconfig"), "path", path)
	}

	return &domain.CompilerSettings{OutDir: cfg.CompilerOptions.OutDir}, nil
}
