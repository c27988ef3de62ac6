// Package app implements the application layer for smelt.
package app

import (
	"context"
	"path/filepath"

	"go.trai.ch/smelt/internal/adapters/config"
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/engine/assembler"
	"go.trai.ch/smelt/internal/engine/rollup"
	"go.trai.ch/zerr"
)

// App exposes the two smelt operations to the CLI layer.
type App struct {
	assembler *assembler.Assembler
	rollup    *rollup.Runner
	config    *config.Smeltfile
}

// New creates a new App instance.
func New(asm *assembler.Assembler, runner *rollup.Runner, cfg *config.Smeltfile) *App {
	return &App{
		assembler: asm,
		rollup:    runner,
		config:    cfg,
	}
}

// AssembleBundle assembles the bundler configurations for one package,
// filling unset options from the tool configuration.
func (a *App) AssembleBundle(opts assembler.Options) ([]domain.BundleConfig, error) {
	if opts.Namespace == "" {
		opts.Namespace = a.config.Bundle.Namespace
	}

	configs, err := a.assembler.Assemble(opts)
	if err != nil {
		return nil, zerr.Wrap(err, "bundle config assembly failed")
	}
	return configs, nil
}

// SourcemapDefault reports the tool configuration's sourcemap default.
func (a *App) SourcemapDefault() bool {
	return a.config.Bundle.SourcemapEnabled()
}

// RollupDeclarations runs the declaration rollup across the workspace.
func (a *App) RollupDeclarations(ctx context.Context, opts rollup.Options) error {
	if opts.TsconfigPath == "" {
		root := opts.Root
		if root == "" {
			root = "."
		}
		opts.TsconfigPath = filepath.Join(root, a.config.Extractor.Tsconfig)
	}

	if err := a.rollup.Run(ctx, opts); err != nil {
		return zerr.Wrap(err, "declaration rollup failed")
	}
	return nil
}
