// Package rollup runs the declaration extractor across the workspace.
package rollup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/zerr"
)

// entryFile is the conventional source entry a package must expose to be
// included in the rollup.
var entryFile = filepath.Join("src", "index.ts")

// Options parameterizes one rollup run.
type Options struct {
	// Root is the workspace root directory. Empty means the current
	// directory.
	Root string

	// TsconfigPath is the workspace compiler configuration. Empty means
	// <root>/tsconfig.json.
	TsconfigPath string

	// Verbose logs per-package progress to the logger in addition to the
	// telemetry vertices.
	Verbose bool
}

// Runner rolls up the type declarations of every eligible workspace package.
// Packages are processed strictly sequentially; the first crash or erroring
// extraction aborts the whole run.
type Runner struct {
	tsconfigs ports.TsconfigLoader
	lister    ports.WorkspaceLister
	extractor ports.DeclarationExtractor
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewRunner creates a new Runner.
func NewRunner(
	tsconfigs ports.TsconfigLoader,
	lister ports.WorkspaceLister,
	extractor ports.DeclarationExtractor,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Runner {
	return &Runner{
		tsconfigs: tsconfigs,
		lister:    lister,
		extractor: extractor,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Run validates the workspace configuration, discovers packages once, then
// extracts declarations package by package.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	root := opts.Root
	if root == "" {
		root = "."
	}

	tsconfigPath := opts.TsconfigPath
	if tsconfigPath == "" {
		tsconfigPath = filepath.Join(root, "tsconfig.json")
	}

	settings, err := r.tsconfigs.Load(tsconfigPath)
	if err != nil {
		return err
	}

	pkgs, err := r.lister.List(ctx, root)
	if err != nil {
		return zerr.Wrap(err, "workspace discovery failed")
	}

	selected := selectPackages(pkgs)
	r.logger.Info(fmt.Sprintf("rolling up declarations for %d of %d packages", len(selected), len(pkgs)))

	for _, pkg := range selected {
		if err := r.extractPackage(ctx, root, tsconfigPath, settings.OutDir, pkg, opts.Verbose); err != nil {
			return err
		}
	}

	return nil
}

// extractPackage runs the extractor for one package and applies the
// fail-fast policy: crashes and erroring extractions abort, warnings do not.
func (r *Runner) extractPackage(ctx context.Context, root, tsconfigPath, outDir string, pkg domain.WorkspacePackage, verbose bool) error {
	ctx, vtx := r.telemetry.Record(ctx, pkg.Name)

	cfg, err := extractConfig(root, tsconfigPath, outDir, pkg)
	if err != nil {
		vtx.Complete(err)
		return err
	}

	if verbose {
		r.logger.Info(fmt.Sprintf("extracting %s from %s", pkg.Name, cfg.EntryPath))
	}

	report, err := r.extractor.Extract(ctx, cfg)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "declaration extraction failed"), "package", pkg.Name)
		r.logger.Error(err)
		vtx.Complete(err)
		return err
	}

	if !report.OK() {
		// Wrap before attaching metadata so errors.Is still sees the sentinel.
		err := zerr.Wrap(domain.ErrExtractionFailed, "extraction completed with errors")
		err = zerr.With(err, "package", pkg.Name)
		err = zerr.With(err, "errors", report.ErrorCount)
		err = zerr.With(err, "warnings", report.WarningCount)
		r.logger.Error(err)
		vtx.Complete(err)
		return err
	}

	if report.WarningCount > 0 {
		r.logger.Warn(fmt.Sprintf("%s: extraction reported %d warnings", pkg.Name, report.WarningCount))
	}

	fmt.Fprintf(vtx.Stdout(), "rolled up %s\n", cfg.RollupPath)
	vtx.Complete(nil)
	return nil
}

// selectPackages filters to packages exposing the conventional entry file.
func selectPackages(pkgs []domain.WorkspacePackage) []domain.WorkspacePackage {
	var selected []domain.WorkspacePackage
	for _, pkg := range pkgs {
		if _, err := os.Stat(filepath.Join(pkg.Location, entryFile)); err == nil {
			selected = append(selected, pkg)
		}
	}
	return selected
}

// extractConfig points the extractor at the package's compiled declaration
// entry under the workspace outDir and at the rolled-up output next to the
// package manifest.
func extractConfig(root, tsconfigPath, outDir string, pkg domain.WorkspacePackage) (domain.ExtractConfig, error) {
	// The lister may report absolute locations while root is relative;
	// normalize both before computing the package's path under outDir.
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return domain.ExtractConfig{}, zerr.Wrap(err, "failed to resolve workspace root")
	}
	absLoc, err := filepath.Abs(pkg.Location)
	if err != nil {
		return domain.ExtractConfig{}, zerr.Wrap(err, "failed to resolve package location")
	}

	rel, err := filepath.Rel(absRoot, absLoc)
	if err != nil {
		return domain.ExtractConfig{}, zerr.With(zerr.Wrap(err, "package location outside workspace"), "package", pkg.Name)
	}

	return domain.ExtractConfig{
		PackageName:  pkg.Name,
		EntryPath:    filepath.Join(root, outDir, rel, "src", "index.d.ts"),
		RollupPath:   filepath.Join(pkg.Location, "index.d.ts"),
		TsconfigPath: tsconfigPath,
		SuppressInfo: true,
	}, nil
}
