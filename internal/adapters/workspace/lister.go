// Package workspace provides package discovery via the external monorepo lister.
package workspace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"

	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// manifestReaders bounds the concurrent manifest reads during discovery.
// Discovery is a single awaited phase; package processing stays sequential.
const manifestReaders = 8

var _ ports.WorkspaceLister = (*Lister)(nil)

// Lister implements ports.WorkspaceLister by invoking the workspace's
// package-lister command (lerna by default) and parsing its JSON output.
type Lister struct {
	command   []string
	manifests ports.ManifestLoader
	logger    ports.Logger
}

// NewLister creates a Lister running the given command, e.g.
// ["lerna", "list", "--json", "--all"]. The command must print a JSON array
// of {name, location} objects on stdout.
func NewLister(command []string, manifests ports.ManifestLoader, logger ports.Logger) *Lister {
	return &Lister{
		command:   command,
		manifests: manifests,
		logger:    logger,
	}
}

// listedPackage is one entry of the lister's JSON output.
type listedPackage struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// List enumerates the workspace packages under root and loads their manifests.
func (l *Lister) List(ctx context.Context, root string) ([]domain.WorkspacePackage, error) {
	if len(l.command) == 0 {
		return nil, zerr.New("no workspace lister command configured")
	}

	cmd := exec.CommandContext(ctx, l.command[0], l.command[1:]...) //nolint:gosec // command comes from tool config
	cmd.Dir = root

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		err = zerr.Wrap(err, "workspace lister command failed")
		err = zerr.With(err, "command", l.command[0])
		return nil, zerr.With(err, "stderr", stderr.String())
	}

	var listed []listedPackage
	if err := json.Unmarshal(out, &listed); err != nil {
		return nil, zerr.Wrap(err, "failed to parse workspace lister output")
	}

	pkgs := make([]domain.WorkspacePackage, len(listed))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(manifestReaders)
	for i, entry := range listed {
		g.Go(func() error {
			location := entry.Location
			if !filepath.IsAbs(location) {
				location = filepath.Join(root, location)
			}

			m, err := l.manifests.Load(location)
			if err != nil {
				return zerr.With(err, "package", entry.Name)
			}

			pkgs[i] = domain.WorkspacePackage{
				Name:     entry.Name,
				Location: location,
				Manifest: m,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].Name < pkgs[j].Name })

	l.logger.Info(fmt.Sprintf("discovered %d workspace packages", len(pkgs)))
	return pkgs, nil
}
