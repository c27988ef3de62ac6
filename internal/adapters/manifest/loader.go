// Package manifest provides the package.json loader.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/zerr"
)

// Filename is the conventional manifest file name.
const Filename = "package.json"

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader reading package.json files.
type Loader struct{}

// NewLoader creates a new manifest Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the package.json in the given directory.
func (l *Loader) Load(dir string) (*domain.PackageManifest, error) {
	path := filepath.Join(dir, Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read package manifest")
	}

	var m domain.PackageManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse package manifest"), "path", path)
	}

	if m.Name == "" {
		return nil, zerr.With(zerr.New("package manifest has no name"), "path", path)
	}

	return &m, nil
}
