// Package config provides the smelt.yaml tool configuration loader.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the conventional tool configuration file name.
const Filename = "smelt.yaml"

// Load reads the tool configuration from the given path. A missing file is
// not an error: the conventional defaults apply. Fields left empty in the
// file keep their defaults.
func Load(path string) (*Smeltfile, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.Wrap(err, "failed to read tool config")
	}

	var file Smeltfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse tool config"), "path", path)
	}

	merge(cfg, &file)
	return cfg, nil
}

// merge overlays the non-empty fields of file onto cfg.
func merge(cfg, file *Smeltfile) {
	if file.Version != "" {
		cfg.Version = file.Version
	}
	if file.Extractor.Bin != "" {
		cfg.Extractor.Bin = file.Extractor.Bin
	}
	if file.Extractor.Tsconfig != "" {
		cfg.Extractor.Tsconfig = file.Extractor.Tsconfig
	}
	if len(file.Workspace.ListCommand) > 0 {
		cfg.Workspace.ListCommand = file.Workspace.ListCommand
	}
	if file.Bundle.Namespace != "" {
		cfg.Bundle.Namespace = file.Bundle.Namespace
	}
	if file.Bundle.Sourcemap != nil {
		cfg.Bundle.Sourcemap = file.Bundle.Sourcemap
	}
}
