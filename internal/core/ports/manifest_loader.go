// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/smelt/internal/core/domain"

// ManifestLoader defines the interface for reading package manifests.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the package.json in the given package directory.
	Load(dir string) (*domain.PackageManifest, error)
}
