package ports

import "go.trai.ch/smelt/internal/core/domain"

// TsconfigLoader defines the interface for reading the workspace compiler
// configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=tsconfig_loader.go -destination=mocks/mock_tsconfig_loader.go -package=mocks
type TsconfigLoader interface {
	// Load reads the tsconfig at the given path. It fails if the file is
	// missing or declares no output directory.
	Load(path string) (*domain.CompilerSettings, error)
}
