package ports

import (
	"context"

	"go.trai.ch/smelt/internal/core/domain"
)

// WorkspaceLister defines the interface for enumerating the packages of a
// multi-package workspace. Discovery is delegated to the external monorepo
// package-lister; smelt never computes the package graph itself.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace_lister.go -destination=mocks/mock_workspace_lister.go -package=mocks
type WorkspaceLister interface {
	// List returns every package of the workspace rooted at root, with its
	// manifest loaded. The returned slice is sorted by package name.
	List(ctx context.Context, root string) ([]domain.WorkspacePackage, error)
}
