package ports

import (
	"context"

	"go.trai.ch/smelt/internal/core/domain"
)

// DeclarationExtractor defines the interface for rolling up a package's
// type declarations via the external extraction tool.
//
// Implementations reuse compiler state across sequential calls; they are not
// safe for concurrent use.
//
//go:generate go run go.uber.org/mock/mockgen -source=extractor.go -destination=mocks/mock_extractor.go -package=mocks
type DeclarationExtractor interface {
	// Extract runs the extractor for one package. A non-nil error means the
	// tool crashed; a report with a nonzero error count means the tool
	// completed and found problems.
	Extract(ctx context.Context, cfg domain.ExtractConfig) (*domain.ExtractReport, error)
}
