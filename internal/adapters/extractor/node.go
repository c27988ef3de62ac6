package extractor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/smelt/internal/adapters/config" //nolint:depguard // Wired in adapter node
	"go.trai.ch/smelt/internal/adapters/logger" //nolint:depguard // Wired in adapter node
	"go.trai.ch/smelt/internal/core/ports"
)

// NodeID is the unique identifier for the extractor Graft node.
const NodeID graft.ID = "adapter.extractor"

func init() {
	graft.Register(graft.Node[ports.DeclarationExtractor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DeclarationExtractor, error) {
			cfg, err := graft.Dep[*config.Smeltfile](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(cfg.Extractor.Bin, log), nil
		},
	})
}
