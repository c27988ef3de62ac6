package workspace

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/smelt/internal/adapters/config"   //nolint:depguard // Wired in adapter node
	"go.trai.ch/smelt/internal/adapters/logger"   //nolint:depguard // Wired in adapter node
	"go.trai.ch/smelt/internal/adapters/manifest" //nolint:depguard // Wired in adapter node
	"go.trai.ch/smelt/internal/core/ports"
)

// NodeID is the unique identifier for the workspace lister Graft node.
const NodeID graft.ID = "adapter.workspace_lister"

func init() {
	graft.Register(graft.Node[ports.WorkspaceLister]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, manifest.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.WorkspaceLister, error) {
			cfg, err := graft.Dep[*config.Smeltfile](ctx)
			if err != nil {
				return nil, err
			}

			manifests, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewLister(cfg.Workspace.ListCommand, manifests, log), nil
		},
	})
}
