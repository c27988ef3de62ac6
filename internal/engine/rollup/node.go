package rollup

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/smelt/internal/adapters/extractor" //nolint:depguard // Wired in engine node
	"go.trai.ch/smelt/internal/adapters/logger"    //nolint:depguard // Wired in engine node
	"go.trai.ch/smelt/internal/adapters/telemetry" //nolint:depguard // Wired in engine node
	"go.trai.ch/smelt/internal/adapters/tsconfig"  //nolint:depguard // Wired in engine node
	"go.trai.ch/smelt/internal/adapters/workspace" //nolint:depguard // Wired in engine node
	"go.trai.ch/smelt/internal/core/ports"
)

// NodeID is the unique identifier for the rollup runner Graft node.
const NodeID graft.ID = "engine.rollup"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			tsconfig.NodeID,
			workspace.NodeID,
			extractor.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			tsconfigs, err := graft.Dep[ports.TsconfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			lister, err := graft.Dep[ports.WorkspaceLister](ctx)
			if err != nil {
				return nil, err
			}

			ext, err := graft.Dep[ports.DeclarationExtractor](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(tsconfigs, lister, ext, log, tel), nil
		},
	})
}
