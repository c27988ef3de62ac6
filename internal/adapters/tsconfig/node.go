package tsconfig

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/smelt/internal/core/ports"
)

// NodeID is the unique identifier for the tsconfig loader Graft node.
const NodeID graft.ID = "adapter.tsconfig_loader"

func init() {
	graft.Register(graft.Node[ports.TsconfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.TsconfigLoader, error) {
			return NewLoader(), nil
		},
	})
}
