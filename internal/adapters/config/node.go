package config

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the tool config Graft node.
const NodeID graft.ID = "adapter.tool_config"

type pathKey struct{}

// WithPath returns a context carrying an explicit tool config path for the
// config node to load instead of the conventional Filename.
func WithPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, pathKey{}, path)
}

// PathFromContext returns the tool config path carried by ctx, or Filename.
func PathFromContext(ctx context.Context) string {
	if path, ok := ctx.Value(pathKey{}).(string); ok && path != "" {
		return path
	}
	return Filename
}

func init() {
	graft.Register(graft.Node[*Smeltfile]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Smeltfile, error) {
			return Load(PathFromContext(ctx))
		},
	})
}
