package hash

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/geocache/internal/core/ports"
)

// NodeID is the unique identifier for the grid hasher Graft node.
const NodeID graft.ID = "adapter.hash"

func init() {
	graft.Register(graft.Node[ports.GridHasher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GridHasher, error) {
			return NewHasher(), nil
		},
	})
}
