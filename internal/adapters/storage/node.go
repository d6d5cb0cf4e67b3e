package storage

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/geocache/internal/core/ports"
)

// NodeID is the unique identifier for the store factory Graft node.
const NodeID graft.ID = "adapter.storage"

func init() {
	graft.Register(graft.Node[ports.StoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StoreFactory, error) {
			return NewFactory(), nil
		},
	})
}
