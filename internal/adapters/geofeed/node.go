package geofeed

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/geocache/internal/adapters/logger"
	"go.trai.ch/geocache/internal/core/ports"
)

// NodeID is the unique identifier for the position feed opener Graft node.
const NodeID graft.ID = "adapter.geofeed"

func init() {
	graft.Register(graft.Node[ports.FeedOpener]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.FeedOpener, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewOpener(log), nil
		},
	})
}
