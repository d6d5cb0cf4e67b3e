package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/geocache/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/geocache/internal/adapters/geofeed"   //nolint:depguard // Wired in app layer
	"go.trai.ch/geocache/internal/adapters/hash"      //nolint:depguard // Wired in app layer
	"go.trai.ch/geocache/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/geocache/internal/adapters/storage"   //nolint:depguard // Wired in app layer
	"go.trai.ch/geocache/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/geocache/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			hash.NodeID,
			storage.NodeID,
			geofeed.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    app,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.GridHasher](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.StoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	feeds, err := graft.Dep[ports.FeedOpener](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, hasher, stores, feeds, tracer), nil
}
