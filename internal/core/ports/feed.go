package ports

import (
	"context"
	"iter"

	"go.trai.ch/geocache/internal/core/domain"
)

// PositionFeed delivers externally sensed player positions.
//
//go:generate mockgen -source=feed.go -destination=mocks/mock_feed.go -package=mocks
type PositionFeed interface {
	// Start begins reading positions.
	// It returns an error if the feed cannot be opened.
	Start(ctx context.Context) error
	// Stop stops the feed and releases all resources.
	Stop() error
	// Positions returns an iterator of sensed positions. It ends after Stop
	// or when the context passed to Start is done.
	Positions() iter.Seq[domain.LatLng]
}

// FeedOpener creates position feeds for track files.
type FeedOpener interface {
	// Open creates a feed that follows the track file at path.
	Open(path string) (PositionFeed, error)
	// Replay creates a feed that delivers the positions already in the track
	// file and then ends.
	Replay(path string) (PositionFeed, error)
}
