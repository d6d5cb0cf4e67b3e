package geofeed

import "go.trai.ch/geocache/internal/core/ports"

var _ ports.FeedOpener = (*Opener)(nil)

// Opener implements ports.FeedOpener for track files.
type Opener struct {
	logger ports.Logger
}

// NewOpener creates a new Opener that reports skipped lines to logger.
func NewOpener(logger ports.Logger) *Opener {
	return &Opener{logger: logger}
}

// Open creates a feed that follows the track file at path.
func (o *Opener) Open(path string) (ports.PositionFeed, error) {
	feed, err := NewFeed(path, o.logger)
	if err != nil {
		return nil, err
	}
	return feed, nil
}

// Replay creates a feed that delivers the positions already in the track file
// at path and then ends.
func (o *Opener) Replay(path string) (ports.PositionFeed, error) {
	feed, err := NewFeed(path, o.logger, WithoutFollow())
	if err != nil {
		return nil, err
	}
	return feed, nil
}
