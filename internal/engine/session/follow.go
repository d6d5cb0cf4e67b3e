package session

import (
	"context"

	"go.trai.ch/geocache/internal/core/domain"
	"go.trai.ch/geocache/internal/core/ports"
)

// Follow applies every position produced by feed through MoveTo and reports
// the resulting view to notify. It returns when the feed ends or ctx is done;
// a position already being applied always completes first.
func (s *Session) Follow(ctx context.Context, feed ports.PositionFeed, notify func(domain.View)) error {
	if err := feed.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = feed.Stop() }()

	for pos := range feed.Positions() {
		if ctx.Err() != nil {
			return nil
		}
		v := s.MoveTo(ctx, pos)
		if notify != nil {
			notify(v)
		}
	}
	return nil
}
