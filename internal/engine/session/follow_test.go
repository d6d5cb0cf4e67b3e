package session_test

import (
	"context"
	"errors"
	"iter"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/geocache/internal/core/domain"
	"go.trai.ch/geocache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// chanFeed is a PositionFeed backed by a channel.
type chanFeed struct {
	ch      chan domain.LatLng
	done    chan struct{}
	once    sync.Once
	stopped bool
}

func newChanFeed() *chanFeed {
	return &chanFeed{ch: make(chan domain.LatLng), done: make(chan struct{})}
}

func (f *chanFeed) Start(ctx context.Context) error {
	go func() {
		select {
		case <-ctx.Done():
			_ = f.Stop()
		case <-f.done:
		}
	}()
	return nil
}

func (f *chanFeed) Stop() error {
	f.once.Do(func() {
		f.stopped = true
		close(f.done)
	})
	return nil
}

func (f *chanFeed) Positions() iter.Seq[domain.LatLng] {
	return func(yield func(domain.LatLng) bool) {
		for {
			select {
			case <-f.done:
				return
			case p := <-f.ch:
				if !yield(p) {
					return
				}
			}
		}
	}
}

func TestFollow_AppliesPositions(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().Load(gomock.Any()).Return(nil, nil)
		s := f.open(t)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		feed := newChanFeed()
		var views []domain.View
		errCh := make(chan error, 1)
		go func() {
			errCh <- s.Follow(ctx, feed, func(v domain.View) { views = append(views, v) })
		}()

		feed.ch <- domain.LatLng{Lat: 2.5, Lng: 0.5}
		feed.ch <- domain.LatLng{Lat: 4.5, Lng: -3.5}
		synctest.Wait()

		cancel()
		require.NoError(t, <-errCh)

		require.Len(t, views, 2)
		assert.Equal(t, domain.Cell{I: 2, J: 0}, views[0].Cell)
		assert.Equal(t, domain.Cell{I: 4, J: -4}, views[1].Cell)
		assert.Equal(t, views[1], s.View())
		assert.Len(t, s.View().Trail, 3)
		assert.True(t, feed.stopped)
	})
}

func TestFollow_StartError(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Load(gomock.Any()).Return(nil, nil)
	s := f.open(t)

	feed := mocks.NewMockPositionFeed(gomock.NewController(t))
	feed.EXPECT().Start(gomock.Any()).Return(domain.ErrFeedOpenFailed)

	err := s.Follow(context.Background(), feed, nil)
	require.True(t, errors.Is(err, domain.ErrFeedOpenFailed))
}

func TestFollow_InterleavesWithManualInput(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().Load(gomock.Any()).Return(nil, nil)
		s := f.open(t)
		total := s.TotalValue()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		feed := newChanFeed()
		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = s.Follow(ctx, feed, nil)
		}()

		go func() {
			for i := range 20 {
				feed.ch <- domain.LatLng{Lat: float64(i % 3), Lng: float64(i % 2)}
			}
		}()

		for range 20 {
			v := s.View()
			if len(v.Caches) == 0 {
				continue
			}
			c := v.Caches[0]
			if len(c.Coins) > 0 {
				_, _ = s.Collect(ctx, c.Cell, c.Coins[0].ID)
			} else {
				_, _ = s.Deposit(ctx, c.Cell)
			}
			s.Move(ctx, domain.West)
		}
		synctest.Wait()
		cancel()
		<-done

		// Movement mints new caches, so compare the minted total to what the
		// ledgers and inventory still hold.
		record := s.Record()
		minted := domain.TotalValue(record.Inventory)
		for _, c := range record.DiscoveredCaches {
			minted += domain.TotalValue(c.Coins)
		}
		assert.Equal(t, minted, s.TotalValue())
		assert.GreaterOrEqual(t, s.TotalValue(), total)
	})
}
