// Package session implements the game controller that serializes every
// mutation of a world.
package session

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/geocache/internal/core/domain"
	"go.trai.ch/geocache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Game = (*Session)(nil)

// Session owns one World and its undo stack. Every exported method takes the
// session lock and runs to completion, so manual input and the position feed
// never interleave mid-update.
type Session struct {
	store  ports.WorldStore
	logger ports.Logger
	tracer ports.Tracer
	now    func() time.Time

	mu    sync.Mutex
	world *domain.World
	undo  *domain.MementoStack
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used to stamp saved records.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// Open loads the saved world from store and discovers the neighborhood around
// the player. An absent record yields a fresh world; an unreadable or corrupt
// record is reported as a warning and also yields a fresh world.
func Open(
	ctx context.Context,
	rules domain.Rules,
	hasher ports.GridHasher,
	store ports.WorldStore,
	logger ports.Logger,
	tracer ports.Tracer,
	opts ...Option,
) *Session {
	s := &Session{
		store:  store,
		logger: logger,
		tracer: tracer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	ctx, span := s.tracer.Start(ctx, "session.open")
	defer span.End()

	s.world = s.load(ctx, rules, hasher.Luck)
	created := s.world.Discover()
	s.undo = domain.NewMementoStack(s.world.Memento())

	span.SetAttribute("caches", s.world.Registry().Len())
	span.SetAttribute("created", len(created))
	return s
}

func (s *Session) load(ctx context.Context, rules domain.Rules, luck domain.LuckFunc) *domain.World {
	rec, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("starting a fresh world: " + zerr.Wrap(err, "saved world unavailable").Error())
		return domain.NewWorld(rules, luck)
	}
	if rec == nil {
		return domain.NewWorld(rules, luck)
	}

	w, err := domain.RestoreWorld(rules, luck, rec)
	if err != nil {
		s.logger.Warn("starting a fresh world: " + err.Error())
		return domain.NewWorld(rules, luck)
	}
	return w
}

// View renders the neighborhood around the player.
func (s *Session) View() domain.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() domain.View {
	v := s.world.View()
	v.Undo = s.undo.State()
	return v
}

// Cache returns a copy of the discovered cache at cell, near the player or
// not.
func (s *Session) Cache(cell domain.Cell) (*domain.Cache, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Cache(cell)
}

// Move steps the player one cell in direction d.
func (s *Session) Move(ctx context.Context, d domain.Direction) domain.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, span := s.tracer.Start(ctx, "session.move", ports.WithAttribute("direction", d.String()))
	defer span.End()

	created := s.world.Move(d)
	span.SetAttribute("created", len(created))
	return s.viewLocked()
}

// MoveTo places the player at a sensed position.
func (s *Session) MoveTo(ctx context.Context, pos domain.LatLng) domain.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, span := s.tracer.Start(ctx, "session.move_to", ports.WithAttribute("position", pos.String()))
	defer span.End()

	created := s.world.MoveTo(pos)
	span.SetAttribute("created", len(created))
	return s.viewLocked()
}

// Collect moves the coin with coinID from the cache at cell into the
// inventory. ErrCacheNotFound and ErrCoinNotFound leave the world and the undo
// stack unchanged.
func (s *Session) Collect(ctx context.Context, cell domain.Cell, coinID string) (domain.Coin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, span := s.tracer.Start(ctx, "session.collect",
		ports.WithAttribute("cell", cell.Key()),
		ports.WithAttribute("coin_id", coinID))
	defer span.End()

	before := s.world.Memento()
	coin, err := s.world.CollectFrom(cell, coinID)
	if err != nil {
		return domain.Coin{}, err
	}
	s.undo.Save(before)
	span.SetAttribute("value", coin.Value)
	return coin, nil
}

// Deposit moves the whole inventory into the cache at cell and returns the
// number of coins moved. An empty inventory is a no-op and is not undoable.
func (s *Session) Deposit(ctx context.Context, cell domain.Cell) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, span := s.tracer.Start(ctx, "session.deposit", ports.WithAttribute("cell", cell.Key()))
	defer span.End()

	before := s.world.Memento()
	n, err := s.world.DepositTo(cell)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.undo.Save(before)
	}
	span.SetAttribute("count", n)
	return n, nil
}

// Undo restores the registry and inventory captured before the last collect
// or deposit. It returns ErrNothingToUndo when only the baseline remains.
func (s *Session) Undo(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, span := s.tracer.Start(ctx, "session.undo")
	defer span.End()

	m, ok := s.undo.Restore()
	if !ok {
		return domain.ErrNothingToUndo
	}
	created := s.world.Restore(m)
	span.SetAttribute("depth", s.undo.Depth())
	span.SetAttribute("created", len(created))
	return nil
}

// Reset regenerates the world around the origin and clears the undo stack.
// It refuses with ErrResetNotConfirmed unless confirmed is true.
func (s *Session) Reset(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return domain.ErrResetNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, span := s.tracer.Start(ctx, "session.reset")
	defer span.End()

	created := s.world.Reset()
	s.undo = domain.NewMementoStack(s.world.Memento())
	span.SetAttribute("created", len(created))
	return nil
}

// Save writes the current world to the store.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, span := s.tracer.Start(ctx, "session.save")
	defer span.End()

	rec := s.world.Record()
	rec.SavedAt = s.now().UTC()
	if err := s.store.Save(ctx, rec); err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttribute("caches", len(rec.DiscoveredCaches))
	return nil
}

// TotalValue sums every ledger and the inventory.
func (s *Session) TotalValue() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.TotalValue()
}

// Record captures the world for persistence without saving it.
func (s *Session) Record() *domain.SaveRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Record()
}
