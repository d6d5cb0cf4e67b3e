package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"iter"
	"slices"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/geocache/internal/adapters/hash"
	"go.trai.ch/geocache/internal/adapters/telemetry"
	"go.trai.ch/geocache/internal/app"
	"go.trai.ch/geocache/internal/core/domain"
	"go.trai.ch/geocache/internal/core/ports"
	"go.trai.ch/geocache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader *mocks.MockConfigLoader
	logger *mocks.MockLogger
	stores *mocks.MockStoreFactory
	store  *mocks.MockWorldStore
	feeds  *mocks.MockFeedOpener

	settings *domain.Settings
	out      *bytes.Buffer
	app      *app.App
}

// newFixture builds an App over a tiny world: every cell holds a cache and
// the neighborhood is the 3x3 block around the player.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	dir := t.TempDir()

	settings := domain.DefaultSettings()
	settings.Root = dir
	settings.Rules.Origin = domain.LatLng{}
	settings.Rules.CellSize = 1
	settings.Rules.SpawnRate = 1
	settings.Rules.Radius = 1

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		stores:   mocks.NewMockStoreFactory(ctrl),
		store:    mocks.NewMockWorldStore(ctrl),
		feeds:    mocks.NewMockFeedOpener(ctrl),
		settings: &settings,
		out:      &bytes.Buffer{},
	}
	f.app = app.New(f.loader, f.logger, hash.NewHasher(), f.stores, f.feeds, telemetry.NewNoOpTracer()).
		WithOutput(f.out).
		WithWorkDir(dir)
	return f
}

// expectOpen sets up a fresh world loaded from an empty store.
func (f *fixture) expectOpen() {
	f.loader.EXPECT().Load(f.settings.Root).Return(f.settings, nil)
	f.stores.EXPECT().Open(gomock.Any(), f.settings.Root, f.settings.Storage).Return(f.store, nil)
	f.store.EXPECT().Load(gomock.Any()).Return(nil, nil)
	f.store.EXPECT().Close().Return(nil)
}

// sliceFeed replays a fixed track and then ends.
type sliceFeed struct {
	positions []domain.LatLng
	startErr  error

	mu      sync.Mutex
	stopped bool
}

func (f *sliceFeed) Start(_ context.Context) error { return f.startErr }

func (f *sliceFeed) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
	return nil
}

func (f *sliceFeed) Positions() iter.Seq[domain.LatLng] {
	return slices.Values(f.positions)
}

func (f *sliceFeed) wasStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

func TestApp_Status(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()

	require.NoError(t, f.app.Status(context.Background()))

	out := f.out.String()
	assert.Contains(t, out, "Position   0.000000,0.000000 (cell 0,0)")
	assert.Contains(t, out, "Inventory  0 coins, value 0")
	assert.Contains(t, out, "Nearby     9 caches within 1 cell")
	assert.Contains(t, out, "Undo       nothing to undo")
}

func TestApp_Status_ConfigError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.settings.Root).Return(nil, domain.ErrConfigInvalid)

	err := f.app.Status(context.Background())
	require.ErrorIs(t, err, domain.ErrConfigInvalid)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Status_StoreError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.settings.Root).Return(f.settings, nil)
	f.stores.EXPECT().Open(gomock.Any(), f.settings.Root, f.settings.Storage).Return(nil, domain.ErrStoreOpenFailed)

	err := f.app.Status(context.Background())
	require.ErrorIs(t, err, domain.ErrStoreOpenFailed)
}

func TestApp_Status_CorruptSave(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.settings.Root).Return(f.settings, nil)
	f.stores.EXPECT().Open(gomock.Any(), f.settings.Root, f.settings.Storage).Return(f.store, nil)
	f.store.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrSaveCorrupt)
	f.store.EXPECT().Close().Return(nil)
	f.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "starting a fresh world")
	})

	require.NoError(t, f.app.Status(context.Background()))
	assert.Contains(t, f.out.String(), "Nearby     9 caches")
}

func TestApp_ConfigFile(t *testing.T) {
	f := newFixture(t)
	f.app.SetConfigFile("/etc/geocache.yaml")

	f.loader.EXPECT().LoadFile("/etc/geocache.yaml").Return(f.settings, nil)
	f.stores.EXPECT().Open(gomock.Any(), f.settings.Root, f.settings.Storage).Return(f.store, nil)
	f.store.EXPECT().Load(gomock.Any()).Return(nil, nil)
	f.store.EXPECT().Close().Return(nil)

	require.NoError(t, f.app.Status(context.Background()))
}

func TestApp_Walk(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()

	var saved *domain.SaveRecord
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.SaveRecord) error {
			saved = rec
			return nil
		})

	err := f.app.Walk(context.Background(), []domain.Direction{domain.North, domain.North, domain.East})
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(f.out.String(), "\n"))
	assert.Contains(t, f.out.String(), "cell 2,1")

	require.NotNil(t, saved)
	assert.Equal(t, domain.LatLng{Lat: 2, Lng: 1}, saved.Position)
	assert.False(t, saved.SavedAt.IsZero())
}

func TestApp_Walk_SaveError(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(domain.ErrSaveWriteFailed)

	err := f.app.Walk(context.Background(), []domain.Direction{domain.South})
	require.ErrorIs(t, err, domain.ErrSaveWriteFailed)
}

func TestApp_Collect_FirstCoin(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()

	var saved *domain.SaveRecord
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.SaveRecord) error {
			saved = rec
			return nil
		})

	require.NoError(t, f.app.Collect(context.Background(), domain.Cell{}, ""))

	assert.Contains(t, f.out.String(), "collected 0:0#0")
	require.NotNil(t, saved)
	require.Len(t, saved.Inventory, 1)
	assert.Equal(t, "0:0#0", saved.Inventory[0].ID)
}

func TestApp_Collect_ExplicitCoin(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.app.Collect(context.Background(), domain.Cell{I: 1, J: -1}, "1:-1#0"))
	assert.Contains(t, f.out.String(), "collected 1:-1#0")
	assert.Contains(t, f.out.String(), "from 1,-1")
}

func TestApp_Collect_FirstCoinFromDistantCache(t *testing.T) {
	f := newFixture(t)

	// The player walks out of range of the origin cache before collecting
	// from it by cell alone.
	var saved *domain.SaveRecord
	f.loader.EXPECT().Load(f.settings.Root).Return(f.settings, nil).Times(2)
	f.stores.EXPECT().Open(gomock.Any(), f.settings.Root, f.settings.Storage).Return(f.store, nil).Times(2)
	f.store.EXPECT().Close().Return(nil).Times(2)
	f.store.EXPECT().Load(gomock.Any()).DoAndReturn(
		func(_ context.Context) (*domain.SaveRecord, error) { return saved, nil }).Times(2)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.SaveRecord) error {
			saved = rec
			return nil
		}).Times(2)

	ctx := context.Background()
	dirs := []domain.Direction{domain.North, domain.North, domain.North, domain.North, domain.North}
	require.NoError(t, f.app.Walk(ctx, dirs))
	require.NoError(t, f.app.Collect(ctx, domain.Cell{}, ""))

	assert.Contains(t, f.out.String(), "collected 0:0#0")
	require.NotNil(t, saved)
	require.Len(t, saved.Inventory, 1)
	assert.Equal(t, "0:0#0", saved.Inventory[0].ID)
}

func TestApp_Collect_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cell    domain.Cell
		coinID  string
		wantErr error
	}{
		{name: "undiscovered cache", cell: domain.Cell{I: 5, J: 5}, wantErr: domain.ErrCacheNotFound},
		{name: "unknown cache", cell: domain.Cell{I: 5, J: 5}, coinID: "5:5#0", wantErr: domain.ErrCacheNotFound},
		{name: "unknown coin", cell: domain.Cell{}, coinID: "0:0#99", wantErr: domain.ErrCoinNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectOpen()

			err := f.app.Collect(context.Background(), tt.cell, tt.coinID)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
			assert.Empty(t, f.out.String())
		})
	}
}

func TestApp_Deposit_EmptyInventory(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()

	require.NoError(t, f.app.Deposit(context.Background(), domain.Cell{}))
	assert.Equal(t, "! nothing to deposit at 0,0\n", f.out.String())
}

func TestApp_Deposit_MovesInventory(t *testing.T) {
	f := newFixture(t)

	// The first command collects a coin; the second reopens the saved world
	// and deposits it next door.
	var saved *domain.SaveRecord
	f.loader.EXPECT().Load(f.settings.Root).Return(f.settings, nil).Times(2)
	f.stores.EXPECT().Open(gomock.Any(), f.settings.Root, f.settings.Storage).Return(f.store, nil).Times(2)
	f.store.EXPECT().Close().Return(nil).Times(2)
	f.store.EXPECT().Load(gomock.Any()).DoAndReturn(
		func(_ context.Context) (*domain.SaveRecord, error) { return saved, nil }).Times(2)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.SaveRecord) error {
			saved = rec
			return nil
		}).Times(2)

	ctx := context.Background()
	require.NoError(t, f.app.Collect(ctx, domain.Cell{}, ""))
	require.NoError(t, f.app.Deposit(ctx, domain.Cell{I: 0, J: 1}))

	assert.Contains(t, f.out.String(), "deposited 1 coin into 0,1")
	require.NotNil(t, saved)
	assert.Empty(t, saved.Inventory)
}

func TestApp_Deposit_UnknownCache(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()

	err := f.app.Deposit(context.Background(), domain.Cell{I: 9, J: 9})
	assert.ErrorContains(t, err, domain.ErrCacheNotFound.Error())
}

func TestApp_Reset_NotConfirmed(t *testing.T) {
	f := newFixture(t)

	err := f.app.Reset(context.Background(), app.ResetOptions{})
	require.ErrorIs(t, err, domain.ErrResetNotConfirmed)
}

func TestApp_Reset(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()

	var saved *domain.SaveRecord
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.SaveRecord) error {
			saved = rec
			return nil
		})

	require.NoError(t, f.app.Reset(context.Background(), app.ResetOptions{Confirmed: true}))
	assert.Equal(t, "✓ world reset\n", f.out.String())
	require.NotNil(t, saved)
	assert.Equal(t, domain.LatLng{}, saved.Position)
	assert.NotEmpty(t, saved.Serials)
}

func TestApp_Reset_Hard(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.settings.Root).Return(f.settings, nil)
	f.stores.EXPECT().Open(gomock.Any(), f.settings.Root, f.settings.Storage).Return(f.store, nil)
	f.store.EXPECT().Clear(gomock.Any()).Return(nil)
	f.store.EXPECT().Close().Return(nil)

	require.NoError(t, f.app.Reset(context.Background(), app.ResetOptions{Confirmed: true, Hard: true}))
	assert.Equal(t, "✓ save deleted\n", f.out.String())
}

func TestApp_Reset_HardClearError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.settings.Root).Return(f.settings, nil)
	f.stores.EXPECT().Open(gomock.Any(), f.settings.Root, f.settings.Storage).Return(f.store, nil)
	f.store.EXPECT().Clear(gomock.Any()).Return(domain.ErrSaveWriteFailed)
	f.store.EXPECT().Close().Return(nil)

	err := f.app.Reset(context.Background(), app.ResetOptions{Confirmed: true, Hard: true})
	require.ErrorIs(t, err, domain.ErrSaveWriteFailed)
	assert.Empty(t, f.out.String())
}

func TestApp_Play_InvalidOutputMode(t *testing.T) {
	f := newFixture(t)

	err := f.app.Play(context.Background(), app.PlayOptions{OutputMode: "fancy"})
	assert.ErrorContains(t, err, "invalid output mode")
}

func TestApp_Play_LinearWithoutFeed(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	f.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, domain.ErrFeedNotConfigured.Error())
	})

	require.NoError(t, f.app.Play(context.Background(), app.PlayOptions{OutputMode: "linear"}))
	assert.Contains(t, f.out.String(), "Nearby     9 caches within 1 cell")
}

func TestApp_Play_LinearFollowsFeed(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()

	feed := &sliceFeed{positions: []domain.LatLng{
		{Lat: 1.5, Lng: 1.5},
		{Lat: 3.5, Lng: 0.5},
	}}
	f.feeds.EXPECT().Open("track.txt").Return(feed, nil)

	var saved *domain.SaveRecord
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.SaveRecord) error {
			saved = rec
			return nil
		})

	err := f.app.Play(context.Background(), app.PlayOptions{FeedPath: "track.txt", OutputMode: "linear"})
	require.NoError(t, err)

	// One line for the starting view, one per sensed position.
	lines := strings.Split(strings.TrimSuffix(f.out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "cell 0,0 ")
	assert.Contains(t, lines[1], "cell 1,1 ")
	assert.Contains(t, lines[2], "cell 3,0 ")
	assert.True(t, feed.wasStopped())

	require.NotNil(t, saved)
	assert.Equal(t, domain.LatLng{Lat: 3.5, Lng: 0.5}, saved.Position)
}

func TestApp_Play_Replay(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	feed := &sliceFeed{positions: []domain.LatLng{{Lat: -1.5, Lng: 0.5}}}
	f.feeds.EXPECT().Replay("track.txt").Return(feed, nil)

	err := f.app.Play(context.Background(), app.PlayOptions{FeedPath: "track.txt", Replay: true, OutputMode: "linear"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(f.out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "cell 0,0 ", "the start position comes first")
	assert.Contains(t, lines[1], "cell -2,0 ")
}

func TestApp_Play_ReplayWithoutFeed(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	err := f.app.Play(context.Background(), app.PlayOptions{Replay: true, OutputMode: "linear"})
	require.ErrorIs(t, err, domain.ErrFeedNotConfigured)
}

func TestApp_Play_FeedFromSettings(t *testing.T) {
	f := newFixture(t)
	f.settings.FeedPath = "/var/lib/geocache/track.txt"
	f.expectOpen()
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	f.feeds.EXPECT().Open("/var/lib/geocache/track.txt").Return(&sliceFeed{}, nil)

	require.NoError(t, f.app.Play(context.Background(), app.PlayOptions{OutputMode: "ci"}))
	assert.Equal(t, 1, strings.Count(f.out.String(), "\n"))
}

func TestApp_Play_FeedStartError(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	feed := &sliceFeed{startErr: domain.ErrFeedOpenFailed}
	f.feeds.EXPECT().Open("track.txt").Return(feed, nil)

	err := f.app.Play(context.Background(), app.PlayOptions{FeedPath: "track.txt", OutputMode: "linear"})
	require.ErrorIs(t, err, domain.ErrFeedOpenFailed)
}

func TestApp_Play_FeedOpenError(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	f.feeds.EXPECT().Open("track.txt").Return(nil, domain.ErrFeedNotConfigured)

	err := f.app.Play(context.Background(), app.PlayOptions{FeedPath: "track.txt", OutputMode: "linear"})
	require.ErrorIs(t, err, domain.ErrFeedNotConfigured)
}

func TestApp_Play_SaveErrorIsReported(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(domain.ErrSaveWriteFailed)
	f.feeds.EXPECT().Open("track.txt").Return(&sliceFeed{}, nil)

	err := f.app.Play(context.Background(), app.PlayOptions{FeedPath: "track.txt", OutputMode: "linear"})
	require.ErrorIs(t, err, domain.ErrSaveWriteFailed)
}

func TestApp_Play_TUIQuit(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	f.app.WithTeaOptions(
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)

	require.NoError(t, f.app.Play(context.Background(), app.PlayOptions{OutputMode: "tui"}))
}

func TestApp_Play_TUIMovesBeforeQuit(t *testing.T) {
	f := newFixture(t)
	f.expectOpen()

	var saved *domain.SaveRecord
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.SaveRecord) error {
			saved = rec
			return nil
		})

	f.app.WithTeaOptions(
		// One byte per read keeps every key press a separate message.
		tea.WithInput(iotest.OneByteReader(strings.NewReader("kkq"))),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)

	require.NoError(t, f.app.Play(context.Background(), app.PlayOptions{OutputMode: "tui"}))
	require.NotNil(t, saved)
	assert.Equal(t, domain.LatLng{Lat: 2}, saved.Position)
}

// switchingLogger records format switches requested by the App.
type switchingLogger struct {
	ports.Logger
	json []bool
}

func (l *switchingLogger) SetJSON(enable bool) {
	l.json = append(l.json, enable)
}

func TestApp_JSONLogs(t *testing.T) {
	f := newFixture(t)
	log := &switchingLogger{Logger: f.logger}
	a := app.New(f.loader, log, hash.NewHasher(), f.stores, f.feeds, telemetry.NewNoOpTracer()).
		WithOutput(f.out).
		WithWorkDir(f.settings.Root)

	a.SetJSONLogs(true)
	assert.Equal(t, []bool{true}, log.json)

	f.settings.JSONLogs = true
	f.expectOpen()
	require.NoError(t, a.Status(context.Background()))

	// The flag already selected JSON; the configuration does not switch again.
	assert.Equal(t, []bool{true}, log.json)
}

func TestApp_JSONLogsFromSettings(t *testing.T) {
	f := newFixture(t)
	log := &switchingLogger{Logger: f.logger}
	a := app.New(f.loader, log, hash.NewHasher(), f.stores, f.feeds, telemetry.NewNoOpTracer()).
		WithOutput(f.out).
		WithWorkDir(f.settings.Root)

	f.settings.JSONLogs = true
	f.expectOpen()
	require.NoError(t, a.Status(context.Background()))
	assert.Equal(t, []bool{true}, log.json)
}

func TestApp_EnableTracing(t *testing.T) {
	f := newFixture(t)
	f.app.EnableTracing()
	f.expectOpen()
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	var spans []string
	f.logger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		spans = append(spans, msg)
	}).MinTimes(1)

	require.NoError(t, f.app.Walk(context.Background(), []domain.Direction{domain.West}))
	require.NoError(t, f.app.Shutdown(context.Background()))

	joined := strings.Join(spans, "\n")
	assert.Contains(t, joined, "session.open")
	assert.Contains(t, joined, "session.move")
	assert.Contains(t, joined, "session.save")
}

func TestApp_Shutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Shutdown(gomock.Any()).Return(errors.New("flush failed"))

	a := app.New(nil, nil, nil, nil, nil, tracer)
	assert.EqualError(t, a.Shutdown(context.Background()), "flush failed")
}
