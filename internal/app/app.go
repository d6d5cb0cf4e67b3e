// Package app implements the application layer for geocache.
package app

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/geocache/internal/adapters/detector"
	"go.trai.ch/geocache/internal/adapters/linear"
	"go.trai.ch/geocache/internal/adapters/telemetry"
	"go.trai.ch/geocache/internal/adapters/tui"
	"go.trai.ch/geocache/internal/core/domain"
	"go.trai.ch/geocache/internal/core/ports"
	"go.trai.ch/geocache/internal/engine/session"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	hasher       ports.GridHasher
	stores       ports.StoreFactory
	feeds        ports.FeedOpener
	tracer       ports.Tracer

	stdout     io.Writer
	workDir    string
	configPath string
	jsonLogs   bool
	teaOptions []tea.ProgramOption
	sessionOpt []session.Option
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	hasher ports.GridHasher,
	stores ports.StoreFactory,
	feeds ports.FeedOpener,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		hasher:       hasher,
		stores:       stores,
		feeds:        feeds,
		tracer:       tracer,
		stdout:       os.Stdout,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput sets the writer reports and status lines are printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithWorkDir sets the directory geocache.yaml is discovered from.
// It defaults to the process working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithSessionOptions adds options applied to every opened session.
func (a *App) WithSessionOptions(opts ...session.Option) *App {
	a.sessionOpt = append(a.sessionOpt, opts...)
	return a
}

// SetConfigFile makes the App read path instead of discovering geocache.yaml.
func (a *App) SetConfigFile(path string) {
	a.configPath = path
}

// SetJSONLogs forces JSON log output regardless of the configuration.
func (a *App) SetJSONLogs(enable bool) {
	a.jsonLogs = enable
	a.applyLogFormat(enable)
}

// EnableTracing reports every session span through the logger.
func (a *App) EnableTracing() {
	a.tracer = telemetry.NewOTelTracer(telemetry.TracerName, telemetry.NewLogBridge(a.logger))
}

// Shutdown flushes the tracer.
func (a *App) Shutdown(ctx context.Context) error {
	return a.tracer.Shutdown(ctx)
}

// jsonSwitcher is implemented by loggers that can change their output format.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

func (a *App) applyLogFormat(enable bool) {
	if s, ok := a.logger.(jsonSwitcher); ok {
		s.SetJSON(enable)
	}
}

// loadSettings reads the configuration file or discovers it from the
// working directory.
func (a *App) loadSettings() (*domain.Settings, error) {
	var (
		settings *domain.Settings
		err      error
	)
	if a.configPath != "" {
		settings, err = a.configLoader.LoadFile(a.configPath)
	} else {
		dir := a.workDir
		if dir == "" {
			if dir, err = os.Getwd(); err != nil {
				return nil, zerr.Wrap(err, "failed to determine working directory")
			}
		}
		settings, err = a.configLoader.Load(dir)
	}
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if settings.JSONLogs && !a.jsonLogs {
		a.applyLogFormat(true)
	}
	return settings, nil
}

// openSession loads the settings, opens the configured store and the world
// saved in it. The caller closes the returned store.
func (a *App) openSession(ctx context.Context) (*session.Session, ports.WorldStore, *domain.Settings, error) {
	settings, err := a.loadSettings()
	if err != nil {
		return nil, nil, nil, err
	}

	store, err := a.stores.Open(ctx, settings.Root, settings.Storage)
	if err != nil {
		return nil, nil, nil, err
	}

	sess := session.Open(ctx, settings.Rules, a.hasher, store, a.logger, a.tracer, a.sessionOpt...)
	return sess, store, settings, nil
}

// PlayOptions configuration for the Play method.
type PlayOptions struct {
	// FeedPath overrides the configured position track file.
	FeedPath string
	// Replay delivers the positions already in the track file instead of
	// following it. Piped play ends after the last position.
	Replay     bool
	OutputMode string
}

// Play runs an interactive session. The map is shown on a terminal; piped
// output gets one status line per position read from the feed. The world is
// saved when play ends.
//
//nolint:cyclop // orchestration function
func (a *App) Play(ctx context.Context, opts PlayOptions) (err error) {
	requested, err := detector.ParseMode(opts.OutputMode)
	if err != nil {
		return err
	}

	sess, store, settings, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	defer func() {
		if saveErr := sess.Save(context.WithoutCancel(ctx)); saveErr != nil {
			err = errors.Join(err, saveErr)
		}
	}()

	feedPath := settings.FeedPath
	if opts.FeedPath != "" {
		feedPath = opts.FeedPath
	}

	out, _ := a.stdout.(*os.File)
	mode := detector.ResolveMode(detector.DetectEnvironment(out), requested)

	var feed ports.PositionFeed
	switch {
	case feedPath != "" && opts.Replay:
		if feed, err = a.feeds.Replay(feedPath); err != nil {
			return err
		}
	case feedPath != "":
		if feed, err = a.feeds.Open(feedPath); err != nil {
			return err
		}
	case opts.Replay:
		return domain.ErrFeedNotConfigured
	case mode == detector.ModeLinear:
		// Nothing can move the player without a terminal or a feed.
		a.logger.Warn(domain.ErrFeedNotConfigured.Error() + ", printing the current status")
		linear.NewRenderer(a.stdout).WriteStatus(sess.View())
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	gctx, cancel := context.WithCancel(gctx)
	defer cancel()

	var renderer ports.Renderer
	if mode == detector.ModeTUI {
		model := tui.NewModel(sess, a.stdout)
		optsTea := append([]tea.ProgramOption{tea.WithContext(gctx)}, a.teaOptions...)
		renderer = tui.NewRenderer(model, optsTea...)
	} else {
		renderer = linear.NewRenderer(a.stdout)
	}

	// The start line is printed before the feed can move the player.
	if mode == detector.ModeLinear {
		renderer.OnUpdate(sess.View())
	}

	// Renderer Routine
	g.Go(func() error {
		defer cancel()
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	// Feed Routine
	if feed != nil {
		g.Go(func() error {
			if err := sess.Follow(gctx, feed, renderer.OnUpdate); err != nil {
				_ = renderer.Stop()
				return err
			}
			// A finished track ends piped play; the map stays open.
			if mode == detector.ModeLinear {
				_ = renderer.Stop()
			}
			return nil
		})
	}

	return g.Wait()
}

// Status prints the position, the inventory and the nearby caches.
func (a *App) Status(ctx context.Context) error {
	sess, store, _, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	linear.NewRenderer(a.stdout).WriteStatus(sess.View())
	return nil
}

// Walk moves the player one cell per direction, printing a status line after
// each step, and saves the world.
func (a *App) Walk(ctx context.Context, dirs []domain.Direction) error {
	sess, store, _, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	r := linear.NewRenderer(a.stdout)
	for _, d := range dirs {
		r.OnUpdate(sess.Move(ctx, d))
	}
	return sess.Save(ctx)
}

// Collect moves a coin from the cache at cell into the inventory and saves
// the world. Any discovered cache can be reached, with or without a coinID;
// an empty coinID takes the first coin of the cache.
func (a *App) Collect(ctx context.Context, cell domain.Cell, coinID string) error {
	sess, store, _, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if coinID == "" {
		cache, ok := sess.Cache(cell)
		if !ok {
			return zerr.With(domain.ErrCacheNotFound, "cell", cell.Key())
		}
		coins := cache.Coins()
		if len(coins) == 0 {
			return zerr.With(domain.ErrCoinNotFound, "cell", cell.Key())
		}
		coinID = coins[0].ID
	}

	coin, err := sess.Collect(ctx, cell, coinID)
	if err != nil {
		return zerr.With(zerr.With(err, "cell", cell.Key()), "coin_id", coinID)
	}
	linear.NewRenderer(a.stdout).WriteCollected(cell, coin)
	return sess.Save(ctx)
}

// Deposit moves the whole inventory into the cache at cell and saves the
// world.
func (a *App) Deposit(ctx context.Context, cell domain.Cell) error {
	sess, store, _, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	n, err := sess.Deposit(ctx, cell)
	if err != nil {
		return zerr.With(err, "cell", cell.Key())
	}
	linear.NewRenderer(a.stdout).WriteDeposited(cell, n)
	if n == 0 {
		return nil
	}
	return sess.Save(ctx)
}

// ResetOptions configuration for the Reset method.
type ResetOptions struct {
	Confirmed bool
	// Hard deletes the save instead of regenerating the world, which also
	// forgets the coin serial counters.
	Hard bool
}

// Reset regenerates the world around the origin.
func (a *App) Reset(ctx context.Context, opts ResetOptions) error {
	if !opts.Confirmed {
		return domain.ErrResetNotConfirmed
	}

	if opts.Hard {
		settings, err := a.loadSettings()
		if err != nil {
			return err
		}
		store, err := a.stores.Open(ctx, settings.Root, settings.Storage)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		if err := store.Clear(ctx); err != nil {
			return err
		}
		linear.NewRenderer(a.stdout).WriteMessage("save deleted")
		return nil
	}

	sess, store, _, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := sess.Reset(ctx, true); err != nil {
		return err
	}
	if err := sess.Save(ctx); err != nil {
		return err
	}
	linear.NewRenderer(a.stdout).WriteMessage("world reset")
	return nil
}
