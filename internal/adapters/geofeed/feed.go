// Package geofeed follows a position track file and delivers each appended
// "lat,lng" line as a sensed player position.
package geofeed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/geocache/internal/core/domain"
	"go.trai.ch/geocache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PositionFeed = (*Feed)(nil)

const positionChannelBuffer = 100

// Feed implements ports.PositionFeed by tailing a text file with fsnotify.
// Existing lines are replayed first; a line is delivered once it is
// terminated by a newline.
type Feed struct {
	path      string
	logger    ports.Logger
	fsWatcher *fsnotify.Watcher
	positions chan domain.LatLng
	stop      chan struct{}
	stopOnce  sync.Once
	follow    bool

	offset  int64
	partial []byte
	lineNo  int
}

// Option configures a Feed.
type Option func(*Feed)

// WithoutFollow makes the feed deliver the lines already in the file, the
// last one even without a trailing newline, and then end.
func WithoutFollow() Option {
	return func(f *Feed) {
		f.follow = false
	}
}

// NewFeed creates a feed for the track file at path. The file does not need
// to exist yet; it is picked up when created.
func NewFeed(path string, logger ports.Logger, opts ...Option) (*Feed, error) {
	if strings.TrimSpace(path) == "" {
		return nil, domain.ErrFeedNotConfigured
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFeedOpenFailed.Error()), "path", path)
	}
	f := &Feed{
		path:      abs,
		logger:    logger,
		positions: make(chan domain.LatLng, positionChannelBuffer),
		stop:      make(chan struct{}),
		follow:    true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Path returns the absolute path of the track file.
func (f *Feed) Path() string {
	return f.path
}

// Start watches the track file's directory and begins delivering positions.
// Without follow the file must exist.
func (f *Feed) Start(ctx context.Context) error {
	if !f.follow {
		if _, err := os.Stat(f.path); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrFeedOpenFailed.Error()), "path", f.path)
		}
		go f.replay(ctx)
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFeedOpenFailed.Error()), "path", f.path)
	}
	if err := watcher.Add(filepath.Dir(f.path)); err != nil {
		_ = watcher.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrFeedOpenFailed.Error()), "path", f.path)
	}
	f.fsWatcher = watcher

	go f.processEvents(ctx)

	return nil
}

// Stop stops the feed and releases all resources.
func (f *Feed) Stop() error {
	var err error
	f.stopOnce.Do(func() {
		close(f.stop)
		if f.fsWatcher != nil {
			err = f.fsWatcher.Close()
		}
	})
	return err
}

// Positions returns an iterator of sensed positions.
func (f *Feed) Positions() iter.Seq[domain.LatLng] {
	return func(yield func(domain.LatLng) bool) {
		for pos := range f.positions {
			if !yield(pos) {
				return
			}
		}
	}
}

func (f *Feed) replay(ctx context.Context) {
	defer close(f.positions)

	if !f.drain(ctx) || len(f.partial) == 0 {
		return
	}
	f.lineNo++
	if pos, ok := f.parse(string(f.partial)); ok {
		f.send(ctx, pos)
	}
}

func (f *Feed) processEvents(ctx context.Context) {
	defer close(f.positions)

	if !f.drain(ctx) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-f.stop:
			return
		case event, ok := <-f.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != f.path {
				continue
			}

			switch {
			case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
				f.rewind()
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
				if !f.drain(ctx) {
					return
				}
			}

		case err, ok := <-f.fsWatcher.Errors:
			if !ok {
				return
			}
			f.warn(fmt.Sprintf("position feed: file system error: %v", err))
		}
	}
}

// drain reads everything appended since the last read and delivers the
// complete lines. It returns false when the feed is shutting down.
func (f *Feed) drain(ctx context.Context) bool {
	data, err := f.readNew()
	if err != nil {
		f.warn(fmt.Sprintf("position feed: %v", err))
		return true
	}

	buf := append(f.partial, data...)
	for {
		idx := bytes.IndexByte(buf, '\n')
		if idx < 0 {
			break
		}
		line := string(buf[:idx])
		buf = buf[idx+1:]
		f.lineNo++

		pos, ok := f.parse(line)
		if !ok {
			continue
		}
		if !f.send(ctx, pos) {
			return false
		}
	}
	f.partial = bytes.Clone(buf)
	return true
}

func (f *Feed) send(ctx context.Context, pos domain.LatLng) bool {
	select {
	case f.positions <- pos:
		return true
	case <-ctx.Done():
		return false
	case <-f.stop:
		return false
	}
}

func (f *Feed) readNew() ([]byte, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() < f.offset {
		// Truncated in place.
		f.rewind()
	}

	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	f.offset += int64(len(data))
	return data, nil
}

func (f *Feed) rewind() {
	f.offset = 0
	f.partial = nil
	f.lineNo = 0
}

func (f *Feed) parse(line string) (domain.LatLng, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return domain.LatLng{}, false
	}
	pos, err := domain.ParseLatLng(line)
	if err != nil {
		f.warn(fmt.Sprintf("position feed: skipping line %d of %s: %q is not a lat,lng pair",
			f.lineNo, filepath.Base(f.path), line))
		return domain.LatLng{}, false
	}
	return pos, true
}

func (f *Feed) warn(msg string) {
	if f.logger != nil {
		f.logger.Warn(msg)
	}
}
