package ports

import (
	"context"

	"go.trai.ch/geocache/internal/core/domain"
)

// Renderer is the abstraction for presenting the world during play.
// It allows the same session to drive either a rich TUI or linear CI logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	// For asynchronous renderers (like TUI), this may launch background goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop and flush any buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	// The TUI terminates when the player quits; the linear renderer when
	// Stop is called or the context passed to Start is done.
	Wait() error

	// OnUpdate is called after every change to the world.
	OnUpdate(v domain.View)
}
