package ports

import (
	"context"

	"go.trai.ch/geocache/internal/core/domain"
)

// Game is the serialized entry point the input layers drive.
// Every call runs to completion before the next one starts.
//
//go:generate mockgen -source=game.go -destination=mocks/mock_game.go -package=mocks
type Game interface {
	// View renders the current neighborhood.
	View() domain.View
	// Move steps the player one cell in direction d.
	Move(ctx context.Context, d domain.Direction) domain.View
	// MoveTo places the player at a sensed position.
	MoveTo(ctx context.Context, pos domain.LatLng) domain.View
	// Collect moves a coin from the cache at cell into the inventory.
	Collect(ctx context.Context, cell domain.Cell, coinID string) (domain.Coin, error)
	// Deposit moves the whole inventory into the cache at cell.
	Deposit(ctx context.Context, cell domain.Cell) (int, error)
	// Undo rolls the last collect or deposit back.
	Undo(ctx context.Context) error
	// Reset regenerates the world. It refuses unless confirmed is true.
	Reset(ctx context.Context, confirmed bool) error
}
