// Package tui provides the interactive map for geocache.
package tui

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/geocache/internal/core/ports"
	"go.trai.ch/geocache/internal/ui/output"
)

// NewModel creates a map model driving game. Colors follow the terminal
// behind w.
func NewModel(game ports.Game, w io.Writer) *Model {
	if w == nil {
		w = os.Stdout
	}

	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	return &Model{
		Game:     game,
		Keys:     DefaultKeyMap(),
		Help:     help.New(),
		Snapshot: game.View(),
		ctx:      context.Background(),
	}
}
