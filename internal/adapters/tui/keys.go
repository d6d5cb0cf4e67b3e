package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/geocache/internal/core/domain"
)

// KeyMap holds the key bindings of the map screen.
type KeyMap struct {
	North   key.Binding
	South   key.Binding
	West    key.Binding
	East    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Collect key.Binding
	Deposit key.Binding
	Undo    key.Binding
	Reset   key.Binding
	Confirm key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		North:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "north")),
		South:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "south")),
		West:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "west")),
		East:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "east")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next cache")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous cache")),
		Collect: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collect")),
		Deposit: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "deposit")),
		Undo:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Reset:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset")),
		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.North, k.Next, k.Collect, k.Deposit, k.Undo, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.North, k.South, k.West, k.East},
		{k.Next, k.Prev, k.Collect, k.Deposit},
		{k.Undo, k.Reset, k.Help, k.Quit},
	}
}

// direction maps a movement binding to its direction.
func (k KeyMap) direction(msg tea.KeyMsg) (domain.Direction, bool) {
	switch {
	case key.Matches(msg, k.North):
		return domain.North, true
	case key.Matches(msg, k.South):
		return domain.South, true
	case key.Matches(msg, k.West):
		return domain.West, true
	case key.Matches(msg, k.East):
		return domain.East, true
	default:
		return 0, false
	}
}
