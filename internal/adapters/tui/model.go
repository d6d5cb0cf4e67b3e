package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/geocache/internal/core/domain"
	"go.trai.ch/geocache/internal/core/ports"
)

// MsgView carries a fresh rendering of the world, typically produced by a
// position feed.
type MsgView struct {
	View domain.View
}

// Model is the map screen. Every key press is applied through the Game.
type Model struct {
	Game     ports.Game
	Keys     KeyMap
	Help     help.Model
	Snapshot domain.View

	// SelectedIdx indexes Snapshot.Caches.
	SelectedIdx  int
	Status       string
	StatusIsErr  bool
	ConfirmReset bool
	Width        int
	Height       int

	ctx context.Context
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // one case per key binding
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width

	case MsgView:
		m.setSnapshot(msg.View)

	case tea.KeyMsg:
		if m.ConfirmReset {
			m.ConfirmReset = false
			if key.Matches(msg, m.Keys.Confirm) {
				m.reset()
			} else {
				m.setStatus("reset cancelled", false)
			}
			return m, nil
		}

		if d, ok := m.Keys.direction(msg); ok {
			m.setSnapshot(m.Game.Move(m.context(), d))
			m.Status = ""
			return m, nil
		}

		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Next):
			m.cycle(1)
		case key.Matches(msg, m.Keys.Prev):
			m.cycle(-1)
		case key.Matches(msg, m.Keys.Collect):
			m.collect()
		case key.Matches(msg, m.Keys.Deposit):
			m.deposit()
		case key.Matches(msg, m.Keys.Undo):
			m.undo()
		case key.Matches(msg, m.Keys.Reset):
			m.ConfirmReset = true
			m.setStatus("reset the world? press y to confirm", false)
		case key.Matches(msg, m.Keys.Help):
			m.Help.ShowAll = !m.Help.ShowAll
		}
	}

	return m, nil
}

// Selected returns the cache under the cursor.
func (m *Model) Selected() (domain.CacheView, bool) {
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.Snapshot.Caches) {
		return domain.CacheView{}, false
	}
	return m.Snapshot.Caches[m.SelectedIdx], true
}

func (m *Model) context() context.Context {
	if m.ctx == nil {
		return context.Background()
	}
	return m.ctx
}

// setSnapshot replaces the rendered world and keeps the cursor on the same
// cache when it is still nearby.
func (m *Model) setSnapshot(v domain.View) {
	selected, had := m.Selected()
	m.Snapshot = v
	m.SelectedIdx = 0
	if !had {
		return
	}
	for i, c := range v.Caches {
		if c.Cell == selected.Cell {
			m.SelectedIdx = i
			return
		}
	}
}

func (m *Model) refresh() {
	m.setSnapshot(m.Game.View())
}

func (m *Model) cycle(step int) {
	n := len(m.Snapshot.Caches)
	if n == 0 {
		return
	}
	m.SelectedIdx = ((m.SelectedIdx+step)%n + n) % n
}

func (m *Model) collect() {
	cache, ok := m.Selected()
	if !ok {
		m.setStatus("no cache nearby", true)
		return
	}
	if len(cache.Coins) == 0 {
		m.setStatus(fmt.Sprintf("cache %s is empty", cache.Cell), true)
		return
	}
	coin, err := m.Game.Collect(m.context(), cache.Cell, cache.Coins[0].ID)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.refresh()
	m.setStatus(fmt.Sprintf("collected %s (%d) from %s", coin.ID, coin.Value, cache.Cell), false)
}

func (m *Model) deposit() {
	cache, ok := m.Selected()
	if !ok {
		m.setStatus("no cache nearby", true)
		return
	}
	n, err := m.Game.Deposit(m.context(), cache.Cell)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.refresh()
	if n == 0 {
		m.setStatus("nothing to deposit", false)
		return
	}
	m.setStatus(fmt.Sprintf("deposited %d coin(s) into %s", n, cache.Cell), false)
}

func (m *Model) undo() {
	err := m.Game.Undo(m.context())
	if errors.Is(err, domain.ErrNothingToUndo) {
		m.setStatus(err.Error(), false)
		return
	}
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.refresh()
	m.setStatus("undone", false)
}

func (m *Model) reset() {
	if err := m.Game.Reset(m.context(), true); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.SelectedIdx = 0
	m.setSnapshot(m.Game.View())
	m.setStatus("world reset", false)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.Status = s
	m.StatusIsErr = isErr
}
