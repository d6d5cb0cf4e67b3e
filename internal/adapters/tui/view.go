package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/geocache/internal/core/domain"
	"go.trai.ch/geocache/internal/ui/style"
)

// maxListedCoins caps the coin lists in the side panel.
const maxListedCoins = 6

// View renders the map, the side panel, the status line and the help.
func (m *Model) View() string {
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		mapStyle.Render(m.grid()),
		panelStyle.Render(m.panel()),
	)

	var s strings.Builder
	s.WriteString(titleStyle.Render("GEOCACHE"))
	s.WriteString("\n\n")
	s.WriteString(body)
	s.WriteString("\n\n")
	if m.Status != "" {
		if m.StatusIsErr {
			s.WriteString(errorStyle.Render(style.Cross + " " + m.Status))
		} else {
			s.WriteString(statusStyle.Render(style.Arrow + " " + m.Status))
		}
		s.WriteString("\n")
	}
	s.WriteString(m.Help.View(m.Keys))
	return s.String()
}

// grid draws the discovery neighborhood with north at the top.
func (m *Model) grid() string {
	v := m.Snapshot
	caches := make(map[domain.Cell]domain.CacheView, len(v.Caches))
	for _, c := range v.Caches {
		caches[c.Cell] = c
	}
	trail := make(map[domain.Cell]bool, len(v.TrailCells))
	for _, cell := range v.TrailCells {
		trail[cell] = true
	}
	selected, hasSelection := m.Selected()

	var rows []string
	for i := v.Cell.I + v.Radius; i >= v.Cell.I-v.Radius; i-- {
		glyphs := make([]string, 0, 2*v.Radius+1)
		for j := v.Cell.J - v.Radius; j <= v.Cell.J+v.Radius; j++ {
			cell := domain.Cell{I: i, J: j}
			glyphs = append(glyphs, m.glyph(cell, caches, trail[cell], hasSelection && cell == selected.Cell))
		}
		rows = append(rows, strings.Join(glyphs, " "))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) glyph(cell domain.Cell, caches map[domain.Cell]domain.CacheView, visited, selected bool) string {
	c, isCache := caches[cell]

	var g string
	var st lipgloss.Style
	switch {
	case cell == m.Snapshot.Cell:
		g, st = style.Player, playerStyle
	case isCache && len(c.Coins) > 0:
		g, st = style.Cache, cacheStyle
	case isCache:
		g, st = style.EmptyCache, emptyCacheStyle
	case visited:
		g, st = style.Trail, trailStyle
	default:
		g, st = style.Ground, groundStyle
	}
	if selected {
		st = selectedStyle
	}
	return st.Render(g)
}

func (m *Model) panel() string {
	v := m.Snapshot
	lines := []string{
		labelStyle.Render("Position") + v.Position.String(),
		labelStyle.Render("Cell") + v.Cell.String(),
		labelStyle.Render("Inventory") + fmt.Sprintf("%d coin(s), value %d", len(v.Inventory), v.InventoryTotal),
	}
	lines = append(lines, coinLines(v.Inventory)...)

	if cache, ok := m.Selected(); ok {
		lines = append(lines, "",
			labelStyle.Render("Cache")+fmt.Sprintf("%s (%d/%d) value %d",
				cache.Cell, m.SelectedIdx+1, len(v.Caches), cache.Total))
		if len(cache.Coins) == 0 {
			lines = append(lines, "  empty")
		}
		lines = append(lines, coinLines(cache.Coins)...)
	} else {
		lines = append(lines, "", labelStyle.Render("Cache")+"none nearby")
	}

	undo := "nothing to undo"
	if v.Undo == domain.StackNonEmpty {
		undo = "available"
	}
	lines = append(lines, "",
		labelStyle.Render("Undo")+undo,
		labelStyle.Render("World")+fmt.Sprintf("value %d", v.TotalValue),
	)
	if m.ConfirmReset {
		lines = append(lines, "", errorStyle.Render(style.Warning+" press y to reset the world"))
	}
	return strings.Join(lines, "\n")
}

func coinLines(coins []domain.Coin) []string {
	lines := make([]string, 0, maxListedCoins+1)
	for i, coin := range coins {
		if i == maxListedCoins {
			lines = append(lines, fmt.Sprintf("  …and %d more", len(coins)-maxListedCoins))
			break
		}
		lines = append(lines, fmt.Sprintf("  %s %s (%d)", cacheStyle.Render(style.Coin), coin.ID, coin.Value))
	}
	return lines
}
