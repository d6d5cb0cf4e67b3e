package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/geocache/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Moss).
			Foreground(style.Mist)

	playerStyle = lipgloss.NewStyle().
			Foreground(style.Sky).
			Bold(true)

	cacheStyle = lipgloss.NewStyle().
			Foreground(style.Gold)

	emptyCacheStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Ink).
			Background(style.Gold).
			Bold(true)

	trailStyle = lipgloss.NewStyle().
			Foreground(style.Sky).
			Faint(true)

	groundStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Width(10)

	statusStyle = lipgloss.NewStyle().
			Foreground(style.Moss)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	mapStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Slate).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)
