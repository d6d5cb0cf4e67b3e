// Package style provides shared UI styling primitives: the palette and the
// glyphs used to draw the map, the status report and log lines.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Gold   = lipgloss.Color("#E8B931")
	Moss   = lipgloss.Color("#3F7D20")
	Slate  = lipgloss.Color("#667085")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Sky    = lipgloss.Color("#3B82F6")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Map glyphs.
const (
	Player     = "@"
	Cache      = "◆"
	EmptyCache = "◇"
	Ground     = "·"
	Trail      = "•"
)

// Status icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Coin    = "¤"
	Arrow   = "→"
)
