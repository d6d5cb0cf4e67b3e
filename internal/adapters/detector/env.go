// Package detector chooses between the interactive map and the plain line
// renderer.
package detector

import (
	"os"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the application.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive map.
	ModeTUI
	// ModeLinear forces plain status lines.
	ModeLinear
)

// ErrInvalidOutputMode is returned when an --output-mode value is not recognised.
var ErrInvalidOutputMode = zerr.New("invalid output mode, expected one of auto, tui, linear")

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// ParseMode parses an --output-mode flag value. "ci" is accepted as an alias
// for linear and an empty value means auto.
func ParseMode(flag string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "auto", "":
		return ModeAuto, nil
	case "tui":
		return ModeTUI, nil
	case "linear", "ci":
		return ModeLinear, nil
	default:
		return ModeAuto, zerr.With(ErrInvalidOutputMode, "mode", flag)
	}
}

// DetectEnvironment returns the recommended output mode for out.
// The map needs a terminal; CI runs always get plain lines.
func DetectEnvironment(out *os.File) OutputMode {
	isTTY := out != nil && term.IsTerminal(int(out.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies the user's choice to the auto-detected mode.
func ResolveMode(autoDetected, requested OutputMode) OutputMode {
	if requested == ModeAuto {
		return autoDetected
	}
	return requested
}
