package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Direction is a manual movement step on the grid.
type Direction int

const (
	// North moves one step towards increasing latitude.
	North Direction = iota
	// South moves one step towards decreasing latitude.
	South
	// East moves one step towards increasing longitude.
	East
	// West moves one step towards decreasing longitude.
	West
)

// Delta returns the (lat, lng) step multipliers of d.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 1, 0
	case South:
		return -1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// ParseDirection accepts n/s/e/w, the full names, or up/down/right/left.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north", "up":
		return North, nil
	case "s", "south", "down":
		return South, nil
	case "e", "east", "right":
		return East, nil
	case "w", "west", "left":
		return West, nil
	default:
		return 0, zerr.With(ErrInvalidDirection, "input", s)
	}
}
