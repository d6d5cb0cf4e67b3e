package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Cell identifies a grid cell relative to the world origin.
// Two cells are equal iff both components are equal, which makes Cell usable
// as the sole map key for cache identity.
type Cell struct {
	I int `json:"i"`
	J int `json:"j"`
}

// Key returns the structural hash key of the cell ("i,j").
func (c Cell) Key() string {
	return strconv.Itoa(c.I) + "," + strconv.Itoa(c.J)
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return c.Key()
}

// Offset returns the cell shifted by (di, dj).
func (c Cell) Offset(di, dj int) Cell {
	return Cell{I: c.I + di, J: c.J + dj}
}

// Compare orders cells row-major: by I, then by J.
func (c Cell) Compare(other Cell) int {
	switch {
	case c.I < other.I:
		return -1
	case c.I > other.I:
		return 1
	case c.J < other.J:
		return -1
	case c.J > other.J:
		return 1
	default:
		return 0
	}
}

// ParseCell parses a cell written as "i,j".
func ParseCell(s string) (Cell, error) {
	iStr, jStr, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Cell{}, zerr.With(ErrInvalidCell, "input", s)
	}
	i, err := strconv.Atoi(strings.TrimSpace(iStr))
	if err != nil {
		return Cell{}, zerr.With(ErrInvalidCell, "input", s)
	}
	j, err := strconv.Atoi(strings.TrimSpace(jStr))
	if err != nil {
		return Cell{}, zerr.With(ErrInvalidCell, "input", s)
	}
	return Cell{I: i, J: j}, nil
}
