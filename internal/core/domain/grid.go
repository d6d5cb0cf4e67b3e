package domain

import (
	"iter"
	"math"
)

// Grid maps geographic coordinates onto integer cells of a fixed size
// anchored at an origin.
type Grid struct {
	Origin   LatLng
	CellSize float64
}

// NewGrid creates a Grid anchored at origin with square cells of cellSize degrees.
func NewGrid(origin LatLng, cellSize float64) Grid {
	return Grid{Origin: origin, CellSize: cellSize}
}

// ToCell returns the cell containing p.
// Each axis is floored independently so that cell boundaries stay consistent
// on both sides of the origin.
func (g Grid) ToCell(p LatLng) Cell {
	return Cell{
		I: g.floor(p.Lat - g.Origin.Lat),
		J: g.floor(p.Lng - g.Origin.Lng),
	}
}

// cellTolerance is the fraction of a cell below a boundary that still counts
// as the next cell. It absorbs the rounding of repeated one-cell steps.
const cellTolerance = 1e-6

func (g Grid) floor(offset float64) int {
	return int(math.Floor(offset/g.CellSize + cellTolerance))
}

// ToBounds returns the geographic rectangle covered by c.
func (g Grid) ToBounds(c Cell) Bounds {
	return Bounds{
		SouthWest: LatLng{
			Lat: g.Origin.Lat + float64(c.I)*g.CellSize,
			Lng: g.Origin.Lng + float64(c.J)*g.CellSize,
		},
		NorthEast: LatLng{
			Lat: g.Origin.Lat + float64(c.I+1)*g.CellSize,
			Lng: g.Origin.Lng + float64(c.J+1)*g.CellSize,
		},
	}
}

// Neighborhood yields every cell of the square [-radius, radius]² around
// center, row by row.
func (g Grid) Neighborhood(center Cell, radius int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for di := -radius; di <= radius; di++ {
			for dj := -radius; dj <= radius; dj++ {
				if !yield(center.Offset(di, dj)) {
					return
				}
			}
		}
	}
}
