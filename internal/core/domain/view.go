package domain

import "slices"

// CacheView is a read-only rendering of one discovered cache.
type CacheView struct {
	Cell   Cell
	Bounds Bounds
	Coins  []Coin
	Total  int
}

// View is a read-only rendering of the world around the player.
// Only caches inside the discovery neighborhood are listed.
type View struct {
	Position       LatLng
	Cell           Cell
	Radius         int
	Caches         []CacheView
	Inventory      []Coin
	InventoryTotal int
	Trail          []LatLng
	// TrailCells lists the cells the trail passed through, oldest first,
	// each once.
	TrailCells []Cell
	Undo       StackState
	TotalValue int
}

// Nearby returns the view of the cache at cell, if it is listed.
func (v View) Nearby(cell Cell) (CacheView, bool) {
	i := slices.IndexFunc(v.Caches, func(c CacheView) bool { return c.Cell == cell })
	if i < 0 {
		return CacheView{}, false
	}
	return v.Caches[i], true
}

// View renders the neighborhood around the player.
func (w *World) View() View {
	center := w.PlayerCell()
	v := View{
		Position:       w.player.Position,
		Cell:           center,
		Radius:         w.rules.Radius,
		Inventory:      slices.Clone(w.player.Inventory),
		InventoryTotal: w.player.InventoryTotal(),
		Trail:          w.player.TrailPoints(),
		Undo:           StackEmpty,
		TotalValue:     w.TotalValue(),
	}
	for _, p := range v.Trail {
		if cell := w.grid.ToCell(p); !slices.Contains(v.TrailCells, cell) {
			v.TrailCells = append(v.TrailCells, cell)
		}
	}
	for cell := range w.grid.Neighborhood(center, w.rules.Radius) {
		c, ok := w.registry.Get(cell)
		if !ok {
			continue
		}
		v.Caches = append(v.Caches, CacheView{
			Cell:   cell,
			Bounds: c.Bounds,
			Coins:  c.Coins(),
			Total:  c.Total(),
		})
	}
	return v
}
