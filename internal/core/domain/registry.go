package domain

import (
	"iter"
	"maps"
	"slices"
)

// Registry is the sparse map of discovered caches keyed by cell.
// It also keeps a per-cell serial counter that survives Reset, so a cell that
// is regenerated never mints a coin id that was handed out before.
type Registry struct {
	caches  map[Cell]*Cache
	serials map[Cell]int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		caches:  make(map[Cell]*Cache),
		serials: make(map[Cell]int),
	}
}

// Discover evaluates every cell of the square neighborhood around center and
// mints a cache at each cell that spawns and is not yet present.
// Cells already in the registry are left untouched. It returns the cells of
// the caches created by this call, in row-major order.
func (r *Registry) Discover(center Cell, radius int, gen *Generator) []Cell {
	var created []Cell
	for cell := range gen.grid.Neighborhood(center, radius) {
		if _, exists := r.caches[cell]; exists {
			continue
		}
		if !gen.Spawns(cell) {
			continue
		}
		cache, next := gen.Mint(cell, r.serials[cell])
		r.caches[cell] = cache
		r.serials[cell] = next
		created = append(created, cell)
	}
	return created
}

// Get returns the cache at cell.
func (r *Registry) Get(cell Cell) (*Cache, bool) {
	c, ok := r.caches[cell]
	return c, ok
}

// Has reports whether a cache has been discovered at cell.
func (r *Registry) Has(cell Cell) bool {
	_, ok := r.caches[cell]
	return ok
}

// Len returns the number of discovered caches.
func (r *Registry) Len() int {
	return len(r.caches)
}

// NextSerial returns the next unused coin serial for cell.
func (r *Registry) NextSerial(cell Cell) int {
	return r.serials[cell]
}

// Cells returns the discovered cells in row-major order.
func (r *Registry) Cells() []Cell {
	return slices.SortedFunc(maps.Keys(r.caches), Cell.Compare)
}

// All yields every discovered cache in row-major order.
func (r *Registry) All() iter.Seq2[Cell, *Cache] {
	return func(yield func(Cell, *Cache) bool) {
		for _, cell := range r.Cells() {
			if !yield(cell, r.caches[cell]) {
				return
			}
		}
	}
}

// Serials yields every cell with a non-zero serial counter in row-major order.
func (r *Registry) Serials() iter.Seq2[Cell, int] {
	return func(yield func(Cell, int) bool) {
		for _, cell := range slices.SortedFunc(maps.Keys(r.serials), Cell.Compare) {
			if !yield(cell, r.serials[cell]) {
				return
			}
		}
	}
}

// TotalValue sums the values of every ledger.
func (r *Registry) TotalValue() int {
	total := 0
	for _, c := range r.caches {
		total += c.Total()
	}
	return total
}

// Reset drops every cache. Serial counters are kept.
func (r *Registry) Reset() {
	clear(r.caches)
}

// Clone returns a deep copy of the registry.
func (r *Registry) Clone() *Registry {
	out := &Registry{
		caches:  make(map[Cell]*Cache, len(r.caches)),
		serials: maps.Clone(r.serials),
	}
	for cell, c := range r.caches {
		out.caches[cell] = c.Clone()
	}
	return out
}

// Equal reports whether both registries hold structurally equal caches and
// serial counters.
func (r *Registry) Equal(other *Registry) bool {
	if len(r.caches) != len(other.caches) || !maps.Equal(r.serials, other.serials) {
		return false
	}
	for cell, c := range r.caches {
		if !c.Equal(other.caches[cell]) {
			return false
		}
	}
	return true
}

// insert places a cache and raises the serial counter of its cell to at
// least next. It is used when a world is rebuilt from a save.
func (r *Registry) insert(c *Cache, next int) {
	r.caches[c.Cell] = c
	r.raiseSerial(c.Cell, next)
}

func (r *Registry) raiseSerial(cell Cell, next int) {
	if next > r.serials[cell] {
		r.serials[cell] = next
	}
}
