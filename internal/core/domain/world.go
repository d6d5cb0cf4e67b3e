package domain

// World is the complete game state of one session: the generation rules,
// the registry of discovered caches and the player. It is an explicit value
// owned by its caller; nothing in it is global.
type World struct {
	rules    Rules
	grid     Grid
	gen      *Generator
	registry *Registry
	player   *Player
}

// NewWorld creates a fresh, ungenerated world with the player at the origin.
// Discover must be called once to populate the neighborhood.
func NewWorld(rules Rules, luck LuckFunc) *World {
	return &World{
		rules:    rules,
		grid:     rules.Grid(),
		gen:      NewGenerator(rules, luck),
		registry: NewRegistry(),
		player:   NewPlayer(rules.Origin),
	}
}

// Rules returns the generation rules.
func (w *World) Rules() Rules {
	return w.rules
}

// Grid returns the cell indexer of the world.
func (w *World) Grid() Grid {
	return w.grid
}

// Registry returns a deep copy of the discovered caches.
func (w *World) Registry() *Registry {
	return w.registry.Clone()
}

// Player returns a deep copy of the player.
func (w *World) Player() *Player {
	return w.player.Clone()
}

// Cache returns a deep copy of the cache at cell.
func (w *World) Cache(cell Cell) (*Cache, bool) {
	c, ok := w.registry.Get(cell)
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

// PlayerCell returns the cell the player stands in.
func (w *World) PlayerCell() Cell {
	return w.grid.ToCell(w.player.Position)
}

// Discover populates the neighborhood around the player and returns the
// cells of newly created caches.
func (w *World) Discover() []Cell {
	return w.registry.Discover(w.PlayerCell(), w.rules.Radius, w.gen)
}

// Move steps the player one cell size in direction d, then discovers.
func (w *World) Move(d Direction) []Cell {
	dLat, dLng := d.Delta()
	return w.MoveTo(w.player.Position.Add(float64(dLat)*w.rules.CellSize, float64(dLng)*w.rules.CellSize))
}

// MoveTo places the player at pos, records the trail leg, then discovers.
// Manual steps and sensor positions both end up here.
func (w *World) MoveTo(pos LatLng) []Cell {
	w.player.MoveTo(pos)
	return w.Discover()
}

// CollectFrom moves one coin from the cache at cell into the inventory.
// ErrCacheNotFound and ErrCoinNotFound leave the world unchanged.
func (w *World) CollectFrom(cell Cell, coinID string) (Coin, error) {
	cache, ok := w.registry.Get(cell)
	if !ok {
		return Coin{}, ErrCacheNotFound
	}
	coin, ok := cache.Collect(coinID)
	if !ok {
		return Coin{}, ErrCoinNotFound
	}
	w.player.Take(coin)
	return coin, nil
}

// DepositTo moves the whole inventory into the cache at cell and returns the
// number of coins moved. Depositing an empty inventory is a no-op.
func (w *World) DepositTo(cell Cell) (int, error) {
	cache, ok := w.registry.Get(cell)
	if !ok {
		return 0, ErrCacheNotFound
	}
	if len(w.player.Inventory) == 0 {
		return 0, nil
	}
	coins := w.player.Drain()
	cache.DepositAll(coins)
	return len(coins), nil
}

// TotalValue sums every ledger and the inventory. Only minting changes it.
func (w *World) TotalValue() int {
	return w.registry.TotalValue() + w.player.InventoryTotal()
}

// Reset discards every cache and returns the player to the origin with an
// empty inventory and trail, then rediscovers the origin neighborhood.
// Serial counters survive, so regenerated caches mint fresh coin ids.
func (w *World) Reset() []Cell {
	w.registry.Reset()
	w.player = NewPlayer(w.rules.Origin)
	return w.Discover()
}

// Memento captures the registry and the inventory.
func (w *World) Memento() Memento {
	return newMemento(w.registry, w.player.Inventory)
}

// Restore replaces the registry and the inventory wholesale with the state
// captured in m. Position and trail are kept, so the neighborhood around the
// player is discovered again and the cells of recreated caches are returned.
func (w *World) Restore(m Memento) []Cell {
	w.registry = m.registry.Clone()
	w.player.Inventory = m.Inventory()
	return w.Discover()
}
