package domain

import "slices"

// Cache is a discovered cell holding an ordered ledger of coins.
// Caches are owned by a Registry and only mutated through Collect and
// DepositAll.
type Cache struct {
	Cell   Cell
	Bounds Bounds
	ledger []Coin
}

// NewCache creates a cache at cell holding coins in order.
func NewCache(cell Cell, bounds Bounds, coins []Coin) *Cache {
	return &Cache{
		Cell:   cell,
		Bounds: bounds,
		ledger: slices.Clone(coins),
	}
}

// Collect removes the coin with the given id and returns it.
// It reports false and leaves the ledger untouched when the id is absent,
// which is what a second click on a stale view produces.
func (c *Cache) Collect(id string) (Coin, bool) {
	idx := slices.IndexFunc(c.ledger, func(coin Coin) bool { return coin.ID == id })
	if idx < 0 {
		return Coin{}, false
	}
	coin := c.ledger[idx]
	c.ledger = slices.Delete(c.ledger, idx, idx+1)
	return coin, true
}

// DepositAll appends coins to the ledger in order.
func (c *Cache) DepositAll(coins []Coin) {
	c.ledger = append(c.ledger, coins...)
}

// Coins returns a copy of the ledger.
func (c *Cache) Coins() []Coin {
	return slices.Clone(c.ledger)
}

// Len returns the number of coins in the ledger.
func (c *Cache) Len() int {
	return len(c.ledger)
}

// Total returns the summed value of the ledger.
func (c *Cache) Total() int {
	return TotalValue(c.ledger)
}

// Clone returns a deep copy of the cache.
func (c *Cache) Clone() *Cache {
	return NewCache(c.Cell, c.Bounds, c.ledger)
}

// Equal reports whether both caches hold the same cell, bounds and ledger.
func (c *Cache) Equal(other *Cache) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Cell == other.Cell && c.Bounds == other.Bounds && slices.Equal(c.ledger, other.ledger)
}
