package domain

import (
	"math"
	"strconv"
)

// LuckFunc maps a string key to a reproducible value in [0,1).
type LuckFunc func(key string) float64

// Generator decides which cells hold caches and mints their coins.
// It is pure: equal rules and luck always produce equal caches.
type Generator struct {
	rules Rules
	grid  Grid
	luck  LuckFunc
}

// NewGenerator creates a Generator for the given rules and luck function.
func NewGenerator(rules Rules, luck LuckFunc) *Generator {
	return &Generator{
		rules: rules,
		grid:  rules.Grid(),
		luck:  luck,
	}
}

func (g *Generator) key(cell Cell) string {
	if g.rules.Seed == "" {
		return cell.Key()
	}
	return g.rules.Seed + ":" + cell.Key()
}

// Spawns reports whether a cache exists at cell.
func (g *Generator) Spawns(cell Cell) bool {
	return g.luck(g.key(cell)) < g.rules.SpawnRate
}

// Mint creates the cache for cell, numbering its coins from firstSerial.
// It returns the cache and the next unused serial.
func (g *Generator) Mint(cell Cell, firstSerial int) (*Cache, int) {
	key := g.key(cell)
	numCoins := scale(g.luck(key+",numCoins"), g.rules.MaxCoinsPerCache) + 1

	coins := make([]Coin, 0, numCoins)
	serial := firstSerial
	for range numCoins {
		value := scale(g.luck(key+",coinValue"+strconv.Itoa(serial)), g.rules.MaxCoinValue) + 1
		coins = append(coins, Coin{ID: CoinID(cell, serial), Value: value})
		serial++
	}

	return NewCache(cell, g.grid.ToBounds(cell), coins), serial
}

// scale maps a luck value in [0,1) onto [0, n).
func scale(luck float64, n int) int {
	v := int(math.Floor(luck * float64(n)))
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}
