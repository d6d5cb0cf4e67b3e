package domain_test

import (
	"hash/fnv"

	"go.trai.ch/geocache/internal/core/domain"
)

// fnvLuck is a deterministic stand-in for the xxhash grid hasher.
func fnvLuck(key string) float64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return float64(h.Sum64()>>11) / (1 << 53)
}

// tableLuck returns fixed values for known keys and fallback otherwise.
func tableLuck(table map[string]float64, fallback float64) domain.LuckFunc {
	return func(key string) float64 {
		if v, ok := table[key]; ok {
			return v
		}
		return fallback
	}
}

func testRules() domain.Rules {
	rules := domain.DefaultRules()
	rules.Origin = domain.LatLng{Lat: 0, Lng: 0}
	rules.CellSize = 1
	rules.Radius = 3
	rules.SpawnRate = 0.3
	return rules
}

// allCoinIDs lists every coin id held by ledgers and the inventory.
func allCoinIDs(w *domain.World) []string {
	var ids []string
	for _, c := range w.Registry().All() {
		for _, coin := range c.Coins() {
			ids = append(ids, coin.ID)
		}
	}
	for _, coin := range w.Player().Inventory {
		ids = append(ids, coin.ID)
	}
	return ids
}
