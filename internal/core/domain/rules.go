package domain

import "go.trai.ch/zerr"

// Rules are the fixed world-generation constants. Two worlds built from equal
// Rules and the same hasher are identical.
type Rules struct {
	// Seed is mixed into every hash key; an empty seed is a valid world.
	Seed string
	// Origin anchors cell (0,0) and is the player's starting position.
	Origin LatLng
	// CellSize is the edge length of a cell in degrees.
	CellSize float64
	// SpawnRate is the probability threshold below which a cell holds a cache.
	SpawnRate float64
	// Radius is the half-width, in cells, of the discovered neighborhood.
	Radius int
	// MaxCoinsPerCache bounds the number of coins minted into a new cache.
	MaxCoinsPerCache int
	// MaxCoinValue bounds the value of a minted coin.
	MaxCoinValue int
}

// DefaultRules returns the rules of the Kingsburg world.
func DefaultRules() Rules {
	return Rules{
		Origin:           LatLng{Lat: 36.51451, Lng: -119.55476},
		CellSize:         1e-4,
		SpawnRate:        0.1,
		Radius:           8,
		MaxCoinsPerCache: 5,
		MaxCoinValue:     10,
	}
}

// Grid returns the grid described by the rules.
func (r Rules) Grid() Grid {
	return NewGrid(r.Origin, r.CellSize)
}

// Validate checks that every constant is within range.
func (r Rules) Validate() error {
	switch {
	case r.CellSize <= 0:
		return zerr.With(ErrConfigInvalid, "cell_size", r.CellSize)
	case r.SpawnRate < 0 || r.SpawnRate > 1:
		return zerr.With(ErrConfigInvalid, "spawn_rate", r.SpawnRate)
	case r.Radius < 0:
		return zerr.With(ErrConfigInvalid, "radius", r.Radius)
	case r.MaxCoinsPerCache < 1:
		return zerr.With(ErrConfigInvalid, "max_coins_per_cache", r.MaxCoinsPerCache)
	case r.MaxCoinValue < 1:
		return zerr.With(ErrConfigInvalid, "max_coin_value", r.MaxCoinValue)
	case r.Origin.Lat < -90 || r.Origin.Lat > 90 || r.Origin.Lng < -180 || r.Origin.Lng > 180:
		return zerr.With(ErrConfigInvalid, "origin", r.Origin.String())
	}
	return nil
}
