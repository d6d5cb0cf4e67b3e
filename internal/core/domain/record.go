package domain

import (
	"errors"
	"math"
	"slices"
	"time"

	"go.trai.ch/zerr"
)

// SaveVersion is the current version of the SaveRecord format.
const SaveVersion = 1

// boundsTolerance absorbs float drift between saved and recomputed bounds.
const boundsTolerance = 1e-9

// SaveRecord is the durable form of a World.
type SaveRecord struct {
	Version          int            `json:"version"`
	Position         LatLng         `json:"position"`
	Inventory        []Coin         `json:"inventory"`
	MovementTrail    []LatLng       `json:"movementTrail"`
	MovementSegments []Segment      `json:"movementSegments"`
	DiscoveredCaches []CacheRecord  `json:"discoveredCaches"`
	Serials          []SerialRecord `json:"serials,omitempty"`
	SavedAt          time.Time      `json:"savedAt,omitzero"`
}

// CacheRecord is the durable form of a Cache.
type CacheRecord struct {
	Cell       Cell   `json:"cell"`
	Bounds     Bounds `json:"bounds"`
	CoinCount  int    `json:"coinCount"`
	Coins      []Coin `json:"coins"`
	NextSerial int    `json:"nextSerial"`
}

// SerialRecord is the durable form of one serial counter.
type SerialRecord struct {
	Cell Cell `json:"cell"`
	Next int  `json:"next"`
}

// Record captures the world for persistence.
func (w *World) Record() *SaveRecord {
	rec := &SaveRecord{
		Version:          SaveVersion,
		Position:         w.player.Position,
		Inventory:        slices.Clone(w.player.Inventory),
		MovementTrail:    w.player.TrailPoints(),
		MovementSegments: slices.Clone(w.player.Trail),
	}
	for cell, c := range w.registry.All() {
		rec.DiscoveredCaches = append(rec.DiscoveredCaches, CacheRecord{
			Cell:       cell,
			Bounds:     c.Bounds,
			CoinCount:  c.Len(),
			Coins:      c.Coins(),
			NextSerial: w.registry.NextSerial(cell),
		})
	}
	for cell, next := range w.registry.Serials() {
		rec.Serials = append(rec.Serials, SerialRecord{Cell: cell, Next: next})
	}
	return rec
}

// RestoreWorld rebuilds a world from rec. The caches are replayed exactly as
// saved, including minted coin values. A record that fails validation yields
// an error wrapping ErrSaveCorrupt and no world.
//
//nolint:cyclop // validation of every record section
func RestoreWorld(rules Rules, luck LuckFunc, rec *SaveRecord) (*World, error) {
	if rec == nil {
		return nil, errors.Join(ErrSaveCorrupt, zerr.New("record is empty"))
	}
	if rec.Version != SaveVersion {
		return nil, corrupt("unsupported version", "version", rec.Version)
	}
	if !validLatLng(rec.Position) {
		return nil, corrupt("invalid position", "position", rec.Position.String())
	}

	w := NewWorld(rules, luck)
	seen := make(map[string]struct{})
	claim := func(coins []Coin) error {
		for _, coin := range coins {
			cell, serial, err := ParseCoinID(coin.ID)
			if err != nil {
				return corrupt("invalid coin id", "coin_id", coin.ID)
			}
			if coin.Value < 1 {
				return corrupt("invalid coin value", "coin_id", coin.ID)
			}
			if _, dup := seen[coin.ID]; dup {
				return corrupt("duplicate coin id", "coin_id", coin.ID)
			}
			seen[coin.ID] = struct{}{}
			w.registry.raiseSerial(cell, serial+1)
		}
		return nil
	}

	for _, cr := range rec.DiscoveredCaches {
		if w.registry.Has(cr.Cell) {
			return nil, corrupt("duplicate cache", "cell", cr.Cell.Key())
		}
		if cr.CoinCount != len(cr.Coins) {
			return nil, corrupt("coin count mismatch", "cell", cr.Cell.Key(), "coin_count", cr.CoinCount)
		}
		if !boundsClose(cr.Bounds, w.grid.ToBounds(cr.Cell)) {
			return nil, corrupt("cache bounds do not match grid", "cell", cr.Cell.Key())
		}
		if err := claim(cr.Coins); err != nil {
			return nil, err
		}
		w.registry.insert(NewCache(cr.Cell, w.grid.ToBounds(cr.Cell), cr.Coins), cr.NextSerial)
	}
	if err := claim(rec.Inventory); err != nil {
		return nil, err
	}
	for _, sr := range rec.Serials {
		w.registry.raiseSerial(sr.Cell, sr.Next)
	}

	w.player.Position = rec.Position
	w.player.Inventory = slices.Clone(rec.Inventory)
	w.player.Trail = slices.Clone(rec.MovementSegments)
	return w, nil
}

// corrupt builds an error that matches ErrSaveCorrupt under errors.Is and
// carries the failing fields as zerr metadata.
func corrupt(reason string, kv ...any) error {
	err := zerr.New(reason)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		err = zerr.With(err, key, kv[i+1])
	}
	return errors.Join(ErrSaveCorrupt, err)
}

func validLatLng(p LatLng) bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

func boundsClose(a, b Bounds) bool {
	return math.Abs(a.SouthWest.Lat-b.SouthWest.Lat) < boundsTolerance &&
		math.Abs(a.SouthWest.Lng-b.SouthWest.Lng) < boundsTolerance &&
		math.Abs(a.NorthEast.Lat-b.NorthEast.Lat) < boundsTolerance &&
		math.Abs(a.NorthEast.Lng-b.NorthEast.Lng) < boundsTolerance
}
