// Package hash implements the grid hasher on xxhash.
package hash

import "github.com/cespare/xxhash/v2"

// mantissa is 2^-53; scaling the top 53 bits of a hash by it gives an
// evenly spread float64 in [0, 1).
const mantissa = 1.0 / (1 << 53)

// Hasher is a ports.GridHasher backed by xxhash64.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Luck returns a value in [0, 1) derived only from key.
func (h *Hasher) Luck(key string) float64 {
	return float64(xxhash.Sum64String(key)>>11) * mantissa
}
