package ports

// GridHasher maps a cell key to a deterministic luck value.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type GridHasher interface {
	// Luck returns a value in [0, 1) that depends only on key.
	Luck(key string) float64
}
