package domain

import "go.trai.ch/zerr"

var (
	// ErrCoinNotFound is returned when a coin id is not present in a cache ledger.
	ErrCoinNotFound = zerr.New("coin not found")

	// ErrCacheNotFound is returned when no cache has been discovered at a cell.
	ErrCacheNotFound = zerr.New("cache not found")

	// ErrNothingToUndo is returned when the memento stack holds only its baseline.
	ErrNothingToUndo = zerr.New("nothing to undo")

	// ErrResetNotConfirmed is returned when a world reset is requested without confirmation.
	ErrResetNotConfirmed = zerr.New("world reset not confirmed")

	// ErrInvalidDirection is returned when a movement direction cannot be parsed.
	ErrInvalidDirection = zerr.New("invalid direction, expected one of n, s, e, w")

	// ErrInvalidCell is returned when a cell coordinate cannot be parsed.
	ErrInvalidCell = zerr.New("invalid cell, expected format: i,j")

	// ErrInvalidCoinID is returned when a coin id cannot be parsed.
	ErrInvalidCoinID = zerr.New("invalid coin id, expected format: i:j#serial")

	// ErrInvalidPosition is returned when a position cannot be parsed.
	ErrInvalidPosition = zerr.New("invalid position, expected format: lat,lng")

	// ErrSaveCorrupt is returned when a persisted world record fails validation.
	ErrSaveCorrupt = zerr.New("saved world is corrupt")

	// ErrSaveReadFailed is returned when the saved world cannot be read.
	ErrSaveReadFailed = zerr.New("failed to read saved world")

	// ErrSaveWriteFailed is returned when the saved world cannot be written.
	ErrSaveWriteFailed = zerr.New("failed to write saved world")

	// ErrSaveMarshalFailed is returned when the world record cannot be marshaled.
	ErrSaveMarshalFailed = zerr.New("failed to marshal saved world")

	// ErrSaveUnmarshalFailed is returned when the world record cannot be unmarshaled.
	ErrSaveUnmarshalFailed = zerr.New("failed to unmarshal saved world")

	// ErrStoreCreateFailed is returned when the save directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create save directory")

	// ErrStoreOpenFailed is returned when the world store cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open world store")

	// ErrUnknownStorageDriver is returned when the configured storage driver is not supported.
	ErrUnknownStorageDriver = zerr.New("unknown storage driver, expected 'jsonfile' or 'sqlite'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when a configuration value is out of range.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrFeedOpenFailed is returned when the position feed cannot be opened.
	ErrFeedOpenFailed = zerr.New("failed to open position feed")

	// ErrFeedNotConfigured is returned when following a feed without a feed path.
	ErrFeedNotConfigured = zerr.New("no position feed configured")
)
