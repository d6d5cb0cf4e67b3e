package ports

import (
	"context"

	"go.trai.ch/geocache/internal/core/domain"
)

// WorldStore persists the save record of a single session.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type WorldStore interface {
	// Load returns the stored record.
	// Returns nil, nil if nothing has been saved.
	Load(ctx context.Context) (*domain.SaveRecord, error)

	// Save replaces the stored record.
	Save(ctx context.Context, rec *domain.SaveRecord) error

	// Clear removes the stored record. Clearing an empty store is not an error.
	Clear(ctx context.Context) error

	// Close releases the resources held by the store.
	Close() error
}

// StoreFactory opens the WorldStore selected by the storage settings.
type StoreFactory interface {
	// Open creates the store. Relative paths are resolved against root.
	Open(ctx context.Context, root string, settings domain.StorageSettings) (WorldStore, error)
}
