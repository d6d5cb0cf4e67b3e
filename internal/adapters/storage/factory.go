// Package storage selects and opens the configured WorldStore.
package storage

import (
	"context"
	"path/filepath"

	"go.trai.ch/geocache/internal/adapters/storage/jsonfile"
	"go.trai.ch/geocache/internal/adapters/storage/sqlite"
	"go.trai.ch/geocache/internal/core/domain"
	"go.trai.ch/geocache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StoreFactory = (*Factory)(nil)

// Factory implements ports.StoreFactory for the jsonfile and sqlite drivers.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open creates the store described by settings.
func (f *Factory) Open(ctx context.Context, root string, settings domain.StorageSettings) (ports.WorldStore, error) {
	switch settings.Driver {
	case domain.DriverJSONFile, "":
		return jsonfile.NewStore(resolve(root, settings.Path, domain.DefaultSavePath())), nil
	case domain.DriverSQLite:
		store, err := sqlite.Open(ctx, resolve(root, settings.Path, domain.DefaultDatabasePath()), settings.Slot)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, zerr.With(domain.ErrUnknownStorageDriver, "driver", string(settings.Driver))
	}
}

func resolve(root, path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
