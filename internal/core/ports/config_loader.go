package ports

import "go.trai.ch/geocache/internal/core/domain"

// ConfigLoader defines the interface for loading the game settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads geocache.yaml from cwd or its nearest ancestor, applies
	// environment overrides and returns the validated settings.
	// Defaults rooted at cwd are returned when no configuration file exists.
	Load(cwd string) (*domain.Settings, error)

	// LoadFile reads the configuration from an explicit path.
	LoadFile(path string) (*domain.Settings, error)
}
