// Package config provides the configuration loader for geocache.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/geocache/internal/core/domain"
	"go.trai.ch/geocache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedVersion is the only geocache.yaml version understood by the loader.
const supportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file and environment
// overrides.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers geocache.yaml in cwd or its nearest ancestor. Without a
// configuration file the defaults apply, rooted at cwd.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	configPath, found := findConfiguration(cwd)
	if !found {
		settings := domain.DefaultSettings()
		settings.Root = filepath.Clean(cwd)
		return l.finish(&settings)
	}
	return l.LoadFile(configPath)
}

// LoadFile reads the configuration from path.
func (l *Loader) LoadFile(path string) (*domain.Settings, error) {
	var file Geocachefile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if file.Version != "" && file.Version != supportedVersion {
		return nil, zerr.With(zerr.With(domain.ErrConfigInvalid, "version", file.Version), "path", path)
	}

	settings := domain.DefaultSettings()
	settings.Root = filepath.Dir(filepath.Clean(path))
	applyFile(&settings, &file)

	if file.Storage.Slot != "" && settings.Storage.Driver == domain.DriverJSONFile {
		l.Logger.Warn(fmt.Sprintf("'storage.slot' defined in %s has no effect with the jsonfile driver", path))
	}

	return l.finish(&settings)
}

// finish applies environment overrides, resolves paths and validates.
func (l *Loader) finish(settings *domain.Settings) (*domain.Settings, error) {
	if err := applyEnv(settings); err != nil {
		return nil, err
	}

	switch settings.Storage.Driver {
	case domain.DriverJSONFile, domain.DriverSQLite:
	default:
		return nil, zerr.With(domain.ErrUnknownStorageDriver, "driver", string(settings.Storage.Driver))
	}
	if settings.Storage.Slot == "" {
		settings.Storage.Slot = domain.DefaultSlot
	}
	settings.Storage.Path = resolvePath(settings.Root, settings.Storage.Path)
	settings.FeedPath = resolvePath(settings.Root, settings.FeedPath)

	if err := settings.Rules.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func applyFile(settings *domain.Settings, file *Geocachefile) {
	rules := &settings.Rules
	w := file.World
	if w.Seed != nil {
		rules.Seed = *w.Seed
	}
	if w.Origin != nil {
		rules.Origin = domain.LatLng{Lat: w.Origin.Lat, Lng: w.Origin.Lng}
	}
	if w.CellSize != nil {
		rules.CellSize = *w.CellSize
	}
	if w.SpawnRate != nil {
		rules.SpawnRate = *w.SpawnRate
	}
	if w.Radius != nil {
		rules.Radius = *w.Radius
	}
	if w.MaxCoinsPerCache != nil {
		rules.MaxCoinsPerCache = *w.MaxCoinsPerCache
	}
	if w.MaxCoinValue != nil {
		rules.MaxCoinValue = *w.MaxCoinValue
	}

	if file.Storage.Driver != "" {
		settings.Storage.Driver = domain.StorageDriver(file.Storage.Driver)
	}
	settings.Storage.Path = file.Storage.Path
	if file.Storage.Slot != "" {
		settings.Storage.Slot = file.Storage.Slot
	}
	settings.FeedPath = file.Feed.Path
	settings.JSONLogs = file.Log.JSON
}

func applyEnv(settings *domain.Settings) error {
	rules := &settings.Rules
	o := envOverrides{
		Seed:             rules.Seed,
		OriginLat:        rules.Origin.Lat,
		OriginLng:        rules.Origin.Lng,
		CellSize:         rules.CellSize,
		SpawnRate:        rules.SpawnRate,
		Radius:           rules.Radius,
		MaxCoinsPerCache: rules.MaxCoinsPerCache,
		MaxCoinValue:     rules.MaxCoinValue,
		StorageDriver:    string(settings.Storage.Driver),
		StoragePath:      settings.Storage.Path,
		StorageSlot:      settings.Storage.Slot,
		FeedPath:         settings.FeedPath,
		LogJSON:          settings.JSONLogs,
	}
	if err := env.Parse(&o); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	rules.Seed = o.Seed
	rules.Origin = domain.LatLng{Lat: o.OriginLat, Lng: o.OriginLng}
	rules.CellSize = o.CellSize
	rules.SpawnRate = o.SpawnRate
	rules.Radius = o.Radius
	rules.MaxCoinsPerCache = o.MaxCoinsPerCache
	rules.MaxCoinValue = o.MaxCoinValue
	settings.Storage.Driver = domain.StorageDriver(o.StorageDriver)
	settings.Storage.Path = o.StoragePath
	settings.Storage.Slot = o.StorageSlot
	settings.FeedPath = o.FeedPath
	settings.JSONLogs = o.LogJSON
	return nil
}

func resolvePath(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered or provided by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
