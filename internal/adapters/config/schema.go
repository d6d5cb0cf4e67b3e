package config

// Geocachefile represents the structure of the geocache.yaml configuration file.
// Pointer fields distinguish an omitted key from an explicit zero.
type Geocachefile struct {
	Version string     `yaml:"version"`
	World   WorldDTO   `yaml:"world"`
	Storage StorageDTO `yaml:"storage"`
	Feed    FeedDTO    `yaml:"feed"`
	Log     LogDTO     `yaml:"log"`
}

// WorldDTO represents the world generation constants.
type WorldDTO struct {
	Seed             *string    `yaml:"seed"`
	Origin           *OriginDTO `yaml:"origin"`
	CellSize         *float64   `yaml:"cellSize"`
	SpawnRate        *float64   `yaml:"spawnRate"`
	Radius           *int       `yaml:"radius"`
	MaxCoinsPerCache *int       `yaml:"maxCoinsPerCache"`
	MaxCoinValue     *int       `yaml:"maxCoinValue"`
}

// OriginDTO represents the world origin.
type OriginDTO struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

// StorageDTO represents the world store selection.
type StorageDTO struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	Slot   string `yaml:"slot"`
}

// FeedDTO represents the position feed.
type FeedDTO struct {
	Path string `yaml:"path"`
}

// LogDTO represents the logger settings.
type LogDTO struct {
	JSON bool `yaml:"json"`
}

// envOverrides mirrors Settings for environment variables. Variables that are
// not set leave the corresponding field untouched.
type envOverrides struct {
	Seed             string  `env:"GEOCACHE_SEED"`
	OriginLat        float64 `env:"GEOCACHE_ORIGIN_LAT"`
	OriginLng        float64 `env:"GEOCACHE_ORIGIN_LNG"`
	CellSize         float64 `env:"GEOCACHE_CELL_SIZE"`
	SpawnRate        float64 `env:"GEOCACHE_SPAWN_RATE"`
	Radius           int     `env:"GEOCACHE_RADIUS"`
	MaxCoinsPerCache int     `env:"GEOCACHE_MAX_COINS_PER_CACHE"`
	MaxCoinValue     int     `env:"GEOCACHE_MAX_COIN_VALUE"`
	StorageDriver    string  `env:"GEOCACHE_STORAGE_DRIVER"`
	StoragePath      string  `env:"GEOCACHE_STORAGE_PATH"`
	StorageSlot      string  `env:"GEOCACHE_STORAGE_SLOT"`
	FeedPath         string  `env:"GEOCACHE_FEED_PATH"`
	LogJSON          bool    `env:"GEOCACHE_LOG_JSON"`
}
