package domain

// StorageDriver names a WorldStore implementation.
type StorageDriver string

const (
	// DriverJSONFile stores the world as a single JSON file.
	DriverJSONFile StorageDriver = "jsonfile"
	// DriverSQLite stores the world in a SQLite database slot.
	DriverSQLite StorageDriver = "sqlite"
)

// StorageSettings selects and locates the world store.
type StorageSettings struct {
	Driver StorageDriver
	// Path is the save file or database path. Empty selects the driver default.
	Path string
	// Slot names the save slot inside a SQLite database.
	Slot string
}

// Settings is the resolved application configuration.
type Settings struct {
	// Root is the directory relative paths are resolved against: the
	// directory holding geocache.yaml, or the working directory.
	Root    string
	Rules   Rules
	Storage StorageSettings
	// FeedPath is the position track file followed during play. Empty disables it.
	FeedPath string
	// JSONLogs switches the logger to JSON output.
	JSONLogs bool
}

// DefaultSettings returns the configuration used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		Rules: DefaultRules(),
		Storage: StorageSettings{
			Driver: DriverJSONFile,
			Slot:   DefaultSlot,
		},
	}
}
