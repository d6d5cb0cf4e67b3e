package domain

import "path/filepath"

const (
	// StateDirName is the name of the directory holding saved state.
	StateDirName = ".geocache"

	// SaveFileName is the name of the JSON save file.
	SaveFileName = "world.json"

	// DatabaseFileName is the name of the SQLite save database.
	DatabaseFileName = "world.db"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "geocache.yaml"

	// DefaultSlot is the save slot used when none is configured.
	DefaultSlot = "default"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultSavePath returns the default path of the JSON save file.
// It joins .geocache and world.json.
func DefaultSavePath() string {
	return filepath.Join(StateDirName, SaveFileName)
}

// DefaultDatabasePath returns the default path of the SQLite database.
// It joins .geocache and world.db.
func DefaultDatabasePath() string {
	return filepath.Join(StateDirName, DatabaseFileName)
}
