package config

// Default paths
const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./bookhive.db"

	// DefaultMediaDir is the default root for uploaded media files
	DefaultMediaDir = "./media"
)
