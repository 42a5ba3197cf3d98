package database

// Config holds configuration for the dictionary store.
type Config struct {
	// Path is the SQLite database file. This is also the iOS distribution
	// artifact, so the default matches the filename the app expects.
	Path string `mapstructure:"path" default:"nzsl.db"`
	// TimeoutSeconds is the busy timeout applied to the connection.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
