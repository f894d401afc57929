package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Backend selects where containers are stored (memory, database, storage).
	Backend string `mapstructure:"backend" default:"memory"`
	// World is the name of the world this instance serves. It is attached to log entries.
	World string `mapstructure:"world" default:"overworld"`
}

const (
	BackendMemory   = "memory"
	BackendDatabase = "database"
	BackendStorage  = "storage"
)

// IsValidBackend checks if the configured backend is valid.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendMemory, BackendDatabase, BackendStorage:
		return true
	default:
		return false
	}
}
