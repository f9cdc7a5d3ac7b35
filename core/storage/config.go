package storage

// Config holds configuration for the filesystem backing the resources directory.
type Config struct {
	// ReadOnly wraps the filesystem so that nothing can be written through the client.
	ReadOnly bool `mapstructure:"read_only" default:"true"`
}
