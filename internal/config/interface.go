package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the site configuration from a given path and translates it
	// into the format-agnostic model. An empty path yields the defaults.
	Load(ctx context.Context, path string) (*Model, error)
}
