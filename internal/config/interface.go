package config

import "context"

// Loader is the interface for a format-specific descriptor loader.
type Loader interface {
	// Load reads the descriptor at path, decodes it and returns the
	// format-agnostic model with all defaults applied.
	Load(ctx context.Context, path string) (*Model, error)
}
