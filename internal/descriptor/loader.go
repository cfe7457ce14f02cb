package descriptor

import (
	"context"

	"github.com/spf13/afero"
	"github.com/vk/nodock/internal/config"
	"github.com/vk/nodock/internal/ctxlog"
)

// Loader is the file-backed implementation of the config.Loader interface.
type Loader struct {
	fs     afero.Fs
	format Format
}

// NewLoader creates a loader reading from fs. An empty format means the
// format is picked from each file's extension.
func NewLoader(fs afero.Fs, format Format) *Loader {
	return &Loader{fs: fs, format: format}
}

// Load reads and parses the descriptor at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	format := l.format
	if format == "" {
		format = FormatFromPath(path)
	}
	logger.Debug("Loading descriptor.", "path", path, "format", format)

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, &InputAccessError{Path: path, Err: err}
	}

	return Parse(ctx, data, format)
}
