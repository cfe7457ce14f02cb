package app

import (
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/vk/nodock/internal/config"
)

// App encapsulates the pipeline's dependencies and configuration.
type App struct {
	outW   io.Writer
	fs     afero.Fs
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// NewApp is the constructor for the main application. The rendered document
// goes to outW (or to cfg.OutputPath on fs), logs go to logW.
func NewApp(outW, logW io.Writer, cfg *Config, fs afero.Fs, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		outW:   outW,
		fs:     fs,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}
