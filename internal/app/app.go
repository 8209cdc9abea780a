package app

import (
	"io"
	"log/slog"

	"github.com/vk/bomres/internal/config"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger writing to errW;
// outW receives data output only (the resolved CSV when no output path
// is configured). All actual work happens in Run.
func NewApp(outW, errW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loader: loader,
	}
}
