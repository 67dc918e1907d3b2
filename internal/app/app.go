package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/socialgridgo/internal/config"
	"github.com/vk/socialgridgo/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	site   *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and resolved
// site settings.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the site settings into the format-agnostic model first.
	site, err := loader.Load(ctx, appConfig.SitePath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load site configuration: %w", err))
	}
	logger.Debug("Site configuration loaded and translated into unified model.")

	// The command line wins over the site file.
	if appConfig.OutputDir != "" {
		site.OutputDir = appConfig.OutputDir
		logger.Debug("Output directory overridden from the command line.", "output_dir", site.OutputDir)
	}

	return &App{
		outW:   outW,
		logger: logger,
		site:   site,
	}
}

// Site returns the resolved site settings. This is primarily for testing.
func (a *App) Site() *config.Model {
	return a.site
}
