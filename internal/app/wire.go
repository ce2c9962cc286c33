package app

import (
	"context"
	"io"

	"filemgmt/internal/adapters/filesystem"
	"filemgmt/internal/adapters/terminal"
	"filemgmt/internal/domain"
	"filemgmt/internal/logging"
	"filemgmt/internal/services/config"
)

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *Config) (*App, error) {
	// Create logger.
	level := logging.ParseLevel(cfg.Settings.Log.Level)
	if cfg.Verbose {
		level = logging.LevelDebug
	}
	logger := logging.NewLogger(logging.Config{
		Level:  level,
		Format: cfg.Settings.Log.Format,
		Output: cfg.LogOutput,
	})

	// Create filesystem adapter.
	fs := cfg.fileSystem
	if fs == nil {
		fs = filesystem.New()
	}

	metadata := cfg.metadata
	if metadata == nil {
		metadata = filesystem.NewMetadataReader()
	}

	newTokenReader := cfg.newTokenReader
	if newTokenReader == nil {
		newTokenReader = func(stdin io.Reader, stdout io.Writer) domain.TokenReader {
			return terminal.NewAdapter(stdin, stdout)
		}
	}

	logger.DebugContext(ctx, "Initializing filemgmt",
		"logLevel", string(level),
		"verbose", cfg.Verbose,
		"helpDocument", cfg.Settings.Help.Document,
		"copyMode", cfg.Settings.Copy.Mode,
		"copyBytesPerSecond", cfg.Settings.Copy.BytesPerSecond)

	return &App{
		FileSystem:     fs,
		Metadata:       metadata,
		ConfigProvider: config.NewProvider(fs),
		Settings:       cfg.Settings,
		NewTokenReader: newTokenReader,
		Logger:         logger,
		Config:         cfg,
	}, nil
}
