package app

import (
	"context"
	"io"
	"log/slog"

	"filemgmt/internal/adapters/filesystem"
	"filemgmt/internal/domain"
	"filemgmt/internal/logging"
)

// TokenReaderFactory builds the prompt reader bound to a command's streams.
type TokenReaderFactory func(stdin io.Reader, stdout io.Writer) domain.TokenReader

// App contains all application dependencies.
type App struct {
	// File operations
	FileSystem *filesystem.Adapter
	Metadata   domain.MetadataReader

	// Configuration
	ConfigProvider domain.ConfigProvider
	Settings       domain.Settings

	// I/O dependencies
	NewTokenReader TokenReaderFactory

	// Logging
	Logger *slog.Logger

	Config *Config
}

// Config holds application configuration.
type Config struct {
	Settings  domain.Settings
	LogOutput io.Writer
	Verbose   bool

	fileSystem     *filesystem.Adapter
	metadata       domain.MetadataReader
	newTokenReader TokenReaderFactory
}

// Option is a functional option for configuring the App.
type Option func(*Config)

// WithSettings replaces the default settings.
func WithSettings(settings domain.Settings) Option {
	return func(cfg *Config) {
		cfg.Settings = settings
	}
}

// WithVerbose enables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = verbose
	}
}

// WithLogOutput redirects diagnostics.
func WithLogOutput(w io.Writer) Option {
	return func(cfg *Config) {
		cfg.LogOutput = w
	}
}

// WithFileSystem swaps the file system, e.g. for an in-memory one in tests.
func WithFileSystem(fs *filesystem.Adapter) Option {
	return func(cfg *Config) {
		cfg.fileSystem = fs
	}
}

// WithMetadataReader swaps the stat implementation.
func WithMetadataReader(reader domain.MetadataReader) Option {
	return func(cfg *Config) {
		cfg.metadata = reader
	}
}

// WithTokenReaderFactory swaps how prompt readers are built.
func WithTokenReaderFactory(factory TokenReaderFactory) Option {
	return func(cfg *Config) {
		cfg.newTokenReader = factory
	}
}

// NewApp creates a new App with the given options.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &Config{
		Settings:  domain.DefaultSettings(),
		LogOutput: logging.DefaultConfig().Output,
		Verbose:   false,
	}

	// Apply options.
	for _, opt := range opts {
		opt(cfg)
	}

	return NewAppWithConfig(ctx, cfg)
}
