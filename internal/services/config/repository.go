package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"filemgmt/internal/domain"
)

const (
	dirPermissions  = 0o700 // Owner-only access
	filePermissions = 0o600 // Read/write owner only
)

// ErrConfigExists is returned when Save would overwrite an existing file.
var ErrConfigExists = errors.New("configuration file already exists")

// Repository handles settings persistence.
type Repository struct {
	fs         afero.Fs
	configPath string
	logger     *slog.Logger
}

// NewRepository creates a new settings repository.
func NewRepository(fs afero.Fs, configPath string, logger *slog.Logger) *Repository {
	return &Repository{
		fs:         fs,
		configPath: configPath,
		logger:     logger,
	}
}

// Path returns the file the repository writes to.
func (r *Repository) Path() string {
	return r.configPath
}

// Exists reports whether the configuration file is present.
func (r *Repository) Exists() (bool, error) {
	return afero.Exists(r.fs, r.configPath)
}

// Save writes settings as YAML. An existing file is only replaced when
// overwrite is set.
func (r *Repository) Save(settings domain.Settings, overwrite bool) error {
	exists, err := r.Exists()
	if err != nil {
		return fmt.Errorf("failed to check configuration file: %w", err)
	}
	if exists && !overwrite {
		return fmt.Errorf("%w: %s", ErrConfigExists, r.configPath)
	}

	if err := r.fs.MkdirAll(filepath.Dir(r.configPath), dirPermissions); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := afero.WriteFile(r.fs, r.configPath, data, filePermissions); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	// WriteFile only applies the mode on creation.
	if err := r.fs.Chmod(r.configPath, filePermissions); err != nil {
		r.logger.Warn("Failed to tighten configuration permissions", "path", r.configPath, "error", err)
	}

	r.logger.Debug("Configuration saved", "path", r.configPath)
	return nil
}
