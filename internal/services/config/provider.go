package config

import (
	"fmt"
	"path/filepath"
)

const (
	appDirName     = "filemgmt"
	configFileName = "config.yaml"
)

type homeDirProvider interface {
	UserHomeDir() (string, error)
}

// Provider provides configuration paths.
type Provider struct {
	home homeDirProvider
}

// NewProvider creates a new configuration provider.
func NewProvider(home homeDirProvider) *Provider {
	return &Provider{
		home: home,
	}
}

// GetConfigDir returns the directory holding the filemgmt configuration.
func (p *Provider) GetConfigDir() (string, error) {
	homeDir, err := p.home.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", appDirName), nil
}

// GetConfigPath returns the path to the filemgmt configuration file.
func (p *Provider) GetConfigPath() (string, error) {
	dir, err := p.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
