package filesystem

import (
	"os"

	"github.com/spf13/afero"
)

// Adapter provides file system operations. Handles are opened through the
// embedded afero.Fs so commands can run against memory-backed files in tests.
type Adapter struct {
	afero.Fs
}

// New creates a new filesystem adapter backed by the operating system.
func New() *Adapter {
	return &Adapter{Fs: afero.NewOsFs()}
}

// NewMemory creates a filesystem adapter that never touches the disk.
func NewMemory() *Adapter {
	return &Adapter{Fs: afero.NewMemMapFs()}
}

// UserHomeDir returns the user's home directory.
func (a *Adapter) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}
