//go:build linux || darwin

package filesystem

import (
	"fmt"

	"golang.org/x/sys/unix"

	"filemgmt/internal/domain"
)

// MetadataReader reads stat information straight from the kernel.
type MetadataReader struct{}

// NewMetadataReader creates a new metadata reader.
func NewMetadataReader() *MetadataReader {
	return &MetadataReader{}
}

// Metadata returns the stat snapshot for path. Symbolic links are followed.
func (r *MetadataReader) Metadata(path string) (domain.Metadata, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return domain.Metadata{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return fromStat(&st), nil
}
