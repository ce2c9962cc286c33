package domain

import (
	"io/fs"
	"time"
)

// Metadata is a point-in-time copy of a file's stat information.
// Device fields are only meaningful for some file types and are reported
// as-is.
type Metadata struct {
	Mode       uint32
	Inode      uint64
	Device     uint64
	RawDevice  uint64
	Size       int64
	AccessTime time.Time
	ChangeTime time.Time
	ModifyTime time.Time
	Links      uint64
	UID        uint32
	GID        uint32
}

// Permissions returns the low nine permission bits.
func (m Metadata) Permissions() fs.FileMode {
	return fs.FileMode(m.Mode & 0o777)
}

// MetadataReader retrieves a metadata snapshot in a single call.
type MetadataReader interface {
	Metadata(path string) (Metadata, error)
}
