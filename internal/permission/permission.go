// Package permission decodes the legacy composite permission notation
// (one decimal digit per class, e.g. 644 or 1755) into file mode bits.
package permission

import (
	"io/fs"
	"strconv"
	"strings"
)

// Permission bits for a single class, before shifting into place.
const (
	read    fs.FileMode = 0o4
	write   fs.FileMode = 0o2
	execute fs.FileMode = 0o1
)

// Class shifts.
const (
	otherShift = 0
	groupShift = 3
	ownerShift = 6
)

// DefaultCopyMode is the permission set given to copy destinations.
const DefaultCopyMode = 666

// Spec is a decoded legacy permission value.
type Spec struct {
	// Special holds the setuid/setgid/sticky digit. It is extracted but never
	// applied to the resulting mode.
	Special int
	Owner   int
	Group   int
	Other   int
}

// Parse splits a legacy permission value into its class digits, least
// significant digit first: other, group, owner, special. Digits past the
// fourth are ignored. A negative value yields negative digits, which grant
// no bits.
func Parse(value int) Spec {
	var s Spec
	s.Other = value % 10
	value /= 10
	s.Group = value % 10
	value /= 10
	s.Owner = value % 10
	value /= 10
	s.Special = value % 10

	return s
}

// ParseString parses the textual form of a legacy permission value.
func ParseString(text string) (Spec, error) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return Spec{}, err
	}
	return Parse(value), nil
}

// Mode returns the owner/group/other permission bits for s.
func (s Spec) Mode() fs.FileMode {
	return classBits(s.Owner)<<ownerShift |
		classBits(s.Group)<<groupShift |
		classBits(s.Other)<<otherShift
}

// Decode converts a legacy permission value straight into mode bits.
func Decode(value int) fs.FileMode {
	return Parse(value).Mode()
}

// classBits maps one digit to its rwx combination. Anything outside 1-7,
// including 8, 9 and negative digits, yields no bits.
func classBits(digit int) fs.FileMode {
	switch digit {
	case 7:
		return read | write | execute
	case 6:
		return read | write
	case 5:
		return read | execute
	case 4:
		return read
	case 3:
		return write | execute
	case 2:
		return write
	case 1:
		return execute
	default:
		return 0
	}
}
