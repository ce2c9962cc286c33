package domain

import (
	"fmt"
	"io"
	"os"
)

// Whence is the reference point for a seek offset.
type Whence int

const (
	// FromStart positions relative to the beginning of the file.
	FromStart Whence = iota
	// FromEnd positions relative to the end of the file.
	FromEnd
)

// WhenceFromFlag maps the command line flag to a Whence: 0 is the start of
// the file, any other value is the end. There is no "relative to current".
func WhenceFromFlag(flag int) Whence {
	if flag == 0 {
		return FromStart
	}
	return FromEnd
}

// SeekWhence returns the io.Seek* constant for w.
func (w Whence) SeekWhence() int {
	if w == FromEnd {
		return io.SeekEnd
	}
	return io.SeekStart
}

func (w Whence) String() string {
	if w == FromEnd {
		return "end"
	}
	return "start"
}

// AccessMode selects how the write command opens its target.
type AccessMode int

const (
	// AccessAtOffset writes at a seeked position without truncating.
	AccessAtOffset AccessMode = 0
	// AccessAppend writes at the end of the file.
	AccessAppend AccessMode = 1
	// AccessTruncate empties the file before writing.
	AccessTruncate AccessMode = 2
)

// Valid reports whether m is one of the known access modes.
func (m AccessMode) Valid() bool {
	return m == AccessAtOffset || m == AccessAppend || m == AccessTruncate
}

// OpenFlags returns the os.OpenFile flags for m. Every mode creates the file
// when it is absent.
func (m AccessMode) OpenFlags() (int, error) {
	switch m {
	case AccessAtOffset:
		return os.O_WRONLY | os.O_CREATE, nil
	case AccessAppend:
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND, nil
	case AccessTruncate:
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC, nil
	default:
		return 0, fmt.Errorf("unknown access mode %d", int(m))
	}
}

func (m AccessMode) String() string {
	switch m {
	case AccessAtOffset:
		return "offset"
	case AccessAppend:
		return "append"
	case AccessTruncate:
		return "truncate"
	default:
		return fmt.Sprintf("AccessMode(%d)", int(m))
	}
}

// CreateFlags are the flags of a classic creat(2) call.
const CreateFlags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC

// DefaultWriteMode is the permission used when the write command creates a file.
const DefaultWriteMode os.FileMode = 0o666
