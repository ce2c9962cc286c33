package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"

	"filemgmt/internal/domain"
	apperrors "filemgmt/internal/errors"
	"filemgmt/internal/logging"
)

// ReadCommand reads a byte range from a positioned offset.
type ReadCommand struct {
	fs     afero.Fs
	logger *slog.Logger
}

// NewReadCommand creates a new read command.
func NewReadCommand(fs afero.Fs, logger *slog.Logger) *ReadCommand {
	return &ReadCommand{
		fs:     fs,
		logger: logging.WithOperation(logger, "read"),
	}
}

// ReadRequest contains the parameters for the read command.
type ReadRequest struct {
	Path   string
	Count  int
	Offset int64
	Whence domain.Whence
}

// ReadResult contains the bytes actually read.
type ReadResult struct {
	Data []byte
}

// Execute runs the read command. It issues a single read of Count bytes;
// a short read yields fewer bytes and is not retried.
func (c *ReadCommand) Execute(ctx context.Context, req ReadRequest) (*ReadResult, error) {
	logger := logging.WithPath(c.logger, req.Path)

	file, err := c.fs.Open(req.Path)
	if err != nil {
		logger.DebugContext(ctx, "Open failed", "error", err)
		return nil, apperrors.NewResourceError("open", req.Path,
			fmt.Sprintf("cannot open the file : %s", req.Path), err)
	}
	defer file.Close()

	if _, err := file.Seek(req.Offset, req.Whence.SeekWhence()); err != nil {
		return nil, apperrors.NewResourceError("seek", req.Path,
			fmt.Sprintf("cannot seek in the file : %s", req.Path), err)
	}

	buffer := make([]byte, req.Count)
	n, err := file.Read(buffer)
	if err != nil && !isEndOfFile(err) {
		return nil, apperrors.NewResourceError("read", req.Path,
			fmt.Sprintf("cannot read from the file : %s", req.Path), err)
	}

	if n < req.Count {
		logger.DebugContext(ctx, "Short read", "requested", req.Count, "read", n)
	}
	logger.InfoContext(ctx, "Read bytes",
		"offset", req.Offset,
		"whence", req.Whence.String(),
		"count", n)

	return &ReadResult{Data: buffer[:n]}, nil
}

// isEndOfFile reports whether err only means the offset is at or past the
// end of the file. In-memory files report a position past the end as
// io.ErrUnexpectedEOF.
func isEndOfFile(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
