package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/spf13/afero"
	"golang.org/x/time/rate"

	"filemgmt/internal/domain"
	apperrors "filemgmt/internal/errors"
	"filemgmt/internal/logging"
)

// CopyCommand copies a file one byte at a time.
type CopyCommand struct {
	fs     afero.Fs
	logger *slog.Logger
}

// NewCopyCommand creates a new copy command.
func NewCopyCommand(fs afero.Fs, logger *slog.Logger) *CopyCommand {
	return &CopyCommand{
		fs:     fs,
		logger: logging.WithOperation(logger, "copy"),
	}
}

// CopyRequest contains the parameters for the copy command.
type CopyRequest struct {
	Source      string
	Destination string
	// Mode is applied to a newly created destination.
	Mode fs.FileMode
	// BytesPerSecond throttles the transfer when positive.
	BytesPerSecond int
}

// CopyResult describes a finished copy.
type CopyResult struct {
	Bytes int64
}

// Execute runs the copy command. Source metadata is not carried over.
func (c *CopyCommand) Execute(ctx context.Context, req CopyRequest) (result *CopyResult, err error) {
	logger := c.logger.With("source", req.Source, "destination", req.Destination)

	source, err := c.fs.Open(req.Source)
	if err != nil {
		logger.DebugContext(ctx, "Open source failed", "error", err)
		return nil, apperrors.NewResourceError("open", req.Source,
			fmt.Sprintf("Cannot open file %s", req.Source), err)
	}
	defer source.Close()

	dest, err := c.fs.OpenFile(req.Destination, domain.CreateFlags, req.Mode)
	if err != nil {
		logger.DebugContext(ctx, "Create destination failed", "error", err)
		return nil, apperrors.NewResourceError("create", req.Destination,
			fmt.Sprintf("Cannot create file %s", req.Destination), err)
	}
	defer func() {
		if closeErr := dest.Close(); closeErr != nil {
			err = apperrors.Join(err, apperrors.NewResourceError("close", req.Destination, "", closeErr))
		}
	}()

	var limiter *rate.Limiter
	if req.BytesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(req.BytesPerSecond), req.BytesPerSecond)
		logger.DebugContext(ctx, "Throttling copy", "bytesPerSecond", req.BytesPerSecond)
	}

	var copied int64
	b := make([]byte, 1)
	for {
		n, readErr := source.Read(b)
		if n == 1 {
			if limiter != nil {
				if waitErr := limiter.Wait(ctx); waitErr != nil {
					return nil, fmt.Errorf("copy interrupted: %w", waitErr)
				}
			}
			if _, writeErr := dest.Write(b); writeErr != nil {
				return nil, apperrors.NewResourceError("write", req.Destination,
					fmt.Sprintf("Cannot write to file %s", req.Destination), writeErr)
			}
			copied++
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return nil, apperrors.NewResourceError("read", req.Source,
				fmt.Sprintf("Cannot read from file %s", req.Source), readErr)
		}
	}

	logging.WithPath(logger, req.Destination).InfoContext(ctx, "Copied file", "bytes", copied)
	return &CopyResult{Bytes: copied}, nil
}
