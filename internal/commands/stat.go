package commands

import (
	"context"
	"fmt"
	"log/slog"

	"filemgmt/internal/domain"
	apperrors "filemgmt/internal/errors"
	"filemgmt/internal/logging"
)

// StatCommand retrieves a file's metadata snapshot.
type StatCommand struct {
	reader domain.MetadataReader
	logger *slog.Logger
}

// NewStatCommand creates a new stat command.
func NewStatCommand(reader domain.MetadataReader, logger *slog.Logger) *StatCommand {
	return &StatCommand{
		reader: reader,
		logger: logging.WithOperation(logger, "stat"),
	}
}

// StatRequest contains the parameters for the stat command.
type StatRequest struct {
	Path string
}

// StatResult contains the snapshot taken by the stat command.
type StatResult struct {
	Metadata domain.Metadata
}

// Execute runs the stat command.
func (c *StatCommand) Execute(ctx context.Context, req StatRequest) (*StatResult, error) {
	logger := logging.WithPath(c.logger, req.Path)

	meta, err := c.reader.Metadata(req.Path)
	if err != nil {
		logger.DebugContext(ctx, "Stat failed", "error", err)
		return nil, apperrors.NewResourceError("stat", req.Path,
			fmt.Sprintf("cannot stat the file : %s", req.Path), err)
	}

	logger.InfoContext(ctx, "Retrieved metadata", "inode", meta.Inode, "size", meta.Size)
	return &StatResult{Metadata: meta}, nil
}
