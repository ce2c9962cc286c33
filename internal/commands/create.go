package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"filemgmt/internal/domain"
	apperrors "filemgmt/internal/errors"
	"filemgmt/internal/logging"
	"filemgmt/internal/permission"
)

// CreateCommand creates a file with explicit permission bits.
type CreateCommand struct {
	fs     afero.Fs
	logger *slog.Logger
}

// NewCreateCommand creates a new create command.
func NewCreateCommand(fs afero.Fs, logger *slog.Logger) *CreateCommand {
	return &CreateCommand{
		fs:     fs,
		logger: logging.WithOperation(logger, "create"),
	}
}

// CreateRequest contains the parameters for the create command.
type CreateRequest struct {
	Path       string
	Permission permission.Spec
}

// Execute runs the create command. An existing file is truncated, as with
// creat(2); the process umask still applies to the requested bits.
func (c *CreateCommand) Execute(ctx context.Context, req CreateRequest) error {
	logger := logging.WithPath(c.logger, req.Path)
	mode := req.Permission.Mode()

	if req.Permission.Special != 0 {
		logger.DebugContext(ctx, "Ignoring special permission digit", "special", req.Permission.Special)
	}

	file, err := c.fs.OpenFile(req.Path, domain.CreateFlags, mode)
	if err != nil {
		logger.DebugContext(ctx, "Create failed", "error", err)
		return apperrors.NewResourceError("create", req.Path,
			fmt.Sprintf("cannot create file with file name %s", req.Path), err)
	}

	if err := file.Close(); err != nil {
		return apperrors.NewResourceError("close", req.Path, "", err)
	}

	logger.InfoContext(ctx, "Created file", "mode", fmt.Sprintf("%#o", uint32(mode)))
	return nil
}
