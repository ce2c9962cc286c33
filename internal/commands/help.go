package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"

	apperrors "filemgmt/internal/errors"
	"filemgmt/internal/logging"
)

// HelpCommand streams the companion documentation file.
type HelpCommand struct {
	fs     afero.Fs
	logger *slog.Logger
}

// NewHelpCommand creates a new help command.
func NewHelpCommand(fs afero.Fs, logger *slog.Logger) *HelpCommand {
	return &HelpCommand{
		fs:     fs,
		logger: logging.WithOperation(logger, "help"),
	}
}

// HelpRequest contains the parameters for the help command.
type HelpRequest struct {
	Document string
}

// Execute copies the documentation to out byte by byte.
func (c *HelpCommand) Execute(ctx context.Context, req HelpRequest, out io.Writer) error {
	logger := logging.WithPath(c.logger, req.Document)

	doc, err := c.fs.Open(req.Document)
	if err != nil {
		logger.DebugContext(ctx, "Open documentation failed", "error", err)
		return apperrors.NewResourceError("open", req.Document,
			fmt.Sprintf("Cannot open documentation file : %s", req.Document), err)
	}
	defer doc.Close()

	b := make([]byte, 1)
	for {
		n, err := doc.Read(b)
		if n == 1 {
			if _, writeErr := out.Write(b); writeErr != nil {
				return fmt.Errorf("failed to write documentation: %w", writeErr)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return apperrors.NewResourceError("read", req.Document, "", err)
		}
	}
}
