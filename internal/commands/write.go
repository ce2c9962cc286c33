package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"filemgmt/internal/domain"
	apperrors "filemgmt/internal/errors"
	"filemgmt/internal/logging"
)

// WritePrompt is shown before the content token is read.
const WritePrompt = "Enter the text you want to write : \n"

// WriteCommand writes operator input at an offset, appended, or after
// truncation.
type WriteCommand struct {
	fs     afero.Fs
	input  domain.TokenReader
	logger *slog.Logger
}

// NewWriteCommand creates a new write command.
func NewWriteCommand(fs afero.Fs, input domain.TokenReader, logger *slog.Logger) *WriteCommand {
	return &WriteCommand{
		fs:     fs,
		input:  input,
		logger: logging.WithOperation(logger, "write"),
	}
}

// WriteRequest contains the parameters for the write command. Offset and
// Whence are only used with domain.AccessAtOffset.
type WriteRequest struct {
	Path   string
	Access domain.AccessMode
	Count  int
	Offset int64
	Whence domain.Whence
}

// WriteResult describes what was written.
type WriteResult struct {
	Written int
	// Padding is the number of zero bytes written past the end of the token.
	Padding int
}

// Execute runs the write command. Exactly Count bytes are written: the
// token is cut to Count, or padded with zero bytes when shorter.
func (c *WriteCommand) Execute(ctx context.Context, req WriteRequest) (*WriteResult, error) {
	logger := logging.WithPath(c.logger, req.Path).With("access", req.Access.String())

	flags, err := req.Access.OpenFlags()
	if err != nil {
		return nil, apperrors.Usagef("-w", "invalid access mode %d, with the -w option", int(req.Access))
	}

	file, err := c.fs.OpenFile(req.Path, flags, domain.DefaultWriteMode)
	if err != nil {
		logger.DebugContext(ctx, "Open failed", "error", err)
		return nil, apperrors.NewResourceError("open", req.Path,
			fmt.Sprintf("cannot open the file : %s", req.Path), err)
	}
	defer file.Close()

	if req.Access == domain.AccessAtOffset {
		if _, err := file.Seek(req.Offset, req.Whence.SeekWhence()); err != nil {
			return nil, apperrors.NewResourceError("seek", req.Path,
				fmt.Sprintf("cannot seek in the file : %s", req.Path), err)
		}
	}

	if !c.input.IsInteractive() {
		logger.DebugContext(ctx, "Reading content from non-interactive input")
	}

	token, err := c.input.ReadToken(ctx, WritePrompt)
	if err != nil {
		if !errors.Is(err, domain.ErrNoInput) {
			return nil, apperrors.NewResourceError("input", req.Path, "cannot read the text to write", err)
		}
		logger.WarnContext(ctx, "No input token, writing zero bytes only")
	}

	buffer := make([]byte, req.Count)
	copied := copy(buffer, token)

	n, err := file.Write(buffer)
	if err != nil {
		return nil, apperrors.NewResourceError("write", req.Path,
			fmt.Sprintf("cannot write to the file : %s", req.Path), err)
	}

	result := &WriteResult{Written: n, Padding: req.Count - copied}
	if result.Padding > 0 {
		logger.DebugContext(ctx, "Token shorter than count, padded", "padding", result.Padding)
	}
	logger.InfoContext(ctx, "Wrote bytes", "count", n)

	return result, nil
}
