package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"filemgmt/internal/commands"
	"filemgmt/internal/domain"
	apperrors "filemgmt/internal/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var writeCmd = &cobra.Command{
	Use:   "write path access count [offset whence]",
	Short: "Write operator input to a file (-w)",
	Long: `Prompt for one whitespace-delimited token and write exactly count bytes of it.

access 0 writes at offset (whence 0 = from start, otherwise from end),
access 1 appends, access 2 truncates first. The file is created if absent.
A token shorter than count is padded with zero bytes.`,
	Args: func(_ *cobra.Command, args []string) error {
		_, err := validateWriteArgs(args)
		return err
	},
	RunE: runWrite,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(writeCmd)
}

// validateWriteArgs checks arity against the access mode before any file is
// opened.
func validateWriteArgs(args []string) (domain.AccessMode, error) {
	if len(args) < 3 {
		return 0, apperrors.NewUsageError("-w", "atleast 3 argument are required, with the -w option")
	}

	value, err := parseInt("-w", "access mode", args[1])
	if err != nil {
		return 0, err
	}

	access := domain.AccessMode(value)
	if !access.Valid() {
		return 0, apperrors.Usagef("-w", "invalid access mode %d, with the -w option", value)
	}

	expected := 3
	if access == domain.AccessAtOffset {
		expected = 5
	}

	return access, exactArgs("-w", expected, func(got int) string {
		return fmt.Sprintf("Expected %d argument but found %d, for the given mode in -w option", expected, got)
	})(nil, args)
}

func runWrite(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	access, err := validateWriteArgs(args)
	if err != nil {
		return err
	}

	count, err := parseCount("-w", args[2])
	if err != nil {
		return err
	}

	req := commands.WriteRequest{
		Path:   args[0],
		Access: access,
		Count:  count,
	}
	if access == domain.AccessAtOffset {
		if req.Offset, err = parseOffset("-w", args[3]); err != nil {
			return err
		}
		whence, err := parseInt("-w", "whence", args[4])
		if err != nil {
			return err
		}
		req.Whence = domain.WhenceFromFlag(whence)
	}

	input := app.NewTokenReader(cmd.InOrStdin(), cmd.OutOrStdout())
	writeCommand := commands.NewWriteCommand(app.FileSystem, input, app.Logger)
	_, err = writeCommand.Execute(cmd.Context(), req)
	return err
}
