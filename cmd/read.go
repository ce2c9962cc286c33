package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"filemgmt/internal/commands"
	"filemgmt/internal/domain"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var readCmd = &cobra.Command{
	Use:   "read path count offset whence",
	Short: "Print count bytes from a positioned offset (-r)",
	Long: `Print count bytes read from offset. whence 0 positions from the start of the
file, any other value from the end. A short read prints what was read.`,
	Args: exactArgs("-r", 4, func(got int) string {
		return fmt.Sprintf("Expected number of argument 4 but found %d, with the -r option", got)
	}),
	RunE: runRead,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	count, err := parseCount("-r", args[1])
	if err != nil {
		return err
	}
	offset, err := parseOffset("-r", args[2])
	if err != nil {
		return err
	}
	whence, err := parseInt("-r", "whence", args[3])
	if err != nil {
		return err
	}

	readCommand := commands.NewReadCommand(app.FileSystem, app.Logger)
	result, err := readCommand.Execute(cmd.Context(), commands.ReadRequest{
		Path:   args[0],
		Count:  count,
		Offset: offset,
		Whence: domain.WhenceFromFlag(whence),
	})
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(result.Data)
	return err
}
