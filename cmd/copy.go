package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"filemgmt/internal/commands"
	"filemgmt/internal/permission"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var copyCmd = &cobra.Command{
	Use:   "copy source destination",
	Short: "Copy a file byte by byte (-v)",
	Long: `Copy source into destination one byte at a time. The destination is created
(or truncated) with the configured copy mode, 666 by default; source
permissions and timestamps are not carried over.`,
	Args: exactArgs("-v", 2, func(got int) string {
		return fmt.Sprintf("Expected argument 2 but found %d with the -v option.", got)
	}),
	RunE: runCopy,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	copyCommand := commands.NewCopyCommand(app.FileSystem, app.Logger)
	_, err := copyCommand.Execute(cmd.Context(), commands.CopyRequest{
		Source:         args[0],
		Destination:    args[1],
		Mode:           permission.Decode(app.Settings.Copy.Mode),
		BytesPerSecond: app.Settings.Copy.BytesPerSecond,
	})
	return err
}
