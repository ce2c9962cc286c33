package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"filemgmt/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Print the bundled documentation (--help)",
	Long: `Print the documentation file (Documentation.txt in the working directory
unless help.document is configured) exactly as written.`,
	Args: cobra.ArbitraryArgs,
	RunE: runHelp,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.SetHelpCommand(helpCmd)
}

func runHelp(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	helpCommand := commands.NewHelpCommand(app.FileSystem, app.Logger)
	return helpCommand.Execute(cmd.Context(), commands.HelpRequest{
		Document: app.Settings.Help.Document,
	}, cmd.OutOrStdout())
}
