package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"filemgmt/internal/commands"
	apperrors "filemgmt/internal/errors"
	"filemgmt/internal/permission"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var createCmd = &cobra.Command{
	Use:   "create path mode",
	Short: "Create a file with the given permissions (-c)",
	Long: `Create a file with permissions given in legacy decimal notation, one digit per
class: owner, group, other (e.g. 644). A leading fourth digit (setuid, setgid,
sticky) is accepted but not applied.`,
	Args: exactArgs("-c", 2, func(int) string {
		return "Expected number of argument = 2, with the -c option"
	}),
	RunE: runCreate,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	spec, err := permission.ParseString(args[1])
	if err != nil {
		return apperrors.Usagef("-c", "invalid mode %q, with the -c option", args[1])
	}

	createCommand := commands.NewCreateCommand(app.FileSystem, app.Logger)
	err = createCommand.Execute(cmd.Context(), commands.CreateRequest{
		Path:       args[0],
		Permission: spec,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "File created Successfully!!")
	return nil
}
