package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build information",
	Long: `Show the filemgmt release, the commit it was built from and when and by whom
it was built. --short prints the release alone, for scripts.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().Bool("short", false, "Print only the release")
}

// String renders v as a single report line.
func (v VersionInfo) String() string {
	return fmt.Sprintf("filemgmt %s (commit %s, built %s by %s)", v.Version, v.Commit, v.Date, v.BuiltBy)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := GetVersionInfo()

	if short, _ := cmd.Flags().GetBool("short"); short {
		fmt.Fprintln(cmd.OutOrStdout(), info.Version)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), info)
	return nil
}
