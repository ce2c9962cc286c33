package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"filemgmt/internal/commands"
	"filemgmt/internal/domain"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var statCmd = &cobra.Command{
	Use:   "stat path",
	Short: "Show file statistics (-s)",
	Long: `Show the raw mode, inode, device ids, size, access/change/modify times (UTC),
link count, owner ids and permission bits of a file. Ids are not resolved to
names.`,
	Args: exactArgs("-s", 1, func(int) string {
		return "Expected number of argument = 1, with the -s option"
	}),
	RunE: runStat,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(statCmd)
}

func runStat(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	statCommand := commands.NewStatCommand(app.Metadata, app.Logger)
	result, err := statCommand.Execute(cmd.Context(), commands.StatRequest{Path: args[0]})
	if err != nil {
		return err
	}

	writeStatReport(cmd.OutOrStdout(), result.Metadata)
	return nil
}

func writeStatReport(w io.Writer, m domain.Metadata) {
	fmt.Fprintln(w, "Statistics of the given file")
	fmt.Fprintln(w, "------------------------------------")
	fmt.Fprintf(w, "mode : %d\n", m.Mode)
	fmt.Fprintf(w, "inode number :%d\n", m.Inode)
	fmt.Fprintf(w, "Device ID : %d\n", m.Device)
	fmt.Fprintf(w, "File Device ID : %d\n", m.RawDevice)
	fmt.Fprintf(w, "Size of the file in bytes :%d\n", m.Size)
	fmt.Fprintf(w, "Last accessed time : %s\n", formatTimestamp(m.AccessTime))
	fmt.Fprintf(w, "Last permission changed time : %s\n", formatTimestamp(m.ChangeTime))
	fmt.Fprintf(w, "Last modified time : %s\n", formatTimestamp(m.ModifyTime))
	fmt.Fprintf(w, "Number of hard links : %d\n", m.Links)
	fmt.Fprintf(w, "User ID : %d\n", m.UID)
	fmt.Fprintf(w, "Group ID : %d\n", m.GID)
	fmt.Fprintf(w, "Permissions on File : %o\n", uint32(m.Permissions()))
}

// formatTimestamp renders t as day-month-year hour:minute:second in UTC,
// without zero padding.
func formatTimestamp(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%d-%d-%d %d:%d:%d",
		t.Day(), int(t.Month()), t.Year(), t.Hour(), t.Minute(), t.Second())
}
