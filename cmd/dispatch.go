package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	apperrors "filemgmt/internal/errors"
)

const helpHint = "Type filemgmt --help for more information"

// selectors maps the classic single-dash options onto subcommands.
//
//nolint:gochecknoglobals // Fixed lookup table
var selectors = map[string]string{
	"-c":     "create",
	"-r":     "read",
	"-w":     "write",
	"-s":     "stat",
	"-v":     "copy",
	"--help": "help",
}

// translateArgs turns a classic invocation into cobra arguments. The
// selector must come first; everything after it is positional, so a "--"
// terminator keeps values such as "-4" from being read as flags.
func translateArgs(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, apperrors.NewUsageError("", helpHint)
	}

	if name, ok := selectors[args[0]]; ok {
		translated := make([]string, 0, len(args)+1)
		translated = append(translated, name, "--")
		return append(translated, args[1:]...), nil
	}

	if isSubcommand(args[0]) {
		return args, nil
	}

	return nil, apperrors.NewUsageError(args[0], "No such option exist.\n"+helpHint)
}

func isSubcommand(name string) bool {
	if name == helpCmd.Name() {
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}

// exactArgs fails with message unless exactly n positional args are given.
func exactArgs(option string, n int, message func(got int) string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return apperrors.NewUsageError(option, message(len(args)))
		}
		return nil
	}
}

func parseInt(option, name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperrors.Usagef(option, "invalid %s %q, with the %s option", name, value, option)
	}
	return n, nil
}

func parseCount(option, value string) (int, error) {
	n, err := parseInt(option, "count", value)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, apperrors.Usagef(option, "invalid count %q, with the %s option", value, option)
	}
	return n, nil
}

func parseOffset(option, value string) (int64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, apperrors.Usagef(option, "invalid offset %q, with the %s option", value, option)
	}
	return n, nil
}
