package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"filemgmt/internal/app"
	"filemgmt/internal/domain"
	apperrors "filemgmt/internal/errors"
)

const envPrefix = "FILEMGMT"

//nolint:gochecknoglobals // Cobra CLI pattern for persistent flag variables
var (
	cfgFile string
	verbose bool

	application *app.App

	// extraOptions lets tests swap adapters before the app is wired.
	extraOptions []app.Option
)

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// GetApp returns the initialized application instance.
func GetApp() *app.App {
	return application
}

//nolint:gochecknoglobals // Cobra CLI pattern for root command
var rootCmd = &cobra.Command{
	Use:   "filemgmt",
	Short: "Direct wrappers over primitive file operations",
	Long: `filemgmt creates files with explicit permissions, reads and writes byte ranges
at positioned offsets, reports file metadata and copies files byte by byte.

The classic selectors are accepted as the first argument:
  -c path mode                        create a file
  -r path count offset whence         read count bytes
  -w path access count [offset whence] write operator input
  -s path                             show file statistics
  -v source destination               copy a file
  --help                              print Documentation.txt`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the CLI against the process arguments and exits.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdin, os.Stdout))
}

// Run dispatches args and returns the process exit code. Diagnostics are
// written to stdout next to regular output.
func Run(args []string, stdin io.Reader, stdout io.Writer) int {
	translated, err := translateArgs(args)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return 1
	}

	rootCmd.SetArgs(translated)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stdout)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stdout, err)
		if !apperrors.IsUsage(err) && !apperrors.IsResource(err) {
			// cobra's own parse errors, e.g. an unknown flag on a named command.
			fmt.Fprintln(stdout, helpHint)
		}
		return 1
	}
	return 0
}

//nolint:gochecknoinits // Cobra CLI pattern for flag initialization
func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Global flags
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/filemgmt/config.yaml)")
	rootCmd.PersistentFlags().
		BoolVar(&verbose, "verbose", false, "Enable verbose logging")
}

// newSettingsViper registers every setting with its default so AutomaticEnv
// can resolve FILEMGMT_* overrides.
func newSettingsViper() *viper.Viper {
	defaults := domain.DefaultSettings()

	v := viper.New()
	v.SetDefault("verbose", false)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("help.document", defaults.Help.Document)
	v.SetDefault("copy.mode", defaults.Copy.Mode)
	v.SetDefault("copy.bytes_per_second", defaults.Copy.BytesPerSecond)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func initConfig() {
	v := newSettingsViper()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "filemgmt"))
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	if flag := rootCmd.PersistentFlags().Lookup("verbose"); flag != nil {
		_ = v.BindPFlag("verbose", flag)
	}

	// A missing config file is normal; anything else is reported once the
	// logger exists.
	readErr := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(readErr, &notFound) {
		readErr = nil
	}

	settings := domain.DefaultSettings()
	unmarshalErr := v.Unmarshal(&settings)

	opts := []app.Option{
		app.WithSettings(settings),
		app.WithVerbose(v.GetBool("verbose")),
	}
	opts = append(opts, extraOptions...)

	var err error
	application, err = app.NewApp(context.Background(), opts...)
	if err != nil {
		fmt.Fprintf(rootCmd.OutOrStdout(), "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	if readErr != nil {
		application.Logger.Warn("Ignoring unreadable config file", "path", v.ConfigFileUsed(), "error", readErr)
	}
	if unmarshalErr != nil {
		application.Logger.Warn("Ignoring invalid settings", "error", unmarshalErr)
	}
	if used := v.ConfigFileUsed(); used != "" && readErr == nil {
		application.Logger.Debug("Using config file", "path", used)
	}
}
