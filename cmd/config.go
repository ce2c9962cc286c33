package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"filemgmt/internal/domain"
	apperrors "filemgmt/internal/errors"
	"filemgmt/internal/services/config"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the filemgmt configuration file",
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective settings to the config file",
	Long: `Write the settings currently in effect (defaults, environment and any existing
config file) as YAML to the config file. An existing file is kept unless
--force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)

	configInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

func resolveConfigPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}

	app := GetApp()
	if app == nil {
		return "", errors.New("application not initialized")
	}
	return app.ConfigProvider.GetConfigPath()
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")

	var repo domain.SettingsRepository = config.NewRepository(app.FileSystem, path, app.Logger)
	if err := repo.Save(app.Settings, force); err != nil {
		return apperrors.NewResourceError("write", path,
			fmt.Sprintf("failed to write configuration: %v", err), err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to: %s\n", repo.Path())
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
