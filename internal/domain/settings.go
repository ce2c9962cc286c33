package domain

import "filemgmt/internal/permission"

// Settings holds the tunables read from the config file and environment.
// The zero-config defaults reproduce the classic behavior exactly.
type Settings struct {
	Log  LogSettings  `yaml:"log"  mapstructure:"log"`
	Help HelpSettings `yaml:"help" mapstructure:"help"`
	Copy CopySettings `yaml:"copy" mapstructure:"copy"`
}

// LogSettings configures diagnostics on stderr.
type LogSettings struct {
	Level  string `yaml:"level"  mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// HelpSettings locates the companion documentation file.
type HelpSettings struct {
	Document string `yaml:"document" mapstructure:"document"`
}

// CopySettings configures the copy command.
type CopySettings struct {
	// Mode is the destination permission in legacy decimal notation.
	Mode int `yaml:"mode" mapstructure:"mode"`
	// BytesPerSecond throttles the copy; zero disables throttling.
	BytesPerSecond int `yaml:"bytes_per_second" mapstructure:"bytes_per_second"`
}

// DefaultDocument is the documentation file streamed by the help command.
const DefaultDocument = "Documentation.txt"

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Log: LogSettings{
			Level:  "warn",
			Format: "text",
		},
		Help: HelpSettings{
			Document: DefaultDocument,
		},
		Copy: CopySettings{
			Mode:           permission.DefaultCopyMode,
			BytesPerSecond: 0,
		},
	}
}

// SettingsRepository persists settings to the config file.
type SettingsRepository interface {
	Save(settings Settings, overwrite bool) error
	Exists() (bool, error)
	Path() string
}

// ConfigProvider provides configuration paths.
type ConfigProvider interface {
	GetConfigDir() (string, error)
	GetConfigPath() (string, error)
}
