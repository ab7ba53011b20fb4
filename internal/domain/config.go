package domain

import "path/filepath"

// Configuration file names and defaults.
const (
	ConfigDirName       = "todo"        // Directory under the user config home
	ConfigFileName      = "config.toml" // Global config file name
	LocalConfigFileName = ".todo.toml"  // Config file name in the working directory
	LogFileName         = "todo.log"    // Log file name inside the log directory
	DefaultStorePath    = "tasks.json"  // Task file used when nothing else is configured
	DefaultLogLevel     = "info"
)

// Config is the application configuration.
type Config struct {
	Warnings []string // Unknown keys and sections found while loading
	Log      LogConfig
	Store    StoreConfig
}

// StoreConfig holds the [store] section.
type StoreConfig struct {
	Path string // Task file path; relative paths resolve against the working directory
}

// LogConfig holds the [log] section.
type LogConfig struct {
	Level    string // debug, info, warn or error
	Dir      string // Log directory; empty means the default state directory
	Disabled bool
}

// LoadConfigOptions selects which configuration sources are read.
type LoadConfigOptions struct {
	IgnoreGlobal bool
	IgnoreLocal  bool
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{Path: DefaultStorePath},
		Log:   LogConfig{Level: DefaultLogLevel},
	}
}

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, ConfigDirName)
}

// GlobalConfigPath returns the global config file path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// LocalConfigPath returns the config file path inside workDir.
func LocalConfigPath(workDir string) string {
	return filepath.Join(workDir, LocalConfigFileName)
}

// DefaultLogDir returns the log directory below a state home
// (typically XDG_STATE_HOME or ~/.local/state).
func DefaultLogDir(stateHome string) string {
	return filepath.Join(stateHome, ConfigDirName, "logs")
}

// ConfigTemplate is written by `todo config --init`.
const ConfigTemplate = `# todo configuration
#
# Settings in ./.todo.toml override the global file.

[store]
# Task file. Relative paths resolve against the working directory.
# The --file flag takes precedence.
path = "tasks.json"

[log]
# debug, info, warn or error
level = "info"
# Log directory (default: $XDG_STATE_HOME/todo/logs)
# dir = ""
# disabled = true
`
