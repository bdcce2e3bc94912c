package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ThemeConfig holds TUI color configuration. Empty colors fall back to the
// preset.
type ThemeConfig struct {
	Preset     string `mapstructure:"preset"`
	Primary    string `mapstructure:"primary"`
	Secondary  string `mapstructure:"secondary"`
	Accent     string `mapstructure:"accent"`
	Muted      string `mapstructure:"muted"`
	Danger     string `mapstructure:"danger"`
	Background string `mapstructure:"background"`
}

// Config holds the application configuration.
type Config struct {
	Storage     string      `mapstructure:"storage"`
	DatabaseURL string      `mapstructure:"database_url"`
	DataDir     string      `mapstructure:"data_dir"`
	Editor      string      `mapstructure:"editor"`
	LogFile     string      `mapstructure:"log_file"`
	MaxWidth    int         `mapstructure:"max_width"`
	Theme       ThemeConfig `mapstructure:"theme"`
}

// DefaultDataDir returns the default data directory (~/.notectl/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".notectl")
	}
	return filepath.Join(home, ".notectl")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("storage", "libsql")
	v.SetDefault("database_url", "")
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("editor", "")
	v.SetDefault("log_file", "")
	v.SetDefault("max_width", 0)
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("theme.primary", "")
	v.SetDefault("theme.secondary", "")
	v.SetDefault("theme.accent", "")
	v.SetDefault("theme.muted", "")
	v.SetDefault("theme.danger", "")
	v.SetDefault("theme.background", "")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "notectl"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: NOTECTL_STORAGE, NOTECTL_DATABASE_URL, etc.
	v.SetEnvPrefix("NOTECTL")
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && configPath != "" {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ResolveDatabaseURL returns the configured database URL, then $DATABASE_URL,
// then a database file inside the data directory.
func ResolveDatabaseURL(cfg *Config) string {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return "file:" + filepath.Join(cfg.DataDir, "notectl.db")
}

// LogPath returns the log file location, defaulting to notectl.log in the
// data directory.
func LogPath(cfg *Config) string {
	if cfg.LogFile != "" {
		return cfg.LogFile
	}
	return filepath.Join(cfg.DataDir, "notectl.log")
}
