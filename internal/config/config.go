package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ThemeConfig selects a theme preset with optional color overrides.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Primary       string `mapstructure:"primary"`
	Secondary     string `mapstructure:"secondary"`
	Accent        string `mapstructure:"accent"`
	Muted         string `mapstructure:"muted"`
	Danger        string `mapstructure:"danger"`
	Background    string `mapstructure:"background"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// ShellConfig holds shell prompt integration configuration.
type ShellConfig struct {
	CacheTTL    string `mapstructure:"cache_ttl"`
	DoneIcon    string `mapstructure:"done_icon"`
	NotDoneIcon string `mapstructure:"not_done_icon"`
	StreakIcon  string `mapstructure:"streak_icon"`
}

// Config holds the application configuration.
type Config struct {
	DataDir    string      `mapstructure:"data_dir"`
	DateFormat string      `mapstructure:"date_format"`
	Habits     []string    `mapstructure:"habits"`
	Theme      ThemeConfig `mapstructure:"theme"`
	Shell      ShellConfig `mapstructure:"shell"`
}

// DefaultDataDir returns the default data directory (~/.daycheck/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".daycheck")
	}
	return filepath.Join(home, ".daycheck")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("date_format", "2006-01-02")
	v.SetDefault("habits", []string{})
	v.SetDefault("shell.cache_ttl", "5m")
	v.SetDefault("shell.done_icon", "✓")
	v.SetDefault("shell.not_done_icon", "✗")
	v.SetDefault("shell.streak_icon", "🔥")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "daycheck"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: DAYCHECK_DATA_DIR, DAYCHECK_DATE_FORMAT, etc.
	v.SetEnvPrefix("DAYCHECK")
	v.AutomaticEnv()

	// Read config file (ignore not found unless a file was named explicitly)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
