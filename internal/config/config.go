package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/kanit-labs/fingerfit/internal/session"
)

// Config is the top-level fingerfit configuration.
type Config struct {
	LogPath string  `mapstructure:"log_path"`
	Session Session `mapstructure:"session"`
	Output  Output  `mapstructure:"output"`
}

// Session defines the exercise timing and progression parameters.
type Session struct {
	HoldSeconds      int `mapstructure:"hold_seconds"`
	CountdownSeconds int `mapstructure:"countdown_seconds"`
	Stability        int `mapstructure:"stability"`
	RoundsPerSet     int `mapstructure:"rounds_per_set"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// SessionConfig converts the configured parameters into the session
// package's Config.
func (c *Config) SessionConfig() session.Config {
	return session.Config{
		HoldSeconds:      c.Session.HoldSeconds,
		CountdownSeconds: c.Session.CountdownSeconds,
		Stability:        c.Session.Stability,
		RoundsPerSet:     c.Session.RoundsPerSet,
	}
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("log_path", DefaultLogPath)
	v.SetDefault("session.hold_seconds", DefaultSession.HoldSeconds)
	v.SetDefault("session.countdown_seconds", DefaultSession.CountdownSeconds)
	v.SetDefault("session.stability", DefaultSession.Stability)
	v.SetDefault("session.rounds_per_set", DefaultSession.RoundsPerSet)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.LogPath = expandPath(cfg.LogPath)
	return &cfg, nil
}

// DBPath returns the full path to the SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
