package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/AtomsForPeace/fpl-go/fpl"
)

// Load loads the configuration from file, environment and defaults. The
// config file is optional unless a path is given explicitly.
func Load(configPath string) (*Config, error) {
	// A .env file supplements the process environment when present
	_ = godotenv.Load()

	v := viper.New()

	// Set default values
	setDefaults(v)

	// Environment variables override file values, e.g. FPL_ENTRY_ID
	v.SetEnvPrefix("FPL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "fpl"))
		}

		// Check /etc
		v.AddConfigPath("/etc/fpl/")
	}

	// Read config file; defaults and environment carry a complete
	// configuration when none is found
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.base_url", fpl.DefaultBaseURL)
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("api.user_agent", "fpl-go")

	// Entry defaults
	v.SetDefault("entry.id", 0)

	// Live defaults
	v.SetDefault("live.poll_interval", "60s")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}

	if cfg.Entry.ID < 0 {
		return fmt.Errorf("entry.id must not be negative")
	}

	if cfg.Live.PollInterval < 15*time.Second {
		return fmt.Errorf("live.poll_interval must be at least 15s")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
