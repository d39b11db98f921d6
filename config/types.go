package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Entry   EntryConfig   `mapstructure:"entry"`
	Live    LiveConfig    `mapstructure:"live"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds FPL API connection settings
type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// EntryConfig identifies the manager entry used when a command is not
// given one explicitly
type EntryConfig struct {
	ID int64 `mapstructure:"id"`
}

// LiveConfig contains live score settings
type LiveConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// FilterConfig contains the default filter expression and named presets
type FilterConfig struct {
	Default string            `mapstructure:"default"`
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
