package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfigFile(t, "entry:\n  id: 12345\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Entry.ID != 12345 {
		t.Errorf("Entry.ID = %d, want 12345", cfg.Entry.ID)
	}
	if cfg.API.BaseURL == "" {
		t.Error("expected default api.base_url")
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("API.Timeout = %v, want 30s", cfg.API.Timeout)
	}
	if cfg.API.UserAgent != "fpl-go" {
		t.Errorf("API.UserAgent = %q, want fpl-go", cfg.API.UserAgent)
	}
	if cfg.Live.PollInterval != 60*time.Second {
		t.Errorf("Live.PollInterval = %v, want 60s", cfg.Live.PollInterval)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
	if !cfg.Logging.Color {
		t.Error("expected logging.color default true")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `api:
  timeout: 10s
  user_agent: my-fpl-tool
entry:
  id: 777
live:
  poll_interval: 30s
filter:
  default: "isAvailable()"
  presets:
    premium: "price() >= 10.0"
    budget: "price() < 5.0"
logging:
  level: debug
  format: json
  color: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("API.Timeout = %v, want 10s", cfg.API.Timeout)
	}
	if cfg.API.UserAgent != "my-fpl-tool" {
		t.Errorf("API.UserAgent = %q", cfg.API.UserAgent)
	}
	if cfg.Entry.ID != 777 {
		t.Errorf("Entry.ID = %d, want 777", cfg.Entry.ID)
	}
	if cfg.Live.PollInterval != 30*time.Second {
		t.Errorf("Live.PollInterval = %v, want 30s", cfg.Live.PollInterval)
	}
	if cfg.Filter.Default != "isAvailable()" {
		t.Errorf("Filter.Default = %q", cfg.Filter.Default)
	}
	if len(cfg.Filter.Presets) != 2 {
		t.Errorf("expected 2 presets, got %d", len(cfg.Filter.Presets))
	}
	if cfg.Filter.Presets["premium"] != "price() >= 10.0" {
		t.Errorf("Filter.Presets[premium] = %q", cfg.Filter.Presets["premium"])
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" || cfg.Logging.Color {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for explicitly named missing file")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FPL_LOGGING_LEVEL", "debug")
	t.Setenv("FPL_ENTRY_ID", "4242")

	path := writeConfigFile(t, "logging:\n  level: info\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want env override debug", cfg.Logging.Level)
	}
	if cfg.Entry.ID != 4242 {
		t.Errorf("Entry.ID = %d, want env override 4242", cfg.Entry.ID)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			API:     APIConfig{BaseURL: "https://fantasy.premierleague.com/api", Timeout: 30 * time.Second},
			Entry:   EntryConfig{ID: 1},
			Live:    LiveConfig{PollInterval: 60 * time.Second},
			Logging: LoggingConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(cfg *Config) {},
			wantErr: false,
		},
		{
			name:    "missing base url",
			mutate:  func(cfg *Config) { cfg.API.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "negative entry id",
			mutate:  func(cfg *Config) { cfg.Entry.ID = -1 },
			wantErr: true,
		},
		{
			name:    "poll interval too short",
			mutate:  func(cfg *Config) { cfg.Live.PollInterval = 5 * time.Second },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
