package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/trackhabit/trackhabit/internal/constants"
)

// Config is the client configuration, loaded from
// ~/.config/trackhabit/config.toml when present.
type Config struct {
	API   APIConfig   `toml:"api"`
	State StateConfig `toml:"state"`
	Tray  TrayConfig  `toml:"tray"`
	Debug bool        `toml:"debug"`
}

type APIConfig struct {
	BaseURL string `toml:"base_url"`
	// TimeoutSec bounds each request. Zero disables the timeout entirely,
	// matching the behavior the backend was originally driven with.
	TimeoutSec int `toml:"timeout_sec"`
}

type StateConfig struct {
	// Path is the local state location: a .json file, a SQLite database
	// path, or a postgres:// connection string (credentials via keyring,
	// never embedded).
	Path string `toml:"path"`
}

type TrayConfig struct {
	Enabled bool `toml:"enabled"`
}

// Dir returns the application config directory, creating nothing.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	return filepath.Join(base, constants.AppName), nil
}

func DefaultConfig() Config {
	dir, err := Dir()
	if err != nil {
		dir = "."
	}
	return Config{
		API: APIConfig{
			BaseURL:    "http://localhost:8080/api",
			TimeoutSec: 10,
		},
		State: StateConfig{
			Path: filepath.Join(dir, "state.db"),
		},
		Tray:  TrayConfig{Enabled: false},
		Debug: false,
	}
}

// Load reads the config file at path, falling back to defaults for a missing
// file. Unset fields keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.API.BaseURL == "" {
		return cfg, fmt.Errorf("api.base_url cannot be empty")
	}
	if cfg.API.TimeoutSec < 0 {
		return cfg, fmt.Errorf("api.timeout_sec cannot be negative")
	}

	return cfg, nil
}

// Timeout converts the configured timeout to a duration. Zero means no
// timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSec) * time.Second
}
