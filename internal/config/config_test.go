package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:8080/api" {
		t.Errorf("base_url = %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSec != 10 {
		t.Errorf("timeout_sec = %d, want 10", cfg.API.TimeoutSec)
	}
	if cfg.Tray.Enabled {
		t.Error("tray should be disabled by default")
	}
	if cfg.Debug {
		t.Error("debug should be off by default")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
debug = true

[api]
base_url = "https://habits.example.com/api"
timeout_sec = 30

[state]
path = "/tmp/trackhabit.json"

[tray]
enabled = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.API.BaseURL != "https://habits.example.com/api" {
		t.Errorf("base_url = %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSec != 30 {
		t.Errorf("timeout_sec = %d", cfg.API.TimeoutSec)
	}
	if cfg.State.Path != "/tmp/trackhabit.json" {
		t.Errorf("state path = %q", cfg.State.Path)
	}
	if !cfg.Tray.Enabled {
		t.Error("tray should be enabled")
	}
	if !cfg.Debug {
		t.Error("debug should be on")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[tray]\nenabled = true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Tray.Enabled {
		t.Error("tray should be enabled")
	}
	if cfg.API.BaseURL != "http://localhost:8080/api" {
		t.Errorf("unset base_url should fall back to default, got %q", cfg.API.BaseURL)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty base url", "[api]\nbase_url = \"\"\n"},
		{"negative timeout", "[api]\ntimeout_sec = -1\n"},
		{"invalid toml", "api = [broken\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestTimeout(t *testing.T) {
	cfg := Config{API: APIConfig{TimeoutSec: 15}}
	if cfg.Timeout() != 15*time.Second {
		t.Errorf("Timeout() = %v", cfg.Timeout())
	}

	zero := Config{}
	if zero.Timeout() != 0 {
		t.Errorf("zero timeout = %v, want 0 (no deadline)", zero.Timeout())
	}
}
