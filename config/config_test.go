package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input.Dir != "./excel" {
		t.Errorf("expected default input dir ./excel, got %s", cfg.Input.Dir)
	}
	if cfg.Input.Pattern != "*.xlsx" {
		t.Errorf("expected default pattern *.xlsx, got %s", cfg.Input.Pattern)
	}
	if cfg.Output.Dir != "./output" {
		t.Errorf("expected default output dir ./output, got %s", cfg.Output.Dir)
	}
	if cfg.Watch.GetDebounce() != 500*time.Millisecond {
		t.Errorf("expected default debounce 500ms, got %v", cfg.Watch.GetDebounce())
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing input dir",
			modify:  func(c *Config) { c.Input.Dir = "" },
			wantErr: true,
		},
		{
			name:    "missing input pattern",
			modify:  func(c *Config) { c.Input.Pattern = "" },
			wantErr: true,
		},
		{
			name:    "missing output dir",
			modify:  func(c *Config) { c.Output.Dir = "" },
			wantErr: true,
		},
		{
			name:    "negative debounce",
			modify:  func(c *Config) { c.Watch.Debounce = "-1s" },
			wantErr: true,
		},
		{
			name:    "malformed debounce",
			modify:  func(c *Config) { c.Watch.Debounce = "soon" },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temp file with config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
input:
  dir: "/data/requirements"
  pattern: "**/*.xlsx"
output:
  dir: "/data/ids"
watch:
  debounce: 2s
log:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Input.Dir != "/data/requirements" {
		t.Errorf("expected input dir /data/requirements, got %s", cfg.Input.Dir)
	}
	if cfg.Input.Pattern != "**/*.xlsx" {
		t.Errorf("expected pattern **/*.xlsx, got %s", cfg.Input.Pattern)
	}
	if cfg.Output.Dir != "/data/ids" {
		t.Errorf("expected output dir /data/ids, got %s", cfg.Output.Dir)
	}
	if cfg.Watch.GetDebounce() != 2*time.Second {
		t.Errorf("expected debounce 2s, got %v", cfg.Watch.GetDebounce())
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Log.Level)
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Input:  InputConfig{Dir: "/override"},
		Output: OutputConfig{Dir: "/override/out"},
	}

	base.Merge(override)

	if base.Input.Dir != "/override" {
		t.Errorf("expected input dir /override, got %s", base.Input.Dir)
	}
	// Pattern should remain from base since override didn't set it
	if base.Input.Pattern != "*.xlsx" {
		t.Errorf("expected pattern to remain default, got %s", base.Input.Pattern)
	}
	if base.Output.Dir != "/override/out" {
		t.Errorf("expected output dir /override/out, got %s", base.Output.Dir)
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Input.Dir = "/saved"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	// Load and verify
	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Input.Dir != "/saved" {
		t.Errorf("expected input dir /saved, got %s", loaded.Input.Dir)
	}
}
