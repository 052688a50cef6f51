// Package config provides configuration loading and management for idsgen.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete idsgen configuration
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Watch  WatchConfig  `yaml:"watch"`
	Log    LogConfig    `yaml:"log"`
}

// InputConfig configures where requirement workbooks are read from
type InputConfig struct {
	// Dir is the directory containing the workbooks
	Dir string `yaml:"dir"`
	// Pattern is the glob pattern selecting workbooks inside Dir
	Pattern string `yaml:"pattern"`
}

// OutputConfig configures where generated files are written
type OutputConfig struct {
	// Dir is the output directory (created if missing)
	Dir string `yaml:"dir"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	// Debounce is the quiet period after a file change before reconverting
	Debounce string `yaml:"debounce"`
}

// GetDebounce returns the debounce as a duration
func (c *WatchConfig) GetDebounce() time.Duration {
	if c.Debounce == "" {
		return 500 * time.Millisecond
	}
	d, err := time.ParseDuration(c.Debounce)
	if err != nil {
		return 500 * time.Millisecond
	}
	return d
}

// LogConfig configures logging
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Dir:     "./excel",
			Pattern: "*.xlsx",
		},
		Output: OutputConfig{
			Dir: "./output",
		},
		Watch: WatchConfig{
			Debounce: "500ms",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Input.Dir == "" {
		return fmt.Errorf("input.dir is required")
	}
	if c.Input.Pattern == "" {
		return fmt.Errorf("input.pattern is required")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	if c.Watch.Debounce != "" {
		d, err := time.ParseDuration(c.Watch.Debounce)
		if err != nil {
			return fmt.Errorf("watch.debounce is not a duration: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("watch.debounce must not be negative")
		}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Input.Dir != "" {
		c.Input.Dir = other.Input.Dir
	}
	if other.Input.Pattern != "" {
		c.Input.Pattern = other.Input.Pattern
	}
	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}
	if other.Watch.Debounce != "" {
		c.Watch.Debounce = other.Watch.Debounce
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
