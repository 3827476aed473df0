// Package config loads the optional YAML configuration for the interactive
// viewer: animation timing and key-binding overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/seamusw/cubelet"
)

// Config controls the interactive viewer. The zero value is not usable;
// start from Default.
type Config struct {
	// FrameDurationMs is the delay between animation frames.
	FrameDurationMs int `yaml:"frame_duration_ms"`
	// FrameCount is how many interpolated frames a turn is drawn with.
	FrameCount int `yaml:"frame_count"`
	// Keys maps single keys to move notation, overriding or extending
	// the built-in bindings. Example: {"m": "R2"}.
	Keys map[string]string `yaml:"keys"`
}

// Default returns the built-in configuration, matching the classic
// 50 ms / 10 frame animation.
func Default() Config {
	return Config{
		FrameDurationMs: 50,
		FrameCount:      10,
	}
}

// FrameDuration returns the frame delay as a time.Duration.
func (c Config) FrameDuration() time.Duration {
	return time.Duration(c.FrameDurationMs) * time.Millisecond
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubelet", "config.yaml"), nil
}

// Load reads and validates a YAML configuration file. Fields omitted from
// the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadDefault loads the config from the default path, falling back to the
// built-in defaults when the file does not exist.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks field ranges and that key bindings parse as moves.
func (c Config) Validate() error {
	if c.FrameDurationMs < 1 || c.FrameDurationMs > 1000 {
		return fmt.Errorf("frame_duration_ms %d out of range [1, 1000]", c.FrameDurationMs)
	}
	if c.FrameCount < 1 || c.FrameCount > 120 {
		return fmt.Errorf("frame_count %d out of range [1, 120]", c.FrameCount)
	}
	for key, notation := range c.Keys {
		if len(key) != 1 {
			return fmt.Errorf("key %q must be a single character", key)
		}
		if _, err := cubelet.ParseMove(notation); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
	}
	return nil
}
