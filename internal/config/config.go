// Package config loads the cubesim CLI configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubesim"
)

// cfgFile is the config location relative to the XDG config directories.
const cfgFile = "cubesim/config.json"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// Config holds user settings for the CLI front end.
type Config struct {
	ScrambleLength       int    `json:"scramble_length"`
	SolveDelayMs         int    `json:"solve_delay_ms"`
	RecordReorientations bool   `json:"record_reorientations"`
	Journal              bool   `json:"journal"`
	DBPath               string `json:"db_path,omitempty"`
	LogLevel             string `json:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ScrambleLength:       cubesim.DefaultScrambleLength,
		SolveDelayMs:         150,
		RecordReorientations: true,
		Journal:              false,
		LogLevel:             "warning",
	}
}

// Load reads the config at path. An empty path searches the XDG config
// directories. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		found, err := xdg.SearchConfigFile(cfgFile)
		if err != nil {
			return &cfg, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.ScrambleLength < 1 {
		return fmt.Errorf("%w: scramble_length must be positive, got %d", ErrInvalidConfig, c.ScrambleLength)
	}
	if c.SolveDelayMs < 0 {
		return fmt.Errorf("%w: solve_delay_ms must not be negative, got %d", ErrInvalidConfig, c.SolveDelayMs)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Save writes the config to path, or to the user XDG config file when path
// is empty, and returns the path written.
func (c *Config) Save(path string) (string, error) {
	if path == "" {
		p, err := xdg.ConfigFile(cfgFile)
		if err != nil {
			return "", fmt.Errorf("failed to resolve config path: %w", err)
		}
		path = p
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}

// SolveDelay returns the pause between undo steps in the play view.
func (c *Config) SolveDelay() time.Duration {
	return time.Duration(c.SolveDelayMs) * time.Millisecond
}

// Level returns the configured log level.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
