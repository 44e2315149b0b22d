// Package config loads the calculator's settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calculator"
)

// Environment variables which override the config file.
const (
	EnvLogLevel    = "CALCULATOR_LOG_LEVEL"
	EnvLogFile     = "CALCULATOR_LOG_FILE"
	EnvAddr        = "CALCULATOR_ADDR"
	EnvHistoryRows = "CALCULATOR_HISTORY_ROWS"
)

// Config holds all settings.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	TUI    TUIConfig    `yaml:"tui"`
	Server ServerConfig `yaml:"server"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error, or disabled.
	Level string `yaml:"level"`
	// File is the path of a file to append logs to. If empty, logs go to
	// stderr, except in the terminal UI, which then doesn't log.
	File string `yaml:"file"`
}

// TUIConfig configures the terminal calculator.
type TUIConfig struct {
	// HistoryRows is the number of history entries shown under the display.
	HistoryRows int `yaml:"history_rows"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info"},
		TUI:    TUIConfig{HistoryRows: 3},
		Server: ServerConfig{Addr: "127.0.0.1:8790"},
	}
}

// DefaultPath returns the default config file location, or the empty string
// if the user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "calculator", "config.yaml")
}

// Load reads the config file at path on top of the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// Defaults only.
		default:
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}
	cfg.Log.Level = envOrDefault(EnvLogLevel, cfg.Log.Level)
	cfg.Log.File = envOrDefault(EnvLogFile, cfg.Log.File)
	cfg.Server.Addr = envOrDefault(EnvAddr, cfg.Server.Addr)
	if v := os.Getenv(EnvHistoryRows); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvHistoryRows, err)
		}
		cfg.TUI.HistoryRows = n
	}
	cfg.TUI.HistoryRows = clamp(cfg.TUI.HistoryRows, 0, calculator.HistorySize)
	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}
