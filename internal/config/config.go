// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"pitui/internal/adapter/output"
	"pitui/internal/theme"
)

// Default configuration values.
const (
	DefaultThemeMode    = "auto"
	DefaultHistoryLimit = 50
	DefaultOutputFormat = "plain"
)

// Config represents the pitui configuration.
type Config struct {
	Theme  ThemeConfig  `toml:"theme"`
	TUI    TUIConfig    `toml:"tui"`
	Output OutputConfig `toml:"output"`
}

// ThemeConfig holds the theme preference.
type ThemeConfig struct {
	Mode string `toml:"mode"` // auto, light, dark
}

// TUIConfig holds TUI-specific settings.
type TUIConfig struct {
	ShowKeybinds bool `toml:"show_keybinds"`
	HistoryLimit int  `toml:"history_limit"` // Max session history entries (0 = unlimited)
}

// OutputConfig holds defaults for the digits command.
type OutputConfig struct {
	Format string `toml:"format"` // plain, json, yaml
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			Mode: DefaultThemeMode,
		},
		TUI: TUIConfig{
			ShowKeybinds: true,
			HistoryLimit: DefaultHistoryLimit,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "pitui", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks that all configured values are recognized.
func (c *Config) Validate() error {
	if !theme.Mode(c.Theme.Mode).Valid() {
		return fmt.Errorf("theme.mode must be auto, light, or dark, got %q", c.Theme.Mode)
	}
	if !output.FormatType(c.Output.Format).Valid() {
		return fmt.Errorf("output.format must be plain, json, or yaml, got %q", c.Output.Format)
	}
	if c.TUI.HistoryLimit < 0 {
		return fmt.Errorf("tui.history_limit must not be negative, got %d", c.TUI.HistoryLimit)
	}
	return nil
}

// ThemeMode returns the configured theme preference.
func (c *Config) ThemeMode() theme.Mode {
	return theme.Mode(c.Theme.Mode)
}
