// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appDirName = "shoplist-tui"

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "SHOPLIST_TUI_CONFIG"
)

// Config represents the application configuration.
type Config struct {
	UI    UIConfig    `yaml:"ui"`
	Store StoreConfig `yaml:"store"`
	Log   LogConfig   `yaml:"log"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode       bool `yaml:"vim_mode"`
	ShowHints     bool `yaml:"show_hints"`
	Notifications bool `yaml:"notifications"` // desktop notification on add
}

// StoreConfig holds settings for the in-memory list.
type StoreConfig struct {
	IDPolicy string `yaml:"id_policy"` // "monotonic" or "legacy"
}

// LogConfig holds debug log settings.
type LogConfig struct {
	File  string `yaml:"file,omitempty"` // empty disables logging
	Level string `yaml:"level,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			VimMode:   true,
			ShowHints: true,
		},
		Store: StoreConfig{
			IDPolicy: "monotonic",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", appDirName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
// SHOPLIST_TUI_CONFIG takes priority over the default location.
func ConfigPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}

	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path.
// If the file doesn't exist, returns a default configuration.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoggingEnabled returns true if a debug log file is configured.
func (c *Config) LoggingEnabled() bool {
	return c.Log.File != ""
}
