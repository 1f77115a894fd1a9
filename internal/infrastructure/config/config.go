// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for biopax configuration.
	DefaultConfigDir = ".biopax"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultArchiveFile is the default archive database file name.
	DefaultArchiveFile = "archive.db"
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	Archive ArchiveConfig `yaml:"archive,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
}

// ArchiveConfig holds configuration for the SQLite model archive.
type ArchiveConfig struct {
	// Path is the file path to the archive database. When empty it is
	// derived from the config directory.
	Path string `yaml:"path,omitempty"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the minimum slog level: debug, info, warn or error.
	Level string `yaml:"level,omitempty"`
}

// Default returns a Config with default values for the given base path.
func Default(basePath string) *Config {
	return &Config{
		Archive: ArchiveConfig{
			Path: filepath.Join(basePath, DefaultConfigDir, DefaultArchiveFile),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the .biopax directory in the given path.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'biopax init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default(basePath)

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// WriteDefault creates the .biopax directory and writes a default
// config file.
func WriteDefault(basePath string) error {
	configDir := ConfigDir(basePath)
	configFile := ConfigFilePath(basePath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	data, err := yaml.Marshal(Default(basePath))
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Exists checks if a biopax config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}

// ConfigDir returns the path to the .biopax config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}
