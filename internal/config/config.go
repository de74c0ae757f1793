package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/example/gridboard/internal/ports/secondary"
)

// Storage backend constants
const (
	BackendSQLite = "sqlite" // kv_state table in gridboard.db
	BackendFile   = "file"   // one JSON file per key
)

// FileName is the config file name inside the gridboard directory.
const FileName = "config.yaml"

// Config represents the gridboard configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	Export  ExportConfig  `yaml:"export"`
}

// StorageConfig selects and locates the persistence backend.
type StorageConfig struct {
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir,omitempty"` // defaults to the config directory
	Key     string `yaml:"key"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ExportConfig controls where export files are written.
type ExportConfig struct {
	Dir string `yaml:"dir,omitempty"` // empty means the working directory
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Key:     secondary.DefaultStateKey,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// DefaultDir returns ~/.gridboard.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".gridboard"), nil
}

// LoadConfig reads config.yaml from dir.
// A missing file yields DefaultConfig. Environment overrides are applied last.
func LoadConfig(dir string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = dir
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = secondary.DefaultStateKey
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes config.yaml to dir.
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("unknown storage backend %q (expected %s or %s)", c.Storage.Backend, BackendSQLite, BackendFile)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("GRIDBOARD_DATA_DIR"); dir != "" {
		c.Storage.DataDir = dir
	}
	if backend := os.Getenv("GRIDBOARD_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if level := os.Getenv("GRIDBOARD_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}
