package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const appName = "awsctl"

// Context is a named AWS target: the shared-config profile, region and optional endpoint
// override used to build service clients.
type Context struct {
	Profile     string `yaml:"profile,omitempty"`
	Region      string `yaml:"region,omitempty"`
	EndpointURL string `yaml:"endpoint_url,omitempty"`
}

// Defaults holds settings used when neither a flag nor the environment sets them.
type Defaults struct {
	Output   string `yaml:"output,omitempty"`    // table, json, yaml
	LogLevel string `yaml:"log_level,omitempty"` // debug, info, warn, error
}

// Config is the configuration file.
type Config struct {
	CurrentContext string              `yaml:"current_context,omitempty"`
	Contexts       map[string]*Context `yaml:"contexts,omitempty"`
	Defaults       *Defaults           `yaml:"defaults,omitempty"`
}

var pathOverride string

// SetPath makes the package read and write path instead of the XDG location.
// An empty path restores the default.
func SetPath(path string) {
	pathOverride = path
}

// GetConfigDir returns the config directory ($XDG_CONFIG_HOME/awsctl, falling back to
// ~/.config/awsctl).
func GetConfigDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "." + appName
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appName)
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	if pathOverride != "" {
		return pathOverride
	}
	return filepath.Join(GetConfigDir(), "config.yaml")
}

func defaultConfig() *Config {
	return &Config{
		Contexts: make(map[string]*Context),
		Defaults: &Defaults{Output: "table", LogLevel: "info"},
	}
}

// LoadConfig loads the configuration file. A missing file yields the default configuration.
func LoadConfig() (*Config, error) {
	data, err := os.ReadFile(GetConfigPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Contexts == nil {
		cfg.Contexts = make(map[string]*Context)
	}
	if cfg.Defaults == nil {
		cfg.Defaults = defaultConfig().Defaults
	}

	return &cfg, nil
}

// SaveConfig writes cfg to the configuration file, creating its directory if needed.
func SaveConfig(cfg *Config) error {
	path := GetConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
