// Package config loads taskquare settings.
// Precedence: defaults, then config.yaml, then TASKQUARE_* env vars, then flags
// (applied by the caller).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the config directory name.
	AppName = "taskquare"

	// FileName is the config file inside the config directory.
	FileName = "config.yaml"
)

// Config holds user settings.
type Config struct {
	Theme      string `yaml:"theme"` // classic, neon, mono
	Group      bool   `yaml:"group"`
	LogFile    string `yaml:"log_file"`
	LogLevel   string `yaml:"log_level"` // debug, info, warn, error
	ExportPath string `yaml:"export_path"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:    "classic",
		LogLevel: "info",
	}
}

// DefaultPath uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName, FileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(AppName, FileName)
	}
	return filepath.Join(home, ".config", AppName, FileName)
}

// Load reads path; a missing file yields defaults. Env overrides are applied
// in both cases. The result is not validated: flags may still override it, so
// callers run Validate once everything is merged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config as YAML, creating the directory with 0700.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv("TASKQUARE_THEME")); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKQUARE_GROUP")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Group = b
		}
	}
	if v := strings.TrimSpace(os.Getenv("TASKQUARE_LOG_FILE")); v != "" {
		c.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKQUARE_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKQUARE_EXPORT")); v != "" {
		c.ExportPath = v
	}
}

// Validate normalises case and rejects unknown enum values.
func (c *Config) Validate() error {
	c.Theme = strings.ToLower(c.Theme)
	switch c.Theme {
	case "classic", "neon", "mono":
	case "":
		c.Theme = "classic"
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}

	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	case "":
		c.LogLevel = "info"
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
