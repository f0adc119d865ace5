package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	serr "dircomp/internal/errors"
)

// DefaultSniffLimit is how many leading bytes of a file the media type
// detector may read. Signature matching never needs the whole file.
const DefaultSniffLimit = 3072

// Config represents the application configuration structure.
// It defines scan behavior, logging settings, and session defaults.
type Config struct {
	Scan struct {
		Ignore     []string `yaml:"ignore"`      // Glob patterns skipped during traversal
		SniffLimit int      `yaml:"sniff_limit"` // Max leading bytes read for media type detection
	} `yaml:"scan"`
	Settings struct {
		Debug   bool `yaml:"debug"`    // Enable debug logging
		JSONLog bool `yaml:"json_log"` // Emit JSON-formatted log lines
	} `yaml:"settings"`
	Session struct {
		Name string `yaml:"name"` // Default name for comparison sessions
	} `yaml:"session"`
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Scan.SniffLimit = DefaultSniffLimit
	return cfg
}

// LoadConfig loads configuration from the default location
// (~/.config/dircomp/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "dircomp", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, serr.NewConfigError("error parsing config file", path, serr.InvalidConfig, err)
	}

	if cfg.Scan.SniffLimit <= 0 {
		cfg.Scan.SniffLimit = DefaultSniffLimit
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every configured value is usable, in particular that
// all ignore patterns compile.
func (c *Config) Validate() error {
	for _, pattern := range c.Scan.Ignore {
		if _, err := glob.Compile(pattern); err != nil {
			return serr.NewConfigError("invalid ignore pattern", pattern, serr.InvalidConfig, err)
		}
	}
	return nil
}

// CompiledIgnores compiles the ignore patterns for use by the tree walker.
func (c *Config) CompiledIgnores() ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(c.Scan.Ignore))
	for _, pattern := range c.Scan.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, serr.NewConfigError("invalid ignore pattern", pattern, serr.InvalidConfig, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}
