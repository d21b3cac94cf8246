// Package config provides reading and writing of sweep configuration.
// Configuration lives in a single global file, ~/.sweep/config.yaml; the
// back end runs on behalf of one desktop user, so there is no per-project
// scope.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Confirm holds confirmation prompt options for destructive commands.
type Confirm struct {
	Delete *bool `yaml:"delete,omitempty"`
}

// Scan holds usage-scan configuration options.
type Scan struct {
	Top *int `yaml:"top,omitempty"`
}

// Log holds audit log configuration options.
type Log struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Defaults applied when values are not configured.
const (
	DefaultScanTop = 10
)

// Validation bounds for configuration values.
const (
	MinScanTop = 1
	MaxScanTop = 1000
)

// Config contains configuration for sweep.
type Config struct {
	Confirm Confirm `yaml:"confirm,omitempty"`
	Scan    Scan    `yaml:"scan,omitempty"`
	Log     Log     `yaml:"log,omitempty"`

	// path is the file this config was loaded from (for Save)
	path string
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Scan.Top != nil {
		v := *c.Scan.Top
		if v < MinScanTop || v > MaxScanTop {
			return fmt.Errorf("%w: scan.top must be between %d and %d, got %d",
				ErrInvalidValue, MinScanTop, MaxScanTop, v)
		}
	}
	return nil
}

// ConfirmDelete returns whether the CLI rm command prompts before deleting
// (defaults to true). The bridge never prompts regardless of this setting;
// the front end owns its own confirmation flow.
func (c *Config) ConfirmDelete() bool {
	if c.Confirm.Delete == nil {
		return true
	}
	return *c.Confirm.Delete
}

// ScanTop returns how many of the largest children du reports (defaults to 10).
func (c *Config) ScanTop() int {
	if c.Scan.Top == nil {
		return DefaultScanTop
	}
	return *c.Scan.Top
}

// LogEnabled returns whether the audit log records operations (defaults to true).
func (c *Config) LogEnabled() bool {
	if c.Log.Enabled == nil {
		return true
	}
	return *c.Log.Enabled
}

// Path returns the path to the config file: ~/.sweep/config.yaml
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sweep", "config.yaml")
}

// Load reads the configuration, returning defaults if no file exists.
func Load() (*Config, error) {
	path := Path()
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = Path()
	}
	if c.path == "" {
		return ErrNoConfigPath
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
