// Package config loads the optional wwb config file. Every setting has a
// sensible default; the file only overrides defaults, and command-line flags
// override the file.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Norgate-AV/wwb/internal/timeouts"
)

// LoggingConfig overrides log rotation settings.
type LoggingConfig struct {
	MaxSize    int   `yaml:"max_size,omitempty"`    // megabytes before rotation
	MaxBackups int   `yaml:"max_backups,omitempty"` // old files to keep
	MaxAge     int   `yaml:"max_age,omitempty"`     // days to keep old files
	Compress   *bool `yaml:"compress,omitempty"`    // compress rotated logs
}

// CompressEnabled reports whether rotated logs should be compressed;
// defaults to true when unset.
func (l LoggingConfig) CompressEnabled() bool {
	if l.Compress == nil {
		return true
	}

	return *l.Compress
}

// WatchConfig configures watch mode polling.
type WatchConfig struct {
	// Interval between enumeration polls, e.g. "500ms"
	Interval string `yaml:"interval,omitempty"`
	// Timeout after which watch mode gives up, e.g. "3m". Empty or "0"
	// means watch forever.
	Timeout string `yaml:"timeout,omitempty"`
}

// Config holds the default behavior settings for wwb.
type Config struct {
	AllMatches        bool          `yaml:"all_matches,omitempty"`
	CaseInsensitive   bool          `yaml:"case_insensitive,omitempty"`
	RemoveDecorations bool          `yaml:"remove_decorations,omitempty"`
	Watch             WatchConfig   `yaml:"watch,omitempty"`
	Logging           LoggingConfig `yaml:"logging,omitempty"`
}

// Default returns the built-in configuration used when no file exists.
func Default() *Config {
	return &Config{
		Watch: WatchConfig{
			Interval: timeouts.WatchPollInterval.String(),
			Timeout:  "0",
		},
	}
}

// DefaultConfigPath returns the standard config file location,
// e.g. ~/.config/wwb/config.yaml on Linux.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	return filepath.Join(dir, "wwb", "config.yaml"), nil
}

// Load reads the config from the standard location. A missing file is not an
// error; the defaults are returned.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	return LoadFromPath(path)
}

// LoadFromPath reads the config from an explicit path. A missing file yields
// the defaults; a malformed or unknown-key file is an error.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, fmt.Errorf("%s: failed to read: %w", path, err)
	}

	if err := decodeStrictYAML(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the duration fields parse.
func (c *Config) Validate() error {
	if _, err := c.WatchInterval(); err != nil {
		return fmt.Errorf("watch.interval: %w", err)
	}

	if _, err := c.WatchTimeout(); err != nil {
		return fmt.Errorf("watch.timeout: %w", err)
	}

	return nil
}

// WatchInterval returns the parsed poll interval.
func (c *Config) WatchInterval() (time.Duration, error) {
	if c.Watch.Interval == "" {
		return timeouts.WatchPollInterval, nil
	}

	d, err := time.ParseDuration(c.Watch.Interval)
	if err != nil {
		return 0, err
	}

	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %q", c.Watch.Interval)
	}

	return d, nil
}

// WatchTimeout returns the parsed watch timeout; zero means no timeout.
func (c *Config) WatchTimeout() (time.Duration, error) {
	if c.Watch.Timeout == "" || c.Watch.Timeout == "0" {
		return 0, nil
	}

	d, err := time.ParseDuration(c.Watch.Timeout)
	if err != nil {
		return 0, err
	}

	if d < 0 {
		return 0, fmt.Errorf("must not be negative, got %q", c.Watch.Timeout)
	}

	return d, nil
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}

		return fmt.Errorf("failed to parse yaml: %w", err)
	}

	return nil
}
