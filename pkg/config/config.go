// Package config provides configuration file support for hashcalc.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hashcalc-project/hashcalc/pkg/fsutil"
)

// Environment overrides.
const (
	EnvConfig = "HASHCALC_CONFIG"
	EnvMedium = "HASHCALC_MEDIUM"
)

// DefaultMediumTimeout bounds the platform disk-introspection subprocess.
const DefaultMediumTimeout = 10 * time.Second

// Config represents the hashcalc configuration.
type Config struct {
	// DefaultAlgorithm is used when --mode is omitted in flag mode.
	DefaultAlgorithm string        `yaml:"default_algorithm,omitempty"`
	ProgressEnabled  *bool         `yaml:"progress_enabled,omitempty"`
	Interface        string        `yaml:"interface"` // auto, gui, tui
	Chunk            ChunkConfig   `yaml:"chunk"`
	Medium           MediumConfig  `yaml:"medium"`
	Logging          LoggingConfig `yaml:"logging"`
}

// ChunkConfig overrides the read chunk sizes in bytes. Zero keeps the built-in size.
type ChunkConfig struct {
	Default int `yaml:"default,omitempty"`
	SSD     int `yaml:"ssd,omitempty"`
	HDD     int `yaml:"hdd,omitempty"`
}

// MediumConfig configures storage-medium detection.
type MediumConfig struct {
	Strategy string `yaml:"strategy"` // auto, powershell, sysfs, none
	Timeout  string `yaml:"timeout"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text, json
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Interface: "auto",
		Medium: MediumConfig{
			Strategy: "auto",
			Timeout:  DefaultMediumTimeout.String(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultPath returns $HASHCALC_CONFIG, or config.yaml under the user
// configuration directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "hashcalc", "config.yaml"), nil
}

// Load loads configuration from path and applies environment overrides.
// Returns default config if file doesn't exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.applyEnv()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvMedium)); v != "" {
		c.Medium.Strategy = v
	}
}

// Save writes configuration to path, creating its directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := fsutil.AtomicWrite(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// MediumTimeout returns the parsed detection timeout, falling back to
// DefaultMediumTimeout when unset or invalid.
func (c *Config) MediumTimeout() time.Duration {
	d, err := time.ParseDuration(c.Medium.Timeout)
	if err != nil || d <= 0 {
		return DefaultMediumTimeout
	}
	return d
}

// Progress reports whether progress bars are enabled. Unset means enabled.
func (c *Config) Progress() bool {
	return c.ProgressEnabled == nil || *c.ProgressEnabled
}
