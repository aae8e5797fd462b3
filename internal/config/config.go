package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Build-time variables injected via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const (
	FormatUUID = "uuid"
	FormatHex  = "hex"
	FormatRaw  = "raw"
)

// Config holds CLI configuration loaded from an optional YAML file and
// environment variables.
type Config struct {
	// Format selects the rendering: "uuid", "hex" or "raw".
	Format string `yaml:"format"`

	// NullTerminate appends a NUL byte after the rendering.
	NullTerminate bool `yaml:"null_terminate"`

	// AppID scopes the identifier to one application when set.
	AppID string `yaml:"app_id"`

	// Digest names the digest engine: "sha256" or "blake2b".
	Digest string `yaml:"digest"`

	// Debug lowers the log level to debug regardless of LogLevel.
	Debug bool `yaml:"debug"`

	Log LogConfig `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `yaml:"level"`

	// Format is "text" or "json".
	Format string `yaml:"format"`

	// File, when set, receives a copy of every log line.
	File string `yaml:"file"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Format: FormatUUID,
		Digest: "sha256",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load applies, in order, the defaults, the YAML file named by
// MACHINEID_CONFIG and the MACHINEID_* environment variables. Callers apply
// their own overrides and then call Validate.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if path := strings.TrimSpace(os.Getenv("MACHINEID_CONFIG")); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("MACHINEID_FORMAT"); v != "" {
		cfg.Format = v
	}

	if v := os.Getenv("MACHINEID_NULL_TERMINATE"); v != "" {
		cfg.NullTerminate = v == "true" || v == "1"
	}

	if v, ok := os.LookupEnv("MACHINEID_APP_ID"); ok {
		cfg.AppID = v
	}

	if v := os.Getenv("MACHINEID_DIGEST"); v != "" {
		cfg.Digest = v
	}

	if v := os.Getenv("MACHINEID_DEBUG"); v != "" {
		cfg.Debug = v == "true" || v == "1"
	}

	if v := os.Getenv("MACHINEID_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	if v := os.Getenv("MACHINEID_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}

	if v := os.Getenv("MACHINEID_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// Validate rejects unknown enum values.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case FormatUUID, FormatHex, FormatRaw:
	default:
		return fmt.Errorf("format must be one of uuid, hex, raw: got %q", c.Format)
	}

	switch strings.ToLower(strings.TrimSpace(c.Digest)) {
	case "", "sha256", "sha-256", "blake2b", "blake2b-256":
	default:
		return fmt.Errorf("digest must be sha256 or blake2b: got %q", c.Digest)
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log format must be text or json: got %q", c.Log.Format)
	}
	return nil
}

// LogLevel returns the effective log level name.
func (c *Config) LogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.Log.Level
}
