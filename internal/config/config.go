// Package config provides configuration loading and validation for the CLI and HTTP server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults applied to fields a config file leaves empty
const (
	DefaultPort             = 8080
	DefaultMaxUploadBytes   = 10 << 20
	DefaultMinJobTextLength = 20
	DefaultFetchTimeout     = "30s"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv
const EnvPrefix = "COPILOT_"

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Server
	Port           int   `json:"port,omitempty" validate:"gte=0,lte=65535"`
	MaxUploadBytes int64 `json:"max_upload_bytes,omitempty" validate:"gte=0"`

	// Ingestion
	MinJobTextLength int    `json:"min_job_text_length,omitempty" validate:"gte=0"`
	UseBrowser       bool   `json:"use_browser,omitempty"`   // Render short job pages with headless Chrome
	FetchTimeout     string `json:"fetch_timeout,omitempty"` // Go duration, e.g. "30s"

	// Logging
	LogJSON bool `json:"log_json,omitempty"`
	Verbose bool `json:"verbose,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:             DefaultPort,
		MaxUploadBytes:   DefaultMaxUploadBytes,
		MinJobTextLength: DefaultMinJobTextLength,
		FetchTimeout:     DefaultFetchTimeout,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Load reads the optional config file, fills defaults, overlays COPILOT_* environment
// variables and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			ve := validationErrors[0]
			return fmt.Errorf("config error: '%s' failed '%s' (got %v)", ve.Field(), ve.Tag(), ve.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.FetchTimeout != "" {
		d, err := time.ParseDuration(c.FetchTimeout)
		if err != nil {
			return fmt.Errorf("config error: 'fetch_timeout' is not a duration: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'fetch_timeout' must be positive")
		}
	}

	return nil
}

// FetchTimeoutDuration returns the parsed fetch timeout, or 30s when unset or invalid.
func (c *Config) FetchTimeoutDuration() time.Duration {
	if d, err := time.ParseDuration(c.FetchTimeout); err == nil && d > 0 {
		return d
	}
	return 30 * time.Second
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
// Bool fields cannot distinguish unset from false, so they are not merged.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}
	if result.MinJobTextLength == 0 {
		result.MinJobTextLength = defaults.MinJobTextLength
	}
	if result.FetchTimeout == "" {
		result.FetchTimeout = defaults.FetchTimeout
	}

	return result
}

// ApplyEnv overrides fields from COPILOT_* environment variables.
func (c *Config) ApplyEnv() error {
	ints := []struct {
		name string
		dst  *int
	}{
		{"PORT", &c.Port},
		{"MIN_JOB_TEXT_LENGTH", &c.MinJobTextLength},
	}
	for _, v := range ints {
		if raw, ok := lookupEnv(v.name); ok {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("config error: %s%s: %w", EnvPrefix, v.name, err)
			}
			*v.dst = n
		}
	}

	if raw, ok := lookupEnv("MAX_UPLOAD_BYTES"); ok {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("config error: %sMAX_UPLOAD_BYTES: %w", EnvPrefix, err)
		}
		c.MaxUploadBytes = n
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{"USE_BROWSER", &c.UseBrowser},
		{"LOG_JSON", &c.LogJSON},
		{"VERBOSE", &c.Verbose},
	}
	for _, v := range bools {
		if raw, ok := lookupEnv(v.name); ok {
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("config error: %s%s: %w", EnvPrefix, v.name, err)
			}
			*v.dst = b
		}
	}

	if raw, ok := lookupEnv("FETCH_TIMEOUT"); ok {
		c.FetchTimeout = raw
	}

	return nil
}

func lookupEnv(name string) (string, bool) {
	raw, ok := os.LookupEnv(EnvPrefix + name)
	if !ok || raw == "" {
		return "", false
	}
	return raw, true
}
