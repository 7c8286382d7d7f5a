// Package config provides configuration loading and validation for the
// service and CLI. Values come from the environment first, optionally
// overlaid on a JSON config file; CLI flags win over both.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds every runtime setting of the service.
type Config struct {
	// Oracle
	APIKey           string        `json:"api_key,omitempty" validate:"required"`
	Model            string        `json:"model,omitempty" validate:"required"`
	OracleTimeout    time.Duration `json:"-"`
	OracleMaxRetries int           `json:"oracle_max_retries,omitempty" validate:"min=0,max=10"`

	// HTTP
	Port           int      `json:"port,omitempty" validate:"min=1,max=65535"`
	AllowedOrigins []string `json:"allowed_origins,omitempty"`

	// Uploads
	UploadDir      string `json:"upload_dir,omitempty" validate:"required"`
	MaxUploadBytes int64  `json:"max_upload_bytes,omitempty" validate:"min=1"`

	// Logging
	LogLevel  string `json:"log_level,omitempty" validate:"oneof=trace debug info warn error"`
	LogFormat string `json:"log_format,omitempty" validate:"oneof=json console"`
}

// Defaults returns the built-in configuration. The API key has no default
// and must come from the environment, a config file, or a flag.
func Defaults() Config {
	return Config{
		Model:            "gemini-1.5-flash",
		OracleTimeout:    60 * time.Second,
		OracleMaxRetries: 2,
		Port:             8080,
		AllowedOrigins:   []string{"*"},
		UploadDir:        "uploads",
		MaxUploadBytes:   5 << 20,
		LogLevel:         "info",
		LogFormat:        "console",
	}
}

// Load builds the effective configuration: defaults, overlaid with the
// JSON file at path (when non-empty), overlaid with environment variables.
// The result is validated before being returned.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyFile(path string) error {
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.APIKey = envString("GEMINI_API_KEY", c.APIKey)
	c.Model = envString("GEMINI_MODEL", c.Model)
	c.OracleTimeout = envDuration("ORACLE_TIMEOUT", c.OracleTimeout)
	c.OracleMaxRetries = envInt("ORACLE_MAX_RETRIES", c.OracleMaxRetries)

	c.Port = envInt("PORT", c.Port)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		c.AllowedOrigins = splitList(origins)
	}

	c.UploadDir = envString("UPLOAD_DIR", c.UploadDir)
	c.MaxUploadBytes = envInt64("MAX_UPLOAD_BYTES", c.MaxUploadBytes)

	c.LogLevel = envString("LOG_LEVEL", c.LogLevel)
	c.LogFormat = envString("LOG_FORMAT", c.LogFormat)
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			field := invalid[0]
			return fmt.Errorf("config error: field %q failed %q validation", field.Field(), field.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	if c.OracleTimeout <= 0 {
		return fmt.Errorf("config error: oracle timeout must be positive")
	}
	return nil
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func splitList(list string) []string {
	var values []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			values = append(values, item)
		}
	}
	return values
}
