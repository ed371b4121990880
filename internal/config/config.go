// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Default values applied when the environment does not override them.
const (
	DefaultPort               = 8080
	DefaultMaxUploadBytes     = 10 << 20 // a resume PDF is far smaller
	DefaultRateLimitPerMinute = 60
)

// ServerConfig holds the HTTP server configuration, loaded from environment
// variables. DatabaseURL is optional: without it the server still parses
// documents but does not persist results.
type ServerConfig struct {
	Port               int
	DatabaseURL        string
	MaxUploadBytes     int64
	RateLimitEnabled   bool
	RateLimitPerMinute int
}

// LoadServerConfig reads the server configuration from the environment,
// applying defaults for anything unset.
func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Port:               DefaultPort,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		MaxUploadBytes:     DefaultMaxUploadBytes,
		RateLimitEnabled:   true,
		RateLimitPerMinute: DefaultRateLimitPerMinute,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES %q: %w", v, err)
		}
		cfg.MaxUploadBytes = size
	}
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_ENABLED %q: %w", v, err)
		}
		cfg.RateLimitEnabled = enabled
	}
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE %q: %w", v, err)
		}
		cfg.RateLimitPerMinute = limit
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *ServerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config error: max upload size must be positive")
	}
	if c.RateLimitEnabled && c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("config error: rate limit must be positive when enabled")
	}
	return nil
}
