// Package config loads service configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "textstats/pkg/config"
)

// Config holds the full service configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
}

// AnalysisConfig holds settings for the analysis core.
type AnalysisConfig struct {
	DefaultLocale string `yaml:"default_locale"`
}

// RateLimitConfig holds the per-IP request budget.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"`
	RequestsPerSec  float64       `yaml:"requests_per_sec"`
	Burst           int           `yaml:"burst"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
	VisitorTTL      time.Duration `yaml:"visitor_ttl"`
}

// AuthConfig holds optional bearer token authentication. Auth is enabled
// only when a secret is configured.
type AuthConfig struct {
	Secret   string `yaml:"secret"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Enabled reports whether bearer token auth should be active.
func (a AuthConfig) Enabled() bool {
	return a.Secret != ""
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Analysis: AnalysisConfig{
			DefaultLocale: "en-US",
		},
		RateLimit: RateLimitConfig{
			Enabled:         true,
			RequestsPerSec:  50,
			Burst:           100,
			CleanupInterval: 5 * time.Minute,
			VisitorTTL:      10 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment variables, in increasing priority. A missing file at the
// default path is not an error; an explicitly requested file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- path comes from a CLI flag, not request input
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Addr = pkgconfig.GetEnvString("TEXTSTATS_ADDR", cfg.Server.Addr)
	cfg.Server.ReadTimeout = pkgconfig.GetEnvDuration("TEXTSTATS_READ_TIMEOUT", cfg.Server.ReadTimeout)
	cfg.Server.WriteTimeout = pkgconfig.GetEnvDuration("TEXTSTATS_WRITE_TIMEOUT", cfg.Server.WriteTimeout)
	cfg.Server.ShutdownTimeout = pkgconfig.GetEnvDuration("TEXTSTATS_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout)
	cfg.Server.MaxBodyBytes = int64(pkgconfig.GetEnvInt("TEXTSTATS_MAX_BODY_BYTES", int(cfg.Server.MaxBodyBytes)))

	cfg.Analysis.DefaultLocale = pkgconfig.GetEnvString("TEXTSTATS_DEFAULT_LOCALE", cfg.Analysis.DefaultLocale)

	cfg.RateLimit.Enabled = pkgconfig.GetEnvBool("TEXTSTATS_RATELIMIT_ENABLED", cfg.RateLimit.Enabled)
	cfg.RateLimit.RequestsPerSec = pkgconfig.GetEnvFloat("TEXTSTATS_RATELIMIT_RPS", cfg.RateLimit.RequestsPerSec)
	cfg.RateLimit.Burst = pkgconfig.GetEnvInt("TEXTSTATS_RATELIMIT_BURST", cfg.RateLimit.Burst)
	cfg.RateLimit.CleanupInterval = pkgconfig.GetEnvDuration("TEXTSTATS_RATELIMIT_CLEANUP", cfg.RateLimit.CleanupInterval)
	cfg.RateLimit.VisitorTTL = pkgconfig.GetEnvDuration("TEXTSTATS_RATELIMIT_TTL", cfg.RateLimit.VisitorTTL)

	cfg.Auth.Secret = pkgconfig.GetEnvString("TEXTSTATS_AUTH_SECRET", cfg.Auth.Secret)
	cfg.Auth.Username = pkgconfig.GetEnvString("TEXTSTATS_AUTH_USERNAME", cfg.Auth.Username)
	cfg.Auth.Password = pkgconfig.GetEnvString("TEXTSTATS_AUTH_PASSWORD", cfg.Auth.Password)

	cfg.Log.Level = pkgconfig.GetEnvString("TEXTSTATS_LOG_LEVEL", cfg.Log.Level)
}

// Validate checks the configuration for values that would misbehave at
// runtime.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr is required")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive")
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSec <= 0 {
			return fmt.Errorf("rate limit requests_per_sec must be positive")
		}
		if c.RateLimit.Burst <= 0 {
			return fmt.Errorf("rate limit burst must be positive")
		}
	}
	if c.Auth.Enabled() {
		if len(c.Auth.Secret) < 32 {
			return fmt.Errorf("auth secret must be at least 32 bytes")
		}
		if c.Auth.Username == "" || c.Auth.Password == "" {
			return fmt.Errorf("auth username and password are required when auth is enabled")
		}
	}
	return nil
}
