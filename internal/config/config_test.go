package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "en-US", cfg.Analysis.DefaultLocale)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.False(t, cfg.Auth.Enabled())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  addr: ":9090"
  read_timeout: 5s
  write_timeout: 5s
analysis:
  default_locale: ko-KR
rate_limit:
  enabled: false
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "ko-KR", cfg.Analysis.DefaultLocale)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Values absent from the file keep their defaults.
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  addr: ":9090"
`)
	t.Setenv("TEXTSTATS_ADDR", ":7070")
	t.Setenv("TEXTSTATS_DEFAULT_LOCALE", "ja-JP")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "ja-JP", cfg.Analysis.DefaultLocale)
}

func TestLoad_MissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedFileIsError(t *testing.T) {
	path := writeConfigFile(t, "server: [not a mapping")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty addr",
			mutate:  func(c *Config) { c.Server.Addr = "" },
			wantErr: "addr",
		},
		{
			name:    "zero read timeout",
			mutate:  func(c *Config) { c.Server.ReadTimeout = 0 },
			wantErr: "timeouts",
		},
		{
			name:    "non-positive body limit",
			mutate:  func(c *Config) { c.Server.MaxBodyBytes = 0 },
			wantErr: "max_body_bytes",
		},
		{
			name:    "rate limit enabled with zero rps",
			mutate:  func(c *Config) { c.RateLimit.RequestsPerSec = 0 },
			wantErr: "requests_per_sec",
		},
		{
			name: "rate limit disabled skips budget checks",
			mutate: func(c *Config) {
				c.RateLimit.Enabled = false
				c.RateLimit.RequestsPerSec = 0
			},
		},
		{
			name:    "short auth secret",
			mutate:  func(c *Config) { c.Auth.Secret = "short" },
			wantErr: "32 bytes",
		},
		{
			name: "auth secret without credentials",
			mutate: func(c *Config) {
				c.Auth.Secret = "a-secret-that-is-at-least-32-bytes-long"
			},
			wantErr: "username and password",
		},
		{
			name: "complete auth config",
			mutate: func(c *Config) {
				c.Auth.Secret = "a-secret-that-is-at-least-32-bytes-long"
				c.Auth.Username = "analyst"
				c.Auth.Password = "hunter2hunter2"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
