package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFlags struct {
	port, environment, logLevel string
}

func (f fakeFlags) GetPort() string        { return f.port }
func (f fakeFlags) GetEnvironment() string { return f.environment }
func (f fakeFlags) GetLogLevel() string    { return f.logLevel }

// isolate clears every variable the loader reads and points CONFIG_FILE
// at a path that does not exist.
func isolate(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvPort, EnvEnvironment, EnvLogLevel, EnvLogFormat,
		EnvStaticDir, EnvShutdownTimeout, EnvMetricsEnabled} {
		t.Setenv(key, "")
	}
	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))
}

func writeYAML(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv(EnvConfigFile, path)
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "local", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.MetricsEnabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Environment(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		verify func(t *testing.T, cfg *Config)
	}{
		{
			name: "port environment and level",
			env:  map[string]string{EnvPort: "9090", EnvEnvironment: "production", EnvLogLevel: "debug"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9090, cfg.Port)
				assert.Equal(t, "production", cfg.Environment)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.True(t, cfg.IsProduction())
			},
		},
		{
			name: "non-numeric port falls back to default",
			env:  map[string]string{EnvPort: "eighty"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultPort, cfg.Port)
			},
		},
		{
			name: "zero port falls back to default",
			env:  map[string]string{EnvPort: "0"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultPort, cfg.Port)
			},
		},
		{
			name: "out of range port falls back to default",
			env:  map[string]string{EnvPort: "70000"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultPort, cfg.Port)
			},
		},
		{
			name: "invalid log level is kept verbatim",
			env:  map[string]string{EnvLogLevel: "verbose"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "verbose", cfg.LogLevel)
			},
		},
		{
			name: "only exact production is production",
			env:  map[string]string{EnvEnvironment: "Production"},
			verify: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.IsProduction())
			},
		},
		{
			name: "extended settings",
			env: map[string]string{
				EnvLogFormat:       "JSON",
				EnvStaticDir:       "/srv/www",
				EnvShutdownTimeout: "5s",
				EnvMetricsEnabled:  "true",
			},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "json", cfg.LogFormat)
				assert.Equal(t, "/srv/www", cfg.StaticDir)
				assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
				assert.True(t, cfg.MetricsEnabled)
			},
		},
		{
			name: "invalid duration and bool fall back",
			env:  map[string]string{EnvShutdownTimeout: "soon", EnvMetricsEnabled: "maybe"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
				assert.False(t, cfg.MetricsEnabled)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			tt.verify(t, Load())
		})
	}
}

func TestLoad_YAML(t *testing.T) {
	isolate(t)
	writeYAML(t, `
server:
  port: 3000
  environment: staging
  log_level: warn
  shutdown_timeout: 10s
metrics:
  enabled: true
`)

	cfg := Load()
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.MetricsEnabled)

	t.Run("environment overrides yaml", func(t *testing.T) {
		t.Setenv(EnvPort, "4000")
		t.Setenv(EnvEnvironment, "qa")
		cfg := Load()
		assert.Equal(t, 4000, cfg.Port)
		assert.Equal(t, "qa", cfg.Environment)
	})
}

func TestLoad_MalformedYAMLUsesDefaults(t *testing.T) {
	isolate(t)
	writeYAML(t, "server: [not, a, map")

	cfg := Load()
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultEnvironment, cfg.Environment)
}

func TestLoadWithFlags_OverridesEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvEnvironment, "staging")
	t.Setenv(EnvLogLevel, "warn")

	cfg := LoadWithFlags(fakeFlags{port: "7070", environment: "production", logLevel: "error"})
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "error", cfg.LogLevel)

	cfg = LoadWithFlags(fakeFlags{})
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
}
