package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/config"
)

// clearEnv blanks every variable Load reads so tests see only what they set.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"API_BASE_URL", "LOG_LEVEL", "PORT", "IMAGE_DIR",
		"HTTP_TIMEOUT", "SESSION_FILE", "CORS_ORIGINS", "MAX_BODY_SIZE",
	} {
		t.Setenv(key, "")
	}
}

// TestLoad_defaults verifies that with no file and no env vars every value
// falls back to its documented default.
func TestLoad_defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load("")

	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	require.Equal(t, 20*time.Second, cfg.HTTPTimeout)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.EqualValues(t, 1<<20, cfg.MaxBodySize)
	require.Contains(t, cfg.SessionFile, "session.json")
}

// TestLoad_envOverrides verifies that env vars override both defaults and
// file values.
func TestLoad_envOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9090")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("SESSION_FILE", "/tmp/sess.json")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("MAX_BODY_SIZE", "2048")

	cfg, err := config.Load("")

	require.NoError(t, err)
	require.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	require.Equal(t, "/tmp/sess.json", cfg.SessionFile)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.EqualValues(t, 2048, cfg.MaxBodySize)
}

// TestLoad_yamlFile verifies that values come from the config file when the
// environment does not override them.
func TestLoad_yamlFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "api_base_url: https://file.example.com\nlog_level: warn\nimage_dir: /photos\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("SESSION_FILE", filepath.Join(dir, "sess.json"))

	cfg, err := config.Load(path)

	require.NoError(t, err)
	require.Equal(t, "https://file.example.com", cfg.APIBaseURL)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "/photos", cfg.ImageDir)
}

// TestLoad_badTimeout verifies that invalid durations are rejected with an
// error naming the variable.
func TestLoad_badTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_TIMEOUT", "not-a-duration")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	require.ErrorContains(t, err, "HTTP_TIMEOUT")
}
