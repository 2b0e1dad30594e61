// Package config loads application configuration from an optional YAML file
// and environment variables. Environment variables always win, so a config
// file can carry the stable values while env overrides them in CI or dev.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the planner CLI and the stub server.
type Config struct {
	// APIBaseURL is the backend the REST client talks to.
	// Defaults to the local stub server.
	APIBaseURL string `yaml:"api_base_url"`

	// HTTPTimeout bounds each outbound request. Defaults to 20s, matching
	// the mobile client.
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// SessionFile is where the signed-in session (token, email) is stored.
	// Defaults to $HOME/.gotravel/session.json.
	SessionFile string `yaml:"session_file"`

	// ImageDir is the folder the directory picker selects trip images from.
	// Empty means no image source is configured.
	ImageDir string `yaml:"image_dir"`

	// Port is the TCP port the stub server listens on. Defaults to "8080".
	Port string `yaml:"port"`

	// CORSOrigins is the list of allowed cross-origin request origins for
	// the stub server. Set CORS_ORIGINS to a comma-separated list.
	CORSOrigins []string `yaml:"cors_origins"`

	// MaxBodySize caps stub-server request bodies, in bytes. Defaults to 1 MiB.
	MaxBodySize int64 `yaml:"max_body_size"`
}

// Load reads the optional config file at path (empty means
// $HOME/.gotravel/config.yaml; a missing file is fine), then applies
// environment variable overrides and defaults.
func Load(path string) (Config, error) {
	cfg := Config{}

	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".gotravel", "config.yaml")
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// No config file; env and defaults apply.
		case err != nil:
			return Config{}, fmt.Errorf("config.Load: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config.Load: parse %s: %w", path, err)
			}
		}
	}

	cfg.APIBaseURL = getEnv("API_BASE_URL", defaultStr(cfg.APIBaseURL, "http://localhost:8080"))
	cfg.LogLevel = getEnv("LOG_LEVEL", defaultStr(cfg.LogLevel, "info"))
	cfg.Port = getEnv("PORT", defaultStr(cfg.Port, "8080"))
	cfg.ImageDir = getEnv("IMAGE_DIR", cfg.ImageDir)

	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("config.Load: invalid HTTP_TIMEOUT %q: %w", v, err)
		}
		cfg.HTTPTimeout = d
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 20 * time.Second
	}

	cfg.SessionFile = getEnv("SESSION_FILE", cfg.SessionFile)
	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("config.Load: resolve home for session file: %w", err)
		}
		cfg.SessionFile = filepath.Join(home, ".gotravel", "session.json")
	}

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitCSV(v)
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"http://localhost:5173"}
	}

	if v := os.Getenv("MAX_BODY_SIZE"); v != "" {
		var n int64
		if _, err := fmt.Sscanf(v, "%d", &n); err != nil || n <= 0 {
			return Config{}, fmt.Errorf("config.Load: invalid MAX_BODY_SIZE %q", v)
		}
		cfg.MaxBodySize = n
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = 1 << 20
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// defaultStr returns v unless it is empty, in which case fallback.
func defaultStr(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
