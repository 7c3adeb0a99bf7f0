// Package config loads server configuration from the environment, with an
// optional YAML file underneath. Configuration is explicit: it is loaded once
// in main and passed into constructors, never read from module-scope state.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration.
type Config struct {
	// APIKey authenticates against the FMP API. Required.
	APIKey string `yaml:"api_key"`

	// BaseURL overrides the FMP API root, mainly for tests.
	BaseURL string `yaml:"base_url"`

	// HTTPTimeout bounds each provider request.
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// AnalyticsEndpoint receives usage events; empty disables analytics.
	AnalyticsEndpoint string `yaml:"analytics_endpoint"`

	// DisableAnalytics forces analytics off regardless of endpoint.
	DisableAnalytics bool `yaml:"disable_analytics"`
}

// Load builds the configuration. When FMP_MCP_CONFIG names a YAML file it is
// read first; environment variables override file values. A missing API key
// is the only fatal condition.
func Load() (*Config, error) {
	cfg := &Config{}

	if path := os.Getenv("FMP_MCP_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("FMP_API_KEY is required")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FMP_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("FMP_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FMP_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTPTimeout = d
		} else {
			slog.Warn("ignoring invalid FMP_HTTP_TIMEOUT", "value", v)
		}
	}
	if v := os.Getenv("FMP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("FMP_MCP_ANALYTICS_ENDPOINT"); v != "" {
		cfg.AnalyticsEndpoint = v
	}
	if v := os.Getenv("FMP_MCP_DISABLE_ANALYTICS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.DisableAnalytics = b
		}
	}
}

// SlogLevel maps the configured level name onto a slog level, defaulting to
// info for unknown or empty values.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
