// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Grandillionaire/council-landing/internal/domain/model"
)

// EnvPrefix is prepended to every variable name read by Load.
const EnvPrefix = "LANDING_"

// DefaultListenAddr is the address served when LANDING_LISTEN_ADDR is unset.
// It must match the envDefault on Config.ListenAddr.
const DefaultListenAddr = "127.0.0.1:8080"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr  string        `env:"LISTEN_ADDR" envDefault:"127.0.0.1:8080"`
	Variant     model.Variant `env:"VARIANT" envDefault:"enhanced"`
	BaseURL     string        `env:"BASE_URL" envDefault:"https://startupcouncil.ai"`
	LogLevel    slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	CacheMaxAge time.Duration `env:"CACHE_MAX_AGE" envDefault:"1h"`

	// GitHubToken is only used by linkcheck --remote; anonymous access works
	// within the unauthenticated rate limit.
	GitHubToken string `env:"GITHUB_TOKEN"`
}

// Load reads configuration from LANDING_* environment variables and returns a
// validated Config. Every variable is optional:
// LANDING_LISTEN_ADDR (127.0.0.1:8080), LANDING_VARIANT (enhanced),
// LANDING_BASE_URL (https://startupcouncil.ai), LANDING_LOG_LEVEL (info),
// LANDING_CACHE_MAX_AGE (1h), LANDING_GITHUB_TOKEN.
func Load() (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, err := model.ParseVariant(string(cfg.Variant)); err != nil {
		return nil, fmt.Errorf("%sVARIANT: %w", EnvPrefix, err)
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%sBASE_URL must be an absolute URL, got %q", EnvPrefix, cfg.BaseURL)
	}

	if cfg.CacheMaxAge < 0 {
		return nil, fmt.Errorf("%sCACHE_MAX_AGE must not be negative, got %s", EnvPrefix, cfg.CacheMaxAge)
	}

	return &cfg, nil
}

// ListenAddr reads only LANDING_LISTEN_ADDR, falling back to
// DefaultListenAddr. No other variable is read or validated.
func ListenAddr() (string, error) {
	var cfg struct {
		ListenAddr string `env:"LISTEN_ADDR"`
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return "", fmt.Errorf("parse env: %w", err)
	}
	if cfg.ListenAddr == "" {
		return DefaultListenAddr, nil
	}
	return cfg.ListenAddr, nil
}
