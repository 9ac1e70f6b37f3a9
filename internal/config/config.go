package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Session   SessionConfig   `yaml:"session"`
	Downloads DownloadsConfig `yaml:"downloads"`
	Fixtures  FixturesConfig  `yaml:"fixtures"`
	Charts    ChartsConfig    `yaml:"charts"`
	Exports   ExportsConfig   `yaml:"exports"`
	CORS      CORSConfig      `yaml:"cors"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Env  string `yaml:"env"` // "development" or "production"
}

type SessionConfig struct {
	CookieName    string        `yaml:"cookie_name"`
	IdleTimeout   time.Duration `yaml:"idle_timeout"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

type DownloadsConfig struct {
	// CompletionDelay is how long the mocked download takes before the completion toast.
	CompletionDelay time.Duration `yaml:"completion_delay"`
}

type FixturesConfig struct {
	// File is an optional YAML overlay for the built-in sample data.
	File string `yaml:"file"`
}

type ChartsConfig struct {
	CacheTTL time.Duration `yaml:"cache_ttl"`
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
}

type ExportsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080, Env: "development"},
		Session: SessionConfig{
			CookieName:    "cessao_session",
			IdleTimeout:   30 * time.Minute,
			SweepInterval: time.Minute,
		},
		Downloads: DownloadsConfig{CompletionDelay: 2 * time.Second},
		Charts:    ChartsConfig{CacheTTL: time.Hour, Width: 560, Height: 320},
		Exports:   ExportsConfig{Enabled: true},
		CORS:      CORSConfig{AllowedOrigins: []string{"*"}},
		Log:       LogConfig{Level: "info"},
	}
}

// Load reads path (if any) over the defaults, applies environment overrides and validates.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := c.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return c, nil
}

// applyEnvOverrides lets deployments tweak the file without editing it.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("API_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("API_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("API_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := os.Getenv("CESSAO_FIXTURES_FILE"); v != "" {
		c.Fixtures.File = v
	}
	if v := os.Getenv("CESSAO_DOWNLOAD_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CESSAO_DOWNLOAD_DELAY: %w", err)
		}
		c.Downloads.CompletionDelay = d
	}
	if v := os.Getenv("CESSAO_SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CESSAO_SESSION_TTL: %w", err)
		}
		c.Session.IdleTimeout = d
	}
	if v := os.Getenv("CESSAO_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("CESSAO_CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORS.AllowedOrigins = origins
	}
	return nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Session.CookieName == "" {
		return errors.New("session.cookie_name is required")
	}
	if c.Session.IdleTimeout <= 0 {
		return errors.New("session.idle_timeout must be > 0")
	}
	if c.Session.SweepInterval <= 0 {
		return errors.New("session.sweep_interval must be > 0")
	}
	if c.Downloads.CompletionDelay <= 0 {
		return errors.New("downloads.completion_delay must be > 0")
	}
	if c.Charts.Width <= 0 || c.Charts.Height <= 0 {
		return errors.New("charts.width and charts.height must be > 0")
	}
	return nil
}

// IsProduction reports whether the server runs in release mode.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
