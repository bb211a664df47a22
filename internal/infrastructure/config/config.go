package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

// Config is the process configuration read from the environment.
// Solver defaults live in a separate file, see Source.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Numerics  NumericsConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port              string        `envconfig:"PORT" default:"8000"`
	Host              string        `envconfig:"HOST" default:"0.0.0.0"`
	ReadHeaderTimeout time.Duration `envconfig:"READ_HEADER_TIMEOUT" default:"10s"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	// CORSOrigins lists allowed browser origins; "*" allows any.
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
}

// Addr returns host:port
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds per-client rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// NumericsConfig points at the solver defaults file.
type NumericsConfig struct {
	// Path to a .json, .yaml/.yml or .toml file. Empty or missing uses built-in defaults.
	Path string `envconfig:"NUMERICS_CONFIG" default:"config.json"`
	// AllowReload enables POST /admin/config/reload.
	AllowReload bool `envconfig:"NUMERICS_RELOAD" default:"true"`
}

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate rejects settings the server cannot start with
func (c *Config) Validate() error {
	var errs []error
	if p, err := strconv.Atoi(c.Server.Port); err != nil || p < 0 || p > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %q", c.Server.Port))
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level %q", c.Logging.Level))
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		errs = append(errs, errors.New("rate limit rps and burst must be positive"))
	}
	if c.Server.ShutdownTimeout < 0 || c.Server.ReadHeaderTimeout < 0 {
		errs = append(errs, errors.New("server timeouts must not be negative"))
	}
	return errors.Join(errs...)
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              "8000",
			Host:              "0.0.0.0",
			ReadHeaderTimeout: 10 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			CORSOrigins:       []string{"*"},
		},
		Logging: LogConfig{
			Level: "info",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Numerics: NumericsConfig{
			Path:        "config.json",
			AllowReload: true,
		},
	}
}
