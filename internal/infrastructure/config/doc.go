// Package config provides 12-factor configuration management for the numerics backend.
//
// Two layers:
//   - Config: process settings from environment variables (envconfig)
//   - Source: solver defaults from a JSON, YAML or TOML file, read by dotted key
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//   - Numerics: Solver defaults file and reload switch
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	src, err := config.NewSource(cfg.Numerics.Path)
//	tol := src.Float64("jacobi.tolerance", 1e-6)
//
// Environment Variables:
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - NUMERICS_CONFIG, NUMERICS_RELOAD
package config
