// Package main is the entry point for the numerical methods backend server.
//
// The server provides:
//   - REST API for Jacobi, Regula-Falsi and finite differences
//   - WebSocket streaming of iteration trails (/stream)
//   - Service registry with discovery and generic tool execution
//   - Prometheus metrics (/metrics) and trace headers
//   - Rate limiting and CORS
//
// Configuration:
//   - Environment variables (12-factor, see internal/infrastructure/config)
//   - CLI flags (override env vars)
//   - Numerics defaults file, reloadable via POST /admin/config/reload
//
// Usage:
//
//	# Production mode
//	./server -port 8000 -config config.yaml
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
