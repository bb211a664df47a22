// Package server wires the numerics backend together.
//
// Server Lifecycle:
//  1. Build the zap logger from LOG_LEVEL / LOG_DEV
//  2. Load the numerics config source (JSON, YAML or TOML)
//  3. Create Prometheus metrics on a private registry and start the tracer
//  4. Register the numerics provider in the service registry
//  5. Mount middleware: recovery, tracing, metrics, CORS, rate limit
//  6. Mount REST routes, /stream and /metrics
//  7. Wrap everything in gzip (WebSocket upgrades excluded)
//  8. Run until Shutdown drains connections
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.NewServer(cfg)
//	go srv.Run()
//	<-ctx.Done()
//	srv.Shutdown(context.Background())
package server
