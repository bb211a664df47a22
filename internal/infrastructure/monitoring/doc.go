/*
Package monitoring provides metrics collection for the numerics backend.

# Overview

Prometheus collectors track HTTP traffic, service tool calls, numeric runs
and WebSocket streams. A small JSON snapshot mirrors the headline counters
for the /health endpoint.

# Features

- HTTP request metrics (latency, throughput, size) keyed by route template
- Service tool call metrics (duration, success/failure)
- Numeric run metrics (runs by outcome, iteration counts, duration)
- WebSocket connection metrics
- Uptime

# Usage

	metrics := monitoring.NewMetrics(prometheus.DefaultRegisterer)
	router.Use(monitoring.Middleware(metrics))

	timer := monitoring.NewTimer(metrics, "numerics", "numeric.jacobi")
	result := solver.Solve(req)
	elapsed := timer.Stop(result)
	metrics.RecordRun("jacobi", result, elapsed)

# Metrics Endpoint

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring
