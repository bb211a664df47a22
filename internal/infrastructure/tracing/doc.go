/*
Package tracing provides lightweight request tracing.

# Overview

Each HTTP request gets a span; provider calls open child spans tagged with
the numeric method, iteration count and outcome. Finished spans are written
to the structured log by a buffered collector.

# Usage

	tracer := tracing.New("numerics", logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	span, ctx := tracer.StartSpan(ctx, "numeric.jacobi")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()
	span.SetTag("iterations", "12")

# Trace Format

Traces propagate through HTTP headers:
- X-Trace-ID: identifier for the whole request flow (req_<ULID>)
- X-Span-ID: identifier for the current operation (span_<ULID>)

The API client forwards both headers with Inject.
*/
package tracing
