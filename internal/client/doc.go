// Package client is a typed Go client for the numerics HTTP API.
//
// Requests go through a token-bucket limiter, a circuit breaker and a
// retrying transport. Numeric failures are not errors: they come back as a
// Run with Success false and a Failure kind. Errors are reserved for
// transport problems and non-2xx statuses (ErrBadRequest, ErrNotFound,
// ErrRateLimited, ErrServer). Bad requests do not count against the breaker.
//
//	c := client.New(client.DefaultConfig("http://localhost:8000"))
//	run, err := c.RegulaFalsi(ctx, apihttp.RootRequest{Function: "x**2-4", A: &a, B: &b})
package client
