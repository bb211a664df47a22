// Package resilience holds the circuit breaker the API client puts in front
// of the numerics server. After enough consecutive failures the breaker
// opens and calls fail with ErrCircuitOpen until Timeout elapses. A few
// half-open trial requests then decide whether it closes again.
//
// Client-side errors such as a 400 should not count against the server, so
// the client passes an IsSuccessful that treats them as successes:
//
//	b := resilience.New("numerics-api", resilience.Settings{
//		IsSuccessful: func(err error) bool {
//			return err == nil || errors.Is(err, client.ErrBadRequest)
//		},
//	})
//	run, err := resilience.Call(ctx, b, func(ctx context.Context) (*client.JacobiRun, error) {
//		return c.Jacobi(ctx, req)
//	})
package resilience
