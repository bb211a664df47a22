// Package numerics exposes the numeric engines as the "numeric" service.
//
// Tools:
//   - numeric.jacobi: matrix_a, vector_b, initial_guess, max_iterations, tolerance
//   - numeric.dominance: matrix_a
//   - numeric.regulaFalsi: function, a, b, max_iterations, tolerance
//   - numeric.forward / numeric.backward / numeric.central: function, x_values, y_values, order, h
//   - numeric.evaluate: function, x_values (or x)
//
// Malformed params are returned as errors wrapping service.ErrInvalidParams.
// Everything else, including numeric failures, comes back as a types.Outcome.
// Defaults are read from the config source on every call.
package numerics
