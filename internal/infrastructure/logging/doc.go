// Package logging wraps uber/zap for the server and the numerics provider.
//
// Production config writes JSON at info level. Development config writes
// colored console output at debug level. The level can be overridden with
// Config.Level ("debug", "info", "warn", "error").
//
// Numeric runs are logged through Logger.Outcome: successes at info with
// method, iterations and elapsed fields, failures at warn with the failure
// kind and message. The numeric packages themselves never log.
//
//	logger, err := logging.New(logging.DefaultConfig())
//	logger.Outcome("jacobi", result, time.Since(start), zap.String("trace_id", id))
package logging
