// Package http provides the REST handlers for the numerics backend.
//
// Endpoints:
//   - Health: /, /health, /metrics/json
//   - Services: /services, /services/discover, /services/execute
//   - Solvers: /api/jacobi, /api/dominance, /api/regula-falsi
//   - Derivatives: /api/finite-difference/:method, /api/forward-fd, /api/backward-fd, /api/center-fd
//   - Expressions: /api/evaluate
//   - Admin: /admin/config/reload
//
// Status codes: malformed bodies and oversized inputs are 400 with
// {"success": false, "message": ...}. A request that reached a solver is
// always 200 and carries the Result, whether or not the method succeeded.
//
// Example Usage:
//
//	handlers := http.NewHandlers(http.Options{Registry: reg, Numerics: provider})
//	handlers.Register(router)
package http
