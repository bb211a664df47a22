// Package types provides shared data structures for the numerics backend.
//
// Core Types:
//   - Result[T]: uniform outcome record for every numeric operation
//   - Step: iteration audit trail entry (JacobiStep, RegulaFalsiStep)
//   - Derivatives, PointDerivative, SamplePoint: finite-difference payload
//   - JacobiReport, Dominance: solver annotations served over HTTP
//   - Service, Tool, Parameter: provider metadata
//   - ExecuteRequest, WSMessage: transport envelopes
//
// Payload variants:
//
//	types.Result[[]float64]         // Jacobi solution vector
//	types.Result[*float64]          // Regula-Falsi root (nil when absent)
//	types.Result[types.Derivatives] // finite differences
//
// Every instantiation satisfies Outcome, so callers can check success
// without inspecting the payload type.
package types
