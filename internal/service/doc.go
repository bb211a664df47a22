// Package service provides the tool registry that fronts the numeric engines.
//
// Providers register a service definition (ID, category, tools) and execute
// tool calls addressed as "<service>.<tool>", e.g. "numeric.jacobi". Every
// call returns a types.Outcome so transports can report success, message and
// iteration trail without knowing the payload type.
//
// Discovery scores services against a free-text query by ID/name, description
// words, capabilities, tool names and category.
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(numerics.NewProvider(src, metrics, tracer))
//	services := registry.Discover("solve linear system", 5)
//	outcome, err := registry.Execute(ctx, "numeric.jacobi", params, appCtx)
package service
