// Package finitediff estimates first and second derivatives with forward,
// backward and central difference stencils.
//
// A function is given either as an expression (see package expr) or as
// precomputed samples aligned with the requested points. Stencils are
// gonum fd.Formula values, so the same table can be fed to fd.Derivative.
package finitediff
