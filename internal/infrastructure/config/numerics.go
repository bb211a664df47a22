package config

import (
	"errors"

	"github.com/GriffinCanCode/NumericalMethods/backend/internal/numeric/finitediff"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/numeric/jacobi"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/numeric/regulafalsi"
)

// JacobiConfig reads jacobi.* keys, falling back to the top-level
// max_iterations/tolerance and then to the package defaults.
func (s *Source) JacobiConfig() jacobi.Config {
	def := jacobi.DefaultConfig()
	return jacobi.Config{
		MaxIterations: s.Int("jacobi.max_iterations", s.Int("max_iterations", def.MaxIterations)),
		Tolerance:     s.Float64("jacobi.tolerance", s.Float64("tolerance", def.Tolerance)),
		Relaxation:    s.Float64("jacobi.relaxation_factor", def.Relaxation),
	}
}

// RegulaFalsiConfig reads regula_falsi.* keys.
func (s *Source) RegulaFalsiConfig() regulafalsi.Config {
	def := regulafalsi.DefaultConfig()
	return regulafalsi.Config{
		MaxIterations: s.Int("regula_falsi.max_iterations", s.Int("max_iterations", def.MaxIterations)),
		Tolerance:     s.Float64("regula_falsi.tolerance", s.Float64("tolerance", def.Tolerance)),
	}
}

// FiniteDiffConfig reads finite_difference.* keys.
func (s *Source) FiniteDiffConfig() finitediff.Config {
	def := finitediff.DefaultConfig()
	return finitediff.Config{
		DefaultStep: s.Float64("finite_difference.default_h", def.DefaultStep),
		MinStep:     s.Float64("finite_difference.min_h", def.MinStep),
		MaxStep:     s.Float64("finite_difference.max_h", def.MaxStep),
	}
}

// validate rejects a tree whose process-wide settings would fail every call
func validate(tree map[string]interface{}) error {
	candidate := NewStaticSource(tree)
	return errors.Join(
		candidate.JacobiConfig().Validate(),
		candidate.FiniteDiffConfig().Validate(),
	)
}
