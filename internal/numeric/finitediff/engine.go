package finitediff

import (
	"fmt"

	"github.com/GriffinCanCode/NumericalMethods/backend/internal/numeric/expr"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/types"
	"gonum.org/v1/gonum/diff/fd"
)

// Config holds step-size defaults and bounds
type Config struct {
	DefaultStep float64
	MinStep     float64
	MaxStep     float64
}

// DefaultConfig returns the built-in step settings
func DefaultConfig() Config {
	return Config{
		DefaultStep: 0.01,
		MinStep:     1e-10,
		MaxStep:     1.0,
	}
}

// Validate checks that the step bounds are usable and contain the default step
func (c Config) Validate() error {
	if !(c.MinStep > 0 && c.MinStep <= c.MaxStep) {
		return fmt.Errorf("finitediff: step bounds must satisfy 0 < min_h <= max_h, got [%g, %g]", c.MinStep, c.MaxStep)
	}
	if !(c.DefaultStep >= c.MinStep && c.DefaultStep <= c.MaxStep) {
		return fmt.Errorf("finitediff: default_h %g is outside [%g, %g]", c.DefaultStep, c.MinStep, c.MaxStep)
	}
	return nil
}

// Request describes one differentiation call. A non-empty Expression takes
// precedence; Samples are used only without one and are aligned
// index-by-index with Points.
type Request struct {
	Method     Method
	Expression string
	Points     []float64
	Samples    []float64
	Order      int
	Step       *float64
}

// Engine computes finite-difference derivatives
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given configuration
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// Differentiate estimates the derivative at every requested point. Call-level
// problems fail the whole result; a point that cannot be computed gets its own
// error entry while the other points still succeed.
func (e *Engine) Differentiate(req Request) types.Result[types.Derivatives] {
	if req.Order != 1 && req.Order != 2 {
		return types.Reject[types.Derivatives](types.FailureValidation, "Order must be 1 or 2")
	}
	formula, err := Formula(req.Method, req.Order)
	if err != nil {
		return types.Reject[types.Derivatives](types.FailureValidation,
			fmt.Sprintf("Method must be one of forward, backward or central, got %q", req.Method))
	}

	h := e.cfg.DefaultStep
	if req.Step != nil {
		h = *req.Step
	}
	if !(h >= e.cfg.MinStep && h <= e.cfg.MaxStep) {
		return types.Reject[types.Derivatives](types.FailureValidation,
			fmt.Sprintf("Step size h must be between %g and %g", e.cfg.MinStep, e.cfg.MaxStep))
	}

	out := types.Derivatives{
		Method: string(req.Method),
		Order:  req.Order,
		Step:   h,
		Points: make([]types.PointDerivative, 0, len(req.Points)),
	}

	switch {
	case req.Expression != "":
		f, err := expr.Compile(req.Expression)
		if err != nil {
			return types.Reject[types.Derivatives](types.FailureEvaluation, "Error: "+err.Error())
		}
		for _, x := range req.Points {
			out.Points = append(out.Points, fromExpr(formula, f, x, h))
		}
	case len(req.Samples) > 0:
		for i, x := range req.Points {
			out.Points = append(out.Points, fromSamples(formula, req, i, x, h))
		}
	default:
		return types.Reject[types.Derivatives](types.FailureValidation,
			"Either an expression or sample values must be provided")
	}

	return types.Succeed(out, 0, nil, nil,
		fmt.Sprintf("Successfully computed %d-order %s finite differences", req.Order, req.Method))
}

func fromExpr(formula fd.Formula, f *expr.Expr, x, h float64) types.PointDerivative {
	fx := make([]float64, len(formula.Stencil))
	used := make([]types.SamplePoint, len(formula.Stencil))
	for k, p := range formula.Stencil {
		at := x + p.Loc*h
		v, err := f.Eval(at)
		if err != nil {
			return types.PointDerivative{X: x, Error: err.Error()}
		}
		fx[k] = v
		used[k] = types.SamplePoint{X: at, FX: v}
	}
	return types.PointDerivative{
		X:          x,
		Derivative: types.Ptr(apply(formula, fx, h)),
		PointsUsed: used,
	}
}

func fromSamples(formula fd.Formula, req Request, i int, x, h float64) types.PointDerivative {
	lo, hi := reach(formula)
	if i+lo < 0 || i+hi >= len(req.Samples) {
		return types.PointDerivative{X: x, Error: shortage(req.Method, req.Order)}
	}

	fx := make([]float64, len(formula.Stencil))
	used := make([]types.SamplePoint, len(formula.Stencil))
	for k, p := range formula.Stencil {
		v := req.Samples[i+int(p.Loc)]
		fx[k] = v
		used[k] = types.SamplePoint{X: x + p.Loc*h, FX: v}
	}
	return types.PointDerivative{
		X:          x,
		Derivative: types.Ptr(apply(formula, fx, h)),
		PointsUsed: used,
	}
}
