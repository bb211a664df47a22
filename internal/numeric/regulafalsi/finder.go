package regulafalsi

import (
	"fmt"
	"math"

	"github.com/GriffinCanCode/NumericalMethods/backend/internal/numeric/expr"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/types"
)

// Config holds iteration defaults
type Config struct {
	MaxIterations int
	Tolerance     float64
}

// DefaultConfig returns the built-in iteration settings
func DefaultConfig() Config {
	return Config{
		MaxIterations: 100,
		Tolerance:     1e-6,
	}
}

// Request describes one bracketed root search on [A, B]
type Request struct {
	Expression    string
	A             float64
	B             float64
	MaxIterations *int
	Tolerance     *float64
}

// Finder locates a single root by false position
type Finder struct {
	cfg Config
}

// NewFinder creates a finder with the given configuration
func NewFinder(cfg Config) *Finder {
	return &Finder{cfg: cfg}
}

// Config returns the finder configuration
func (f *Finder) Config() Config {
	return f.cfg
}

// FindRoot runs Regula-Falsi on the bracket [A, B]. The bracket must contain
// a sign change unless one endpoint is already within tolerance of a root.
func (f *Finder) FindRoot(req Request) types.Result[*float64] {
	maxIter := f.cfg.MaxIterations
	if req.MaxIterations != nil {
		maxIter = *req.MaxIterations
	}
	tol := f.cfg.Tolerance
	if req.Tolerance != nil {
		tol = *req.Tolerance
	}

	if maxIter < 1 {
		return types.Reject[*float64](types.FailureValidation, "Maximum iterations must be at least 1")
	}
	if !(tol > 0) {
		return types.Reject[*float64](types.FailureValidation, "Tolerance must be positive")
	}

	fn, err := expr.Compile(req.Expression)
	if err != nil {
		return evalFailure(err)
	}

	a, b := req.A, req.B
	fa, err := fn.Eval(a)
	if err != nil {
		return evalFailure(err)
	}
	fb, err := fn.Eval(b)
	if err != nil {
		return evalFailure(err)
	}

	if fa*fb > 0 {
		return types.Reject[*float64](types.FailureValidation,
			fmt.Sprintf("Function has same sign at both endpoints: f(%g) = %g, f(%g) = %g", a, fa, b, fb))
	}
	if math.Abs(fa) < tol {
		return types.Succeed(types.Ptr(a), 0, types.Ptr(0.0), nil, fmt.Sprintf("Initial point a = %g is a root", a))
	}
	if math.Abs(fb) < tol {
		return types.Succeed(types.Ptr(b), 0, types.Ptr(0.0), nil, fmt.Sprintf("Initial point b = %g is a root", b))
	}

	log := make([]types.Step, 0, maxIter)
	var c, stepErr float64
	prev := a

	for k := 1; k <= maxIter; k++ {
		denom := fb - fa
		if denom == 0 {
			return types.Reject[*float64](types.FailureDegeneracy, "Division by zero - function may be constant")
		}
		c = (a*fb - b*fa) / denom

		fc, err := fn.Eval(c)
		if err != nil {
			return evalFailure(err)
		}

		if k == 1 {
			stepErr = math.Abs(b - a)
		} else {
			stepErr = math.Abs(c - prev)
		}
		log = append(log, types.RegulaFalsiStep{Iteration: k, A: a, B: b, C: c, FC: fc, Error: stepErr})

		if math.Abs(fc) < tol || stepErr < tol {
			return types.Succeed(types.Ptr(c), k, types.Ptr(stepErr), log,
				fmt.Sprintf("Converged after %d iterations", k))
		}

		if fa*fc < 0 {
			b, fb = c, fc
		} else {
			a, fa = c, fc
		}
		prev = c
	}

	return types.Exhaust(types.Ptr(c), maxIter, types.Ptr(stepErr), log,
		fmt.Sprintf("Did not converge after %d iterations", maxIter))
}

func evalFailure(err error) types.Result[*float64] {
	return types.Reject[*float64](types.FailureEvaluation, "Error: "+err.Error())
}
