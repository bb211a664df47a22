package jacobi

import (
	"fmt"
	"math"

	"github.com/GriffinCanCode/NumericalMethods/backend/internal/types"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Config holds iteration defaults
type Config struct {
	MaxIterations int
	Tolerance     float64
	// Relaxation damps each sweep: x' = (1-w)x + w*jacobi(x). 1 is plain Jacobi.
	Relaxation float64
}

// DefaultConfig returns the built-in iteration settings
func DefaultConfig() Config {
	return Config{
		MaxIterations: 100,
		Tolerance:     1e-6,
		Relaxation:    1.0,
	}
}

// Validate checks settings that apply to every solve. A zero relaxation
// factor is accepted and means plain Jacobi.
func (c Config) Validate() error {
	if math.IsNaN(c.Relaxation) || c.Relaxation < 0 || c.Relaxation > 1 {
		return fmt.Errorf("jacobi: relaxation factor must be in (0, 1], got %g", c.Relaxation)
	}
	return nil
}

// Request describes one linear solve. Nil overrides fall back to Config.
type Request struct {
	A             [][]float64
	B             []float64
	X0            []float64
	MaxIterations *int
	Tolerance     *float64
}

// Solver runs Jacobi iteration on small dense systems
type Solver struct {
	cfg Config
}

// NewSolver creates a solver. A zero relaxation factor means plain Jacobi.
func NewSolver(cfg Config) *Solver {
	if cfg.Relaxation == 0 {
		cfg.Relaxation = 1
	}
	return &Solver{cfg: cfg}
}

// Config returns the solver configuration
func (s *Solver) Config() Config {
	return s.cfg
}

// Solve iterates x_i' = (b_i - sum_{j!=i} A_ij x_j) / A_ii from X0 (or zero)
// until the infinity norm of the update drops below tolerance.
func (s *Solver) Solve(req Request) types.Result[[]float64] {
	maxIter := s.cfg.MaxIterations
	if req.MaxIterations != nil {
		maxIter = *req.MaxIterations
	}
	tol := s.cfg.Tolerance
	if req.Tolerance != nil {
		tol = *req.Tolerance
	}

	if res, ok := s.validate(req, maxIter, tol); !ok {
		return res
	}

	n := len(req.B)
	a := toDense(req.A)

	x := make([]float64, n)
	if req.X0 != nil {
		copy(x, req.X0)
	}

	w := s.cfg.Relaxation
	log := make([]types.Step, 0, maxIter)
	var stepErr float64

	for k := 1; k <= maxIter; k++ {
		next := make([]float64, n)
		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				if j != i {
					sum += a.At(i, j) * x[j]
				}
			}
			next[i] = (req.B[i] - sum) / a.At(i, i)
			if w != 1 {
				next[i] = (1-w)*x[i] + w*next[i]
			}
		}

		stepErr = floats.Distance(next, x, math.Inf(1))
		log = append(log, types.JacobiStep{Iteration: k, Solution: next, Error: stepErr})
		x = next

		if stepErr < tol {
			return types.Succeed(clone(x), k, types.Ptr(stepErr), log,
				fmt.Sprintf("Converged after %d iterations", k))
		}
	}

	return types.Exhaust(clone(x), maxIter, types.Ptr(stepErr), log,
		fmt.Sprintf("Did not converge after %d iterations", maxIter))
}

func (s *Solver) validate(req Request, maxIter int, tol float64) (types.Result[[]float64], bool) {
	reject := func(kind types.FailureKind, msg string) (types.Result[[]float64], bool) {
		return types.Reject[[]float64](kind, msg), false
	}

	if maxIter < 1 {
		return reject(types.FailureValidation, "Maximum iterations must be at least 1")
	}
	if !(tol > 0) {
		return reject(types.FailureValidation, "Tolerance must be positive")
	}
	if !(s.cfg.Relaxation > 0 && s.cfg.Relaxation <= 1) {
		return reject(types.FailureValidation, "Relaxation factor must be in (0, 1]")
	}

	n := len(req.A)
	if n == 0 {
		return reject(types.FailureValidation, "Matrix A must be square")
	}
	for _, row := range req.A {
		if len(row) != n {
			return reject(types.FailureValidation, "Matrix A must be square")
		}
	}
	if len(req.B) != n {
		return reject(types.FailureValidation, "Dimensions of A and b don't match")
	}
	for i := 0; i < n; i++ {
		if req.A[i][i] == 0 {
			return reject(types.FailureDegeneracy, "Matrix has zero diagonal elements")
		}
	}
	if req.X0 != nil && len(req.X0) != n {
		return reject(types.FailureValidation, "Initial guess x0 must have the same length as b")
	}
	return types.Result[[]float64]{}, true
}

// Residual returns the infinity norm of Ax - b. A must be square with
// len(A) == len(x) == len(b).
func Residual(A [][]float64, x, b []float64) float64 {
	n := len(x)
	ax := mat.NewVecDense(n, nil)
	ax.MulVec(toDense(A), mat.NewVecDense(n, clone(x)))

	r := make([]float64, n)
	for i := range r {
		r[i] = ax.AtVec(i) - b[i]
	}
	return floats.Norm(r, math.Inf(1))
}

func toDense(A [][]float64) *mat.Dense {
	n := len(A)
	data := make([]float64, 0, n*n)
	for _, row := range A {
		data = append(data, row...)
	}
	return mat.NewDense(n, n, data)
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
