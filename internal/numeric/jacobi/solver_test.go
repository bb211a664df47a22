package jacobi

import (
	"fmt"
	"math"
	"testing"

	"github.com/GriffinCanCode/NumericalMethods/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tridiag = [][]float64{
		{4, -1, 0},
		{-1, 4, -1},
		{0, -1, 4},
	}
	tridiagB = []float64{5, 0, 6}
	// exact solution: x2 = 11/14, x1 = 81/56, x3 = 95/56
	tridiagX = []float64{81.0 / 56.0, 11.0 / 14.0, 95.0 / 56.0}
)

func TestSolveTridiagonal(t *testing.T) {
	res := NewSolver(DefaultConfig()).Solve(Request{A: tridiag, B: tridiagB})

	require.True(t, res.Success, res.Message)
	assert.Empty(t, res.Failure)
	require.Len(t, res.Output, 3)
	assert.InDeltaSlice(t, tridiagX, res.Output, 1e-5)
	assert.Less(t, Residual(tridiag, res.Output, tridiagB), 1e-4)

	assert.Equal(t, len(res.Log), res.Iterations)
	assert.Equal(t, fmt.Sprintf("Converged after %d iterations", res.Iterations), res.Message)
	require.NotNil(t, res.Error)
	assert.Less(t, *res.Error, 1e-6)

	last := res.Log[len(res.Log)-1].(types.JacobiStep)
	assert.Equal(t, res.Iterations, last.Iteration)
	assert.Equal(t, res.Output, last.Solution)
	assert.Less(t, Residual(tridiag, res.Output, tridiagB), 1e-5)
}

func TestSolveLogIsConsistent(t *testing.T) {
	res := NewSolver(DefaultConfig()).Solve(Request{A: tridiag, B: tridiagB})
	require.True(t, res.Success)

	prev := []float64{0, 0, 0}
	for i, s := range res.Log {
		step := s.(types.JacobiStep)
		assert.Equal(t, i+1, step.Index())

		var want float64
		for j := range prev {
			want = math.Max(want, math.Abs(step.Solution[j]-prev[j]))
		}
		assert.InDelta(t, want, step.StepError(), 1e-15)
		prev = step.Solution
	}
}

func TestFirstSweepUsesPreviousIterateOnly(t *testing.T) {
	one := 1
	res := NewSolver(DefaultConfig()).Solve(Request{A: tridiag, B: tridiagB, MaxIterations: &one})

	require.False(t, res.Success)
	// from zero, every component is b_i / A_ii regardless of sweep order
	assert.Equal(t, []float64{1.25, 0, 1.5}, res.Output)
}

func TestResidualShrinks(t *testing.T) {
	res := NewSolver(DefaultConfig()).Solve(Request{A: tridiag, B: tridiagB})
	require.True(t, res.Success)

	prev := math.Inf(1)
	for _, s := range res.Log {
		r := Residual(tridiag, s.(types.JacobiStep).Solution, tridiagB)
		assert.LessOrEqual(t, r, prev*(1+1e-9))
		prev = r
	}
}

func TestSolveWithInitialGuess(t *testing.T) {
	s := NewSolver(DefaultConfig())
	cold := s.Solve(Request{A: tridiag, B: tridiagB})
	warm := s.Solve(Request{A: tridiag, B: tridiagB, X0: []float64{1.4, 1.7, 1.9}})

	require.True(t, warm.Success)
	assert.Less(t, warm.Iterations, cold.Iterations)
	assert.InDeltaSlice(t, cold.Output, warm.Output, 1e-5)
}

func TestSolveDoesNotMutateInputs(t *testing.T) {
	x0 := []float64{1, 1, 1}
	NewSolver(DefaultConfig()).Solve(Request{A: tridiag, B: tridiagB, X0: x0})
	assert.Equal(t, []float64{1, 1, 1}, x0)
	assert.Equal(t, []float64{5, 0, 6}, tridiagB)
}

func TestSolveNonConvergence(t *testing.T) {
	three := 3
	tol := 1e-12
	res := NewSolver(DefaultConfig()).Solve(Request{
		A:             tridiag,
		B:             tridiagB,
		MaxIterations: &three,
		Tolerance:     &tol,
	})

	assert.False(t, res.Success)
	assert.Equal(t, types.FailureNonConvergence, res.Failure)
	assert.Equal(t, "Did not converge after 3 iterations", res.Message)
	assert.Equal(t, 3, res.Iterations)
	assert.Len(t, res.Log, 3)
	require.NotNil(t, res.Error)
	assert.Equal(t, res.Log[2].StepError(), *res.Error)
	assert.Equal(t, res.Log[2].(types.JacobiStep).Solution, res.Output)
}

func TestSolveDivergent(t *testing.T) {
	res := NewSolver(DefaultConfig()).Solve(Request{
		A: [][]float64{{1, 2}, {3, 1}},
		B: []float64{1, 1},
	})
	assert.False(t, res.Success)
	assert.Equal(t, types.FailureNonConvergence, res.Failure)
	assert.Equal(t, 100, res.Iterations)
}

func TestSolvePreconditions(t *testing.T) {
	zero := 0
	negTol := -1.0

	tests := []struct {
		name string
		req  Request
		kind types.FailureKind
		msg  string
	}{
		{"not square", Request{A: [][]float64{{1, 2, 3}, {4, 5, 6}}, B: []float64{1, 2}}, types.FailureValidation, "Matrix A must be square"},
		{"ragged", Request{A: [][]float64{{1, 2}, {3}}, B: []float64{1, 2}}, types.FailureValidation, "Matrix A must be square"},
		{"empty", Request{A: [][]float64{}, B: []float64{}}, types.FailureValidation, "Matrix A must be square"},
		{"dimension mismatch", Request{A: [][]float64{{2, 1}, {1, 2}}, B: []float64{1, 2, 3}}, types.FailureValidation, "Dimensions of A and b don't match"},
		{"zero diagonal", Request{A: [][]float64{{0, 1}, {1, 2}}, B: []float64{1, 2}}, types.FailureDegeneracy, "Matrix has zero diagonal elements"},
		{"square checked before dims", Request{A: [][]float64{{1, 2}}, B: []float64{1, 2, 3}}, types.FailureValidation, "Matrix A must be square"},
		{"x0 length", Request{A: tridiag, B: tridiagB, X0: []float64{1}}, types.FailureValidation, "Initial guess x0 must have the same length as b"},
		{"zero budget", Request{A: tridiag, B: tridiagB, MaxIterations: &zero}, types.FailureValidation, "Maximum iterations must be at least 1"},
		{"negative tolerance", Request{A: tridiag, B: tridiagB, Tolerance: &negTol}, types.FailureValidation, "Tolerance must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewSolver(DefaultConfig()).Solve(tt.req)
			assert.False(t, res.Success)
			assert.Equal(t, tt.kind, res.Failure)
			assert.Equal(t, tt.msg, res.Message)
			assert.Equal(t, 0, res.Iterations)
			assert.Nil(t, res.Error)
			assert.Nil(t, res.Output)
			assert.Empty(t, res.Log)
		})
	}
}

func TestSolveRelaxation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Relaxation = 0.8
	res := NewSolver(cfg).Solve(Request{A: tridiag, B: tridiagB})
	require.True(t, res.Success)
	assert.InDeltaSlice(t, tridiagX, res.Output, 1e-4)

	cfg.Relaxation = 1.5
	assert.ErrorContains(t, cfg.Validate(), "relaxation factor")
	res = NewSolver(cfg).Solve(Request{A: tridiag, B: tridiagB})
	assert.Equal(t, types.FailureValidation, res.Failure)

	assert.NoError(t, Config{Relaxation: 0}.Validate())
}

func TestSolveIdempotent(t *testing.T) {
	s := NewSolver(DefaultConfig())
	req := Request{A: tridiag, B: tridiagB}
	assert.Equal(t, s.Solve(req), s.Solve(req))
}

func TestResidual(t *testing.T) {
	assert.Equal(t, 0.0, Residual([][]float64{{2, 0}, {0, 2}}, []float64{1, 1}, []float64{2, 2}))
	assert.Equal(t, 3.0, Residual([][]float64{{1, 0}, {0, 1}}, []float64{0, 0}, []float64{1, -3}))
}
