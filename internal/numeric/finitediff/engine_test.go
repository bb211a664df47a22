package finitediff

import (
	"math"
	"testing"

	"github.com/GriffinCanCode/NumericalMethods/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

func newEngine() *Engine {
	return NewEngine(DefaultConfig())
}

func TestForwardSamples(t *testing.T) {
	res := newEngine().Differentiate(Request{
		Method:  Forward,
		Points:  []float64{0, 1, 2, 3},
		Samples: []float64{0, 1, 4, 9},
		Order:   1,
		Step:    types.Ptr(1.0),
	})

	require.True(t, res.Success, res.Message)
	assert.Equal(t, "Successfully computed 1-order forward finite differences", res.Message)
	assert.Equal(t, 0, res.Iterations)
	assert.Empty(t, res.Log)
	require.Len(t, res.Output.Points, 4)

	for i, want := range []float64{1, 3, 5} {
		p := res.Output.Points[i]
		require.True(t, p.OK(), "point %d: %s", i, p.Error)
		assert.Equal(t, want, *p.Derivative)
		assert.Len(t, p.PointsUsed, 2)
	}

	last := res.Output.Points[3]
	assert.False(t, last.OK())
	assert.Equal(t, "Not enough points for forward difference", last.Error)
}

func TestSampleBoundaries(t *testing.T) {
	samples := []float64{0, 1, 4, 9, 16}
	points := []float64{0, 1, 2, 3, 4}

	tests := []struct {
		method Method
		order  int
		failed []int
		msg    string
	}{
		{Forward, 2, []int{3, 4}, "Not enough points for second order forward difference"},
		{Backward, 1, []int{0}, "Not enough points for backward difference"},
		{Backward, 2, []int{0, 1}, "Not enough points for second order backward difference"},
		{Central, 1, []int{0, 4}, "Not enough points for central difference"},
		{Central, 2, []int{0, 4}, "Not enough points for second order central difference"},
	}

	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			res := newEngine().Differentiate(Request{
				Method:  tt.method,
				Points:  points,
				Samples: samples,
				Order:   tt.order,
				Step:    types.Ptr(1.0),
			})
			require.True(t, res.Success)

			var failed []int
			for i, p := range res.Output.Points {
				if !p.OK() {
					failed = append(failed, i)
					assert.Equal(t, tt.msg, p.Error)
				}
			}
			assert.Equal(t, tt.failed, failed)
		})
	}
}

func TestSecondOrderSamples(t *testing.T) {
	// x**2 sampled at unit spacing has second derivative 2 everywhere
	res := newEngine().Differentiate(Request{
		Method:  Central,
		Points:  []float64{0, 1, 2, 3},
		Samples: []float64{0, 1, 4, 9},
		Order:   2,
		Step:    types.Ptr(1.0),
	})
	require.True(t, res.Success)
	assert.Equal(t, 2.0, *res.Output.Points[1].Derivative)
	assert.Equal(t, 2.0, *res.Output.Points[2].Derivative)
	assert.Len(t, res.Output.Points[1].PointsUsed, 3)
}

func TestSamplesShorterThanPoints(t *testing.T) {
	res := newEngine().Differentiate(Request{
		Method:  Forward,
		Points:  []float64{0, 1, 2, 3},
		Samples: []float64{0, 1},
		Order:   1,
		Step:    types.Ptr(1.0),
	})
	require.True(t, res.Success)
	assert.True(t, res.Output.Points[0].OK())
	for _, p := range res.Output.Points[1:] {
		assert.False(t, p.OK())
	}
}

func TestExpressionWinsOverSamples(t *testing.T) {
	res := newEngine().Differentiate(Request{
		Method:     Forward,
		Expression: "x**3",
		Points:     []float64{0, 1, 2},
		Samples:    []float64{0, 1, 4},
		Order:      1,
		Step:       types.Ptr(1.0),
	})
	require.True(t, res.Success, res.Message)
	require.Len(t, res.Output.Points, 3)
	for i, want := range []float64{1, 7, 19} {
		require.True(t, res.Output.Points[i].OK(), res.Output.Points[i].Error)
		assert.InDelta(t, want, *res.Output.Points[i].Derivative, 1e-12)
	}
}

func TestCentralExpression(t *testing.T) {
	res := newEngine().Differentiate(Request{
		Method:     Central,
		Expression: "x**2",
		Points:     []float64{2},
		Order:      1,
		Step:       types.Ptr(0.01),
	})
	require.True(t, res.Success, res.Message)

	p := res.Output.Points[0]
	require.True(t, p.OK())
	assert.InDelta(t, 4.0, *p.Derivative, 1e-3)

	require.Len(t, p.PointsUsed, 2)
	assert.InDelta(t, 1.99, p.PointsUsed[0].X, 1e-12)
	assert.InDelta(t, 2.01, p.PointsUsed[1].X, 1e-12)
	assert.InDelta(t, 2.01*2.01, p.PointsUsed[1].FX, 1e-12)
}

func TestCentralMoreAccurate(t *testing.T) {
	const x, h = 1.0, 0.1
	exact := math.Cos(x)

	errFor := func(m Method) float64 {
		res := newEngine().Differentiate(Request{
			Method:     m,
			Expression: "sin(x)",
			Points:     []float64{x},
			Order:      1,
			Step:       types.Ptr(h),
		})
		require.True(t, res.Success)
		return math.Abs(*res.Output.Points[0].Derivative - exact)
	}

	central := errFor(Central)
	assert.Less(t, central, errFor(Forward))
	assert.Less(t, central, errFor(Backward))
}

func TestSecondOrderExpression(t *testing.T) {
	for _, m := range Methods {
		t.Run(string(m), func(t *testing.T) {
			res := newEngine().Differentiate(Request{
				Method:     m,
				Expression: "x**3",
				Points:     []float64{1},
				Order:      2,
				Step:       types.Ptr(1e-3),
			})
			require.True(t, res.Success)
			assert.InDelta(t, 6.0, *res.Output.Points[0].Derivative, 1e-2)
		})
	}
}

func TestMatchesGonumDerivative(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(x) * math.Sin(x) }

	for _, m := range Methods {
		for order := 1; order <= 2; order++ {
			formula, err := Formula(m, order)
			require.NoError(t, err)

			res := newEngine().Differentiate(Request{
				Method:     m,
				Expression: "exp(x) * sin(x)",
				Points:     []float64{0.7},
				Order:      order,
				Step:       types.Ptr(1e-3),
			})
			require.True(t, res.Success)

			want := fd.Derivative(f, 0.7, &fd.Settings{Formula: formula, Step: 1e-3})
			assert.InDelta(t, want, *res.Output.Points[0].Derivative, 1e-6, "%s order %d", m, order)
		}
	}
}

func TestPerPointEvaluationFailure(t *testing.T) {
	res := newEngine().Differentiate(Request{
		Method:     Central,
		Expression: "sqrt(x)",
		Points:     []float64{0, 4},
		Order:      1,
	})
	require.True(t, res.Success)

	assert.False(t, res.Output.Points[0].OK())
	assert.Contains(t, res.Output.Points[0].Error, "square root")
	assert.True(t, res.Output.Points[1].OK())
	assert.InDelta(t, 0.25, *res.Output.Points[1].Derivative, 1e-4)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		kind types.FailureKind
		msg  string
	}{
		{
			name: "order zero",
			req:  Request{Method: Forward, Expression: "x", Points: []float64{1}, Order: 0},
			kind: types.FailureValidation,
			msg:  "Order must be 1 or 2",
		},
		{
			name: "order checked before step",
			req:  Request{Method: Forward, Expression: "x", Points: []float64{1}, Order: 3, Step: types.Ptr(5.0)},
			kind: types.FailureValidation,
			msg:  "Order must be 1 or 2",
		},
		{
			name: "step too large",
			req:  Request{Method: Central, Expression: "x", Points: []float64{1}, Order: 1, Step: types.Ptr(2.0)},
			kind: types.FailureValidation,
			msg:  "Step size h must be between 1e-10 and 1",
		},
		{
			name: "step too small",
			req:  Request{Method: Central, Expression: "x", Points: []float64{1}, Order: 1, Step: types.Ptr(1e-12)},
			kind: types.FailureValidation,
			msg:  "Step size h must be between 1e-10 and 1",
		},
		{
			name: "no function",
			req:  Request{Method: Backward, Points: []float64{1}, Order: 1},
			kind: types.FailureValidation,
			msg:  "Either an expression or sample values must be provided",
		},
		{
			name: "unknown method",
			req:  Request{Method: "sideways", Expression: "x", Points: []float64{1}, Order: 1},
			kind: types.FailureValidation,
		},
		{
			name: "bad expression",
			req:  Request{Method: Forward, Expression: "os(x)", Points: []float64{1}, Order: 1},
			kind: types.FailureEvaluation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newEngine().Differentiate(tt.req)
			assert.False(t, res.Success)
			assert.Equal(t, tt.kind, res.Failure)
			assert.Equal(t, 0, res.Iterations)
			assert.Empty(t, res.Log)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, res.Message)
			}
		})
	}
}

func TestDefaultStep(t *testing.T) {
	res := newEngine().Differentiate(Request{
		Method:     Forward,
		Expression: "x",
		Points:     []float64{1},
		Order:      1,
	})
	require.True(t, res.Success)
	assert.Equal(t, 0.01, res.Output.Step)
}

func TestIdempotent(t *testing.T) {
	req := Request{Method: Central, Expression: "exp(x)", Points: []float64{0, 0.5, 1}, Order: 2, Step: types.Ptr(0.05)}
	assert.Equal(t, newEngine().Differentiate(req), newEngine().Differentiate(req))
}
