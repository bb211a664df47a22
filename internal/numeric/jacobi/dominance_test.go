package jacobi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckDominance(t *testing.T) {
	tests := []struct {
		name     string
		a        [][]float64
		dominant bool
		msg      string
	}{
		{"tridiagonal", tridiag, true, "Matrix is strictly diagonally dominant"},
		{"negative diagonal", [][]float64{{-5, 1}, {2, -3}}, true, "Matrix is strictly diagonally dominant"},
		{"equality is not strict", [][]float64{{2, 2}, {1, 3}}, false, "Row 1 fails diagonal dominance: |2| <= 2"},
		{"second row fails", [][]float64{{4, 1, 1}, {1, 1.5, 1}, {0, 0, 1}}, false, "Row 2 fails diagonal dominance: |1.5| <= 2"},
		{"not square", [][]float64{{1, 2}}, false, "Error checking diagonal dominance: matrix is not square"},
		{"empty", nil, false, "Error checking diagonal dominance: matrix is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := CheckDominance(tt.a)
			assert.Equal(t, tt.dominant, ok)
			assert.Equal(t, tt.msg, msg)
		})
	}
}

func TestDominanceDoesNotGateSolve(t *testing.T) {
	// not dominant, but the iteration matrix still has spectral radius below 1
	ok, _ := CheckDominance([][]float64{{2, 2}, {1, 3}})
	assert.False(t, ok)

	res := NewSolver(DefaultConfig()).Solve(Request{A: [][]float64{{2, 2}, {1, 3}}, B: []float64{4, 4}})
	assert.True(t, res.Success, res.Message)
	assert.InDeltaSlice(t, []float64{1, 1}, res.Output, 1e-5)
}
