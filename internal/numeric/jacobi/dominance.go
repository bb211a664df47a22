package jacobi

import (
	"fmt"
	"math"
)

// CheckDominance reports whether A is strictly row diagonally dominant,
// |A_ii| > sum_{j!=i} |A_ij| for every row. The message names the first
// failing row (1-based). The check is informational; Solve never calls it.
func CheckDominance(A [][]float64) (bool, string) {
	n := len(A)
	if n == 0 {
		return false, "Error checking diagonal dominance: matrix is empty"
	}
	for _, row := range A {
		if len(row) != n {
			return false, "Error checking diagonal dominance: matrix is not square"
		}
	}

	for i := 0; i < n; i++ {
		diag := math.Abs(A[i][i])
		var sum float64
		for j := 0; j < n; j++ {
			if j != i {
				sum += math.Abs(A[i][j])
			}
		}
		if diag <= sum {
			return false, fmt.Sprintf("Row %d fails diagonal dominance: |%g| <= %g", i+1, A[i][i], sum)
		}
	}
	return true, "Matrix is strictly diagonally dominant"
}
