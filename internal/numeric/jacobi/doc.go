// Package jacobi solves small dense linear systems Ax = b by Jacobi iteration.
//
// Every sweep reads only the previous iterate and is recorded in the result
// log. Convergence is guaranteed for strictly diagonally dominant matrices;
// CheckDominance reports that property without gating Solve.
package jacobi
