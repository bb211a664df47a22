package http

// JacobiRequest is the body of POST /api/jacobi
type JacobiRequest struct {
	MatrixA       [][]float64 `json:"matrix_a" binding:"required"`
	VectorB       []float64   `json:"vector_b" binding:"required"`
	InitialGuess  []float64   `json:"initial_guess,omitempty"`
	MaxIterations *int        `json:"max_iterations,omitempty"`
	Tolerance     *float64    `json:"tolerance,omitempty"`
}

// DominanceRequest is the body of POST /api/dominance
type DominanceRequest struct {
	MatrixA [][]float64 `json:"matrix_a" binding:"required"`
}

// RootRequest is the body of POST /api/regula-falsi
type RootRequest struct {
	Function      string   `json:"function" binding:"required"`
	A             *float64 `json:"a" binding:"required"`
	B             *float64 `json:"b" binding:"required"`
	MaxIterations *int     `json:"max_iterations,omitempty"`
	Tolerance     *float64 `json:"tolerance,omitempty"`
}

// DiffRequest is the body of the finite-difference endpoints. Order defaults to 1.
type DiffRequest struct {
	Function string    `json:"function,omitempty"`
	XValues  []float64 `json:"x_values" binding:"required"`
	YValues  []float64 `json:"y_values,omitempty"`
	Order    *int      `json:"order,omitempty"`
	H        *float64  `json:"h,omitempty"`
}

// EvaluateRequest is the body of POST /api/evaluate. X is used when XValues is empty.
type EvaluateRequest struct {
	Function string    `json:"function" binding:"required"`
	XValues  []float64 `json:"x_values,omitempty"`
	X        *float64  `json:"x,omitempty"`
}

// DiscoverRequest is the body of POST /services/discover
type DiscoverRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit,omitempty"`
}
