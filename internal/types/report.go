package types

// JacobiReport is a Jacobi result annotated with the informational
// dominance check and the final residual.
type JacobiReport struct {
	Result[[]float64]
	DiagonalDominance bool     `json:"diagonal_dominance"`
	DominanceMessage  string   `json:"dominance_message"`
	Residual          *float64 `json:"residual,omitempty"`
}

// Dominance is the payload of a standalone dominance check
type Dominance struct {
	Dominant bool   `json:"dominant"`
	Message  string `json:"message"`
}
