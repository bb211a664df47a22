package types

// Step is one entry of an iteration audit trail.
// Implementations are immutable once appended to a Result log.
type Step interface {
	Index() int
	StepError() float64
}

// JacobiStep records one Jacobi sweep
type JacobiStep struct {
	Iteration int       `json:"iteration"`
	Solution  []float64 `json:"solution"`
	Error     float64   `json:"error"`
}

// Index returns the 1-based sweep number
func (s JacobiStep) Index() int { return s.Iteration }

// StepError returns the infinity-norm step error
func (s JacobiStep) StepError() float64 { return s.Error }

// RegulaFalsiStep records one false-position iteration
type RegulaFalsiStep struct {
	Iteration int     `json:"iteration"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	C         float64 `json:"c"`
	FC        float64 `json:"f(c)"`
	Error     float64 `json:"error"`
}

// Index returns the 1-based iteration number
func (s RegulaFalsiStep) Index() int { return s.Iteration }

// StepError returns the step error
func (s RegulaFalsiStep) StepError() float64 { return s.Error }
