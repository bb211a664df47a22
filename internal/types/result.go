package types

// FailureKind classifies why a numeric operation did not succeed
type FailureKind string

const (
	// FailureValidation covers malformed dimensions, invalid order, step size out of
	// range, bad iteration budgets and same-sign brackets.
	FailureValidation FailureKind = "validation"
	// FailureNonConvergence means the full iteration budget ran without meeting tolerance.
	FailureNonConvergence FailureKind = "non_convergence"
	// FailureEvaluation wraps expression parse/evaluation failures.
	FailureEvaluation FailureKind = "evaluation"
	// FailureDegeneracy covers zero Jacobi diagonals and zero Regula-Falsi denominators.
	FailureDegeneracy FailureKind = "degeneracy"
)

// Outcome is satisfied by every Result instantiation
type Outcome interface {
	Succeeded() bool
	Status() string
	StepCount() int
	Trail() []Step
	Reason() FailureKind
}

// Result is the uniform outcome record returned by every numeric entry point.
// T is the operation-specific payload: a solution vector, a root or a derivative set.
type Result[T any] struct {
	Success    bool        `json:"success"`
	Output     T           `json:"output"`
	Iterations int         `json:"iterations"`
	Error      *float64    `json:"error"`
	Log        []Step      `json:"iteration_log"`
	Message    string      `json:"message"`
	Failure    FailureKind `json:"failure,omitempty"`
}

// Succeeded reports whether the operation succeeded
func (r Result[T]) Succeeded() bool { return r.Success }

// Status returns the human-readable status message
func (r Result[T]) Status() string { return r.Message }

// StepCount returns the number of iterations performed
func (r Result[T]) StepCount() int { return r.Iterations }

// Trail returns the iteration records
func (r Result[T]) Trail() []Step { return r.Log }

// Reason returns the failure kind, empty on success
func (r Result[T]) Reason() FailureKind { return r.Failure }

// Succeed builds a successful result
func Succeed[T any](output T, iterations int, errEstimate *float64, log []Step, message string) Result[T] {
	return Result[T]{
		Success:    true,
		Output:     output,
		Iterations: iterations,
		Error:      errEstimate,
		Log:        nonNilLog(log),
		Message:    message,
	}
}

// Reject builds a failure that happened before any iteration ran
func Reject[T any](kind FailureKind, message string) Result[T] {
	return Result[T]{
		Success: false,
		Log:     []Step{},
		Message: message,
		Failure: kind,
	}
}

// Exhaust builds a non-convergence failure that keeps the last estimate and the full log
func Exhaust[T any](output T, iterations int, errEstimate *float64, log []Step, message string) Result[T] {
	return Result[T]{
		Success:    false,
		Output:     output,
		Iterations: iterations,
		Error:      errEstimate,
		Log:        nonNilLog(log),
		Message:    message,
		Failure:    FailureNonConvergence,
	}
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

func nonNilLog(log []Step) []Step {
	if log == nil {
		return []Step{}
	}
	return log
}
