package numerics

import "github.com/GriffinCanCode/NumericalMethods/backend/internal/types"

var (
	budgetParams = []types.Parameter{
		{Name: "max_iterations", Type: "integer", Description: "Iteration budget (>= 1)", Required: false},
		{Name: "tolerance", Type: "number", Description: "Convergence tolerance (> 0)", Required: false},
	}

	diffParams = []types.Parameter{
		{Name: "x_values", Type: "array", Description: "Points at which to differentiate", Required: true},
		{Name: "function", Type: "string", Description: "Expression in x", Required: false},
		{Name: "y_values", Type: "array", Description: "Samples aligned with x_values; used only when function is empty", Required: false},
		{Name: "order", Type: "integer", Description: "Derivative order, 1 or 2", Required: false},
		{Name: "h", Type: "number", Description: "Step size", Required: false},
	}
)

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          ServiceID,
		Name:        "Numerical Methods",
		Description: "Iterative linear solving, bracketed root finding and finite difference differentiation",
		Category:    types.CategoryNumerics,
		Capabilities: []string{
			"linear_system",
			"diagonal_dominance",
			"root_finding",
			"finite_difference",
			"expression_evaluation",
		},
		Tools: []types.Tool{
			{
				ID:          ToolJacobi,
				Name:        "Jacobi",
				Description: "Solve Ax = b with Jacobi iteration",
				Parameters: append([]types.Parameter{
					{Name: "matrix_a", Type: "array", Description: "Square coefficient matrix", Required: true},
					{Name: "vector_b", Type: "array", Description: "Right-hand side", Required: true},
					{Name: "initial_guess", Type: "array", Description: "Starting vector, zeros by default", Required: false},
				}, budgetParams...),
				Returns: "solution",
			},
			{
				ID:          ToolDominance,
				Name:        "Diagonal dominance",
				Description: "Check strict row diagonal dominance",
				Parameters: []types.Parameter{
					{Name: "matrix_a", Type: "array", Description: "Square matrix", Required: true},
				},
				Returns: "dominance",
			},
			{
				ID:          ToolRegulaFalsi,
				Name:        "Regula falsi",
				Description: "Find a root of f on a sign-changing bracket",
				Parameters: append([]types.Parameter{
					{Name: "function", Type: "string", Description: "Expression in x", Required: true},
					{Name: "a", Type: "number", Description: "Left bracket", Required: true},
					{Name: "b", Type: "number", Description: "Right bracket", Required: true},
				}, budgetParams...),
				Returns: "root",
			},
			{ID: ToolForward, Name: "Forward difference", Description: "Forward finite difference derivative", Parameters: diffParams, Returns: "derivatives"},
			{ID: ToolBackward, Name: "Backward difference", Description: "Backward finite difference derivative", Parameters: diffParams, Returns: "derivatives"},
			{ID: ToolCentral, Name: "Central difference", Description: "Central finite difference derivative", Parameters: diffParams, Returns: "derivatives"},
			{
				ID:          ToolEvaluate,
				Name:        "Evaluate",
				Description: "Evaluate an expression in x",
				Parameters: []types.Parameter{
					{Name: "function", Type: "string", Description: "Expression in x", Required: true},
					{Name: "x_values", Type: "array", Description: "Points to evaluate at", Required: false},
					{Name: "x", Type: "number", Description: "Single point, used when x_values is absent", Required: false},
				},
				Returns: "values",
			},
		},
	}
}
