package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Request size limits
const (
	MaxJSONSize         = 1 * 1024 * 1024 // 1MB - maximum request body
	MaxMessageSize      = 64 * 1024       // 64KB - single websocket frame
	MaxExpressionLength = 1024
	MaxQueryLength      = 512
	MaxIDLength         = 128
	MaxCategoryLength   = 64
)

// Problem size limits. The solvers target small dense systems.
const (
	MaxDimension  = 256
	MaxPoints     = 10000
	MaxIterations = 100000
)

// Regular expressions for validation
var (
	// ToolIDPattern allows alphanumeric, hyphens, underscores, and dots (for service.tool format)
	ToolIDPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
	// CategoryPattern allows lowercase letters, numbers and hyphens
	CategoryPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// ValidateString validates a string field with length and content checks
func ValidateString(value, fieldName string, minLen, maxLen int, required bool) error {
	if required && value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	if value == "" && !required {
		return nil // Optional field, empty is OK
	}

	length := utf8.RuneCountInString(value)
	if length < minLen {
		return fmt.Errorf("%s must be at least %d characters", fieldName, minLen)
	}
	if length > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", fieldName, maxLen)
	}

	if strings.Contains(value, "\x00") {
		return fmt.Errorf("%s contains invalid characters", fieldName)
	}

	return nil
}

// ValidateToolID validates a tool ID field
func ValidateToolID(id string) error {
	if err := ValidateString(id, "tool_id", 1, MaxIDLength, true); err != nil {
		return err
	}
	if !ToolIDPattern.MatchString(id) {
		return fmt.Errorf("tool_id contains invalid characters (only alphanumeric, dots, hyphens, and underscores allowed)")
	}
	return nil
}

// ValidateCategory validates an optional category filter
func ValidateCategory(category string) error {
	if err := ValidateString(category, "category", 0, MaxCategoryLength, false); err != nil {
		return err
	}
	if category != "" && !CategoryPattern.MatchString(category) {
		return fmt.Errorf("category must contain only lowercase letters, numbers, and hyphens")
	}
	return nil
}

// ValidateQuery validates a discovery query
func ValidateQuery(query string) error {
	return ValidateString(query, "query", 1, MaxQueryLength, true)
}

// ValidateExpression bounds the expression text. Grammar checks happen at compile time.
func ValidateExpression(expr string, required bool) error {
	return ValidateString(expr, "function", 1, MaxExpressionLength, required)
}

// ValidateMatrixSize rejects matrices with more than MaxDimension rows or columns.
// Shape problems (ragged, non-square) are left to the solver so it can report them.
func ValidateMatrixSize(A [][]float64) error {
	if len(A) > MaxDimension {
		return fmt.Errorf("matrix_a has %d rows (maximum %d)", len(A), MaxDimension)
	}
	for i, row := range A {
		if len(row) > MaxDimension {
			return fmt.Errorf("matrix_a row %d has %d columns (maximum %d)", i+1, len(row), MaxDimension)
		}
	}
	return nil
}

// ValidateVectorSize bounds a vector field
func ValidateVectorSize(v []float64, fieldName string, max int) error {
	if len(v) > max {
		return fmt.Errorf("%s has %d entries (maximum %d)", fieldName, len(v), max)
	}
	return nil
}

// ValidateBudget bounds an optional iteration override. Values below 1 are
// left to the solver, which reports them as validation failures.
func ValidateBudget(maxIterations *int) error {
	if maxIterations != nil && *maxIterations > MaxIterations {
		return fmt.Errorf("max_iterations must not exceed %d", MaxIterations)
	}
	return nil
}
