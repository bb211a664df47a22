// Package testutil provides testing utilities and helpers for backend tests.
package testutil

import (
	"context"
	"testing"

	"github.com/GriffinCanCode/NumericalMethods/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockServiceProvider is a mock implementation of service.Provider for testing.
type MockServiceProvider struct {
	mock.Mock
}

// Definition mocks the Definition method.
func (m *MockServiceProvider) Definition() types.Service {
	args := m.Called()
	return args.Get(0).(types.Service)
}

// Execute mocks the Execute method.
func (m *MockServiceProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (types.Outcome, error) {
	args := m.Called(ctx, toolID, params, appCtx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(types.Outcome), args.Error(1)
}

// NewMockServiceProvider creates a new mock service provider with default behaviors.
func NewMockServiceProvider(t *testing.T, serviceID string) *MockServiceProvider {
	t.Helper()
	m := new(MockServiceProvider)

	// Default behavior: return a simple service definition
	m.On("Definition").Return(CreateTestService(t, serviceID, types.CategoryNumerics)).Maybe()

	return m
}

// CreateTestService creates a test service definition.
func CreateTestService(t *testing.T, id string, category types.Category) types.Service {
	t.Helper()

	return types.Service{
		ID:           id,
		Name:         "Test Service",
		Description:  "A test service for unit testing",
		Category:     category,
		Capabilities: []string{"test"},
		Tools: []types.Tool{
			{
				ID:          id + ".test",
				Name:        "test",
				Description: "Test tool",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// TridiagonalSystem returns the 3x3 diagonally dominant system used across tests
// and its solution.
func TridiagonalSystem() (A [][]float64, b, x []float64) {
	A = [][]float64{{4, -1, 0}, {-1, 4, -1}, {0, -1, 4}}
	b = []float64{5, 0, 6}
	x = []float64{81.0 / 56.0, 11.0 / 14.0, 95.0 / 56.0}
	return A, b, x
}

// AssertSuccess is a helper to assert a successful outcome.
func AssertSuccess(t *testing.T, o types.Outcome) {
	t.Helper()
	if o == nil {
		t.Fatal("Outcome is nil")
	}
	if !o.Succeeded() {
		t.Fatalf("Expected success, got %s: %s", o.Reason(), o.Status())
	}
}

// AssertFailure is a helper to assert a failed outcome of the given kind.
func AssertFailure(t *testing.T, o types.Outcome, kind types.FailureKind) {
	t.Helper()
	if o == nil {
		t.Fatal("Outcome is nil")
	}
	if o.Succeeded() {
		t.Fatal("Expected failure, got success")
	}
	if o.Reason() != kind {
		t.Fatalf("Expected failure kind %s, got %s (%s)", kind, o.Reason(), o.Status())
	}
	if o.Status() == "" {
		t.Fatal("Expected failure message, got empty")
	}
}
