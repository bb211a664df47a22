package numerics

import (
	"fmt"

	"github.com/GriffinCanCode/NumericalMethods/backend/internal/service"
)

// GetNumber extracts a float64 from params with type coercion
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	return toNumber(params[key])
}

// GetNumbers extracts an array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	return toNumbers(params[key])
}

// GetMatrix extracts a row-major matrix. Rows are not required to share a length.
func GetMatrix(params map[string]interface{}, key string) ([][]float64, bool) {
	switch rows := params[key].(type) {
	case [][]float64:
		return rows, true
	case []interface{}:
		out := make([][]float64, 0, len(rows))
		for _, r := range rows {
			row, ok := toNumbers(r)
			if !ok {
				return nil, false
			}
			out = append(out, row)
		}
		return out, true
	}
	return nil, false
}

// GetString extracts a string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}

// optionalInt returns nil when key is absent and an error when it is not integral
func optionalInt(params map[string]interface{}, key string) (*int, error) {
	if _, present := params[key]; !present || params[key] == nil {
		return nil, nil
	}
	v, ok := GetNumber(params, key)
	if !ok || v != float64(int(v)) {
		return nil, fmt.Errorf("%w: %s must be an integer", service.ErrInvalidParams, key)
	}
	n := int(v)
	return &n, nil
}

// optionalNumber returns nil when key is absent and an error when it is not numeric
func optionalNumber(params map[string]interface{}, key string) (*float64, error) {
	if _, present := params[key]; !present || params[key] == nil {
		return nil, nil
	}
	v, ok := GetNumber(params, key)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a number", service.ErrInvalidParams, key)
	}
	return &v, nil
}

// optionalNumbers returns nil when key is absent and an error when it is not a number array
func optionalNumbers(params map[string]interface{}, key string) ([]float64, error) {
	if _, present := params[key]; !present || params[key] == nil {
		return nil, nil
	}
	v, ok := GetNumbers(params, key)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an array of numbers", service.ErrInvalidParams, key)
	}
	return v, nil
}

func missing(key, kind string) error {
	return fmt.Errorf("%w: %s %s required", service.ErrInvalidParams, key, kind)
}

func toNumber(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

func toNumbers(val interface{}) ([]float64, bool) {
	switch arr := val.(type) {
	case []float64:
		return arr, true
	case []interface{}:
		numbers := make([]float64, 0, len(arr))
		for _, v := range arr {
			num, ok := toNumber(v)
			if !ok {
				return nil, false
			}
			numbers = append(numbers, num)
		}
		return numbers, true
	}
	return nil, false
}
