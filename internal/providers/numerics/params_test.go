package numerics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNumber(t *testing.T) {
	params := map[string]interface{}{"f": 1.5, "i": 2, "i64": int64(3), "s": "4"}

	v, ok := GetNumber(params, "f")
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)

	v, ok = GetNumber(params, "i")
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)

	v, ok = GetNumber(params, "i64")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)

	_, ok = GetNumber(params, "s")
	assert.False(t, ok)
	_, ok = GetNumber(params, "missing")
	assert.False(t, ok)
}

func TestGetMatrix(t *testing.T) {
	params := map[string]interface{}{
		"json":   []interface{}{[]interface{}{1.0, 2}, []interface{}{3, 4.0}},
		"native": [][]float64{{1, 2}, {3, 4}},
		"ragged": []interface{}{[]interface{}{1.0}, []interface{}{2.0, 3.0}},
		"bad":    []interface{}{[]interface{}{1.0, "x"}},
		"flat":   []interface{}{1.0, 2.0},
	}

	m, ok := GetMatrix(params, "json")
	require.True(t, ok)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m)

	m, ok = GetMatrix(params, "native")
	require.True(t, ok)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m)

	m, ok = GetMatrix(params, "ragged")
	require.True(t, ok)
	assert.Len(t, m[1], 2)

	_, ok = GetMatrix(params, "bad")
	assert.False(t, ok)
	_, ok = GetMatrix(params, "flat")
	assert.False(t, ok)
}

func TestOptionalParams(t *testing.T) {
	params := map[string]interface{}{"n": 5.0, "frac": 5.5, "nil": nil, "tol": 1e-3}

	n, err := optionalInt(params, "n")
	require.NoError(t, err)
	assert.Equal(t, 5, *n)

	_, err = optionalInt(params, "frac")
	assert.Error(t, err)

	n, err = optionalInt(params, "nil")
	require.NoError(t, err)
	assert.Nil(t, n)

	n, err = optionalInt(params, "absent")
	require.NoError(t, err)
	assert.Nil(t, n)

	tol, err := optionalNumber(params, "tol")
	require.NoError(t, err)
	assert.Equal(t, 1e-3, *tol)
}
