package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSourceDefaults(t *testing.T) {
	src, err := NewSource(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.Equal(t, 100, src.Int("jacobi.max_iterations", 0))
	assert.Equal(t, 1e-6, src.Float64("regula_falsi.tolerance", 0))
	assert.Equal(t, 0.01, src.Float64("finite_difference.default_h", 0))
	assert.Equal(t, 1e-10, src.Float64("finite_difference.min_h", 0))
	assert.Equal(t, 1.0, src.Float64("jacobi.relaxation_factor", 0))
}

func TestSourceFallback(t *testing.T) {
	src := NewStaticSource(Defaults())

	assert.Equal(t, "x", src.Get("jacobi.nope", "x"))
	assert.Equal(t, 7, src.Int("nope.deeper", 7))
	assert.Equal(t, 2.5, src.Float64("tolerance.too.deep", 2.5))
	// non-integral values do not satisfy Int
	assert.Equal(t, 3, src.Int("tolerance", 3))
}

func TestSourceFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "json",
			file: "numerics.json",
			content: `{
  "max_iterations": 50,
  "jacobi": {"max_iterations": 250, "tolerance": 1e-9},
  "finite_difference": {"default_h": 0.001}
}`,
		},
		{
			name: "yaml",
			file: "numerics.yaml",
			content: `max_iterations: 50
jacobi:
  max_iterations: 250
  tolerance: 1.0e-9
finite_difference:
  default_h: 0.001
`,
		},
		{
			name: "toml",
			file: "numerics.toml",
			content: `max_iterations = 50

[jacobi]
max_iterations = 250
tolerance = 1e-9

[finite_difference]
default_h = 0.001
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewSource(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, 50, src.Int("max_iterations", 0))
			assert.Equal(t, 250, src.Int("jacobi.max_iterations", 0))
			assert.Equal(t, 1e-9, src.Float64("jacobi.tolerance", 0))
			assert.Equal(t, 0.001, src.Float64("finite_difference.default_h", 0))

			// regula_falsi is absent from the file, so the top-level budget applies
			rf := src.RegulaFalsiConfig()
			assert.Equal(t, 50, rf.MaxIterations)
			assert.Equal(t, 1e-6, rf.Tolerance)

			fd := src.FiniteDiffConfig()
			assert.Equal(t, 0.001, fd.DefaultStep)
			assert.Equal(t, 1e-10, fd.MinStep)
			assert.Equal(t, 1.0, fd.MaxStep)
		})
	}
}

func TestSourceErrors(t *testing.T) {
	_, err := NewSource(writeFile(t, "numerics.ini", "a=1"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = NewSource(writeFile(t, "numerics.json", "{not json"))
	assert.Error(t, err)
}

func TestSourceReload(t *testing.T) {
	path := writeFile(t, "numerics.json", `{"jacobi": {"max_iterations": 10}}`)
	src, err := NewSource(path)
	require.NoError(t, err)
	assert.Equal(t, 10, src.JacobiConfig().MaxIterations)

	require.NoError(t, os.WriteFile(path, []byte(`{"jacobi": {"max_iterations": 20}}`), 0o644))
	require.NoError(t, src.Reload())
	assert.Equal(t, 20, src.JacobiConfig().MaxIterations)

	// a broken file keeps the previous tree
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0o644))
	assert.Error(t, src.Reload())
	assert.Equal(t, 20, src.JacobiConfig().MaxIterations)
}

func TestSourceConcurrentReload(t *testing.T) {
	path := writeFile(t, "numerics.json", `{"tolerance": 0.5}`)
	src, err := NewSource(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, src.Reload())
		}()
		go func() {
			defer wg.Done()
			assert.Equal(t, 0.5, src.Float64("tolerance", 0))
		}()
	}
	wg.Wait()
}

func TestJacobiConfig(t *testing.T) {
	cfg := NewStaticSource(Defaults()).JacobiConfig()
	assert.Equal(t, 100, cfg.MaxIterations)
	assert.Equal(t, 1e-6, cfg.Tolerance)
	assert.Equal(t, 1.0, cfg.Relaxation)
}

func TestSourceRejectsUnusableSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"relaxation above one", `{"jacobi": {"relaxation_factor": 1.5}}`, "relaxation factor must be in (0, 1]"},
		{"negative relaxation", `{"jacobi": {"relaxation_factor": -0.2}}`, "relaxation factor"},
		{"default step outside bounds", `{"finite_difference": {"default_h": 2}}`, "default_h 2 is outside"},
		{"inverted bounds", `{"finite_difference": {"min_h": 0.5, "max_h": 0.1}}`, "0 < min_h <= max_h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSource(writeFile(t, "numerics.json", tt.content))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestReloadKeepsTreeOnUnusableSettings(t *testing.T) {
	path := writeFile(t, "numerics.json", `{"jacobi": {"relaxation_factor": 0.8}}`)
	src, err := NewSource(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"jacobi": {"relaxation_factor": 3}}`), 0o644))
	assert.ErrorContains(t, src.Reload(), "relaxation factor")
	assert.Equal(t, 0.8, src.JacobiConfig().Relaxation)
}
