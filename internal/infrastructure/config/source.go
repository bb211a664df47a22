package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// ErrUnsupportedFormat is returned for config files with an unknown extension.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Source serves numerics defaults by dotted key ("jacobi.tolerance").
// Reads never block; Reload swaps in a fresh tree.
type Source struct {
	path string
	tree atomic.Pointer[map[string]interface{}]
}

// Defaults returns the built-in numerics tree used when no file exists.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"max_iterations": 100,
		"tolerance":      1e-6,
		"jacobi": map[string]interface{}{
			"max_iterations":    100,
			"tolerance":         1e-6,
			"relaxation_factor": 1.0,
		},
		"regula_falsi": map[string]interface{}{
			"max_iterations": 100,
			"tolerance":      1e-6,
		},
		"finite_difference": map[string]interface{}{
			"default_h": 0.01,
			"min_h":     1e-10,
			"max_h":     1.0,
		},
	}
}

// NewSource loads path. A missing file (or empty path) yields the built-in defaults.
func NewSource(path string) (*Source, error) {
	s := &Source{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewStaticSource wraps an in-memory tree. Reload on it restores Defaults.
func NewStaticSource(tree map[string]interface{}) *Source {
	s := &Source{}
	s.tree.Store(&tree)
	return s
}

// Path returns the backing file path.
func (s *Source) Path() string {
	return s.path
}

// Reload re-reads and validates the backing file. On error the previous
// tree stays active.
func (s *Source) Reload() error {
	tree, err := readTree(s.path)
	if err != nil {
		return err
	}
	if err := validate(tree); err != nil {
		return fmt.Errorf("invalid %s: %w", s.path, err)
	}
	s.tree.Store(&tree)
	return nil
}

// Snapshot returns the current tree. Callers must not modify it.
func (s *Source) Snapshot() map[string]interface{} {
	return *s.tree.Load()
}

// Get walks a dotted key and returns fallback when any segment is missing.
func (s *Source) Get(key string, fallback interface{}) interface{} {
	var node interface{} = s.Snapshot()
	for _, part := range strings.Split(key, ".") {
		m, ok := asMap(node)
		if !ok {
			return fallback
		}
		if node, ok = m[part]; !ok {
			return fallback
		}
	}
	return node
}

// Float64 returns a numeric value or fallback when absent or not a number.
func (s *Source) Float64(key string, fallback float64) float64 {
	switch v := s.Get(key, nil).(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	}
	return fallback
}

// Int returns an integral value or fallback when absent or not a whole number.
func (s *Source) Int(key string, fallback int) int {
	switch v := s.Get(key, nil).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		if v == float64(int(v)) {
			return int(v)
		}
	}
	return fallback
}

func readTree(path string) (map[string]interface{}, error) {
	if path == "" {
		return Defaults(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	tree := map[string]interface{}{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = sonic.Unmarshal(data, &tree)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &tree)
	case ".toml":
		err = toml.Unmarshal(data, &tree)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return tree, nil
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}
