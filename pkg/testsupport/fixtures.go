// Package testsupport provides fixture and golden-file helpers shared by the
// package test suites.
package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-modeldoc/pkg/inspect"
	"github.com/goliatone/go-modeldoc/pkg/modelfile"
)

// MustLoadModule reads a model-definition fixture and fails the test on any
// parse or validation error.
func MustLoadModule(t *testing.T, path string) inspect.Module {
	t.Helper()

	module, err := LoadModule(path)
	if err != nil {
		t.Fatalf("load module: %v", err)
	}
	return module
}

// LoadModule returns a Module without requiring testing.T, allowing callers
// to wire fixtures in setup functions.
func LoadModule(path string) (inspect.Module, error) {
	if path == "" {
		return inspect.Module{}, errors.New("testsupport: module path is required")
	}
	module, err := modelfile.LoadFile(path)
	if err != nil {
		return inspect.Module{}, fmt.Errorf("testsupport: %w", err)
	}
	return module, nil
}

// MustRegistry builds a metadata registry from the given modules.
func MustRegistry(t *testing.T, modules ...inspect.Module) *inspect.Registry {
	t.Helper()

	registry := inspect.NewRegistry()
	for _, module := range modules {
		if err := registry.RegisterModule(module); err != nil {
			t.Fatalf("register module %q: %v", module.Name, err)
		}
	}
	return registry
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
