package generator

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-modeldoc/pkg/inspect"
	"github.com/goliatone/go-modeldoc/pkg/modelfile"
	"github.com/goliatone/go-modeldoc/pkg/openapi"
)

// Source feeds model metadata into the inspection registry. Sources queued
// via WithSources load lazily on the first Generate call so expensive parses
// only run when documentation is actually requested.
type Source interface {
	Load(ctx context.Context, registry *inspect.Registry) error
}

// SourceFunc adapts a plain function into a Source.
type SourceFunc func(ctx context.Context, registry *inspect.Registry) error

func (fn SourceFunc) Load(ctx context.Context, registry *inspect.Registry) error {
	return fn(ctx, registry)
}

// ModelFS walks an fs.FS for model definition files (.yaml/.yml/.json) and
// registers every module it finds.
func ModelFS(fsys fs.FS) Source {
	return SourceFunc(func(_ context.Context, registry *inspect.Registry) error {
		modules, err := modelfile.LoadFS(fsys)
		if err != nil {
			return err
		}
		for _, module := range modules {
			if err := registry.RegisterModule(module); err != nil {
				return err
			}
		}
		return nil
	})
}

// ModelFile loads a single model definition file from disk.
func ModelFile(path string) Source {
	return SourceFunc(func(_ context.Context, registry *inspect.Registry) error {
		module, err := modelfile.LoadFile(path)
		if err != nil {
			return err
		}
		return registry.RegisterModule(module)
	})
}

// OpenAPIData converts an OpenAPI document's component schemas into a module
// and registers it.
func OpenAPIData(data []byte, opts openapi.Options) Source {
	return SourceFunc(func(ctx context.Context, registry *inspect.Registry) error {
		module, err := openapi.Parse(ctx, data, opts)
		if err != nil {
			return err
		}
		return registry.RegisterModule(module)
	})
}

// Modules registers already-built metadata directly, bypassing file parsing.
func Modules(modules ...inspect.Module) Source {
	return SourceFunc(func(_ context.Context, registry *inspect.Registry) error {
		for _, module := range modules {
			if err := registry.RegisterModule(module); err != nil {
				return fmt.Errorf("register module %q: %w", module.Name, err)
			}
		}
		return nil
	})
}
