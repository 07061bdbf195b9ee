// Package modelfile loads declarative model-definition documents and turns
// them into the member metadata consumed by the documentation pipeline. One
// document describes one module; fields carry their alias and type, and
// validators list the fields they are bound to in declaration order.
package modelfile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-modeldoc/pkg/inspect"
)

type document struct {
	Module string      `yaml:"module"`
	Doc    string      `yaml:"doc"`
	Models []modelSpec `yaml:"models"`
}

type modelSpec struct {
	Name       string            `yaml:"name"`
	Kind       string            `yaml:"kind"`
	Doc        string            `yaml:"doc"`
	Options    map[string]string `yaml:"options"`
	Fields     []fieldSpec       `yaml:"fields"`
	Validators []validatorSpec   `yaml:"validators"`
}

type fieldSpec struct {
	Name     string            `yaml:"name"`
	Alias    string            `yaml:"alias"`
	Type     string            `yaml:"type"`
	Required bool              `yaml:"required"`
	Doc      string            `yaml:"doc"`
	Options  map[string]string `yaml:"options"`
}

type validatorSpec struct {
	Name    string            `yaml:"name"`
	Doc     string            `yaml:"doc"`
	Fields  []string          `yaml:"fields"`
	Params  []string          `yaml:"params"`
	Options map[string]string `yaml:"options"`
}

// Parse decodes one model-definition document. The origin is only used in
// error messages.
func Parse(data []byte, origin string) (inspect.Module, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return inspect.Module{}, fmt.Errorf("modelfile: parse %s: %w", origin, err)
	}

	module := inspect.Module{
		Name: strings.TrimSpace(doc.Module),
		Doc:  doc.Doc,
	}
	for _, spec := range doc.Models {
		kind := inspect.ModelKind(strings.TrimSpace(spec.Kind))
		if kind == "" {
			kind = inspect.ModelKindModel
		}
		model := inspect.Model{
			Name:    strings.TrimSpace(spec.Name),
			Kind:    kind,
			Doc:     spec.Doc,
			Options: spec.Options,
		}
		for _, f := range spec.Fields {
			model.Fields = append(model.Fields, inspect.Field{
				Name:     strings.TrimSpace(f.Name),
				Alias:    strings.TrimSpace(f.Alias),
				Type:     strings.TrimSpace(f.Type),
				Required: f.Required,
				Doc:      f.Doc,
				Options:  f.Options,
			})
		}
		for _, v := range spec.Validators {
			model.Validators = append(model.Validators, inspect.Validator{
				Name:    strings.TrimSpace(v.Name),
				Doc:     v.Doc,
				Fields:  v.Fields,
				Params:  v.Params,
				Options: v.Options,
			})
		}
		module.Models = append(module.Models, model)
	}

	if err := module.Validate(); err != nil {
		return inspect.Module{}, fmt.Errorf("modelfile: %s: %w", origin, err)
	}
	return module, nil
}

// LoadFile reads and parses a single model-definition file.
func LoadFile(path string) (inspect.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return inspect.Module{}, fmt.Errorf("modelfile: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS walks a filesystem and parses every model-definition file found.
// Returns the modules in walk order; duplicate module names surface later at
// registration time.
func LoadFS(fsys fs.FS) ([]inspect.Module, error) {
	if fsys == nil {
		return nil, nil
	}

	var modules []inspect.Module
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isModelFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("modelfile: read %s: %w", path, err)
		}
		module, err := Parse(data, path)
		if err != nil {
			return err
		}
		modules = append(modules, module)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return modules, nil
}

func isModelFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
