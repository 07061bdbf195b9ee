package inspect

import (
	"errors"
	"fmt"
	"strings"
)

// ModelKind distinguishes the documentation treatment a model receives.
type ModelKind string

const (
	ModelKindModel    ModelKind = "model"
	ModelKindSettings ModelKind = "settings"
	ModelKindConfig   ModelKind = "config"
)

// Field describes one declared attribute of a model. Alias is the external
// name used on the wire; an empty alias means the declared name is also the
// external one.
type Field struct {
	Name     string
	Alias    string
	Type     string
	Required bool
	Doc      string
	Options  map[string]string
}

// ExternalName returns the alias when set, the declared name otherwise.
func (f Field) ExternalName() string {
	if strings.TrimSpace(f.Alias) != "" {
		return f.Alias
	}
	return f.Name
}

// Validator describes a validation method and the fields it is bound to, in
// source declaration order.
type Validator struct {
	Name    string
	Doc     string
	Fields  []string
	Params  []string
	Options map[string]string
}

// Model is the member-metadata entry for one documented class.
type Model struct {
	Name       string
	Kind       ModelKind
	Doc        string
	Fields     []Field
	Validators []Validator
	Options    map[string]string
}

// Module groups the models declared by one documented module.
type Module struct {
	Name   string
	Doc    string
	Models []Model
}

// Validate checks the structural integrity of a module's metadata before it
// enters a registry. Builds fail loudly on malformed input rather than
// silently omitting content.
func (m Module) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("inspect: module name is required")
	}
	seen := make(map[string]struct{}, len(m.Models))
	for _, model := range m.Models {
		if strings.TrimSpace(model.Name) == "" {
			return fmt.Errorf("inspect: module %q declares a model without a name", m.Name)
		}
		if _, dup := seen[model.Name]; dup {
			return fmt.Errorf("inspect: module %q declares model %q twice", m.Name, model.Name)
		}
		seen[model.Name] = struct{}{}
		if err := model.validate(m.Name); err != nil {
			return err
		}
	}
	return nil
}

func (m Model) validate(module string) error {
	switch m.Kind {
	case ModelKindModel, ModelKindSettings, ModelKindConfig:
	case "":
		return fmt.Errorf("inspect: model %s.%s has no kind", module, m.Name)
	default:
		return fmt.Errorf("inspect: model %s.%s has unknown kind %q", module, m.Name, m.Kind)
	}

	fields := make(map[string]struct{}, len(m.Fields))
	for _, field := range m.Fields {
		if strings.TrimSpace(field.Name) == "" {
			return fmt.Errorf("inspect: model %s.%s declares a field without a name", module, m.Name)
		}
		if _, dup := fields[field.Name]; dup {
			return fmt.Errorf("inspect: model %s.%s declares field %q twice", module, m.Name, field.Name)
		}
		fields[field.Name] = struct{}{}
	}

	validators := make(map[string]struct{}, len(m.Validators))
	for _, validator := range m.Validators {
		if strings.TrimSpace(validator.Name) == "" {
			return fmt.Errorf("inspect: model %s.%s declares a validator without a name", module, m.Name)
		}
		if _, dup := validators[validator.Name]; dup {
			return fmt.Errorf("inspect: model %s.%s declares validator %q twice", module, m.Name, validator.Name)
		}
		validators[validator.Name] = struct{}{}
		for _, bound := range validator.Fields {
			if _, ok := fields[bound]; !ok {
				return fmt.Errorf("inspect: validator %s.%s.%s is bound to unknown field %q",
					module, m.Name, validator.Name, bound)
			}
		}
	}
	return nil
}

// FieldByName resolves a declared field.
func (m Model) FieldByName(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// ValidatorByName resolves a declared validator.
func (m Model) ValidatorByName(name string) (Validator, bool) {
	for _, validator := range m.Validators {
		if validator.Name == name {
			return validator, true
		}
	}
	return Validator{}, false
}
