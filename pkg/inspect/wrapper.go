package inspect

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-modeldoc/pkg/doctree"
)

// ModelWrapper is a transient view over the model that owns a rendered
// signature. It is constructed per lookup and exposes the cross-reference
// queries directives need: field by name, fields bound to a validator.
type ModelWrapper struct {
	path  string
	model Model
}

// FromSignature resolves the owning model from a signature node's fully
// qualified dotted name. The owning model path is the fullname minus its
// trailing member segment; a model's own signature resolves to itself.
// Resolution failure is a hard error, never a silent skip.
func FromSignature(registry *Registry, sig *doctree.SignatureNode) (*ModelWrapper, error) {
	if registry == nil {
		return nil, fmt.Errorf("inspect: registry is required")
	}
	if sig == nil || strings.TrimSpace(sig.Fullname) == "" {
		return nil, fmt.Errorf("inspect: signature node has no fullname")
	}
	return FromPath(registry, sig.Fullname)
}

// FromPath resolves a wrapper from a dotted name, either a model path or a
// member path one segment deeper.
func FromPath(registry *Registry, fullname string) (*ModelWrapper, error) {
	if model, ok := registry.Model(fullname); ok {
		return &ModelWrapper{path: fullname, model: model}, nil
	}

	idx := strings.LastIndex(fullname, ".")
	if idx <= 0 {
		return nil, fmt.Errorf("inspect: cannot resolve model for %q", fullname)
	}
	owner := fullname[:idx]
	model, ok := registry.Model(owner)
	if !ok {
		return nil, fmt.Errorf("inspect: cannot resolve model for %q", fullname)
	}
	return &ModelWrapper{path: owner, model: model}, nil
}

// Path returns the dotted path of the wrapped model.
func (w *ModelWrapper) Path() string {
	return w.path
}

// Model returns the wrapped metadata entry.
func (w *ModelWrapper) Model() Model {
	return w.model
}

// FieldByName resolves a declared field or fails with the member path.
func (w *ModelWrapper) FieldByName(name string) (Field, error) {
	field, ok := w.model.FieldByName(name)
	if !ok {
		return Field{}, fmt.Errorf("inspect: model %q has no field %q", w.path, name)
	}
	return field, nil
}

// ValidatorByName resolves a declared validator or fails with the member path.
func (w *ModelWrapper) ValidatorByName(name string) (Validator, error) {
	validator, ok := w.model.ValidatorByName(name)
	if !ok {
		return Validator{}, fmt.Errorf("inspect: model %q has no validator %q", w.path, name)
	}
	return validator, nil
}

// FieldsForValidator returns the fields a validator is bound to, in the
// declaration order of the bindings.
func (w *ModelWrapper) FieldsForValidator(name string) ([]Field, error) {
	validator, err := w.ValidatorByName(name)
	if err != nil {
		return nil, err
	}
	fields := make([]Field, 0, len(validator.Fields))
	for _, bound := range validator.Fields {
		field, err := w.FieldByName(bound)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}
