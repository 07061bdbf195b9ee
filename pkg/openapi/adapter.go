// Package openapi builds model metadata modules from the component schemas
// of an OpenAPI document. Aliases, model kinds, and validator bindings are
// read from vendor extensions:
//
//	x-alias       (property) external field name
//	x-model-kind  (schema)   model | settings | config
//	x-validators  (schema)   list of {name, fields, params, doc}
//
// Properties are indexed alphabetically since the source map carries no
// declaration order; validator bindings keep the order of the extension list.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-modeldoc/pkg/inspect"
)

const (
	aliasExtensionKey      = "x-alias"
	modelKindExtensionKey  = "x-model-kind"
	validatorsExtensionKey = "x-validators"
	moduleExtensionKey     = "x-modeldoc-module"
)

// Options tunes the adapter behaviour.
type Options struct {
	// ModuleName overrides the module name derived from the document's
	// x-modeldoc-module extension or info title.
	ModuleName string
}

// Parse loads an OpenAPI payload and converts its component schemas into one
// metadata module.
func Parse(ctx context.Context, data []byte, opts Options) (inspect.Module, error) {
	if len(data) == 0 {
		return inspect.Module{}, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return inspect.Module{}, fmt.Errorf("openapi: load document: %w", err)
	}

	module := inspect.Module{Name: moduleName(spec, opts)}
	if module.Name == "" {
		return inspect.Module{}, errors.New("openapi: cannot determine module name")
	}
	if spec.Info != nil {
		module.Doc = spec.Info.Description
	}

	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return inspect.Module{}, errors.New("openapi: document declares no component schemas")
	}

	names := make([]string, 0, len(spec.Components.Schemas))
	for name := range spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := spec.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		model, err := convertModel(name, ref.Value)
		if err != nil {
			return inspect.Module{}, err
		}
		module.Models = append(module.Models, model)
	}

	if err := module.Validate(); err != nil {
		return inspect.Module{}, err
	}
	return module, nil
}

func moduleName(spec *openapi3.T, opts Options) string {
	if name := strings.TrimSpace(opts.ModuleName); name != "" {
		return name
	}
	if raw, ok := spec.Extensions[moduleExtensionKey]; ok {
		if name, ok := raw.(string); ok && strings.TrimSpace(name) != "" {
			return strings.TrimSpace(name)
		}
	}
	if spec.Info != nil {
		return slugify(spec.Info.Title)
	}
	return ""
}

func convertModel(name string, schema *openapi3.Schema) (inspect.Model, error) {
	model := inspect.Model{
		Name: name,
		Kind: modelKind(schema.Extensions),
		Doc:  schema.Description,
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, field := range schema.Required {
		required[field] = struct{}{}
	}

	propNames := make([]string, 0, len(schema.Properties))
	for propName := range schema.Properties {
		propNames = append(propNames, propName)
	}
	sort.Strings(propNames)

	for _, propName := range propNames {
		ref := schema.Properties[propName]
		field := inspect.Field{Name: propName}
		if _, ok := required[propName]; ok {
			field.Required = true
		}
		if ref != nil && ref.Value != nil {
			field.Type = firstSchemaType(ref.Value.Type)
			field.Doc = ref.Value.Description
			if alias, ok := ref.Value.Extensions[aliasExtensionKey].(string); ok {
				field.Alias = strings.TrimSpace(alias)
			}
		}
		model.Fields = append(model.Fields, field)
	}

	validators, err := convertValidators(name, schema.Extensions)
	if err != nil {
		return inspect.Model{}, err
	}
	model.Validators = validators
	return model, nil
}

func modelKind(extensions map[string]any) inspect.ModelKind {
	raw, ok := extensions[modelKindExtensionKey].(string)
	if !ok {
		return inspect.ModelKindModel
	}
	switch kind := inspect.ModelKind(strings.TrimSpace(raw)); kind {
	case inspect.ModelKindSettings, inspect.ModelKindConfig:
		return kind
	default:
		return inspect.ModelKindModel
	}
}

func convertValidators(model string, extensions map[string]any) ([]inspect.Validator, error) {
	raw, ok := extensions[validatorsExtensionKey]
	if !ok {
		return nil, nil
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("openapi: schema %q: %s must be a list", model, validatorsExtensionKey)
	}

	validators := make([]inspect.Validator, 0, len(entries))
	for i, entry := range entries {
		mapped, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("openapi: schema %q: %s[%d] must be a mapping", model, validatorsExtensionKey, i)
		}
		validator := inspect.Validator{}
		if name, ok := mapped["name"].(string); ok {
			validator.Name = strings.TrimSpace(name)
		}
		if validator.Name == "" {
			return nil, fmt.Errorf("openapi: schema %q: %s[%d] is missing a name", model, validatorsExtensionKey, i)
		}
		if doc, ok := mapped["doc"].(string); ok {
			validator.Doc = doc
		}
		validator.Fields = stringList(mapped["fields"])
		validator.Params = stringList(mapped["params"])
		validators = append(validators, validator)
	}
	return validators, nil
}

func stringList(raw any) []string {
	entries, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if value, ok := entry.(string); ok && strings.TrimSpace(value) != "" {
			out = append(out, strings.TrimSpace(value))
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}

func slugify(title string) string {
	var out strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			out.WriteByte('_')
		}
	}
	return strings.Trim(out.String(), "_")
}
