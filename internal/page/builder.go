package page

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-modeldoc/pkg/directive"
	"github.com/goliatone/go-modeldoc/pkg/doctree"
	"github.com/goliatone/go-modeldoc/pkg/inspect"
)

// defaultValidatorParams is used when a validator declares no parameter
// names; the rendered parameter list still shows the conventional argument.
var defaultValidatorParams = []string{"value"}

// Options configures a page builder.
type Options struct {
	// Directives supplies the construct dispatch table. Defaults to the
	// built-in registry.
	Directives *directive.Registry
	// DocOptions is the document-wide option store shared by every directive
	// invocation in the build.
	DocOptions map[string]string
}

// Builder turns a registered module's metadata into a documentation page by
// dispatching one directive invocation per member. Any resolution failure
// aborts the build.
type Builder struct {
	directives *directive.Registry
	docOptions map[string]string
}

// New constructs a Builder, applying the default directive registry when
// none is supplied.
func New(opts Options) *Builder {
	directives := opts.Directives
	if directives == nil {
		directives = directive.NewDefaultRegistry()
	}
	return &Builder{directives: directives, docOptions: opts.DocOptions}
}

// Build renders the page for one module.
func (b *Builder) Build(registry *inspect.Registry, moduleName string) (Page, error) {
	if registry == nil {
		return Page{}, fmt.Errorf("page: metadata registry is required")
	}
	module, ok := registry.Module(moduleName)
	if !ok {
		return Page{}, fmt.Errorf("page: module %q not registered", moduleName)
	}

	out := Page{Module: module.Name, Doc: module.Doc}
	for _, model := range module.Models {
		path := module.Name + "." + model.Name

		entry, err := b.dispatch(registry, constructForKind(model.Kind), path, model.Options, model.Doc, 0)
		if err != nil {
			return Page{}, err
		}
		out.Entries = append(out.Entries, entry)

		for _, field := range model.Fields {
			entry, err := b.dispatch(registry, "field", path+"."+field.Name, field.Options, field.Doc, 1)
			if err != nil {
				return Page{}, err
			}
			out.Entries = append(out.Entries, entry)
		}

		for _, validator := range model.Validators {
			raw := path + "." + validator.Name + "(" + strings.Join(validatorParams(validator), ", ") + ")"
			entry, err := b.dispatch(registry, "validator", raw, validator.Options, validator.Doc, 1)
			if err != nil {
				return Page{}, err
			}
			out.Entries = append(out.Entries, entry)
		}
	}
	return out, nil
}

func (b *Builder) dispatch(registry *inspect.Registry, construct, raw string, local map[string]string, doc string, depth int) (Entry, error) {
	d, err := b.directives.New(construct, directive.Config{
		Registry: registry,
		Local:    local,
		Doc:      b.docOptions,
	})
	if err != nil {
		return Entry{}, err
	}

	sig := doctree.NewSignature("")
	result, err := d.HandleSignature(raw, sig)
	if err != nil {
		return Entry{}, fmt.Errorf("page: handle %s signature %q: %w", construct, raw, err)
	}

	return Entry{
		Construct: construct,
		Fullname:  result.Fullname,
		Prefix:    result.Prefix,
		Signature: sig,
		Doc:       doc,
		Depth:     depth,
	}, nil
}

func constructForKind(kind inspect.ModelKind) string {
	switch kind {
	case inspect.ModelKindSettings:
		return "settings"
	case inspect.ModelKindConfig:
		return "config"
	default:
		return "model"
	}
}

func validatorParams(validator inspect.Validator) []string {
	if len(validator.Params) > 0 {
		return validator.Params
	}
	return defaultValidatorParams
}
