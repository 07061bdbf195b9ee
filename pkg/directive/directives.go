package directive

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-modeldoc/pkg/doctree"
	"github.com/goliatone/go-modeldoc/pkg/inspect"
)

// arrowClass is the CSS hook carried by the separator annotation a validator
// directive emits before its field references.
const arrowClass = "validator-arrow"

// validatorArrow is the visual separator between a validator's name and the
// fields it validates.
const validatorArrow = "  »  "

// Model renders data-model classes. Pure label substitution.
type Model struct {
	base
}

// NewModel constructs the model directive.
func NewModel(cfg Config) *Model {
	return &Model{base: newBase("model", "class", cfg)}
}

func (d *Model) Construct() string { return "model" }

func (d *Model) OptionSpec() []string {
	return []string{OptionModelSignaturePrefix}
}

func (d *Model) HandleSignature(raw string, sig *doctree.SignatureNode) (Signature, error) {
	return d.handle(raw, sig)
}

// Settings renders settings classes. Pure label substitution.
type Settings struct {
	base
}

// NewSettings constructs the settings directive.
func NewSettings(cfg Config) *Settings {
	return &Settings{base: newBase("settings", "class", cfg)}
}

func (d *Settings) Construct() string { return "settings" }

func (d *Settings) OptionSpec() []string {
	return []string{OptionSettingsSignaturePrefix}
}

func (d *Settings) HandleSignature(raw string, sig *doctree.SignatureNode) (Signature, error) {
	return d.handle(raw, sig)
}

// ConfigClass renders nested config classes. Pure label substitution.
type ConfigClass struct {
	base
}

// NewConfigClass constructs the config-class directive.
func NewConfigClass(cfg Config) *ConfigClass {
	return &ConfigClass{base: newBase("config", "class", cfg)}
}

func (d *ConfigClass) Construct() string { return "config" }

func (d *ConfigClass) OptionSpec() []string {
	return []string{OptionConfigSignaturePrefix}
}

func (d *ConfigClass) HandleSignature(raw string, sig *doctree.SignatureNode) (Signature, error) {
	return d.handle(raw, sig)
}

// Field renders declared model fields, optionally annotating the external
// alias when it differs from the declared name.
type Field struct {
	base
}

// NewField constructs the field directive.
func NewField(cfg Config) *Field {
	return &Field{base: newBase("field", "attribute", cfg)}
}

func (d *Field) Construct() string { return "field" }

func (d *Field) OptionSpec() []string {
	return []string{OptionFieldSignaturePrefix, OptionFieldShowAlias}
}

func (d *Field) HandleSignature(raw string, sig *doctree.SignatureNode) (Signature, error) {
	result, err := d.handle(raw, sig)
	if err != nil {
		return Signature{}, err
	}
	if d.opts.Bool(OptionFieldShowAlias, true) {
		if err := d.addAlias(sig); err != nil {
			return Signature{}, err
		}
	}
	return result, nil
}

// addAlias appends an alias annotation when the field's external name
// differs from its declared name. Unresolved models or fields surface as
// hard failures: they indicate malformed documentation input.
func (d *Field) addAlias(sig *doctree.SignatureNode) error {
	fieldName := lastSegment(sig.Fullname)
	wrapper, err := inspect.FromSignature(d.registry, sig)
	if err != nil {
		return err
	}
	field, err := wrapper.FieldByName(fieldName)
	if err != nil {
		return err
	}

	alias := field.ExternalName()
	if alias != fieldName {
		sig.Append(doctree.Annotation(fmt.Sprintf(" (alias '%s')", alias)))
	}
	return nil
}

// Validator renders validator methods. When replacement is enabled the
// positional parameter list is dropped; it carries no meaning for the reader.
// The rendered line instead points at the fields the validator is bound to.
type Validator struct {
	base
}

// NewValidator constructs the validator directive.
func NewValidator(cfg Config) *Validator {
	return &Validator{base: newBase("validator", "classmethod", cfg)}
}

func (d *Validator) Construct() string { return "validator" }

func (d *Validator) OptionSpec() []string {
	return []string{OptionValidatorSignaturePrefix, OptionValidatorReplaceSignature}
}

func (d *Validator) HandleSignature(raw string, sig *doctree.SignatureNode) (Signature, error) {
	result, err := d.handle(raw, sig)
	if err != nil {
		return Signature{}, err
	}
	if d.opts.Bool(OptionValidatorReplaceSignature, true) {
		if err := d.replaceSignature(sig); err != nil {
			return Signature{}, err
		}
	}
	return result, nil
}

// replaceSignature removes the parameter list and appends a separator
// followed by one reference node per validated field, comma-separated, in
// the declaration order of the bindings. A validator bound to zero fields is
// a configuration error.
func (d *Validator) replaceSignature(sig *doctree.SignatureNode) error {
	validatorName := lastSegment(sig.Fullname)
	wrapper, err := inspect.FromSignature(d.registry, sig)
	if err != nil {
		return err
	}
	fields, err := wrapper.FieldsForValidator(validatorName)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return fmt.Errorf("directive: validator %q is bound to no fields", sig.Fullname)
	}

	sig.RemoveChildrenByKind(doctree.KindParameterList)
	sig.Append(doctree.Annotation(validatorArrow, arrowClass))
	for i, field := range fields {
		if i > 0 {
			sig.Append(doctree.Annotation(", "))
		}
		sig.Append(doctree.Reference(field.Name, wrapper.Path()+"."+field.Name))
	}
	return nil
}

func lastSegment(fullname string) string {
	if idx := strings.LastIndex(fullname, "."); idx >= 0 {
		return fullname[idx+1:]
	}
	return fullname
}
