package directive

import "strings"

// Well-known option names resolved by the built-in directives.
const (
	OptionModelSignaturePrefix      = "model-signature-prefix"
	OptionSettingsSignaturePrefix   = "settings-signature-prefix"
	OptionConfigSignaturePrefix     = "config-signature-prefix"
	OptionFieldSignaturePrefix      = "field-signature-prefix"
	OptionValidatorSignaturePrefix  = "validator-signature-prefix"
	OptionFieldShowAlias            = "field-show-alias"
	OptionValidatorReplaceSignature = "validator-replace-signature"
)

// Options resolves configuration values for one directive invocation.
// Directive-local overrides win over the document-wide store; both are
// read-only for the duration of a render pass.
type Options struct {
	local map[string]string
	doc   map[string]string
}

// NewOptions builds a resolver from a local override map and the
// document-wide defaults. Either map may be nil.
func NewOptions(local, doc map[string]string) Options {
	return Options{local: local, doc: doc}
}

// Value returns the effective value for an option name and whether any layer
// defined it.
func (o Options) Value(name string) (string, bool) {
	if value, ok := o.local[name]; ok {
		return value, true
	}
	if value, ok := o.doc[name]; ok {
		return value, true
	}
	return "", false
}

// Bool resolves an option as a boolean toggle. Unset options fall back to
// the provided default; unrecognised values resolve to false.
func (o Options) Bool(name string, fallback bool) bool {
	raw, ok := o.Value(name)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	default:
		return false
	}
}
