package directive

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-modeldoc/pkg/doctree"
	"github.com/goliatone/go-modeldoc/pkg/inspect"
)

// Signature is the name/prefix pair a directive reports back to the build
// driver after handling one rendered member.
type Signature struct {
	Fullname string
	Prefix   string
}

// Directive maps one data-model construct onto its rendering shape. Each
// invocation is independent and idempotent given the same node and metadata.
type Directive interface {
	Construct() string
	OptionSpec() []string
	HandleSignature(raw string, sig *doctree.SignatureNode) (Signature, error)
}

// SignatureHandler is the generic rendering strategy directives delegate to
// before applying their own augmentation. Separating the strategy from the
// directives keeps the base behaviour swappable without inheritance.
type SignatureHandler interface {
	Handle(raw, prefix string, sig *doctree.SignatureNode) (string, error)
}

// Config carries the dependencies a directive invocation needs: the member
// metadata registry, the directive-local option overrides, and the
// document-wide option store. Handler defaults to the generic handler.
type Config struct {
	Registry *inspect.Registry
	Local    map[string]string
	Doc      map[string]string
	Handler  SignatureHandler
}

// base wires the option resolver and generic handler into every specialized
// directive.
type base struct {
	construct     string
	defaultPrefix string
	opts          Options
	handler       SignatureHandler
	registry      *inspect.Registry
}

func newBase(construct, defaultPrefix string, cfg Config) base {
	handler := cfg.Handler
	if handler == nil {
		handler = GenericHandler{}
	}
	return base{
		construct:     construct,
		defaultPrefix: defaultPrefix,
		opts:          NewOptions(cfg.Local, cfg.Doc),
		handler:       handler,
		registry:      cfg.Registry,
	}
}

// SignaturePrefix resolves the construct's prefix label. An override option
// wins over the hard-coded default; the result always carries one trailing
// space. Absence of configuration is the normal case, not an error.
func (b base) SignaturePrefix(string) string {
	value, ok := b.opts.Value(b.construct + "-signature-prefix")
	if !ok || strings.TrimSpace(value) == "" {
		value = b.defaultPrefix
	}
	return value + " "
}

func (b base) handle(raw string, sig *doctree.SignatureNode) (Signature, error) {
	prefix := b.SignaturePrefix(raw)
	fullname, err := b.handler.Handle(raw, prefix, sig)
	if err != nil {
		return Signature{}, err
	}
	return Signature{Fullname: fullname, Prefix: prefix}, nil
}

// GenericHandler builds the base signature children the way the host's
// default rendering would: prefix, qualifying path, member name, and an
// optional parameter list parsed from the raw declaration text.
type GenericHandler struct{}

// Handle parses the raw signature, stamps the fullname on the node, and
// appends the generic children. It returns the fully qualified dotted name.
func (GenericHandler) Handle(raw, prefix string, sig *doctree.SignatureNode) (string, error) {
	fullname, params, hasParams, err := parseSignature(raw)
	if err != nil {
		return "", err
	}

	sig.Fullname = fullname
	sig.Append(doctree.Prefix(prefix))

	name := fullname
	if idx := strings.LastIndex(fullname, "."); idx >= 0 {
		sig.Append(doctree.AddName(fullname[:idx+1]))
		name = fullname[idx+1:]
	}
	sig.Append(doctree.Name(name))

	if hasParams {
		sig.Append(doctree.ParameterList(params...))
	}
	return fullname, nil
}

// parseSignature splits a raw declaration such as
// "store.Article.check_slug(value)" into its dotted name and parameter
// names. hasParams distinguishes "name()" from a bare "name".
func parseSignature(raw string) (fullname string, params []string, hasParams bool, err error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil, false, fmt.Errorf("directive: empty signature")
	}

	if open := strings.Index(trimmed, "("); open >= 0 {
		if !strings.HasSuffix(trimmed, ")") {
			return "", nil, false, fmt.Errorf("directive: malformed signature %q", raw)
		}
		inner := trimmed[open+1 : len(trimmed)-1]
		trimmed, hasParams = strings.TrimSpace(trimmed[:open]), true
		for _, part := range strings.Split(inner, ",") {
			if name := strings.TrimSpace(part); name != "" {
				params = append(params, name)
			}
		}
	}

	if trimmed == "" {
		return "", nil, false, fmt.Errorf("directive: malformed signature %q", raw)
	}
	for _, segment := range strings.Split(trimmed, ".") {
		if strings.TrimSpace(segment) == "" {
			return "", nil, false, fmt.Errorf("directive: malformed dotted name %q", raw)
		}
	}
	return trimmed, params, hasParams, nil
}
