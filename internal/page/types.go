package page

import "github.com/goliatone/go-modeldoc/pkg/doctree"

// Entry is one rendered member on a documentation page: the signature tree
// produced by its directive plus the name/prefix pair the directive reported.
type Entry struct {
	Construct string
	Fullname  string
	Prefix    string
	Signature *doctree.SignatureNode
	Doc       string
	Depth     int
}

// Page is the per-module render input consumed by renderers: every model,
// field, and validator of one documented module in declaration order.
type Page struct {
	Module  string
	Doc     string
	Entries []Entry
}

// ByConstruct filters entries by construct name, preserving order.
func (p Page) ByConstruct(construct string) []Entry {
	var out []Entry
	for _, entry := range p.Entries {
		if entry.Construct == construct {
			out = append(out, entry)
		}
	}
	return out
}
