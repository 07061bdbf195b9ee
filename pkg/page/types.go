package page

import internalpage "github.com/goliatone/go-modeldoc/internal/page"

// Entry re-exports the internal page entry type.
type Entry = internalpage.Entry

// Page re-exports the internal page type consumed by renderers.
type Page = internalpage.Page

// Builder re-exports the internal page builder.
type Builder = internalpage.Builder

// Options re-exports the internal builder options.
type Options = internalpage.Options

// NewBuilder constructs a page builder with the supplied options.
func NewBuilder(opts Options) *Builder {
	return internalpage.New(opts)
}
