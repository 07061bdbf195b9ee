package modeldoc

import (
	"io/fs"

	html "github.com/goliatone/go-modeldoc/pkg/renderers/html"
)

// EmbeddedTemplates exposes the built-in HTML renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

// StylesheetFS exposes the embedded stylesheet bundle so applications can
// serve it alongside generated pages.
//
// Typical mount:
//
//	mux.Handle("/docs/assets/",
//	  http.StripPrefix("/docs/assets/",
//	    http.FileServerFS(modeldoc.StylesheetFS()),
//	  ),
//	)
func StylesheetFS() fs.FS {
	return html.AssetsFS()
}
