package modeldoc

import (
	"context"

	"github.com/goliatone/go-modeldoc/pkg/generator"
	"github.com/goliatone/go-modeldoc/pkg/render"
	theme "github.com/goliatone/go-theme"
)

// Request selects the module, renderer, and theme for one generated page.
type Request = generator.Request

// Source feeds model metadata into the generator's registry.
type Source = generator.Source

// RenderOptions carries per-request data renderers can use to customise
// their output.
type RenderOptions = render.RenderOptions

// ThemeConfig is the renderer-facing view of a resolved theme selection.
type ThemeConfig = render.ThemeConfig

// NewGenerator exposes the generator constructor from the top-level module so
// quick-start callers need a single import.
func NewGenerator(options ...generator.Option) *generator.Generator {
	return generator.New(options...)
}

// GenerateHTML loads the queued sources, builds the documentation page for
// the named module, and renders it with the built-in HTML renderer. It is the
// simplest entry point for callers that just want HTML output.
func GenerateHTML(ctx context.Context, module string, options ...generator.Option) ([]byte, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, generator.Request{
		Module:   module,
		Renderer: "html",
	})
}

// GenerateMarkdown renders the named module with the built-in Markdown
// renderer.
func GenerateMarkdown(ctx context.Context, module string, options ...generator.Option) ([]byte, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, generator.Request{
		Module:   module,
		Renderer: "markdown",
	})
}

// WithSources queues metadata sources for lazy loading.
func WithSources(sources ...generator.Source) generator.Option {
	return generator.WithSources(sources...)
}

// ModelFS walks an fs.FS for model definition files and registers every
// module it finds. Re-exported so quick-start callers need a single import.
var ModelFS = generator.ModelFS

// ModelFile loads a single model definition file from disk.
var ModelFile = generator.ModelFile

// OpenAPIData converts an OpenAPI document's component schemas into a module.
var OpenAPIData = generator.OpenAPIData

// WithThemeSelector passes a go-theme selector through to the generator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) generator.Option {
	return generator.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) generator.Option {
	return generator.WithThemeFallbacks(fallbacks)
}
