// Package generator coordinates the full documentation pipeline: model
// metadata sources feed an inspection registry, the page builder dispatches
// directives over every member, and a named renderer turns the page into
// bytes. It applies sensible defaults (HTML renderer, built-in directives)
// while remaining open to dependency injection for advanced callers.
package generator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-modeldoc/pkg/directive"
	"github.com/goliatone/go-modeldoc/pkg/inspect"
	"github.com/goliatone/go-modeldoc/pkg/page"
	"github.com/goliatone/go-modeldoc/pkg/render"
	htmlrenderer "github.com/goliatone/go-modeldoc/pkg/renderers/html"
	markdownrenderer "github.com/goliatone/go-modeldoc/pkg/renderers/markdown"
	theme "github.com/goliatone/go-theme"
)

const defaultRendererName = "html"

// Option customises the generator configuration.
type Option func(*Generator)

// WithModels injects a pre-populated metadata registry. Sources added via
// WithSources load into it on first use.
func WithModels(registry *inspect.Registry) Option {
	return func(g *Generator) {
		g.models = registry
	}
}

// WithSources queues metadata sources that load into the registry on the
// first Generate call.
func WithSources(sources ...Source) Option {
	return func(g *Generator) {
		for _, src := range sources {
			if src == nil {
				continue
			}
			g.sources = append(g.sources, src)
		}
	}
}

// WithDirectives injects a custom directive registry.
func WithDirectives(registry *directive.Registry) Option {
	return func(g *Generator) {
		g.directives = registry
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		g.renderers = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		g.defaultRenderer = name
	}
}

// WithDocOptions sets the document-wide option store consulted by every
// directive when no local override is present.
func WithDocOptions(options map[string]string) Option {
	return func(g *Generator) {
		g.docOptions = cloneStringMap(options)
	}
}

// WithThemeSelector passes a go-theme selector through to the generator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(g *Generator) {
		g.themeSelector = selector
	}
}

// WithThemeDefaults sets the theme and variant used when a request does not
// name them explicitly. Only consulted when a selector is configured.
func WithThemeDefaults(name, variant string) Option {
	return func(g *Generator) {
		g.defaultTheme = name
		g.defaultVariant = variant
	}
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(g *Generator) {
		g.themeFallbacks = cloneStringMap(fallbacks)
	}
}

// Generator wires metadata sources, directives, and renderers into a single
// Generate entry point.
type Generator struct {
	models          *inspect.Registry
	sources         []Source
	loadOnce        sync.Once
	loadErr         error
	directives      *directive.Registry
	renderers       *render.Registry
	defaultRenderer string
	docOptions      map[string]string
	themeSelector   theme.ThemeSelector
	themeFallbacks  map[string]string
	defaultTheme    string
	defaultVariant  string
	initialiseErr   error
}

// New constructs a Generator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Generator {
	g := &Generator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

// Request describes the inputs required to render one module's documentation
// page.
type Request struct {
	// Module names the registered module to document.
	Module string

	// Renderer names the renderer to use. If empty, the generator falls back
	// to the configured default renderer.
	Renderer string

	// Title overrides the page heading; defaults to the module name.
	Title string

	// ThemeName and ThemeVariant select a theme when a selector is
	// configured. Empty values fall back to the generator defaults.
	ThemeName    string
	ThemeVariant string

	// Options overlays the document-wide option store for this request only.
	Options map[string]string
}

// Generate executes the source load → page build → renderer sequence and
// returns the rendered bytes.
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.initialiseErr; err != nil {
		return nil, err
	}
	if req.Module == "" {
		return nil, errors.New("generator: module is required")
	}

	if err := g.loadSources(ctx); err != nil {
		return nil, err
	}

	doc, err := g.buildPage(req)
	if err != nil {
		return nil, err
	}

	renderer, err := g.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	themeCfg, err := g.resolveTheme(req)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, doc, render.RenderOptions{
		Title: req.Title,
		Theme: themeCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("generator: render output: %w", err)
	}
	return output, nil
}

// BuildPage exposes the intermediate page for callers that want to render it
// themselves.
func (g *Generator) BuildPage(ctx context.Context, req Request) (page.Page, error) {
	if ctx == nil {
		return page.Page{}, errors.New("generator: context is required")
	}
	if req.Module == "" {
		return page.Page{}, errors.New("generator: module is required")
	}
	if err := g.loadSources(ctx); err != nil {
		return page.Page{}, err
	}
	return g.buildPage(req)
}

// Modules lists the module names currently registered, loading any queued
// sources first.
func (g *Generator) Modules(ctx context.Context) ([]string, error) {
	if err := g.loadSources(ctx); err != nil {
		return nil, err
	}
	return g.models.Modules(), nil
}

// Renderers lists the registered renderer names.
func (g *Generator) Renderers() []string {
	return g.renderers.List()
}

func (g *Generator) buildPage(req Request) (page.Page, error) {
	builder := page.NewBuilder(page.Options{
		Directives: g.directives,
		DocOptions: overlayStringMap(g.docOptions, req.Options),
	})
	return builder.Build(g.models, req.Module)
}

func (g *Generator) loadSources(ctx context.Context) error {
	g.loadOnce.Do(func() {
		for _, src := range g.sources {
			if err := src.Load(ctx, g.models); err != nil {
				g.loadErr = fmt.Errorf("generator: load source: %w", err)
				return
			}
		}
	})
	return g.loadErr
}

func (g *Generator) rendererFor(name string) (render.Renderer, error) {
	target := name
	if target == "" {
		target = g.defaultRenderer
	}
	if target == "" {
		return nil, errors.New("generator: renderer name is required")
	}
	renderer, err := g.renderers.Get(target)
	if err != nil {
		return nil, fmt.Errorf("generator: resolve renderer %q: %w", target, err)
	}
	return renderer, nil
}

func (g *Generator) applyDefaults() {
	if g.models == nil {
		g.models = inspect.NewRegistry()
	}
	if g.directives == nil {
		g.directives = directive.NewDefaultRegistry()
	}
	if g.renderers == nil {
		registry := render.NewRegistry()

		htmlRenderer, err := htmlrenderer.New()
		if err != nil {
			g.initialiseErr = fmt.Errorf("generator: initialise html renderer: %w", err)
			return
		}
		registry.MustRegister(htmlRenderer)

		markdownRenderer, err := markdownrenderer.New()
		if err != nil {
			g.initialiseErr = fmt.Errorf("generator: initialise markdown renderer: %w", err)
			return
		}
		registry.MustRegister(markdownRenderer)

		g.renderers = registry
	}
	if g.themeFallbacks == nil {
		g.themeFallbacks = defaultThemeFallbacks()
	}
}

func cloneStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func overlayStringMap(base, overlay map[string]string) map[string]string {
	if len(overlay) == 0 {
		return base
	}
	out := make(map[string]string, len(base)+len(overlay))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range overlay {
		out[key] = value
	}
	return out
}
