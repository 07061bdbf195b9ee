package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/goliatone/go-modeldoc/pkg/page"
	"github.com/goliatone/go-modeldoc/pkg/render"
	rendertemplate "github.com/goliatone/go-modeldoc/pkg/render/template"
	gotemplate "github.com/goliatone/go-modeldoc/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	stylesheetURL    string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheetURL links the page to an external stylesheet instead of
// inlining the embedded one.
func WithStylesheetURL(url string) Option {
	return func(cfg *config) {
		cfg.stylesheetURL = url
	}
}

type Renderer struct {
	templates     rendertemplate.TemplateRenderer
	stylesheetURL string
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:     renderer,
		stylesheetURL: cfg.stylesheetURL,
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// LayoutSlot is the theme partial slot consulted for the page layout
// template. Themes override it through their manifest's templates map.
const LayoutSlot = "page.layout"

const defaultLayoutTemplate = "templates/page.tmpl"

func (r *Renderer) Render(_ context.Context, doc page.Page, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate(layoutTemplate(options.Theme), r.pageData(doc, options))
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// layoutTemplate resolves the layout through the theme's partial overrides,
// falling back to the embedded default.
func layoutTemplate(cfg *render.ThemeConfig) string {
	if cfg != nil {
		if name := cfg.Partials[LayoutSlot]; name != "" {
			return name
		}
	}
	return defaultLayoutTemplate
}

func (r *Renderer) pageData(doc page.Page, options render.RenderOptions) map[string]any {
	title := options.Title
	if title == "" {
		title = doc.Module
	}

	entries := make([]map[string]any, 0, len(doc.Entries))
	for _, entry := range doc.Entries {
		signature := ""
		if entry.Signature != nil {
			signature = entry.Signature.HTML()
		}
		entries = append(entries, map[string]any{
			"construct": entry.Construct,
			"fullname":  entry.Fullname,
			"signature": signature,
			"doc":       sanitizeDocMarkup(entry.Doc),
			"depth":     entry.Depth,
		})
	}

	data := map[string]any{
		"title":          title,
		"module_doc":     sanitizeDocMarkup(doc.Doc),
		"entries":        entries,
		"stylesheet":     defaultStylesheet(),
		"stylesheet_url": r.stylesheetURL,
	}
	applyTheme(data, options.Theme)
	return data
}

func applyTheme(data map[string]any, cfg *render.ThemeConfig) {
	if cfg == nil {
		return
	}
	data["theme_name"] = cfg.Theme
	data["theme_variant"] = cfg.Variant
	data["css_vars_style"] = cssVarsStyle(cfg.CSSVars)
	if cfg.AssetURL != nil {
		if url := cfg.AssetURL(StylesheetName); url != "" {
			data["stylesheet_url"] = url
		}
	}
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
