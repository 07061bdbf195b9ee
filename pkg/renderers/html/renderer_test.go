package html

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-modeldoc/pkg/doctree"
	"github.com/goliatone/go-modeldoc/pkg/page"
	"github.com/goliatone/go-modeldoc/pkg/render"
)

func fixturePage() page.Page {
	model := doctree.NewSignature("store.Article")
	model.Append(
		doctree.Prefix("class "),
		doctree.AddName("store."),
		doctree.Name("Article"),
	)

	field := doctree.NewSignature("store.Article.identifier")
	field.Append(
		doctree.Prefix("attribute "),
		doctree.Name("identifier"),
		doctree.Annotation(" (alias 'id')"),
	)

	validator := doctree.NewSignature("store.Article.check_slug")
	validator.Append(
		doctree.Prefix("classmethod "),
		doctree.Name("check_slug"),
		doctree.Annotation("  \u00bb  ", "validator-arrow"),
		doctree.Reference("slug", "store.Article.slug"),
	)

	return page.Page{
		Module: "store",
		Doc:    "Storefront data models.",
		Entries: []page.Entry{
			{Construct: "model", Fullname: "store.Article", Signature: model, Doc: "A published article."},
			{Construct: "field", Fullname: "store.Article.identifier", Signature: field, Depth: 1},
			{Construct: "validator", Fullname: "store.Article.check_slug", Signature: validator, Depth: 1},
		},
	}
}

func TestRender_Page(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	out, err := renderer.Render(context.Background(), fixturePage(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	doc := string(out)

	for _, want := range []string{
		"<title>store</title>",
		"Storefront data models.",
		`id="store.Article"`,
		`<span class="sig-prefix">class </span>`,
		`<span class="sig-annotation"> (alias &#39;id&#39;)</span>`,
		`<a class="sig-reference" href="#store.Article.slug">slug</a>`,
		"member-validator",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("output missing %q:\n%s", want, doc)
		}
	}
}

func TestRender_TitleOverride(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	out, err := renderer.Render(context.Background(), fixturePage(), render.RenderOptions{Title: "Store API"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(string(out), "<title>Store API</title>") {
		t.Fatalf("expected overridden title, got:\n%s", out)
	}
}

func TestRender_ThemeVarsAndAssets(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	opts := render.RenderOptions{
		Theme: &render.ThemeConfig{
			Theme:   "aurora",
			Variant: "dark",
			CSSVars: map[string]string{"--modeldoc-accent": "#7c3aed"},
			AssetURL: func(name string) string {
				return "/assets/aurora/" + name
			},
		},
	}
	out, err := renderer.Render(context.Background(), fixturePage(), opts)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	doc := string(out)

	if !strings.Contains(doc, `data-theme="aurora"`) || !strings.Contains(doc, `data-theme-variant="dark"`) {
		t.Fatalf("expected theme attributes in output:\n%s", doc)
	}
	if !strings.Contains(doc, "--modeldoc-accent: #7c3aed;") {
		t.Fatalf("expected css var override in output:\n%s", doc)
	}
	if !strings.Contains(doc, `href="/assets/aurora/modeldoc.css"`) {
		t.Fatalf("expected themed stylesheet link in output:\n%s", doc)
	}
}

func TestRender_ThemeLayoutOverride(t *testing.T) {
	files := fstest.MapFS{
		"templates/compact.tmpl": &fstest.MapFile{
			Data: []byte(`<ul class="compact">{% for entry in entries %}<li>{{ entry.fullname }}</li>{% endfor %}</ul>`),
		},
	}
	renderer, err := New(WithTemplatesFS(files))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	opts := render.RenderOptions{
		Theme: &render.ThemeConfig{
			Theme:    "aurora",
			Partials: map[string]string{LayoutSlot: "templates/compact.tmpl"},
		},
	}
	out, err := renderer.Render(context.Background(), fixturePage(), opts)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	doc := string(out)

	if !strings.Contains(doc, `<ul class="compact">`) {
		t.Fatalf("expected themed layout in output:\n%s", doc)
	}
	if !strings.Contains(doc, "<li>store.Article.check_slug</li>") {
		t.Fatalf("expected entries rendered through themed layout:\n%s", doc)
	}
	if strings.Contains(doc, "<title>") {
		t.Fatalf("default layout leaked into themed output:\n%s", doc)
	}
}

func TestRender_ThemeWithoutLayoutOverrideUsesDefault(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	opts := render.RenderOptions{
		Theme: &render.ThemeConfig{Theme: "aurora", Partials: map[string]string{"sidebar": "templates/sidebar.tmpl"}},
	}
	out, err := renderer.Render(context.Background(), fixturePage(), opts)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(string(out), "<title>store</title>") {
		t.Fatalf("expected default layout, got:\n%s", out)
	}
}

func TestRender_SanitizesDocMarkup(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	doc := fixturePage()
	doc.Entries[0].Doc = `An article.<script>alert("x")</script> <em>Keep me.</em>`

	out, err := renderer.Render(context.Background(), doc, render.RenderOptions{})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	got := string(out)

	if strings.Contains(got, "<script>") {
		t.Fatalf("script tag survived sanitisation:\n%s", got)
	}
	if !strings.Contains(got, "<em>Keep me.</em>") {
		t.Fatalf("benign markup was stripped:\n%s", got)
	}
}

func TestContract(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}
	var _ render.Renderer = renderer
}
