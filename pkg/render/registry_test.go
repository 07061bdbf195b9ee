package render

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-modeldoc/pkg/page"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, page.Page, RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(stubRenderer{name: "html"})
	reg.MustRegister(stubRenderer{name: "markdown"})

	renderer, err := reg.Get("html")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("unexpected renderer: %s", renderer.Name())
	}
	if !reg.Has("markdown") || reg.Has("pdf") {
		t.Fatalf("Has gave wrong answers")
	}
	if diff := cmp.Diff([]string{"html", "markdown"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_DuplicateAndMissing(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(stubRenderer{name: "html"})

	if err := reg.Register(stubRenderer{name: "html"}); err == nil ||
		!strings.Contains(err.Error(), "already registered") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if _, err := reg.Get("pdf"); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}
}
