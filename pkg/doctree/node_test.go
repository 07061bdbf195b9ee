package doctree

import (
	"strings"
	"testing"
)

func TestPlainText_FullSignature(t *testing.T) {
	sig := NewSignature("store.Article.check_slug")
	sig.Append(
		Prefix("classmethod "),
		AddName("store.Article."),
		Name("check_slug"),
		ParameterList("value"),
	)

	if got := sig.PlainText(); got != "classmethod store.Article.check_slug(value)" {
		t.Fatalf("unexpected plain text: %q", got)
	}
}

func TestParameterList_SkipsBlankParams(t *testing.T) {
	list := ParameterList("value", " ", "", "info")
	if len(list.Children) != 2 {
		t.Fatalf("expected 2 params, got %d", len(list.Children))
	}
	if got := list.PlainText(); got != "(value, info)" {
		t.Fatalf("unexpected param text: %q", got)
	}
}

func TestRemoveChildrenByKind(t *testing.T) {
	sig := NewSignature("store.Article.check_slug")
	sig.Append(
		Name("check_slug"),
		ParameterList("value"),
		Annotation("  »  "),
	)

	removed := sig.RemoveChildrenByKind(KindParameterList)
	if removed != 1 {
		t.Fatalf("expected 1 removal, got %d", removed)
	}
	if sig.HasChildOfKind(KindParameterList) {
		t.Fatalf("parameter list still present after removal")
	}
	if got := sig.PlainText(); got != "check_slug  »  " {
		t.Fatalf("unexpected plain text after removal: %q", got)
	}
}

func TestRemoveChildrenByKind_NoMatch(t *testing.T) {
	sig := NewSignature("store.Article.slug")
	sig.Append(Name("slug"))

	if removed := sig.RemoveChildrenByKind(KindParameterList); removed != 0 {
		t.Fatalf("expected no removals, got %d", removed)
	}
	if len(sig.Children) != 1 {
		t.Fatalf("children mutated on no-op removal")
	}
}

func TestWriteHTML_EscapesAndLinks(t *testing.T) {
	sig := NewSignature("store.Article.slug")
	sig.Append(
		Prefix("attribute "),
		Name("slug"),
		Annotation(` (alias '<id>')`),
		Reference("title", "store.Article.title"),
	)

	html := sig.HTML()
	for _, want := range []string{
		`id="store.Article.slug"`,
		`<span class="sig-prefix">attribute </span>`,
		`&lt;id&gt;`,
		`<a class="sig-reference" href="#store.Article.title">title</a>`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("html output missing %q:\n%s", want, html)
		}
	}
}

func TestWriteHTML_AnnotationClasses(t *testing.T) {
	sig := NewSignature("store.Article.check_slug")
	sig.Append(Annotation("  »  ", "validator-arrow"))

	if got := sig.HTML(); !strings.Contains(got, `class="sig-annotation validator-arrow"`) {
		t.Fatalf("expected extra class on annotation, got %s", got)
	}
}
