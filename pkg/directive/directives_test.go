package directive

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-modeldoc/pkg/doctree"
	"github.com/goliatone/go-modeldoc/pkg/inspect"
)

func testRegistry(t *testing.T) *inspect.Registry {
	t.Helper()
	reg := inspect.NewRegistry()
	reg.MustRegisterModule(inspect.Module{
		Name: "store",
		Models: []inspect.Model{
			{
				Name: "Article",
				Kind: inspect.ModelKindModel,
				Fields: []inspect.Field{
					{Name: "identifier", Alias: "id", Type: "string", Required: true},
					{Name: "a", Type: "string"},
					{Name: "b", Type: "string"},
					{Name: "c", Type: "string"},
					{Name: "slug", Type: "string"},
				},
				Validators: []inspect.Validator{
					{Name: "check_all", Fields: []string{"a", "b", "c"}, Params: []string{"value"}},
					{Name: "check_slug", Fields: []string{"slug"}, Params: []string{"value"}},
					{Name: "check_nothing", Params: []string{"value"}},
				},
			},
		},
	})
	return reg
}

func TestSignaturePrefix_Defaults(t *testing.T) {
	reg := testRegistry(t)

	cases := []struct {
		construct string
		raw       string
		want      string
	}{
		{"model", "store.Article", "class "},
		{"settings", "store.Article", "class "},
		{"config", "store.Article", "class "},
		{"field", "store.Article.slug", "attribute "},
		{"validator", "store.Article.check_slug(value)", "classmethod "},
	}

	directives := NewDefaultRegistry()
	for _, tc := range cases {
		t.Run(tc.construct, func(t *testing.T) {
			d, err := directives.New(tc.construct, Config{Registry: reg})
			if err != nil {
				t.Fatalf("new directive: %v", err)
			}
			sig := doctree.NewSignature("")
			result, err := d.HandleSignature(tc.raw, sig)
			if err != nil {
				t.Fatalf("handle signature: %v", err)
			}
			if result.Prefix != tc.want {
				t.Fatalf("default prefix: want %q, got %q", tc.want, result.Prefix)
			}
		})
	}
}

func TestSignaturePrefix_Overrides(t *testing.T) {
	reg := testRegistry(t)
	directives := NewDefaultRegistry()

	cases := []struct {
		construct string
		raw       string
		option    string
	}{
		{"model", "store.Article", OptionModelSignaturePrefix},
		{"settings", "store.Article", OptionSettingsSignaturePrefix},
		{"config", "store.Article", OptionConfigSignaturePrefix},
		{"field", "store.Article.slug", OptionFieldSignaturePrefix},
		{"validator", "store.Article.check_slug(value)", OptionValidatorSignaturePrefix},
	}

	for _, tc := range cases {
		t.Run(tc.construct+" local", func(t *testing.T) {
			d, err := directives.New(tc.construct, Config{
				Registry: reg,
				Local:    map[string]string{tc.option: "data contract"},
			})
			if err != nil {
				t.Fatalf("new directive: %v", err)
			}
			result, err := d.HandleSignature(tc.raw, doctree.NewSignature(""))
			if err != nil {
				t.Fatalf("handle signature: %v", err)
			}
			if result.Prefix != "data contract " {
				t.Fatalf("override prefix: want %q, got %q", "data contract ", result.Prefix)
			}
		})

		t.Run(tc.construct+" doc fallback", func(t *testing.T) {
			d, err := directives.New(tc.construct, Config{
				Registry: reg,
				Doc:      map[string]string{tc.option: "data model"},
			})
			if err != nil {
				t.Fatalf("new directive: %v", err)
			}
			result, err := d.HandleSignature(tc.raw, doctree.NewSignature(""))
			if err != nil {
				t.Fatalf("handle signature: %v", err)
			}
			if result.Prefix != "data model " {
				t.Fatalf("doc-level prefix: want %q, got %q", "data model ", result.Prefix)
			}
		})
	}
}

func TestOptions_LocalWinsOverDoc(t *testing.T) {
	opts := NewOptions(
		map[string]string{OptionFieldShowAlias: "false"},
		map[string]string{OptionFieldShowAlias: "true"},
	)
	if opts.Bool(OptionFieldShowAlias, true) {
		t.Fatalf("expected local override to win over doc default")
	}
}

func TestOptions_BoolCoercion(t *testing.T) {
	cases := []struct {
		raw      string
		fallback bool
		want     bool
	}{
		{"true", false, true},
		{"True", false, true},
		{"1", false, true},
		{"on", false, true},
		{"", false, true}, // present without value means enabled
		{"false", true, false},
		{"0", true, false},
		{"off", true, false},
		{"bogus", true, false},
	}
	for _, tc := range cases {
		opts := NewOptions(map[string]string{"toggle": tc.raw}, nil)
		if got := opts.Bool("toggle", tc.fallback); got != tc.want {
			t.Fatalf("Bool(%q): want %v, got %v", tc.raw, tc.want, got)
		}
	}
}

func TestField_AliasAnnotation(t *testing.T) {
	reg := testRegistry(t)
	d := NewField(Config{Registry: reg, Local: map[string]string{OptionFieldShowAlias: "true"}})

	sig := doctree.NewSignature("")
	result, err := d.HandleSignature("store.Article.identifier", sig)
	if err != nil {
		t.Fatalf("handle signature: %v", err)
	}
	if result.Fullname != "store.Article.identifier" {
		t.Fatalf("unexpected fullname: %s", result.Fullname)
	}

	annotations := childrenOfKind(sig, doctree.KindAnnotation)
	if len(annotations) != 1 {
		t.Fatalf("expected exactly one annotation, got %d", len(annotations))
	}
	if annotations[0].Text != " (alias 'id')" {
		t.Fatalf("unexpected annotation text: %q", annotations[0].Text)
	}
}

func TestField_AliasEqualsName_NoAnnotation(t *testing.T) {
	reg := testRegistry(t)
	d := NewField(Config{Registry: reg, Local: map[string]string{OptionFieldShowAlias: "true"}})

	sig := doctree.NewSignature("")
	if _, err := d.HandleSignature("store.Article.slug", sig); err != nil {
		t.Fatalf("handle signature: %v", err)
	}
	if got := childrenOfKind(sig, doctree.KindAnnotation); len(got) != 0 {
		t.Fatalf("expected no annotations for alias == name, got %d", len(got))
	}
}

func TestField_ShowAliasDisabled(t *testing.T) {
	reg := testRegistry(t)
	d := NewField(Config{Registry: reg, Local: map[string]string{OptionFieldShowAlias: "false"}})

	sig := doctree.NewSignature("")
	if _, err := d.HandleSignature("store.Article.identifier", sig); err != nil {
		t.Fatalf("handle signature: %v", err)
	}
	if got := childrenOfKind(sig, doctree.KindAnnotation); len(got) != 0 {
		t.Fatalf("expected no annotations with alias display disabled, got %d", len(got))
	}
}

func TestField_AliasUsesLiveValue(t *testing.T) {
	reg := inspect.NewRegistry()
	reg.MustRegisterModule(inspect.Module{
		Name: "store",
		Models: []inspect.Model{{
			Name: "Article",
			Kind: inspect.ModelKindModel,
			Fields: []inspect.Field{
				{Name: "identifier", Alias: "external_id", Type: "string"},
			},
		}},
	})

	d := NewField(Config{Registry: reg})
	sig := doctree.NewSignature("")
	if _, err := d.HandleSignature("store.Article.identifier", sig); err != nil {
		t.Fatalf("handle signature: %v", err)
	}

	annotations := childrenOfKind(sig, doctree.KindAnnotation)
	if len(annotations) != 1 || annotations[0].Text != " (alias 'external_id')" {
		t.Fatalf("expected live alias value in annotation, got %+v", annotations)
	}
}

func TestField_UnresolvedModelIsHardError(t *testing.T) {
	d := NewField(Config{Registry: inspect.NewRegistry()})
	_, err := d.HandleSignature("store.Article.identifier", doctree.NewSignature(""))
	if err == nil || !strings.Contains(err.Error(), "cannot resolve model") {
		t.Fatalf("expected resolution failure, got %v", err)
	}
}

func TestField_UnknownFieldIsHardError(t *testing.T) {
	d := NewField(Config{Registry: testRegistry(t)})
	_, err := d.HandleSignature("store.Article.rating", doctree.NewSignature(""))
	if err == nil || !strings.Contains(err.Error(), `no field "rating"`) {
		t.Fatalf("expected unknown-field failure, got %v", err)
	}
}

func TestValidator_ReplacesSignature(t *testing.T) {
	reg := testRegistry(t)
	d := NewValidator(Config{Registry: reg})

	sig := doctree.NewSignature("")
	result, err := d.HandleSignature("store.Article.check_all(value)", sig)
	if err != nil {
		t.Fatalf("handle signature: %v", err)
	}
	if result.Prefix != "classmethod " {
		t.Fatalf("unexpected prefix: %q", result.Prefix)
	}

	if sig.HasChildOfKind(doctree.KindParameterList) {
		t.Fatalf("parameter list not removed")
	}

	refs := childrenOfKind(sig, doctree.KindReference)
	gotNames := make([]string, 0, len(refs))
	gotTargets := make([]string, 0, len(refs))
	for _, ref := range refs {
		gotNames = append(gotNames, ref.Text)
		gotTargets = append(gotTargets, ref.Target)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, gotNames); diff != "" {
		t.Fatalf("reference order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"store.Article.a", "store.Article.b", "store.Article.c"}, gotTargets); diff != "" {
		t.Fatalf("reference targets mismatch (-want +got):\n%s", diff)
	}

	// Tail reads: separator, ref a, ", ", ref b, ", ", ref c.
	if got := sig.PlainText(); !strings.HasSuffix(got, "check_all  »  a, b, c") {
		t.Fatalf("unexpected rendered tail: %q", got)
	}
	arrows := 0
	for _, node := range childrenOfKind(sig, doctree.KindAnnotation) {
		if node.Text == validatorArrow {
			arrows++
		}
	}
	if arrows != 1 {
		t.Fatalf("expected exactly one separator annotation, got %d", arrows)
	}
}

func TestValidator_SingleField(t *testing.T) {
	d := NewValidator(Config{Registry: testRegistry(t)})

	sig := doctree.NewSignature("")
	if _, err := d.HandleSignature("store.Article.check_slug(value)", sig); err != nil {
		t.Fatalf("handle signature: %v", err)
	}
	refs := childrenOfKind(sig, doctree.KindReference)
	if len(refs) != 1 || refs[0].Text != "slug" {
		t.Fatalf("expected single slug reference, got %+v", refs)
	}
	if got := sig.PlainText(); strings.Contains(got, ", ") {
		t.Fatalf("unexpected comma separator for single field: %q", got)
	}
}

func TestValidator_ReplaceDisabled(t *testing.T) {
	d := NewValidator(Config{
		Registry: testRegistry(t),
		Local:    map[string]string{OptionValidatorReplaceSignature: "false"},
	})

	sig := doctree.NewSignature("")
	if _, err := d.HandleSignature("store.Article.check_all(value)", sig); err != nil {
		t.Fatalf("handle signature: %v", err)
	}
	if !sig.HasChildOfKind(doctree.KindParameterList) {
		t.Fatalf("parameter list should be untouched when replacement is disabled")
	}
	if refs := childrenOfKind(sig, doctree.KindReference); len(refs) != 0 {
		t.Fatalf("unexpected reference nodes: %d", len(refs))
	}
	if got := sig.PlainText(); got != "classmethod store.Article.check_all(value)" {
		t.Fatalf("unexpected plain text: %q", got)
	}
}

func TestValidator_ZeroFieldsIsError(t *testing.T) {
	d := NewValidator(Config{Registry: testRegistry(t)})

	sig := doctree.NewSignature("")
	_, err := d.HandleSignature("store.Article.check_nothing(value)", sig)
	if err == nil || !strings.Contains(err.Error(), "bound to no fields") {
		t.Fatalf("expected zero-field binding error, got %v", err)
	}
}

func TestValidator_UnresolvedModelIsHardError(t *testing.T) {
	d := NewValidator(Config{Registry: inspect.NewRegistry()})
	_, err := d.HandleSignature("store.Article.check_all(value)", doctree.NewSignature(""))
	if err == nil || !strings.Contains(err.Error(), "cannot resolve model") {
		t.Fatalf("expected resolution failure, got %v", err)
	}
}

func TestGenericHandler_BuildsBaseChildren(t *testing.T) {
	sig := doctree.NewSignature("")
	fullname, err := GenericHandler{}.Handle("store.Article.check_all(value, info)", "classmethod ", sig)
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if fullname != "store.Article.check_all" {
		t.Fatalf("unexpected fullname: %s", fullname)
	}
	if got := sig.PlainText(); got != "classmethod store.Article.check_all(value, info)" {
		t.Fatalf("unexpected plain text: %q", got)
	}
	if sig.Fullname != fullname {
		t.Fatalf("fullname not stamped on node")
	}
}

func TestGenericHandler_MalformedSignatures(t *testing.T) {
	cases := []string{"", "   ", "store..Article", "check(", "(value)"}
	for _, raw := range cases {
		t.Run(fmt.Sprintf("%q", raw), func(t *testing.T) {
			if _, err := (GenericHandler{}).Handle(raw, "class ", doctree.NewSignature("")); err == nil {
				t.Fatalf("expected parse failure for %q", raw)
			}
		})
	}
}

func TestRegistry_UnknownConstruct(t *testing.T) {
	directives := NewDefaultRegistry()
	if _, err := directives.New("enum", Config{}); err == nil {
		t.Fatalf("expected error for unregistered construct")
	}
	want := []string{"config", "field", "model", "settings", "validator"}
	if diff := cmp.Diff(want, directives.Constructs()); diff != "" {
		t.Fatalf("constructs mismatch (-want +got):\n%s", diff)
	}
}

func childrenOfKind(sig *doctree.SignatureNode, kind doctree.Kind) []*doctree.Node {
	var out []*doctree.Node
	for _, child := range sig.Children {
		if child.Kind == kind {
			out = append(out, child)
		}
	}
	return out
}
