package render

// RenderOptions carries per-request data renderers can use to customise
// their output without touching the build pipeline.
type RenderOptions struct {
	// Title overrides the page heading; defaults to the module name.
	Title string
	// Theme carries the resolved theme configuration when a theme selector
	// is wired into the generator. Nil means unthemed output.
	Theme *ThemeConfig
}

// ThemeConfig is the renderer-facing view of a resolved theme selection:
// merged tokens, derived CSS variables, partial template overrides, and an
// asset URL resolver.
type ThemeConfig struct {
	Theme    string
	Variant  string
	Partials map[string]string
	Tokens   map[string]string
	CSSVars  map[string]string
	AssetURL func(name string) string
}
