package generator

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-modeldoc/pkg/render"
	htmlrenderer "github.com/goliatone/go-modeldoc/pkg/renderers/html"
	theme "github.com/goliatone/go-theme"
)

// defaultThemeFallbacks lists the partial slots renderers consult when a
// theme manifest does not override them.
func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		htmlrenderer.LayoutSlot: "templates/page.tmpl",
	}
}

func (g *Generator) resolveTheme(req Request) (*render.ThemeConfig, error) {
	if g.themeSelector == nil {
		return nil, nil
	}

	name := req.ThemeName
	if name == "" {
		name = g.defaultTheme
	}
	variant := req.ThemeVariant
	if variant == "" {
		variant = g.defaultVariant
	}
	if name == "" {
		return nil, nil
	}

	selection, err := g.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("generator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, nil
	}
	return themeConfigFromSelection(selection, g.themeFallbacks), nil
}

// themeConfigFromSelection flattens a go-theme selection into the renderer
// facing configuration: variant tokens override base tokens, template
// overrides stack on top of the fallback partials, and asset names resolve
// through the manifest's asset prefix.
func themeConfigFromSelection(selection *theme.Selection, fallbacks map[string]string) *render.ThemeConfig {
	cfg := &render.ThemeConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: cloneStringMap(fallbacks),
		Tokens:   map[string]string{},
	}
	if cfg.Partials == nil {
		cfg.Partials = map[string]string{}
	}

	manifest := selection.Manifest
	if manifest == nil {
		cfg.CSSVars = cssVarsFromTokens(cfg.Tokens)
		return cfg
	}

	for key, value := range manifest.Tokens {
		cfg.Tokens[key] = value
	}
	for slot, path := range manifest.Templates {
		cfg.Partials[slot] = path
	}

	assetPrefix := manifest.Assets.Prefix
	assetFiles := cloneStringMap(manifest.Assets.Files)
	if assetFiles == nil {
		assetFiles = map[string]string{}
	}

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			cfg.Tokens[key] = value
		}
		for slot, path := range variant.Templates {
			cfg.Partials[slot] = path
		}
		if variant.Assets.Prefix != "" {
			assetPrefix = variant.Assets.Prefix
		}
		for name, file := range variant.Assets.Files {
			assetFiles[name] = file
		}
	}

	cfg.CSSVars = cssVarsFromTokens(cfg.Tokens)
	cfg.AssetURL = assetResolver(assetPrefix, assetFiles)
	return cfg
}

func cssVarsFromTokens(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		vars["--"+key] = value
	}
	return vars
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(name string) string {
		file, ok := files[name]
		if !ok || file == "" {
			return ""
		}
		if prefix == "" {
			return file
		}
		return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
	}
}
