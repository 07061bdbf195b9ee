package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-modeldoc/internal/config"
	"github.com/goliatone/go-modeldoc/pkg/generator"
	"github.com/goliatone/go-modeldoc/pkg/openapi"
	"github.com/goliatone/go-modeldoc/pkg/themefile"
)

var generateFlags struct {
	module       string
	renderer     string
	output       string
	title        string
	themeName    string
	themeVariant string
	modelsDir    string
	// modelsExplicit records whether modelsDir came from the flag rather
	// than the config default. An explicit directory must exist.
	modelsExplicit bool
	specPath       string
	themesDir      string
	options        []string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render one module's documentation page",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		applyGenerateDefaults(cfg)

		gen, err := buildGenerator(cfg)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		module := generateFlags.module
		if module == "" {
			module, err = pickModule(ctx, gen)
			if err != nil {
				return err
			}
		}

		options, err := parseOptionFlags(generateFlags.options)
		if err != nil {
			return err
		}

		output, err := gen.Generate(ctx, generator.Request{
			Module:       module,
			Renderer:     generateFlags.renderer,
			Title:        generateFlags.title,
			ThemeName:    generateFlags.themeName,
			ThemeVariant: generateFlags.themeVariant,
			Options:      options,
		})
		if err != nil {
			return err
		}

		if generateFlags.output != "" {
			if err := os.WriteFile(generateFlags.output, output, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "documentation written to %s\n", generateFlags.output)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	},
}

func init() {
	flags := generateCmd.Flags()
	flags.StringVarP(&generateFlags.module, "module", "m", "", "module to document (prompts when omitted)")
	flags.StringVarP(&generateFlags.renderer, "renderer", "r", "", "renderer to use (html, markdown)")
	flags.StringVarP(&generateFlags.output, "output", "o", "", "output file (stdout if empty)")
	flags.StringVar(&generateFlags.title, "title", "", "page title override")
	flags.StringVar(&generateFlags.themeName, "theme", "", "theme name")
	flags.StringVar(&generateFlags.themeVariant, "variant", "", "theme variant")
	flags.StringVar(&generateFlags.modelsDir, "models", "", "directory of model definition files")
	flags.StringVar(&generateFlags.specPath, "spec", "", "OpenAPI document to document")
	flags.StringVar(&generateFlags.themesDir, "themes", "", "directory of theme manifests")
	flags.StringArrayVar(&generateFlags.options, "set", nil, "document-wide directive option (key=value, repeatable)")
}

// applyGenerateDefaults backfills flag values from the loaded config so
// explicit flags always win.
func applyGenerateDefaults(cfg *config.Config) {
	generateFlags.modelsExplicit = generateFlags.modelsDir != ""
	if generateFlags.modelsDir == "" {
		generateFlags.modelsDir = cfg.Models
	}
	if generateFlags.specPath == "" {
		generateFlags.specPath = cfg.Spec
	}
	if generateFlags.themesDir == "" {
		generateFlags.themesDir = cfg.Themes
	}
	if generateFlags.renderer == "" {
		generateFlags.renderer = cfg.Renderer
	}
	if generateFlags.output == "" {
		generateFlags.output = cfg.Output
	}
	if generateFlags.themeName == "" {
		generateFlags.themeName = cfg.Theme.Name
	}
	if generateFlags.themeVariant == "" {
		generateFlags.themeVariant = cfg.Theme.Variant
	}
}

func buildGenerator(cfg *config.Config) (*generator.Generator, error) {
	var sources []generator.Source

	if dir := generateFlags.modelsDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			sources = append(sources, generator.ModelFS(os.DirFS(dir)))
		} else if generateFlags.modelsExplicit || generateFlags.specPath == "" {
			// the config default is skippable when a spec covers the
			// sources; a directory named on the command line is not
			return nil, fmt.Errorf("models directory %q not found", dir)
		}
	}
	if path := generateFlags.specPath; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read spec: %w", err)
		}
		sources = append(sources, generator.OpenAPIData(data, openapi.Options{
			ModuleName: cfg.ModuleName,
		}))
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no model sources: pass --models or --spec, or configure them in .modeldoc.yaml")
	}

	options := []generator.Option{
		generator.WithSources(sources...),
		generator.WithDocOptions(cfg.Options),
	}

	if dir := generateFlags.themesDir; dir != "" {
		selector, err := themefile.SelectorFromFS(os.DirFS(dir))
		if err != nil {
			return nil, err
		}
		options = append(options, generator.WithThemeSelector(selector))
	}

	return generator.New(options...), nil
}

func parseOptionFlags(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	options := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --set value %q, expected key=value", pair)
		}
		options[key] = value
	}
	return options, nil
}
