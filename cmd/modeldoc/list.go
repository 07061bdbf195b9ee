package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered modules, models, and renderers",
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

		modules, err := gen.Modules(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Modules:")
		if len(modules) == 0 {
			fmt.Fprintln(out, "  (none)")
		}
		for _, module := range modules {
			fmt.Fprintf(out, "  %s\n", module)
		}
		fmt.Fprintf(out, "Renderers: %s\n", strings.Join(gen.Renderers(), ", "))
		return nil
	},
}
