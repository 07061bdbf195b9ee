package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-modeldoc/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "modeldoc",
	Short: "Generate documentation pages for declarative model definitions",
	Long: `modeldoc turns model definition files (YAML) or OpenAPI component
schemas into documentation pages.

Each model renders with its fields and validators: fields show their wire
alias when it differs from the declared name, and validators cross-reference
the fields they are bound to. Output is HTML by default; pass --renderer
markdown for plain Markdown.

Settings persist in a .modeldoc.yaml at the project root, with MODELDOC_*
environment variables taking precedence.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (defaults to .modeldoc.yaml discovery)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromPath(configPath)
	}
	return config.Load()
}
