// Package config loads CLI configuration from project files and environment
// variables so repeated invocations do not need the full flag set.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config captures the persisted CLI settings.
type Config struct {
	// Models is the directory walked for model definition files.
	Models string `mapstructure:"models"`
	// Spec points at an OpenAPI document to convert into a module.
	Spec string `mapstructure:"spec"`
	// ModuleName overrides the module name derived from an OpenAPI spec.
	ModuleName string `mapstructure:"module_name"`
	// Renderer names the default output renderer.
	Renderer string `mapstructure:"renderer"`
	// Output is the default output path; empty writes to stdout.
	Output string `mapstructure:"output"`
	// Options seeds the document-wide directive option store.
	Options map[string]string `mapstructure:"options"`
	// Themes is the directory holding theme manifest files.
	Themes string `mapstructure:"themes"`
	// Theme selects the theme applied to rendered pages.
	Theme ThemeConfig `mapstructure:"theme"`
}

// ThemeConfig names the theme and variant applied to rendered pages.
type ThemeConfig struct {
	Name    string `mapstructure:"name"`
	Variant string `mapstructure:"variant"`
}

const projectConfigName = ".modeldoc.yaml"

// Load reads configuration with the following precedence, highest first:
// environment variables (MODELDOC_*), the project config (.modeldoc.yaml in
// the working directory or a parent), then built-in defaults.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path := findProjectConfig(); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	v.AutomaticEnv()
	bindEnv(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// LoadFromPath reads configuration from an explicit file.
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("models", "models")
	v.SetDefault("renderer", "html")
	v.SetDefault("output", "")
}

// bindEnv maps each setting to its MODELDOC_* variable. AutomaticEnv only
// resolves keys viper has already seen, so every field is bound explicitly.
func bindEnv(v *viper.Viper) {
	v.BindEnv("models", "MODELDOC_MODELS")
	v.BindEnv("spec", "MODELDOC_SPEC")
	v.BindEnv("module_name", "MODELDOC_MODULE_NAME")
	v.BindEnv("renderer", "MODELDOC_RENDERER")
	v.BindEnv("output", "MODELDOC_OUTPUT")
	v.BindEnv("themes", "MODELDOC_THEMES")
	v.BindEnv("theme.name", "MODELDOC_THEME_NAME")
	v.BindEnv("theme.variant", "MODELDOC_THEME_VARIANT")
}

// findProjectConfig walks from the working directory to the filesystem root
// looking for a .modeldoc.yaml file.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, projectConfigName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
