// Package themefile loads go-theme manifests from YAML documents and exposes
// them through a ThemeSelector so CLI and server callers can theme generated
// pages without writing manifest code.
package themefile

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

type manifestDoc struct {
	Name      string                `yaml:"name"`
	Version   string                `yaml:"version"`
	Tokens    map[string]string     `yaml:"tokens"`
	Templates map[string]string     `yaml:"templates"`
	Assets    assetsDoc             `yaml:"assets"`
	Variants  map[string]variantDoc `yaml:"variants"`
}

type assetsDoc struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

type variantDoc struct {
	Tokens    map[string]string `yaml:"tokens"`
	Templates map[string]string `yaml:"templates"`
	Assets    assetsDoc         `yaml:"assets"`
}

// Parse decodes one YAML manifest. origin is used in error messages.
func Parse(data []byte, origin string) (*theme.Manifest, error) {
	var doc manifestDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("themefile: parse %s: %w", origin, err)
	}
	if strings.TrimSpace(doc.Name) == "" {
		return nil, fmt.Errorf("themefile: %s: theme name is required", origin)
	}

	manifest := &theme.Manifest{
		Name:      doc.Name,
		Version:   doc.Version,
		Tokens:    doc.Tokens,
		Templates: doc.Templates,
		Assets: theme.Assets{
			Prefix: doc.Assets.Prefix,
			Files:  doc.Assets.Files,
		},
	}
	if len(doc.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(doc.Variants))
		for name, variant := range doc.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens:    variant.Tokens,
				Templates: variant.Templates,
				Assets: theme.Assets{
					Prefix: variant.Assets.Prefix,
					Files:  variant.Assets.Files,
				},
			}
		}
	}
	return manifest, nil
}

// LoadFS walks an fs.FS and parses every .yaml/.yml file as a manifest.
func LoadFS(fsys fs.FS) ([]*theme.Manifest, error) {
	var manifests []*theme.Manifest
	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !isManifestFile(p) {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("themefile: read %s: %w", p, err)
		}
		manifest, err := Parse(data, p)
		if err != nil {
			return err
		}
		manifests = append(manifests, manifest)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return manifests, nil
}

func isManifestFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Selector serves selections from an in-memory manifest set. It implements
// theme.ThemeSelector.
type Selector struct {
	mu        sync.RWMutex
	manifests map[string]*theme.Manifest
}

// NewSelector builds a selector over the given manifests. Later manifests
// with a duplicate name replace earlier ones.
func NewSelector(manifests ...*theme.Manifest) *Selector {
	s := &Selector{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, manifest := range manifests {
		if manifest == nil || manifest.Name == "" {
			continue
		}
		s.manifests[manifest.Name] = manifest
	}
	return s
}

// SelectorFromFS loads every manifest under fsys into a fresh selector.
func SelectorFromFS(fsys fs.FS) (*Selector, error) {
	manifests, err := LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	return NewSelector(manifests...), nil
}

// Select resolves a theme and variant. Unknown themes are an error; an
// unknown variant falls back to the manifest's base configuration.
func (s *Selector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.mu.RLock()
	manifest, ok := s.manifests[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("themefile: theme %q not found (have %s)", name, strings.Join(s.Themes(), ", "))
	}
	resolved := variant
	if resolved != "" {
		if _, ok := manifest.Variants[resolved]; !ok {
			resolved = ""
		}
	}
	return &theme.Selection{
		Theme:    manifest.Name,
		Variant:  resolved,
		Manifest: manifest,
	}, nil
}

// Themes lists the registered theme names, sorted.
func (s *Selector) Themes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
