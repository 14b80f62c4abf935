// Package generate renders a derived palette into per-application
// configuration files. Each generator owns its templates and returns
// file contents keyed by path relative to the theme output directory.
package generate

import (
	"fmt"
	"sort"

	"github.com/huetint/huetint/internal/palette"
)

// Meta carries theme-level information shared by every generator.
type Meta struct {
	// ThemeName is the user-facing name of the generated theme.
	ThemeName string

	// Wallpaper is the absolute path of the source wallpaper.
	Wallpaper string

	// AccentName is the GNOME accent-colour option matching the accent.
	AccentName palette.AccentName
}

// Generator renders the theme files for a single application.
type Generator interface {
	// Name returns the generator's name (e.g. "gtk", "kitty").
	Name() string

	// Description returns a human-readable description of the generator.
	Description() string

	// Generate renders the theme files from the given palette.
	// Returned paths are relative to the theme output directory.
	Generate(p *palette.Palette, meta Meta) (map[string][]byte, error)
}

// Registry holds all registered generators.
type Registry struct {
	generators map[string]Generator
}

// NewRegistry creates a new generator registry.
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
	}
}

// Register adds a generator to the registry.
func (r *Registry) Register(g Generator) {
	r.generators[g.Name()] = g
}

// Get retrieves a generator by name.
func (r *Registry) Get(name string) (Generator, bool) {
	g, ok := r.generators[name]
	return g, ok
}

// List returns all registered generator names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered generator in name order.
func (r *Registry) All() []Generator {
	generators := make([]Generator, 0, len(r.generators))
	for _, name := range r.List() {
		generators = append(generators, r.generators[name])
	}
	return generators
}

// GenerateAll runs every selected generator and merges the resulting
// files. An empty selection runs all generators. Unknown names fail
// before any generator runs.
func (r *Registry) GenerateAll(p *palette.Palette, meta Meta, selected []string) (map[string][]byte, error) {
	generators := r.All()
	if len(selected) > 0 {
		generators = generators[:0]
		for _, name := range selected {
			g, ok := r.Get(name)
			if !ok {
				return nil, fmt.Errorf("unknown generator: %s (available: %v)", name, r.List())
			}
			generators = append(generators, g)
		}
	}

	files := make(map[string][]byte)
	for _, g := range generators {
		generated, err := g.Generate(p, meta)
		if err != nil {
			return nil, fmt.Errorf("generator %s failed: %w", g.Name(), err)
		}
		for path, content := range generated {
			files[path] = content
		}
	}
	return files, nil
}
