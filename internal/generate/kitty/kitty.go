// Package kitty generates a Kitty terminal colour theme.
package kitty

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/huetint/huetint/internal/generate"
	"github.com/huetint/huetint/internal/palette"
)

//go:embed *.tmpl
var templates embed.FS

// Generator implements generate.Generator for the Kitty terminal.
type Generator struct{}

// New creates a new Kitty theme generator.
func New() *Generator {
	return &Generator{}
}

// Name returns the generator name.
func (g *Generator) Name() string {
	return "kitty"
}

// Description returns the generator description.
func (g *Generator) Description() string {
	return "Generate Kitty terminal colour theme configuration"
}

// Generate renders the Kitty theme file.
func (g *Generator) Generate(p *palette.Palette, meta generate.Meta) (map[string][]byte, error) {
	data := generate.NewData(p, meta)

	conf, err := generate.Render(templates, "theme.conf.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("failed to render kitty theme: %w", err)
	}

	return map[string][]byte{
		filepath.Join("kitty", "theme.conf"): conf,
	}, nil
}
