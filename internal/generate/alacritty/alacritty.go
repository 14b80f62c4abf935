// Package alacritty generates an Alacritty terminal colour scheme.
package alacritty

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/huetint/huetint/internal/generate"
	"github.com/huetint/huetint/internal/palette"
)

//go:embed *.tmpl
var templates embed.FS

// Generator implements generate.Generator for the Alacritty terminal.
type Generator struct{}

// New creates a new Alacritty theme generator.
func New() *Generator {
	return &Generator{}
}

// Name returns the generator name.
func (g *Generator) Name() string {
	return "alacritty"
}

// Description returns the generator description.
func (g *Generator) Description() string {
	return "Generate Alacritty terminal colour scheme (TOML)"
}

// Generate renders the Alacritty colour scheme.
func (g *Generator) Generate(p *palette.Palette, meta generate.Meta) (map[string][]byte, error) {
	data := generate.NewData(p, meta)

	toml, err := generate.Render(templates, "theme.toml.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("failed to render alacritty theme: %w", err)
	}

	return map[string][]byte{
		filepath.Join("alacritty", "theme.toml"): toml,
	}, nil
}
