// Package fastfetch generates a fastfetch configuration tinted to the
// theme palette.
package fastfetch

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/huetint/huetint/internal/generate"
	"github.com/huetint/huetint/internal/palette"
)

//go:embed *.tmpl
var templates embed.FS

// Generator implements generate.Generator for fastfetch.
type Generator struct{}

// New creates a new fastfetch config generator.
func New() *Generator {
	return &Generator{}
}

// Name returns the generator name.
func (g *Generator) Name() string {
	return "fastfetch"
}

// Description returns the generator description.
func (g *Generator) Description() string {
	return "Generate a fastfetch configuration with theme colours"
}

// Generate renders the fastfetch config.
func (g *Generator) Generate(p *palette.Palette, meta generate.Meta) (map[string][]byte, error) {
	data := generate.NewData(p, meta)

	conf, err := generate.Render(templates, "config.jsonc.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("failed to render fastfetch config: %w", err)
	}

	return map[string][]byte{
		filepath.Join("fastfetch", "config.jsonc"): conf,
	}, nil
}
