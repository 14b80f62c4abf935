// Package gtk generates GTK3/GTK4 theme CSS and the theme index file.
package gtk

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/huetint/huetint/internal/generate"
	"github.com/huetint/huetint/internal/palette"
)

//go:embed *.tmpl
var templates embed.FS

// Generator implements generate.Generator for GTK themes.
type Generator struct{}

// New creates a new GTK theme generator.
func New() *Generator {
	return &Generator{}
}

// Name returns the generator name.
func (g *Generator) Name() string {
	return "gtk"
}

// Description returns the generator description.
func (g *Generator) Description() string {
	return "Generate GTK3/GTK4 theme CSS and index.theme"
}

// Generate renders the GTK theme files. The same CSS serves both GTK
// versions; libadwaita reads the named colours from gtk-4.0/gtk.css.
func (g *Generator) Generate(p *palette.Palette, meta generate.Meta) (map[string][]byte, error) {
	data := generate.NewData(p, meta)

	css, err := generate.Render(templates, "gtk.css.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("failed to render gtk css: %w", err)
	}

	index, err := generate.Render(templates, "index.theme.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("failed to render index.theme: %w", err)
	}

	return map[string][]byte{
		filepath.Join("gtk", "gtk-3.0", "gtk.css"): css,
		filepath.Join("gtk", "gtk-4.0", "gtk.css"): css,
		filepath.Join("gtk", "index.theme"):        index,
	}, nil
}
