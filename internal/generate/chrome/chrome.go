// Package chrome generates an unpacked Chrome/Chromium browser theme.
// Chrome themes take colours as decimal RGB triples in manifest.json,
// so the manifest is built in Go instead of templated.
package chrome

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/huetint/huetint/internal/colour"
	"github.com/huetint/huetint/internal/generate"
	"github.com/huetint/huetint/internal/palette"
)

// Generator implements generate.Generator for Chrome/Chromium.
type Generator struct{}

// New creates a new Chrome theme generator.
func New() *Generator {
	return &Generator{}
}

// Name returns the generator name.
func (g *Generator) Name() string {
	return "chrome"
}

// Description returns the generator description.
func (g *Generator) Description() string {
	return "Generate an unpacked Chrome/Chromium theme"
}

// Generate renders the theme manifest. The theme is loaded manually via
// chrome://extensions as an unpacked extension.
func (g *Generator) Generate(p *palette.Palette, meta generate.Meta) (map[string][]byte, error) {
	manifest, err := json.MarshalIndent(manifestJSON(p, meta.ThemeName), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}

	return map[string][]byte{
		filepath.Join("chrome", "manifest.json"): manifest,
	}, nil
}

// triple converts a colour to the [r, g, b] array Chrome expects.
func triple(c colour.RGB) [3]int {
	return [3]int{int(c.R), int(c.G), int(c.B)}
}

func manifestJSON(p *palette.Palette, name string) map[string]any {
	return map[string]any{
		"manifest_version": 3,
		"version":          "1.0",
		"name":             name,
		"theme": map[string]any{
			"colors": map[string]any{
				"frame":                   triple(p.BgMain),
				"frame_inactive":          triple(p.BgDeepest),
				"toolbar":                 triple(p.BgSurface),
				"tab_text":                triple(p.Text),
				"tab_background_text":     triple(p.TextDim),
				"bookmark_text":           triple(p.TextMuted),
				"ntp_background":          triple(p.BgDeepest),
				"ntp_text":                triple(p.Text),
				"ntp_link":                triple(p.AccentHover),
				"omnibox_background":      triple(p.BgElevated),
				"omnibox_text":            triple(p.Text),
				"button_background":       triple(p.BgElevated),
				"toolbar_button_icon":     triple(p.TextMuted),
				"toolbar_text":            triple(p.Text),
			},
			"tints": map[string][3]float64{
				"buttons": {-1, -1, -1},
			},
			"properties": map[string]any{
				"ntp_background_alignment": "bottom",
			},
		},
	}
}
