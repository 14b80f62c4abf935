package generate

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/huetint/huetint/internal/colour"
	"github.com/huetint/huetint/internal/palette"
)

// Data is the root object passed to every theme template.
type Data struct {
	// Name is the theme name.
	Name string

	// Wallpaper is the absolute path of the source wallpaper.
	Wallpaper string

	// Accent is the GNOME accent-colour name for the theme accent.
	Accent string

	// C maps colour role names to lowercase "#rrggbb" hex strings, so
	// templates can write {{.C.accent}} or {{.C.ansi_bright_cyan}}.
	C map[string]string
}

// NewData builds the template data for a palette and theme metadata.
func NewData(p *palette.Palette, meta Meta) *Data {
	return &Data{
		Name:      meta.ThemeName,
		Wallpaper: meta.Wallpaper,
		Accent:    meta.AccentName.String(),
		C:         p.Map(),
	}
}

// Funcs returns the template functions shared by all generators.
func Funcs() template.FuncMap {
	return template.FuncMap{
		// noHash strips the leading "#" (kitty, some TOML dialects).
		"noHash": func(hex string) string {
			return strings.TrimPrefix(hex, "#")
		},

		// alpha appends a 2-digit hex alpha suffix (#rrggbb -> #rrggbbaa).
		"alpha": func(hex, suffix string) string {
			return hex + suffix
		},

		// rgb renders a hex colour as decimal "r, g, b" for CSS rgba().
		"rgb": func(hex string) (string, error) {
			c, err := colour.ParseHex(hex)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B), nil
		},

		"toLower": strings.ToLower,
		"toUpper": strings.ToUpper,
	}
}

// Render parses and executes a named template from an embedded
// filesystem against the given data.
func Render(templates embed.FS, name string, data *Data) ([]byte, error) {
	content, err := templates.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(Funcs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
