// Package vscode generates a VS Code colour-theme extension: the theme
// JSON itself plus the package.json that makes the directory loadable
// as an unpacked extension.
package vscode

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/huetint/huetint/internal/colour"
	"github.com/huetint/huetint/internal/generate"
	"github.com/huetint/huetint/internal/palette"
)

// Generator implements generate.Generator for VS Code.
type Generator struct{}

// New creates a new VS Code theme generator.
func New() *Generator {
	return &Generator{}
}

// Name returns the generator name.
func (g *Generator) Name() string {
	return "vscode"
}

// Description returns the generator description.
func (g *Generator) Description() string {
	return "Generate a VS Code colour theme extension"
}

// Generate renders the theme and extension manifest. The theme JSON is
// built in Go rather than templated; with this many keys a template
// would be all noise and no structure.
func (g *Generator) Generate(p *palette.Palette, meta generate.Meta) (map[string][]byte, error) {
	slug := slugify(meta.ThemeName)

	theme, err := json.MarshalIndent(themeJSON(p, meta.ThemeName), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal theme: %w", err)
	}

	pkg, err := json.MarshalIndent(packageJSON(meta.ThemeName, slug), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal package.json: %w", err)
	}

	return map[string][]byte{
		filepath.Join("vscode", "package.json"):                              pkg,
		filepath.Join("vscode", "themes", slug+"-color-theme.json"):          theme,
		filepath.Join("vscode", "settings", "terminal-colors-settings.json"): settingsJSON(p, meta.ThemeName),
	}, nil
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// tokenRule is one tokenColors entry in the theme JSON.
type tokenRule struct {
	Scope    []string       `json:"scope"`
	Settings map[string]any `json:"settings"`
}

func themeJSON(p *palette.Palette, name string) map[string]any {
	hex := func(c colour.RGB) string { return c.Hex() }
	alpha := func(c colour.RGB, a string) string { return c.Hex() + a }

	return map[string]any{
		"name":                 name,
		"type":                 "dark",
		"semanticHighlighting": true,
		"colors": map[string]string{
			"editor.background":                   hex(p.BgMain),
			"editor.foreground":                   hex(p.Text),
			"editor.lineHighlightBackground":      alpha(p.BgSurface, "80"),
			"editor.selectionBackground":          alpha(p.Accent, "40"),
			"editor.selectionHighlightBackground": alpha(p.Accent, "25"),
			"editor.findMatchBackground":          alpha(p.Accent, "50"),
			"editor.findMatchHighlightBackground": alpha(p.Accent, "30"),
			"editorCursor.foreground":             hex(p.Accent),
			"editorWhitespace.foreground":         alpha(p.Border, "50"),
			"editorIndentGuide.background1":       alpha(p.Border, "40"),
			"editorIndentGuide.activeBackground1": alpha(p.Accent, "60"),
			"editorLineNumber.foreground":         hex(p.TextDim),
			"editorLineNumber.activeForeground":   hex(p.Accent),
			"editorBracketMatch.background":       alpha(p.Accent, "30"),
			"editorBracketMatch.border":           hex(p.Accent),
			"editorGutter.addedBackground":        hex(p.Green),
			"editorGutter.modifiedBackground":     hex(p.Accent),
			"editorGutter.deletedBackground":      hex(colour.Darken(p.Accent, 15)),

			"activityBar.background":         hex(p.BgMain),
			"activityBar.foreground":         hex(p.Accent),
			"activityBar.inactiveForeground": hex(p.TextDim),
			"activityBarBadge.background":    hex(p.Accent),
			"activityBarBadge.foreground":    "#ffffff",

			"sideBar.background":              hex(p.BgSurface),
			"sideBar.foreground":              hex(p.Text),
			"sideBar.border":                  alpha(p.Border, "40"),
			"sideBarSectionHeader.background": hex(p.BgMain),

			"list.activeSelectionBackground":   alpha(p.Accent, "35"),
			"list.activeSelectionForeground":   hex(p.Text),
			"list.inactiveSelectionBackground": alpha(p.Accent, "20"),
			"list.hoverBackground":             alpha(p.Accent, "15"),
			"list.highlightForeground":         hex(p.Accent),

			"statusBar.background":          hex(p.BgMain),
			"statusBar.foreground":          hex(p.TextMuted),
			"statusBar.border":              alpha(p.Border, "40"),
			"statusBar.debuggingBackground": hex(p.Accent),
			"statusBar.debuggingForeground": "#ffffff",

			"titleBar.activeBackground":   hex(p.BgMain),
			"titleBar.activeForeground":   hex(p.Text),
			"titleBar.inactiveForeground": hex(p.TextDim),

			"tab.activeBackground":   hex(p.BgSurface),
			"tab.activeForeground":   hex(p.Text),
			"tab.inactiveBackground": hex(p.BgMain),
			"tab.inactiveForeground": hex(p.TextDim),
			"tab.activeBorderTop":    hex(p.Accent),

			"panel.background":              hex(p.BgMain),
			"panel.border":                  alpha(p.Border, "40"),
			"panelTitle.activeBorder":       hex(p.Accent),
			"panelTitle.activeForeground":   hex(p.Text),
			"panelTitle.inactiveForeground": hex(p.TextDim),

			"terminal.background":          hex(p.BgDeepest),
			"terminal.foreground":          hex(p.Text),
			"terminal.ansiBlack":           hex(p.AnsiBlack),
			"terminal.ansiRed":             hex(p.AnsiRed),
			"terminal.ansiGreen":           hex(p.AnsiGreen),
			"terminal.ansiYellow":          hex(p.AnsiYellow),
			"terminal.ansiBlue":            hex(p.AnsiBlue),
			"terminal.ansiMagenta":         hex(p.AnsiMagenta),
			"terminal.ansiCyan":            hex(p.AnsiCyan),
			"terminal.ansiWhite":           hex(p.AnsiWhite),
			"terminal.ansiBrightBlack":     hex(p.AnsiBrightBlack),
			"terminal.ansiBrightRed":       hex(p.AnsiBrightRed),
			"terminal.ansiBrightGreen":     hex(p.AnsiBrightGreen),
			"terminal.ansiBrightYellow":    hex(p.AnsiBrightYellow),
			"terminal.ansiBrightBlue":      hex(p.AnsiBrightBlue),
			"terminal.ansiBrightMagenta":   hex(p.AnsiBrightMagenta),
			"terminal.ansiBrightCyan":      hex(p.AnsiBrightCyan),
			"terminal.ansiBrightWhite":     hex(p.AnsiBrightWhite),
			"terminalCursor.foreground":    hex(p.Accent),

			"input.background":                hex(p.BgElevated),
			"input.foreground":                hex(p.Text),
			"input.border":                    alpha(p.Border, "80"),
			"input.placeholderForeground":     hex(p.TextDim),
			"focusBorder":                     hex(p.Accent),
			"dropdown.background":             hex(p.BgElevated),
			"dropdown.foreground":             hex(p.Text),
			"button.background":               hex(p.Accent),
			"button.foreground":               "#ffffff",
			"button.hoverBackground":          hex(p.AccentHover),
			"button.secondaryBackground":      hex(p.BgElevated),
			"button.secondaryForeground":      hex(p.Text),
			"badge.background":                hex(p.Accent),
			"badge.foreground":                "#ffffff",
			"scrollbarSlider.background":      alpha(p.TextDim, "50"),
			"scrollbarSlider.hoverBackground": alpha(p.Accent, "80"),
			"progressBar.background":          hex(p.Accent),

			"menu.background":          hex(p.BgSurface),
			"menu.foreground":          hex(p.Text),
			"menu.selectionBackground": alpha(p.Accent, "30"),

			"notifications.background":             hex(p.BgSurface),
			"notifications.border":                 alpha(p.Border, "80"),
			"notificationsInfoIcon.foreground":     hex(p.Blue),
			"notificationsWarningIcon.foreground":  hex(p.AccentRose),
			"notificationsErrorIcon.foreground":    hex(p.Accent),

			"gitDecoration.addedResourceForeground":     hex(p.Green),
			"gitDecoration.modifiedResourceForeground":  hex(p.AccentRose),
			"gitDecoration.deletedResourceForeground":   hex(p.Accent),
			"gitDecoration.untrackedResourceForeground": hex(p.Cyan),

			"editorWidget.background":                 hex(p.BgSurface),
			"editorWidget.border":                     alpha(p.Border, "80"),
			"editorSuggestWidget.background":          hex(p.BgSurface),
			"editorSuggestWidget.selectedBackground":  alpha(p.Accent, "30"),
			"editorSuggestWidget.highlightForeground": hex(p.Accent),
			"editorHoverWidget.background":            hex(p.BgSurface),

			"textLink.foreground":       hex(p.Accent),
			"textLink.activeForeground": hex(p.AccentHover),
			"selection.background":      alpha(p.Accent, "40"),
			"icon.foreground":           hex(p.TextMuted),
			"sash.hoverBorder":          hex(p.Accent),
		},
		"tokenColors": []tokenRule{
			{Scope: []string{"comment", "punctuation.definition.comment"},
				Settings: map[string]any{"foreground": hex(p.TextDim), "fontStyle": "italic"}},
			{Scope: []string{"string", "string.quoted", "string.template"},
				Settings: map[string]any{"foreground": hex(p.AccentRose)}},
			{Scope: []string{"constant.numeric", "constant.language.boolean", "constant.language", "constant.character"},
				Settings: map[string]any{"foreground": hex(p.AccentHover)}},
			{Scope: []string{"variable", "variable.other", "variable.parameter"},
				Settings: map[string]any{"foreground": hex(p.Text)}},
			{Scope: []string{"variable.language.this", "variable.language.self"},
				Settings: map[string]any{"foreground": hex(p.Accent), "fontStyle": "italic"}},
			{Scope: []string{"keyword", "keyword.control", "storage", "storage.type", "storage.modifier"},
				Settings: map[string]any{"foreground": hex(p.Accent)}},
			{Scope: []string{"keyword.operator"},
				Settings: map[string]any{"foreground": hex(p.AccentSoft)}},
			{Scope: []string{"entity.name.function", "support.function", "meta.function-call"},
				Settings: map[string]any{"foreground": hex(p.Cyan)}},
			{Scope: []string{"entity.name.class", "entity.name.type", "support.class"},
				Settings: map[string]any{"foreground": hex(p.AccentRose)}},
			{Scope: []string{"entity.name.tag"},
				Settings: map[string]any{"foreground": hex(p.Accent)}},
			{Scope: []string{"entity.other.attribute-name"},
				Settings: map[string]any{"foreground": hex(p.AccentHover), "fontStyle": "italic"}},
			{Scope: []string{"support.type", "support.constant"},
				Settings: map[string]any{"foreground": hex(p.Cyan)}},
			{Scope: []string{"punctuation"},
				Settings: map[string]any{"foreground": hex(p.TextDim)}},
			{Scope: []string{"entity.name.namespace", "entity.name.module", "string.regexp"},
				Settings: map[string]any{"foreground": hex(p.Magenta)}},
			{Scope: []string{"markup.heading"},
				Settings: map[string]any{"foreground": hex(p.Accent), "fontStyle": "bold"}},
			{Scope: []string{"markup.bold"},
				Settings: map[string]any{"foreground": hex(p.AccentRose), "fontStyle": "bold"}},
			{Scope: []string{"markup.italic"},
				Settings: map[string]any{"foreground": hex(p.AccentSoft), "fontStyle": "italic"}},
			{Scope: []string{"markup.inline.raw", "markup.fenced_code"},
				Settings: map[string]any{"foreground": hex(p.Cyan)}},
			{Scope: []string{"invalid", "invalid.illegal"},
				Settings: map[string]any{"foreground": hex(p.AccentLight), "fontStyle": "underline"}},
		},
		"semanticTokenColors": map[string]any{
			"function":          hex(p.Cyan),
			"method":            hex(p.Cyan),
			"variable":          hex(p.Text),
			"variable.readonly": hex(p.AccentHover),
			"parameter":         hex(p.TextMuted),
			"property":          hex(p.TextMuted),
			"class":             hex(p.AccentRose),
			"interface":         hex(p.AccentRose),
			"enum":              hex(p.AccentRose),
			"enumMember":        hex(p.AccentHover),
			"type":              hex(p.AccentRose),
			"namespace":         hex(p.Magenta),
			"keyword":           hex(p.Accent),
			"comment":           map[string]any{"foreground": hex(p.TextDim), "italic": true},
			"string":            hex(p.AccentRose),
			"number":            hex(p.AccentHover),
			"regexp":            hex(p.Magenta),
			"operator":          hex(p.AccentSoft),
		},
	}
}

func packageJSON(name, slug string) map[string]any {
	return map[string]any{
		"name":        slug + "-theme",
		"displayName": name,
		"description": "Dark theme with accent colours - auto-generated by huetint",
		"version":     "1.0.0",
		"publisher":   "huetint",
		"engines":     map[string]string{"vscode": "^1.60.0"},
		"categories":  []string{"Themes"},
		"contributes": map[string]any{
			"themes": []map[string]string{
				{
					"label":   name,
					"uiTheme": "vs-dark",
					"path":    "./themes/" + slug + "-color-theme.json",
				},
			},
		},
	}
}

// settingsJSON renders the workbench settings snippet that recolours
// the integrated terminal without installing the full theme.
func settingsJSON(p *palette.Palette, name string) []byte {
	data := map[string]any{
		"workbench.colorTheme": name,
		"workbench.colorCustomizations": map[string]string{
			"terminal.background":        p.BgDeepest.Hex(),
			"terminal.foreground":        p.Text.Hex(),
			"terminal.ansiBlack":         p.AnsiBlack.Hex(),
			"terminal.ansiRed":           p.AnsiRed.Hex(),
			"terminal.ansiGreen":         p.AnsiGreen.Hex(),
			"terminal.ansiYellow":        p.AnsiYellow.Hex(),
			"terminal.ansiBlue":          p.AnsiBlue.Hex(),
			"terminal.ansiMagenta":       p.AnsiMagenta.Hex(),
			"terminal.ansiCyan":          p.AnsiCyan.Hex(),
			"terminal.ansiWhite":         p.AnsiWhite.Hex(),
			"terminal.ansiBrightBlack":   p.AnsiBrightBlack.Hex(),
			"terminal.ansiBrightRed":     p.AnsiBrightRed.Hex(),
			"terminal.ansiBrightGreen":   p.AnsiBrightGreen.Hex(),
			"terminal.ansiBrightYellow":  p.AnsiBrightYellow.Hex(),
			"terminal.ansiBrightBlue":    p.AnsiBrightBlue.Hex(),
			"terminal.ansiBrightMagenta": p.AnsiBrightMagenta.Hex(),
			"terminal.ansiBrightCyan":    p.AnsiBrightCyan.Hex(),
			"terminal.ansiBrightWhite":   p.AnsiBrightWhite.Hex(),
			"terminalCursor.foreground":  p.Accent.Hex(),
		},
	}
	// Marshal cannot fail for this value.
	b, _ := json.MarshalIndent(data, "", "    ")
	return b
}
