// Package opencode generates themes for the OpenCode and Kilo terminal
// editors. Both read the same theme format: a defs block naming the
// palette colours and a theme block referencing them with dark/light
// variants, so one generator emits both directories.
package opencode

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/huetint/huetint/internal/colour"
	"github.com/huetint/huetint/internal/generate"
	"github.com/huetint/huetint/internal/palette"
)

// Generator implements generate.Generator for OpenCode and Kilo.
type Generator struct{}

// New creates a new OpenCode/Kilo theme generator.
func New() *Generator {
	return &Generator{}
}

// Name returns the generator name.
func (g *Generator) Name() string {
	return "opencode"
}

// Description returns the generator description.
func (g *Generator) Description() string {
	return "Generate OpenCode and Kilo editor themes"
}

// Generate renders the theme plus the config files that select it.
// Kilo gets the same theme file; only the config naming differs.
func (g *Generator) Generate(p *palette.Palette, meta generate.Meta) (map[string][]byte, error) {
	slug := themeSlug(meta.ThemeName)

	theme, err := json.MarshalIndent(themeJSON(p), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal theme: %w", err)
	}

	config, err := json.MarshalIndent(map[string]string{"theme": slug}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return map[string][]byte{
		filepath.Join("opencode", slug+".json"):    theme,
		filepath.Join("opencode", "opencode.json"): config,
		filepath.Join("kilo", slug+".json"):        theme,
		filepath.Join("kilo", "kv.json"):           config,
	}, nil
}

// themeSlug flattens the theme name to the bare identifier both apps
// use as the theme key (no spaces, no hyphens).
func themeSlug(name string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.ToLower(name))
}

// ref is a dark/light pair pointing at defs entries (or literal hex for
// the few fixed light-mode surfaces).
func ref(dark, light string) map[string]string {
	return map[string]string{"dark": dark, "light": light}
}

func same(name string) map[string]string {
	return ref(name, name)
}

func themeJSON(p *palette.Palette) map[string]any {
	return map[string]any{
		"$schema": "https://opencode.ai/theme.json",
		"defs": map[string]string{
			"bg-deepest":    p.BgDeepest.Hex(),
			"bg-main":       p.BgMain.Hex(),
			"bg-surface":    p.BgSurface.Hex(),
			"bg-elevated":   p.BgElevated.Hex(),
			"border-dim":    p.BgElevated.Hex(),
			"border-main":   p.Border.Hex(),
			"border-bright": p.BorderBright.Hex(),
			"accent":        p.Accent.Hex(),
			"accent-light":  p.AccentLight.Hex(),
			"accent-soft":   p.AccentSoft.Hex(),
			"text":          p.Text.Hex(),
			"text-muted":    p.TextDim.Hex(),
			"text-dim":      colour.Darken(p.TextDim, 10).Hex(),
			"scarlet-rose":  p.AccentRose.Hex(),
			"deep-maroon":   p.DeepMaroon.Hex(),
			"green":         p.Green.Hex(),
			"red":           p.AccentLight.Hex(),
			"yellow":        p.AnsiYellow.Hex(),
			"blue":          p.Blue.Hex(),
			"magenta":       p.Magenta.Hex(),
			"cyan":          p.Cyan.Hex(),
		},
		"theme": map[string]any{
			"primary":    same("accent"),
			"secondary":  same("accent-soft"),
			"accent":     same("scarlet-rose"),
			"error":      same("red"),
			"warning":    same("yellow"),
			"success":    same("green"),
			"info":       same("accent-soft"),
			"text":       ref("text", "bg-deepest"),
			"textMuted":  same("text-muted"),
			"background": ref("bg-deepest", "#f5f0f2"),

			"backgroundPanel":   ref("bg-main", "#ece4e8"),
			"backgroundElement": ref("bg-surface", "#e0d8dc"),
			"border":            same("border-main"),
			"borderActive":      same("accent"),
			"borderSubtle":      same("border-dim"),

			"diffAdded":               same("green"),
			"diffRemoved":             same("red"),
			"diffContext":             same("text-muted"),
			"diffHunkHeader":          same("text-dim"),
			"diffHighlightAdded":      same("green"),
			"diffHighlightRemoved":    same("red"),
			"diffAddedBg":             ref("#0d1a0d", "#e8f5e8"),
			"diffRemovedBg":           ref("#1a0d10", "#f5e8ea"),
			"diffContextBg":           ref("bg-main", "#ece4e8"),
			"diffLineNumber":          same("text-dim"),
			"diffAddedLineNumberBg":   ref("#0d1a0d", "#e8f5e8"),
			"diffRemovedLineNumberBg": ref("#1a0d10", "#f5e8ea"),

			"markdownText":            ref("text", "bg-deepest"),
			"markdownHeading":         same("accent"),
			"markdownLink":            same("scarlet-rose"),
			"markdownLinkText":        ref("accent-light", "accent"),
			"markdownCode":            same("magenta"),
			"markdownBlockQuote":      same("text-muted"),
			"markdownEmph":            same("accent-soft"),
			"markdownStrong":          ref("accent-light", "accent"),
			"markdownHorizontalRule":  same("border-main"),
			"markdownListItem":        same("accent"),
			"markdownListEnumeration": same("accent-soft"),
			"markdownImage":           same("scarlet-rose"),
			"markdownImageText":       same("accent-soft"),
			"markdownCodeBlock":       ref("text", "bg-deepest"),

			"syntaxComment":     same("text-muted"),
			"syntaxKeyword":     same("accent"),
			"syntaxFunction":    same("scarlet-rose"),
			"syntaxVariable":    same("cyan"),
			"syntaxString":      same("green"),
			"syntaxNumber":      same("magenta"),
			"syntaxType":        same("accent-soft"),
			"syntaxOperator":    ref("accent-light", "accent"),
			"syntaxPunctuation": ref("text", "bg-deepest"),
		},
	}
}
