// Package palette derives a complete theme palette from a single accent
// colour. The derivation is a pure function: the same accent always
// yields the same palette, and every role is always populated.
package palette

import (
	"github.com/huetint/huetint/internal/colour"
)

// Palette holds every colour role the theme generators bind to, plus
// the source wallpaper path. It is built once per run and read-only
// afterwards.
type Palette struct {
	Wallpaper string

	// Background tiers, dark and tinted with the accent hue.
	BgDeepest    colour.RGB
	BgMain       colour.RGB
	BgSurface    colour.RGB
	BgElevated   colour.RGB
	Border       colour.RGB
	BorderBright colour.RGB

	// Accent and its variants.
	Accent      colour.RGB
	AccentHover colour.RGB
	AccentLight colour.RGB
	AccentSoft  colour.RGB
	AccentRose  colour.RGB

	// Text tiers, subtly tinted toward the accent hue.
	Text      colour.RGB
	TextMuted colour.RGB
	TextDim   colour.RGB

	// Semantic colours with fixed identities across themes.
	Green   colour.RGB
	Blue    colour.RGB
	Magenta colour.RGB
	Cyan    colour.RGB
	Warning colour.RGB

	// Disabled / insensitive widget colours.
	InsensitiveBg colour.RGB
	InsensitiveFg colour.RGB

	// Deep accent-hue maroon for subtle uses.
	DeepMaroon colour.RGB

	// 16-slot ANSI terminal palette.
	AnsiBlack         colour.RGB
	AnsiRed           colour.RGB
	AnsiGreen         colour.RGB
	AnsiYellow        colour.RGB
	AnsiBlue          colour.RGB
	AnsiMagenta       colour.RGB
	AnsiCyan          colour.RGB
	AnsiWhite         colour.RGB
	AnsiBrightBlack   colour.RGB
	AnsiBrightRed     colour.RGB
	AnsiBrightGreen   colour.RGB
	AnsiBrightYellow  colour.RGB
	AnsiBrightBlue    colour.RGB
	AnsiBrightMagenta colour.RGB
	AnsiBrightCyan    colour.RGB
	AnsiBrightWhite   colour.RGB
}

// Accent normalisation bounds. A washed-out or too-dark accent is
// pulled into a range where it stays legible against the backgrounds.
const (
	accentMinSaturation    = 40.0
	accentForcedSaturation = 60.0
	accentMinLightness     = 25.0
	accentRaisedLightness  = 40.0
	accentMaxLightness     = 65.0
	accentLoweredLightness = 50.0
)

// Background ramp lightness steps. The tint saturation is a fraction of
// the accent's, each with its own floor, so the ramp reads as a dark
// hue-tinted surface stack rather than neutral grey.
const (
	bgDeepestLight  = 3.0
	bgMainLight     = 5.5
	bgSurfaceLight  = 8.5
	bgElevatedLight = 12.0
	borderLight     = 17.0
	borderHighLight = 22.0
)

// Text tier lightness steps.
const (
	textLight      = 90.0
	textMutedLight = 63.0
	textDimLight   = 38.0
)

// Fixed-identity semantic colours. Green and blue are not derived from
// the accent so their meaning stays stable across any theme.
const (
	greenHue, greenSat, greenLight       = 130.0, 50.0, 46.0
	blueHue, blueSat, blueLight          = 228.0, 40.0, 55.0
	cyanHue, cyanSat, cyanLight          = 175.0, 40.0, 48.0
	warningHue, warningSat, warningLight = 35.0, 70.0, 58.0

	// Magenta sits at a fixed pink-purple hue unless the accent itself
	// is in the 60-300 band, in which case it flips to the accent's
	// complement to avoid a visual collision.
	magentaFixedHue   = 320.0
	magentaBandLow    = 60.0
	magentaBandHigh   = 300.0
	magentaHueFlip    = 180.0
	magentaSatScale   = 0.8
	magentaSatFloor   = 40.0
	magentaSatCeiling = 60.0

	// The ANSI yellow slot reuses the accent hue shifted a few degrees
	// instead of a literal yellow, which would clash with warm accents.
	ansiYellowHueShift = 8.0
)

// Derive generates the complete theme palette from an accent colour.
// It is total over any valid accent: no role is ever omitted.
func Derive(accent colour.RGB, wallpaper string) *Palette {
	ah, as, al := accent.ToHSL()

	// Normalise the accent so it stays visible regardless of how
	// degenerate the extracted or user-supplied colour was.
	if as < accentMinSaturation {
		as = accentForcedSaturation
	}
	if al < accentMinLightness {
		al = accentRaisedLightness
	}
	if al > accentMaxLightness {
		al = accentLoweredLightness
	}
	acc := colour.FromHSL(ah, as, al)

	p := &Palette{
		Wallpaper: wallpaper,
		Accent:    acc,
	}

	// Background tiers and borders.
	p.BgDeepest = colour.FromHSL(ah, max(3, as*0.05), bgDeepestLight)
	p.BgMain = colour.FromHSL(ah, max(5, as*0.08), bgMainLight)
	p.BgSurface = colour.FromHSL(ah, max(8, as*0.12), bgSurfaceLight)
	p.BgElevated = colour.FromHSL(ah, max(12, as*0.15), bgElevatedLight)
	p.Border = colour.FromHSL(ah, max(15, as*0.2), borderLight)
	p.BorderBright = colour.FromHSL(ah, max(15, as*0.2), borderHighLight)

	// Accent variants.
	p.AccentHover = colour.FromHSL(ah, min(100, as+5), min(65, al+8))
	p.AccentLight = colour.FromHSL(ah, min(100, as+10), min(70, al+12))
	p.AccentSoft = colour.FromHSL(ah+15, max(30, as*0.6), al)
	p.AccentRose = colour.FromHSL(ah, max(40, as*0.7), min(75, al+20))

	// Text tiers.
	p.Text = colour.FromHSL(ah, max(3, as*0.06), textLight)
	p.TextMuted = colour.FromHSL(ah, max(4, as*0.08), textMutedLight)
	p.TextDim = colour.FromHSL(ah, max(5, as*0.1), textDimLight)

	// Semantic colours.
	p.Green = colour.FromHSL(greenHue, greenSat, greenLight)
	p.Blue = colour.FromHSL(blueHue, blueSat, blueLight)
	magHue := magentaFixedHue
	if ah >= magentaBandLow && ah < magentaBandHigh {
		magHue = ah + magentaHueFlip
	}
	p.Magenta = colour.FromHSL(magHue, min(magentaSatCeiling, max(magentaSatFloor, as*magentaSatScale)), 50)
	p.Cyan = colour.FromHSL(cyanHue, cyanSat, cyanLight)
	p.Warning = colour.FromHSL(warningHue, warningSat, warningLight)

	// Insensitive / disabled.
	p.InsensitiveBg = colour.FromHSL(ah, max(5, as*0.06), 7)
	p.InsensitiveFg = p.TextDim

	p.DeepMaroon = colour.FromHSL(ah, max(30, as*0.5), 20)

	// ANSI terminal palette. The bright slots are brightness-boosted
	// transforms of the normal slots rather than independent derivations.
	p.AnsiBlack = colour.FromHSL(ah, max(3, as*0.05), 5)
	p.AnsiRed = acc
	p.AnsiGreen = p.Green
	p.AnsiYellow = colour.FromHSL(ah+ansiYellowHueShift, min(80, as), min(55, al+5))
	p.AnsiBlue = p.Blue
	p.AnsiMagenta = p.Magenta
	p.AnsiCyan = p.Cyan
	p.AnsiWhite = p.TextMuted

	p.AnsiBrightBlack = p.Border
	p.AnsiBrightRed = p.AccentLight
	p.AnsiBrightGreen = colour.Lighten(p.Green, 8)
	p.AnsiBrightYellow = p.AccentRose
	p.AnsiBrightBlue = colour.Lighten(p.Blue, 10)
	p.AnsiBrightMagenta = colour.Lighten(p.Magenta, 12)
	p.AnsiBrightCyan = colour.Lighten(p.Cyan, 10)
	p.AnsiBrightWhite = colour.Lighten(p.Text, 3)

	return p
}

// roleOrder is the fixed, closed set of colour role names, in display
// order. Every name is always present in Map.
var roleOrder = []string{
	"bg_deepest",
	"bg_main",
	"bg_surface",
	"bg_elevated",
	"border",
	"border_bright",
	"accent",
	"accent_hover",
	"accent_light",
	"accent_soft",
	"accent_rose",
	"text",
	"text_muted",
	"text_dim",
	"green",
	"blue",
	"magenta",
	"cyan",
	"warning",
	"insensitive_bg",
	"insensitive_fg",
	"deep_maroon",
	"ansi_black",
	"ansi_red",
	"ansi_green",
	"ansi_yellow",
	"ansi_blue",
	"ansi_magenta",
	"ansi_cyan",
	"ansi_white",
	"ansi_bright_black",
	"ansi_bright_red",
	"ansi_bright_green",
	"ansi_bright_yellow",
	"ansi_bright_blue",
	"ansi_bright_magenta",
	"ansi_bright_cyan",
	"ansi_bright_white",
}

// RoleNames returns the fixed set of colour role names in display order.
func RoleNames() []string {
	names := make([]string, len(roleOrder))
	copy(names, roleOrder)
	return names
}

// Roles returns the role-name to colour mapping. The wallpaper path is
// carried separately on the struct; every value here is a colour.
func (p *Palette) Roles() map[string]colour.RGB {
	return map[string]colour.RGB{
		"bg_deepest":          p.BgDeepest,
		"bg_main":             p.BgMain,
		"bg_surface":          p.BgSurface,
		"bg_elevated":         p.BgElevated,
		"border":              p.Border,
		"border_bright":       p.BorderBright,
		"accent":              p.Accent,
		"accent_hover":        p.AccentHover,
		"accent_light":        p.AccentLight,
		"accent_soft":         p.AccentSoft,
		"accent_rose":         p.AccentRose,
		"text":                p.Text,
		"text_muted":          p.TextMuted,
		"text_dim":            p.TextDim,
		"green":               p.Green,
		"blue":                p.Blue,
		"magenta":             p.Magenta,
		"cyan":                p.Cyan,
		"warning":             p.Warning,
		"insensitive_bg":      p.InsensitiveBg,
		"insensitive_fg":      p.InsensitiveFg,
		"deep_maroon":         p.DeepMaroon,
		"ansi_black":          p.AnsiBlack,
		"ansi_red":            p.AnsiRed,
		"ansi_green":          p.AnsiGreen,
		"ansi_yellow":         p.AnsiYellow,
		"ansi_blue":           p.AnsiBlue,
		"ansi_magenta":        p.AnsiMagenta,
		"ansi_cyan":           p.AnsiCyan,
		"ansi_white":          p.AnsiWhite,
		"ansi_bright_black":   p.AnsiBrightBlack,
		"ansi_bright_red":     p.AnsiBrightRed,
		"ansi_bright_green":   p.AnsiBrightGreen,
		"ansi_bright_yellow":  p.AnsiBrightYellow,
		"ansi_bright_blue":    p.AnsiBrightBlue,
		"ansi_bright_cyan":    p.AnsiBrightCyan,
		"ansi_bright_magenta": p.AnsiBrightMagenta,
		"ansi_bright_white":   p.AnsiBrightWhite,
	}
}

// Map returns the role-name to lowercase hex string mapping consumed by
// the file generators.
func (p *Palette) Map() map[string]string {
	roles := p.Roles()
	m := make(map[string]string, len(roles))
	for name, c := range roles {
		m[name] = c.Hex()
	}
	return m
}
