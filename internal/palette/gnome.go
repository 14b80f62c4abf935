package palette

import "github.com/huetint/huetint/internal/colour"

// AccentName identifies one of the accent-colour options understood by
// the GNOME desktop schema (org.gnome.desktop.interface accent-color).
type AccentName string

// GNOME accent-colour options.
const (
	AccentSlate  AccentName = "slate"
	AccentRed    AccentName = "red"
	AccentOrange AccentName = "orange"
	AccentYellow AccentName = "yellow"
	AccentGreen  AccentName = "green"
	AccentTeal   AccentName = "teal"
	AccentBlue   AccentName = "blue"
	AccentPurple AccentName = "purple"
	AccentPink   AccentName = "pink"
)

// String returns the accent name as the value string written to the
// desktop settings schema.
func (n AccentName) String() string {
	return string(n)
}

// GnomeAccentName maps a colour to the nearest GNOME accent-colour
// option. The hue thresholds follow the desktop schema's own colour
// wheel split and must not drift; desaturated colours map to slate
// regardless of hue.
func GnomeAccentName(c colour.RGB) AccentName {
	h, s, _ := c.ToHSL()
	return accentNameFor(h, s)
}

// accentNameFor classifies an HSL hue/saturation pair. Hue ranges are
// half-open on the low side.
func accentNameFor(h, s float64) AccentName {
	if s <= 15 {
		return AccentSlate
	}
	switch {
	case h < 15 || h >= 345:
		return AccentRed
	case h < 40:
		return AccentOrange
	case h < 70:
		return AccentYellow
	case h < 160:
		return AccentGreen
	case h < 195:
		return AccentTeal
	case h < 260:
		return AccentBlue
	case h < 300:
		return AccentPurple
	default:
		return AccentPink
	}
}
