// Package colour provides colour types, HSL colour-space conversions and
// the dominant-colour extraction primitives used by Huetint.
package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the colour as a lowercase hex string (e.g. "#1a2b3c").
// Always 6 digits with a leading "#"; downstream generators append
// 2-digit alpha suffixes to this exact format.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseError reports a malformed hex colour string.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid hex colour %q: %s", e.Input, e.Reason)
}

// ParseHex parses a "#rrggbb" hex string into an RGB colour. The leading
// "#" is optional. Returns a *ParseError for malformed input.
func ParseHex(s string) (RGB, error) {
	t := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(t) != 6 {
		return RGB{}, &ParseError{Input: s, Reason: "expected 6 hex digits"}
	}
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return RGB{}, &ParseError{Input: s, Reason: "non-hex digit"}
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ToHSL converts the colour to HSL space.
// Returns hue (0-360), saturation (0-100) and lightness (0-100).
func (c RGB) ToHSL() (h, s, l float64) {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l = (maxVal + minVal) / 2.0 * 100

	// Achromatic (grey).
	if delta == 0 {
		return 0, 0, l
	}

	// Saturation.
	if maxVal+minVal < 1 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}
	s *= 100

	// Hue.
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60

	return h, s, l
}

// FromHSL converts an HSL triple to 8-bit RGB. Hue wraps modulo 360,
// saturation and lightness are clamped to [0, 100], and the resulting
// channels are rounded to the nearest integer.
func FromHSL(h, s, l float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clampPct(s) / 100
	l = clampPct(l) / 100

	if s == 0 {
		// Achromatic (grey).
		v := clampChannel(l * 255)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToChannel(p, q, h+120)
	g := hueToChannel(p, q, h)
	b := hueToChannel(p, q, h-120)

	return RGB{
		R: clampChannel(r * 255),
		G: clampChannel(g * 255),
		B: clampChannel(b * 255),
	}
}

// hueToChannel is a helper for HSL to RGB conversion. t is in degrees.
func hueToChannel(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// Lighten raises the lightness of a colour by amount percentage points.
func Lighten(c RGB, amount float64) RGB {
	h, s, l := c.ToHSL()
	return FromHSL(h, s, l+amount)
}

// Darken lowers the lightness of a colour by amount percentage points.
func Darken(c RGB, amount float64) RGB {
	h, s, l := c.ToHSL()
	return FromHSL(h, s, l-amount)
}

// Saturate raises the saturation of a colour by amount percentage points.
func Saturate(c RGB, amount float64) RGB {
	h, s, l := c.ToHSL()
	return FromHSL(h, s+amount, l)
}

// Desaturate lowers the saturation of a colour by amount percentage points.
func Desaturate(c RGB, amount float64) RGB {
	h, s, l := c.ToHSL()
	return FromHSL(h, s-amount, l)
}

// Blend linearly interpolates between a and b per channel in RGB space.
// factor=0 returns a, factor=1 returns b. Values outside [0, 1]
// extrapolate; callers are responsible for sane ranges. Channels are
// clamped to the byte range after interpolation.
func Blend(a, b RGB, factor float64) RGB {
	return RGB{
		R: clampChannel(float64(a.R) + (float64(b.R)-float64(a.R))*factor),
		G: clampChannel(float64(a.G) + (float64(b.G)-float64(a.G))*factor),
		B: clampChannel(float64(a.B) + (float64(b.B)-float64(a.B))*factor),
	}
}

// Distance returns the Euclidean distance between two colours in RGB
// space. This is a clustering metric, not a perceptual one.
func Distance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// clampPct clamps a percentage value to [0, 100].
func clampPct(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// clampChannel rounds a channel value to the nearest integer and clamps
// it to [0, 255].
func clampChannel(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}
