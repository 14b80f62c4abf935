package colour

import (
	"errors"
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want string
	}{
		{"black", RGB{0, 0, 0}, "#000000"},
		{"white", RGB{255, 255, 255}, "#ffffff"},
		{"crimson", RGB{0xc4, 0x1e, 0x3a}, "#c41e3a"},
		{"single digit channels", RGB{1, 2, 3}, "#010203"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	c := RGB{R: 196, G: 30, B: 58}
	want := "rgb(196, 30, 58)"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{"with hash", "#c41e3a", RGB{0xc4, 0x1e, 0x3a}, false},
		{"without hash", "c41e3a", RGB{0xc4, 0x1e, 0x3a}, false},
		{"uppercase", "#C41E3A", RGB{0xc4, 0x1e, 0x3a}, false},
		{"surrounding whitespace", "  #c41e3a  ", RGB{0xc4, 0x1e, 0x3a}, false},
		{"black", "#000000", RGB{0, 0, 0}, false},
		{"white", "#ffffff", RGB{255, 255, 255}, false},
		{"too short", "#fff", RGB{}, true},
		{"too long", "#c41e3a00", RGB{}, true},
		{"empty", "", RGB{}, true},
		{"non-hex digits", "#zzzzzz", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) succeeded, want error", tt.input)
				}
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Errorf("ParseHex(%q) error = %T, want *ParseError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := ParseHex("#fff")
	if err == nil {
		t.Fatal("expected error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %T, want *ParseError", err)
	}
	if perr.Input != "#fff" {
		t.Errorf("Input = %q, want %q", perr.Input, "#fff")
	}
}

func TestToHSL(t *testing.T) {
	tests := []struct {
		name    string
		c       RGB
		h, s, l float64
	}{
		{"black", RGB{0, 0, 0}, 0, 0, 0},
		{"white", RGB{255, 255, 255}, 0, 0, 100},
		{"mid grey", RGB{128, 128, 128}, 0, 0, 50.196},
		{"pure red", RGB{255, 0, 0}, 0, 100, 50},
		{"pure green", RGB{0, 255, 0}, 120, 100, 50},
		{"pure blue", RGB{0, 0, 255}, 240, 100, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := tt.c.ToHSL()
			if math.Abs(h-tt.h) > 0.01 || math.Abs(s-tt.s) > 0.01 || math.Abs(l-tt.l) > 0.01 {
				t.Errorf("ToHSL() = (%.3f, %.3f, %.3f), want (%.3f, %.3f, %.3f)",
					h, s, l, tt.h, tt.s, tt.l)
			}
		})
	}
}

func TestFromHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGB
	}{
		{"black", 0, 0, 0, RGB{0, 0, 0}},
		{"white", 0, 0, 100, RGB{255, 255, 255}},
		{"pure red", 0, 100, 50, RGB{255, 0, 0}},
		{"pure green", 120, 100, 50, RGB{0, 255, 0}},
		{"pure blue", 240, 100, 50, RGB{0, 0, 255}},
		{"hue wraps above 360", 480, 100, 50, RGB{0, 255, 0}},
		{"negative hue wraps", -240, 100, 50, RGB{0, 255, 0}},
		{"saturation clamps high", 0, 150, 50, RGB{255, 0, 0}},
		{"lightness clamps low", 0, 100, -10, RGB{0, 0, 0}},
		{"lightness clamps high", 0, 100, 110, RGB{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromHSL(tt.h, tt.s, tt.l); got != tt.want {
				t.Errorf("FromHSL(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

// TestHSLRoundTrip checks RGB -> HSL -> RGB stays within one unit per
// channel across a coarse grid of the colour cube.
func TestHSLRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				orig := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				got := FromHSL(orig.ToHSL())

				if absDiff(got.R, orig.R) > 1 || absDiff(got.G, orig.G) > 1 || absDiff(got.B, orig.B) > 1 {
					t.Fatalf("round trip %v -> %v drifts more than 1 per channel", orig, got)
				}
			}
		}
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func TestLightenDarken(t *testing.T) {
	c := RGB{100, 100, 100}

	lighter := Lighten(c, 20)
	_, _, origL := c.ToHSL()
	_, _, newL := lighter.ToHSL()
	if newL <= origL {
		t.Errorf("Lighten did not raise lightness: %.1f -> %.1f", origL, newL)
	}

	darker := Darken(c, 20)
	_, _, darkL := darker.ToHSL()
	if darkL >= origL {
		t.Errorf("Darken did not lower lightness: %.1f -> %.1f", origL, darkL)
	}

	// Clamped at the extremes.
	if got := Lighten(RGB{255, 255, 255}, 20); got != (RGB{255, 255, 255}) {
		t.Errorf("Lighten(white) = %v, want white", got)
	}
	if got := Darken(RGB{0, 0, 0}, 20); got != (RGB{0, 0, 0}) {
		t.Errorf("Darken(black) = %v, want black", got)
	}
}

func TestSaturateDesaturate(t *testing.T) {
	c := FromHSL(200, 50, 50)

	_, s0, _ := c.ToHSL()
	_, s1, _ := Saturate(c, 30).ToHSL()
	if s1 <= s0 {
		t.Errorf("Saturate did not raise saturation: %.1f -> %.1f", s0, s1)
	}

	_, s2, _ := Desaturate(c, 30).ToHSL()
	if s2 >= s0 {
		t.Errorf("Desaturate did not lower saturation: %.1f -> %.1f", s0, s2)
	}

	// Fully desaturated colour is grey.
	grey := Desaturate(c, 100)
	if grey.R != grey.G || grey.G != grey.B {
		t.Errorf("Desaturate(c, 100) = %v, want grey", grey)
	}
}

func TestBlend(t *testing.T) {
	a := RGB{0, 0, 0}
	b := RGB{255, 255, 255}

	tests := []struct {
		name   string
		factor float64
		want   RGB
	}{
		{"factor 0 is a", 0, a},
		{"factor 1 is b", 1, b},
		{"midpoint", 0.5, RGB{128, 128, 128}},
		{"extrapolate below clamps", -1, RGB{0, 0, 0}},
		{"extrapolate above clamps", 2, RGB{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(a, b, tt.factor); got != tt.want {
				t.Errorf("Blend(a, b, %v) = %v, want %v", tt.factor, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b RGB
		want float64
	}{
		{"identical", RGB{10, 20, 30}, RGB{10, 20, 30}, 0},
		{"black to white", RGB{0, 0, 0}, RGB{255, 255, 255}, 255 * math.Sqrt(3)},
		{"single channel", RGB{0, 0, 0}, RGB{3, 4, 0}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Symmetric.
			if got, rev := Distance(tt.a, tt.b), Distance(tt.b, tt.a); got != rev {
				t.Errorf("Distance not symmetric: %v vs %v", got, rev)
			}
		})
	}
}
