package fastfetch

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/huetint/huetint/internal/colour"
	"github.com/huetint/huetint/internal/generate"
	"github.com/huetint/huetint/internal/palette"
)

func TestGenerate(t *testing.T) {
	p := palette.Derive(colour.RGB{R: 0xc4, G: 0x1e, B: 0x3a}, "/tmp/wall.png")
	meta := generate.Meta{ThemeName: "Nightfall", Wallpaper: "/tmp/wall.png", AccentName: palette.AccentRed}

	files, err := New().Generate(p, meta)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	conf, ok := files["fastfetch/config.jsonc"]
	if !ok {
		t.Fatal("config.jsonc missing")
	}
	text := string(conf)

	if !strings.HasPrefix(text, "// Nightfall") {
		t.Error("config.jsonc missing theme name header comment")
	}

	// Aside from the leading comment line the config is plain JSON.
	body := text[strings.Index(text, "\n")+1:]
	var v map[string]any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		t.Fatalf("config body is not valid JSON: %v", err)
	}
	if _, ok := v["modules"]; !ok {
		t.Error("config missing modules list")
	}
}
