package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huetint/huetint/internal/colour"
)

func TestFormatColours(t *testing.T) {
	colours := []colour.RGB{
		{R: 0xc4, G: 0x1e, B: 0x3a},
		{R: 0x3a, G: 0x6e, B: 0xa5},
	}

	t.Run("hex", func(t *testing.T) {
		out, err := formatColours(colours, "hex", false)
		if err != nil {
			t.Fatalf("formatColours() error: %v", err)
		}
		want := "#c41e3a\n#3a6ea5\n"
		if out != want {
			t.Errorf("hex output = %q, want %q", out, want)
		}
	})

	t.Run("rgb", func(t *testing.T) {
		out, err := formatColours(colours, "rgb", false)
		if err != nil {
			t.Fatalf("formatColours() error: %v", err)
		}
		if !strings.Contains(out, "rgb(196, 30, 58)") {
			t.Errorf("rgb output missing first colour: %q", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		out, err := formatColours(colours, "json", false)
		if err != nil {
			t.Fatalf("formatColours() error: %v", err)
		}
		var decoded struct {
			Count   int `json:"count"`
			Colours []struct {
				Hex string     `json:"hex"`
				RGB colour.RGB `json:"rgb"`
			} `json:"colours"`
		}
		if err := json.Unmarshal([]byte(out), &decoded); err != nil {
			t.Fatalf("json output invalid: %v", err)
		}
		if decoded.Count != 2 || len(decoded.Colours) != 2 {
			t.Fatalf("json output count = %d with %d colours, want 2", decoded.Count, len(decoded.Colours))
		}
		if decoded.Colours[0].Hex != "#c41e3a" {
			t.Errorf("first colour hex = %q, want #c41e3a", decoded.Colours[0].Hex)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		if _, err := formatColours(colours, "yaml", false); err == nil {
			t.Error("formatColours(yaml) succeeded, want error")
		}
	})
}

func TestWriteThemeFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "theme")
	files := map[string][]byte{
		"kitty/theme.conf":    []byte("background #000000"),
		"gtk/gtk-3.0/gtk.css": []byte("/* css */"),
	}

	if err := writeThemeFiles(dir, files); err != nil {
		t.Fatalf("writeThemeFiles() error: %v", err)
	}

	for rel, want := range files {
		got, err := os.ReadFile(filepath.Join(dir, rel))
		if err != nil {
			t.Errorf("missing written file %s: %v", rel, err)
			continue
		}
		if string(got) != string(want) {
			t.Errorf("%s content = %q, want %q", rel, got, want)
		}
	}
}
