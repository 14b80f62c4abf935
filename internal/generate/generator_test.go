package generate

import (
	"strings"
	"testing"
	"text/template"

	"github.com/huetint/huetint/internal/colour"
	"github.com/huetint/huetint/internal/palette"
)

// fakeGenerator is a minimal Generator for registry tests.
type fakeGenerator struct {
	name  string
	files map[string][]byte
}

func (f *fakeGenerator) Name() string        { return f.name }
func (f *fakeGenerator) Description() string { return "fake " + f.name }
func (f *fakeGenerator) Generate(p *palette.Palette, meta Meta) (map[string][]byte, error) {
	return f.files, nil
}

func testPalette() *palette.Palette {
	return palette.Derive(colour.RGB{R: 0xc4, G: 0x1e, B: 0x3a}, "/tmp/wall.png")
}

func testMeta() Meta {
	return Meta{ThemeName: "Nightfall", Wallpaper: "/tmp/wall.png", AccentName: palette.AccentRed}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeGenerator{name: "beta"})
	r.Register(&fakeGenerator{name: "alpha"})

	if got := r.List(); len(got) != 2 || got[0] != "alpha" || got[1] != "beta" {
		t.Errorf("List() = %v, want [alpha beta]", got)
	}

	if _, ok := r.Get("alpha"); !ok {
		t.Error("Get(alpha) not found")
	}
	if _, ok := r.Get("gamma"); ok {
		t.Error("Get(gamma) found, want missing")
	}

	all := r.All()
	if len(all) != 2 || all[0].Name() != "alpha" {
		t.Errorf("All() order wrong: %v", all)
	}
}

func TestGenerateAll(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeGenerator{name: "a", files: map[string][]byte{"a/one.conf": []byte("1")}})
	r.Register(&fakeGenerator{name: "b", files: map[string][]byte{"b/two.conf": []byte("2")}})

	t.Run("all generators", func(t *testing.T) {
		files, err := r.GenerateAll(testPalette(), testMeta(), nil)
		if err != nil {
			t.Fatalf("GenerateAll() error: %v", err)
		}
		if len(files) != 2 {
			t.Errorf("GenerateAll() produced %d files, want 2", len(files))
		}
	})

	t.Run("selected subset", func(t *testing.T) {
		files, err := r.GenerateAll(testPalette(), testMeta(), []string{"b"})
		if err != nil {
			t.Fatalf("GenerateAll() error: %v", err)
		}
		if len(files) != 1 {
			t.Fatalf("GenerateAll() produced %d files, want 1", len(files))
		}
		if _, ok := files["b/two.conf"]; !ok {
			t.Error("selected generator output missing")
		}
	})

	t.Run("unknown generator", func(t *testing.T) {
		if _, err := r.GenerateAll(testPalette(), testMeta(), []string{"nope"}); err == nil {
			t.Error("GenerateAll() with unknown name succeeded, want error")
		}
	})
}

func TestNewData(t *testing.T) {
	p := testPalette()
	data := NewData(p, testMeta())

	if data.Name != "Nightfall" {
		t.Errorf("Name = %q, want Nightfall", data.Name)
	}
	if data.Accent != "red" {
		t.Errorf("Accent = %q, want red", data.Accent)
	}
	if data.C["accent"] != p.Accent.Hex() {
		t.Errorf("C[accent] = %q, want %q", data.C["accent"], p.Accent.Hex())
	}
	for _, role := range palette.RoleNames() {
		if _, ok := data.C[role]; !ok {
			t.Errorf("C missing role %q", role)
		}
	}
}

func TestFuncs(t *testing.T) {
	render := func(t *testing.T, text string) string {
		t.Helper()
		tmpl, err := template.New("t").Funcs(Funcs()).Parse(text)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		var sb strings.Builder
		if err := tmpl.Execute(&sb, nil); err != nil {
			t.Fatalf("execute: %v", err)
		}
		return sb.String()
	}

	tests := []struct {
		name, tmpl, want string
	}{
		{"noHash", `{{noHash "#c41e3a"}}`, "c41e3a"},
		{"alpha", `{{alpha "#c41e3a" "80"}}`, "#c41e3a80"},
		{"rgb", `{{rgb "#c41e3a"}}`, "196, 30, 58"},
		{"toUpper", `{{toUpper "#c41e3a"}}`, "#C41E3A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.tmpl); got != tt.want {
				t.Errorf("rendered %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("rgb rejects malformed hex", func(t *testing.T) {
		tmpl, err := template.New("t").Funcs(Funcs()).Parse(`{{rgb "bogus"}}`)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if err := tmpl.Execute(&strings.Builder{}, nil); err == nil {
			t.Error("execute succeeded, want error")
		}
	})
}
