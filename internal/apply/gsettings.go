package apply

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/huetint/huetint/internal/palette"
)

// Runner executes external commands. The indirection exists so tests
// can observe the gsettings calls without a desktop session.
type Runner interface {
	Run(name string, args ...string) ([]byte, error)
}

// execRunner runs commands via os/exec.
type execRunner struct{}

func (execRunner) Run(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output() // #nosec G204 - fixed binary names, theme-derived values
}

// Setting is one desktop property write, addressed by schema and key.
// The core only produces the value strings; this package performs the
// actual gsettings calls.
type Setting struct {
	Schema string
	Key    string
	Value  string
}

// GnomeSettings builds the desktop property writes for a theme: GTK
// theme name, dark colour scheme, the accent-colour option matching the
// palette accent, and the wallpaper URIs.
func GnomeSettings(p *palette.Palette, themeName, wallpaper string) []Setting {
	settings := []Setting{
		{"org.gnome.desktop.interface", "gtk-theme", themeName},
		{"org.gnome.desktop.interface", "color-scheme", "prefer-dark"},
		{"org.gnome.desktop.interface", "accent-color", palette.GnomeAccentName(p.Accent).String()},
		{"org.gnome.shell.extensions.user-theme", "name", themeName},
	}

	if wallpaper != "" {
		uri := wallpaper
		if !strings.HasPrefix(uri, "file://") {
			uri = "file://" + uri
		}
		settings = append(settings,
			Setting{"org.gnome.desktop.background", "picture-uri-dark", uri},
			Setting{"org.gnome.desktop.background", "picture-uri", uri},
		)
	}

	return settings
}

// applyGnomeSettings writes every setting, logging and continuing on
// individual failures (a schema may not be installed).
func (a *Applier) applyGnomeSettings(p *palette.Palette, themeName, wallpaper string) error {
	settings := GnomeSettings(p, themeName, wallpaper)

	failures := 0
	for _, s := range settings {
		if _, err := a.runner.Run("gsettings", "set", s.Schema, s.Key, s.Value); err != nil {
			failures++
			a.log.Debug("could not set desktop property",
				"schema", s.Schema, "key", s.Key, "error", err)
			continue
		}
		a.log.Debug("set desktop property", "schema", s.Schema, "key", s.Key, "value", s.Value)
	}

	if failures == len(settings) {
		return fmt.Errorf("no desktop properties could be set (is gsettings available?)")
	}
	return nil
}

// DetectWallpaper asks the desktop for the current wallpaper path via
// gsettings, preferring the dark-mode wallpaper. Returns an empty
// string when no wallpaper could be detected.
func DetectWallpaper(runner Runner) string {
	if runner == nil {
		runner = &execRunner{}
	}
	for _, key := range []string{"picture-uri-dark", "picture-uri"} {
		out, err := runner.Run("gsettings", "get", "org.gnome.desktop.background", key)
		if err != nil {
			continue
		}
		uri := strings.Trim(strings.TrimSpace(string(out)), "'\"")
		uri = strings.TrimPrefix(uri, "file://")
		if uri == "" {
			continue
		}
		if _, err := os.Stat(uri); err == nil {
			return uri
		}
	}
	return ""
}
