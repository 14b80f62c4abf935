// Package apply installs a generated theme system-wide: GTK theme
// files under ~/.themes, config symlinks, GNOME desktop settings and
// terminal reloads. Each step is independent; a failing step is logged
// and skipped rather than aborting the whole apply.
package apply

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/huetint/huetint/internal/palette"
)

// Options configures a theme apply run.
type Options struct {
	// ThemeDir is the directory holding the generated theme files.
	ThemeDir string

	// ThemeName is the user-facing theme name.
	ThemeName string

	// Wallpaper is the absolute path of the wallpaper image.
	Wallpaper string

	// Skip lists step names to leave out (e.g. "gnome-settings").
	Skip []string

	// ReloadTerminals signals running terminal emulators to pick up the
	// new colours.
	ReloadTerminals bool
}

// Applier installs generated themes. The zero value is not usable;
// construct with New.
type Applier struct {
	log    hclog.Logger
	runner Runner
	home   string
}

// New creates an Applier. A nil logger disables logging.
func New(logger hclog.Logger) (*Applier, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return &Applier{
		log:    logger.Named("apply"),
		runner: &execRunner{},
		home:   home,
	}, nil
}

// step is one independent apply action.
type step struct {
	name string
	run  func() error
}

// Apply installs the theme system-wide. It returns an error only when
// every step failed; individual failures are logged and skipped.
func (a *Applier) Apply(p *palette.Palette, opts Options) error {
	steps := []step{
		{"gtk-theme", func() error { return a.installGtkTheme(opts.ThemeDir, opts.ThemeName) }},
		{"gnome-settings", func() error { return a.applyGnomeSettings(p, opts.ThemeName, opts.Wallpaper) }},
		{"kitty", func() error { return a.installKitty(opts.ThemeDir, opts.ReloadTerminals) }},
		{"alacritty", func() error { return a.installAlacritty(opts.ThemeDir) }},
		{"fastfetch", func() error { return a.installFastfetch(opts.ThemeDir) }},
	}

	skipped := make(map[string]bool, len(opts.Skip))
	for _, name := range opts.Skip {
		skipped[name] = true
	}

	failures := 0
	ran := 0
	for _, s := range steps {
		if skipped[s.name] {
			a.log.Info("skipping step", "step", s.name)
			continue
		}
		ran++
		if err := s.run(); err != nil {
			failures++
			a.log.Warn("apply step failed", "step", s.name, "error", err)
			continue
		}
		a.log.Info("apply step complete", "step", s.name)
	}

	if ran > 0 && failures == ran {
		return fmt.Errorf("all %d apply steps failed", ran)
	}
	return nil
}

// installGtkTheme copies the generated GTK files into ~/.themes/<name>
// and symlinks the per-user gtk.css config locations at them.
func (a *Applier) installGtkTheme(themeDir, name string) error {
	themeRoot := filepath.Join(a.home, ".themes", name)

	copies := []struct{ src, dst string }{
		{filepath.Join(themeDir, "gtk", "gtk-3.0", "gtk.css"), filepath.Join(themeRoot, "gtk-3.0", "gtk.css")},
		{filepath.Join(themeDir, "gtk", "gtk-4.0", "gtk.css"), filepath.Join(themeRoot, "gtk-4.0", "gtk.css")},
		{filepath.Join(themeDir, "gtk", "index.theme"), filepath.Join(themeRoot, "index.theme")},
	}
	for _, c := range copies {
		if err := copyFile(c.src, c.dst); err != nil {
			return err
		}
	}

	links := []struct{ target, link string }{
		{filepath.Join(themeRoot, "gtk-3.0", "gtk.css"), filepath.Join(a.home, ".config", "gtk-3.0", "gtk.css")},
		{filepath.Join(themeRoot, "gtk-4.0", "gtk.css"), filepath.Join(a.home, ".config", "gtk-4.0", "gtk.css")},
	}
	for _, l := range links {
		if err := symlink(l.target, l.link); err != nil {
			return err
		}
		a.log.Debug("symlinked gtk config", "link", l.link, "target", l.target)
	}
	return nil
}

// installKitty copies the kitty theme into ~/.config/kitty and
// optionally reloads running instances.
func (a *Applier) installKitty(themeDir string, reload bool) error {
	src := filepath.Join(themeDir, "kitty", "theme.conf")
	dst := filepath.Join(a.home, ".config", "kitty", "huetint-theme.conf")
	if err := copyFile(src, dst); err != nil {
		return err
	}
	if reload {
		if err := a.reloadKitty(); err != nil {
			// Reload failure is advisory; the theme file is installed.
			a.log.Warn("kitty reload failed", "error", err)
		}
	}
	return nil
}

// installAlacritty copies the alacritty colour scheme into
// ~/.config/alacritty/themes.
func (a *Applier) installAlacritty(themeDir string) error {
	src := filepath.Join(themeDir, "alacritty", "theme.toml")
	dst := filepath.Join(a.home, ".config", "alacritty", "themes", "huetint.toml")
	return copyFile(src, dst)
}

// installFastfetch copies the fastfetch config into ~/.config/fastfetch.
func (a *Applier) installFastfetch(themeDir string) error {
	src := filepath.Join(themeDir, "fastfetch", "config.jsonc")
	dst := filepath.Join(a.home, ".config", "fastfetch", "config.jsonc")
	return copyFile(src, dst)
}

// copyFile copies src to dst, creating parent directories as needed.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src) // #nosec G304 - paths come from the generated theme dir
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}

// symlink creates a symlink, replacing any existing file or link at the
// destination.
func symlink(target, link string) error {
	if err := os.MkdirAll(filepath.Dir(link), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(link), err)
	}
	if _, err := os.Lstat(link); err == nil {
		if err := os.Remove(link); err != nil {
			return fmt.Errorf("failed to remove existing %s: %w", link, err)
		}
	}
	if err := os.Symlink(target, link); err != nil {
		return fmt.Errorf("failed to symlink %s -> %s: %w", link, target, err)
	}
	return nil
}
