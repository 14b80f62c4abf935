package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/huetint/huetint/internal/apply"
	"github.com/huetint/huetint/internal/colour"
	"github.com/huetint/huetint/internal/generate"
	"github.com/huetint/huetint/internal/generate/alacritty"
	"github.com/huetint/huetint/internal/generate/chrome"
	"github.com/huetint/huetint/internal/generate/fastfetch"
	"github.com/huetint/huetint/internal/generate/gtk"
	"github.com/huetint/huetint/internal/generate/kitty"
	"github.com/huetint/huetint/internal/generate/opencode"
	"github.com/huetint/huetint/internal/generate/vscode"
	"github.com/huetint/huetint/internal/image"
	"github.com/huetint/huetint/internal/palette"
)

var (
	// Generate command flags.
	generateName       string
	generateAccent     string
	generateOutput     string
	generateGenerators []string
	generateApply      bool
	generateReload     bool
	generateArchive    string
	generateSkip       []string
	generateNoPreview  bool
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate [wallpaper]",
	Short: "Generate a complete theme from a wallpaper",
	Long: `Generate a complete theme from a wallpaper image.

The dominant colours are extracted from the wallpaper, the best accent
candidate is selected automatically (or overridden with --accent), a
full palette is derived from the accent, and every selected generator
renders its configuration files into the output directory.

When no wallpaper is given, the current GNOME wallpaper is detected via
gsettings.

Examples:
  # Generate all theme files from a wallpaper
  huetint generate wallpaper.jpg --name Nightfall

  # Use the current GNOME wallpaper and apply system-wide
  huetint generate --name Nightfall --apply

  # Force a specific accent colour, only terminal themes
  huetint generate wallpaper.jpg --accent '#c41e3a' --generators kitty,alacritty

  # Pack the generated theme for sharing
  huetint generate wallpaper.jpg --archive nightfall.tar.xz`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateName, "name", "n", "MyTheme", "theme name")
	generateCmd.Flags().StringVarP(&generateAccent, "accent", "a", "", "override accent colour as hex (e.g. #c41e3a)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output directory (default: ~/<name>)")
	generateCmd.Flags().StringSliceVarP(&generateGenerators, "generators", "g", nil, "generators to run (default: all)")
	generateCmd.Flags().BoolVar(&generateApply, "apply", false, "apply the theme system-wide after generating")
	generateCmd.Flags().BoolVar(&generateReload, "reload", true, "reload running terminals when applying")
	generateCmd.Flags().StringVar(&generateArchive, "archive", "", "pack the generated theme into a .tar.xz archive")
	generateCmd.Flags().StringSliceVar(&generateSkip, "skip", nil, "apply steps to skip (e.g. gnome-settings)")
	generateCmd.Flags().BoolVar(&generateNoPreview, "no-preview", false, "suppress the palette preview")
}

// defaultRegistry returns the registry with every built-in generator.
func defaultRegistry() *generate.Registry {
	r := generate.NewRegistry()
	r.Register(gtk.New())
	r.Register(kitty.New())
	r.Register(alacritty.New())
	r.Register(vscode.New())
	r.Register(opencode.New())
	r.Register(chrome.New())
	r.Register(fastfetch.New())
	return r
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	verbose, _ := cmd.Flags().GetBool("verbose")

	// Resolve the wallpaper: explicit argument or desktop detection.
	var wallpaper string
	if len(args) == 1 {
		wallpaper = args[0]
	} else {
		wallpaper = apply.DetectWallpaper(nil)
		if wallpaper == "" {
			return fmt.Errorf("no wallpaper given and desktop wallpaper detection failed")
		}
		fmt.Fprintf(os.Stderr, "Detected wallpaper: %s\n", wallpaper)
	}

	abs, err := filepath.Abs(wallpaper)
	if err != nil {
		return fmt.Errorf("failed to resolve wallpaper path: %w", err)
	}
	wallpaper = abs

	if err := image.ValidateImagePath(wallpaper); err != nil {
		return fmt.Errorf("invalid wallpaper: %w", err)
	}

	// Extract dominant colours.
	loader := image.NewFileLoader()
	img, err := loader.Load(wallpaper)
	if err != nil {
		return fmt.Errorf("failed to load wallpaper: %w", err)
	}

	extractor := colour.NewKMeansExtractor()
	dominant, err := extractor.Extract(image.ResizeForClustering(img), colour.DefaultColourCount)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Extracted %d dominant colours\n", len(dominant))
	}
	if !generateNoPreview && stdoutIsTerminal() && len(dominant) > 0 {
		fmt.Println("Dominant colours:")
		printSwatchLine(dominant)
		fmt.Println()
	}

	// Choose the accent: user override wins, validated here at the
	// boundary; otherwise score the extracted candidates.
	var accent colour.RGB
	if generateAccent != "" {
		accent, err = colour.ParseHex(generateAccent)
		if err != nil {
			var perr *colour.ParseError
			if errors.As(err, &perr) {
				return fmt.Errorf("invalid --accent value: %w", err)
			}
			return err
		}
	} else {
		accent = colour.PickAccent(dominant)
	}

	accentName := palette.GnomeAccentName(accent)
	if verbose {
		h, s, l := accent.ToHSL()
		fmt.Fprintf(os.Stderr, "Accent: %s (hue=%.0f sat=%.0f light=%.0f, GNOME: %s)\n",
			accent.Hex(), h, s, l, accentName)
	}

	// Derive the palette and render every selected generator.
	pal := palette.Derive(accent, wallpaper)
	if !generateNoPreview && stdoutIsTerminal() {
		printPalettePreview(pal)
	}

	meta := generate.Meta{
		ThemeName:  generateName,
		Wallpaper:  wallpaper,
		AccentName: palette.GnomeAccentName(pal.Accent),
	}

	files, err := defaultRegistry().GenerateAll(pal, meta, generateGenerators)
	if err != nil {
		return err
	}

	outputDir := generateOutput
	if outputDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve home directory: %w", err)
		}
		outputDir = filepath.Join(home, generateName)
	}

	if err := writeThemeFiles(outputDir, files); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Generated %d files in %s\n", len(files), outputDir)

	if generateArchive != "" {
		if err := apply.Archive(outputDir, generateArchive); err != nil {
			return fmt.Errorf("failed to archive theme: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Packed theme archive: %s\n", generateArchive)
	}

	if generateApply {
		applier, err := apply.New(logger)
		if err != nil {
			return err
		}
		err = applier.Apply(pal, apply.Options{
			ThemeDir:        outputDir,
			ThemeName:       generateName,
			Wallpaper:       wallpaper,
			Skip:            generateSkip,
			ReloadTerminals: generateReload,
		})
		if err != nil {
			return fmt.Errorf("failed to apply theme: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Theme applied. Some changes may require logging out and back in.")
	}

	return nil
}

// writeThemeFiles writes the generated files under outputDir, creating
// directories as needed.
func writeThemeFiles(outputDir string, files map[string][]byte) error {
	for rel, content := range files {
		path := filepath.Join(outputDir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

// generatorsCmd lists the available theme generators.
var generatorsCmd = &cobra.Command{
	Use:   "generators",
	Short: "List available theme generators",
	Run: func(cmd *cobra.Command, args []string) {
		registry := defaultRegistry()
		for _, g := range registry.All() {
			fmt.Printf("%-12s %s\n", g.Name(), g.Description())
		}
	},
}
