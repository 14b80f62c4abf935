package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/huetint/huetint/internal/colour"
	"github.com/huetint/huetint/internal/palette"
)

// stdoutIsTerminal reports whether stdout is an interactive terminal;
// swatch previews are suppressed when output is piped.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// swatch returns a truecolour block rendering the given colour.
func swatch(c colour.RGB) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", c.R, c.G, c.B)
}

// printSwatchLine prints a row of colour swatches followed by their hex
// values.
func printSwatchLine(colours []colour.RGB) {
	line := "  "
	for _, c := range colours {
		line += swatch(c) + " "
	}
	fmt.Println(line)
	line = "  "
	for _, c := range colours {
		line += c.Hex() + " "
	}
	fmt.Println(line)
}

// printPalettePreview prints a compact preview of the derived palette.
func printPalettePreview(p *palette.Palette) {
	rows := []struct {
		label string
		c     colour.RGB
	}{
		{"Deepest BG", p.BgDeepest},
		{"Main BG", p.BgMain},
		{"Surface", p.BgSurface},
		{"Elevated", p.BgElevated},
		{"Border", p.Border},
		{"Accent", p.Accent},
		{"Accent Hover", p.AccentHover},
		{"Accent Light", p.AccentLight},
		{"Accent Soft", p.AccentSoft},
		{"Rose", p.AccentRose},
		{"Text", p.Text},
		{"Text Muted", p.TextMuted},
		{"Green", p.Green},
		{"Blue", p.Blue},
		{"Magenta", p.Magenta},
		{"Cyan", p.Cyan},
	}

	fmt.Println("Generated palette:")
	for _, row := range rows {
		marker := ""
		if row.label == "Accent" {
			marker = "  <-- accent"
		}
		fmt.Printf("  %s %s  %s%s\n", swatch(row.c), row.c.Hex(), row.label, marker)
	}
	fmt.Println()

	// 16-colour terminal strip, normal row then bright row.
	normal := []colour.RGB{
		p.AnsiBlack, p.AnsiRed, p.AnsiGreen, p.AnsiYellow,
		p.AnsiBlue, p.AnsiMagenta, p.AnsiCyan, p.AnsiWhite,
	}
	bright := []colour.RGB{
		p.AnsiBrightBlack, p.AnsiBrightRed, p.AnsiBrightGreen, p.AnsiBrightYellow,
		p.AnsiBrightBlue, p.AnsiBrightMagenta, p.AnsiBrightCyan, p.AnsiBrightWhite,
	}

	fmt.Println("Terminal colours:")
	line := "  "
	for _, c := range normal {
		line += swatch(c)
	}
	fmt.Println(line + "  normal")
	line = "  "
	for _, c := range bright {
		line += swatch(c)
	}
	fmt.Println(line + "  bright")
	fmt.Println()
}
