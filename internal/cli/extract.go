package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/huetint/huetint/internal/colour"
	"github.com/huetint/huetint/internal/image"
)

var (
	// Extract command flags.
	extractColours int
	extractFormat  string
	extractOutput  string
	extractPreview bool
)

// extractCmd represents the extract command.
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract dominant colours from an image",
	Long: `Extract the dominant colours from an image using deterministic k-means
clustering. The image is downsampled to a fixed size first, so the cost
is independent of the source resolution, and the same image always
yields the same ordered colour list.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract 8 dominant colours (default)
  huetint extract wallpaper.jpg

  # Extract 16 colours as JSON
  huetint extract --colours 16 --format json wallpaper.png

  # Show terminal swatch previews
  huetint extract --preview wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", colour.DefaultColourCount, "number of colours to extract (1-256)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().BoolVar(&extractPreview, "preview", false, "show colour previews in terminal")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Loading image: %s\n", imagePath)
	}

	loader := image.NewFileLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	if verbose {
		bounds := img.Bounds()
		fmt.Fprintf(os.Stderr, "Image loaded: %dx%d, downsampling to %dx%d\n",
			bounds.Dx(), bounds.Dy(), image.ClusterSize, image.ClusterSize)
	}

	resized := image.ResizeForClustering(img)

	extractor := colour.NewKMeansExtractor()
	colours, err := extractor.Extract(resized, extractColours)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Extracted %d dominant colours\n", len(colours))
	}

	output, err := formatColours(colours, extractFormat, extractPreview && stdoutIsTerminal())
	if err != nil {
		return err
	}

	if extractOutput != "" {
		if err := os.WriteFile(extractOutput, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote colours to %s\n", extractOutput)
		}
		return nil
	}

	fmt.Print(output)
	return nil
}

// colourJSON is one colour in JSON output format.
type colourJSON struct {
	Hex string     `json:"hex"`
	RGB colour.RGB `json:"rgb"`
}

// formatColours renders the extracted colours in the requested format.
func formatColours(colours []colour.RGB, format string, preview bool) (string, error) {
	switch format {
	case "hex":
		output := ""
		for _, c := range colours {
			if preview {
				output += swatch(c) + " "
			}
			output += c.Hex() + "\n"
		}
		return output, nil
	case "rgb":
		output := ""
		for _, c := range colours {
			if preview {
				output += swatch(c) + " "
			}
			output += c.String() + "\n"
		}
		return output, nil
	case "json":
		list := make([]colourJSON, len(colours))
		for i, c := range colours {
			list[i] = colourJSON{Hex: c.Hex(), RGB: c}
		}
		b, err := json.MarshalIndent(map[string]any{
			"count":   len(list),
			"colours": list,
		}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal colours: %w", err)
		}
		return string(b) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}
