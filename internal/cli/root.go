// Package cli provides the command-line interface for Huetint.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/huetint/huetint/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "huetint",
	Short: "Generate system-wide themes from any wallpaper",
	Long: `Huetint derives a complete colour palette from a wallpaper image and
renders it into theme files for GTK, terminal emulators, editors and
browsers.

The dominant colours are extracted with deterministic k-means
clustering, the best accent candidate is chosen by suitability scoring,
and the full palette (backgrounds, borders, text tiers, semantic
colours and a 16-slot terminal palette) is derived from that single
accent.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute runs the root command. It is called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")
	rootCmd.SetGlobalNormalizationFunc(normalizeFlags)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(generatorsCmd)
}

// normalizeFlags accepts American spellings of flag names.
func normalizeFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "colors" {
		name = "colours"
	}
	return pflag.NormalizedName(name)
}

// newLogger builds the hclog logger used by the generate/apply engine,
// honouring the global verbosity flags.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Info
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = hclog.Debug
	}
	if q, _ := cmd.Flags().GetBool("quiet"); q {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "huetint",
		Level:  level,
		Output: os.Stderr,
	})
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
