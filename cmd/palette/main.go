// Command palette extracts the dominant colors from an image and renders
// them as a console summary and a visual HTML report.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mdresser/devtools/internal/palette"
	"github.com/mdresser/devtools/internal/pretty"
)

var Version = "unknown"

const defaultNumColors = 5

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var outFile string
	var quality int
	var verbose bool

	cmd := &cobra.Command{
		Use:     "palette <image_path> [num_colors]",
		Short:   "Extract a color palette from an image",
		Version: Version,
		Long: `palette extracts the dominant colors from an image, names each one,
and writes a visual HTML report alongside a console summary.`,
		Example: `  palette photo.jpg
  palette photo.jpg 8 --out colors.html`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(verbose)

			numColors := defaultNumColors
			if len(args) > 1 {
				n, err := strconv.Atoi(args[1])
				if err != nil || n < 1 {
					return fmt.Errorf(
						"num_colors must be a positive integer, got %q",
						args[1],
					)
				}
				numColors = n
			}

			return run(args[0], numColors, quality, outFile)
		},
	}

	cmd.Flags().StringVarP(
		&outFile,
		"out",
		"o",
		"palette.html",
		"Output HTML file",
	)
	cmd.Flags().IntVarP(
		&quality,
		"quality",
		"q",
		1,
		"Pixel sampling stride; higher is faster but less accurate",
	)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func run(imagePath string, numColors int, quality int, outFile string) error {
	fmt.Printf("Extracting %d dominant colors from %s...\n",
		numColors,
		imagePath,
	)

	colors, err := palette.Extract(imagePath, numColors, quality)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Dominant Colors:")
	writeSummary(os.Stdout, colors)

	if err := palette.WriteHTML(colors, outFile); err != nil {
		return err
	}

	fmt.Printf("\nPalette saved to %s\n", outFile)
	fmt.Printf("Open %s in your browser to view the palette!\n", outFile)
	return nil
}

func writeSummary(f *os.File, colors []palette.Dominant) {
	showSwatch := pretty.IsTerminal(f)

	for i, c := range colors {
		swatch := ""
		if showSwatch {
			cell := color.RGB(int(c.Color.R), int(c.Color.G), int(c.Color.B))
			swatch = cell.Sprint("██") + " "
		}

		fmt.Fprintf(f, "  %d. %s%s: %s - %s\n",
			i+1,
			swatch,
			c.Color.Name(),
			c.Color.Hex(),
			c.Color.String(),
		)
	}
}

func configureLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{
			Level: level,
		},
	)
	slog.SetDefault(slog.New(handler))
}
