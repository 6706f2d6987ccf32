package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "drawtime",
	Short: "DrawTime - render timing diagrams from text descriptions",
	Long: `DrawTime converts plain-text timing diagram descriptions into 2D charts.

A description is a sequence of blocks: a time block (window and delay), a
style block (size, colors, fonts) and one signal block per waveform row
(line, bus or clock).

Examples:
  drawtime render diagram.time diagram.png   # Render to a PNG image
  drawtime render diagram.time diagram.svg   # Render to an SVG image
  drawtime check diagram.time                # Validate without rendering
  drawtime info diagram.time                 # Show a diagram summary`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// logger returns a slog logger honoring the --verbose flag
func logger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
