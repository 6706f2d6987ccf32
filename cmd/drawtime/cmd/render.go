package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/max99x/drawtime/pkg/parse"
	"github.com/max99x/drawtime/pkg/render"
	"github.com/max99x/drawtime/pkg/surface"
)

var renderCmd = &cobra.Command{
	Use:   "render <source_file> <output_file>",
	Short: "Render a timing diagram to an image file",
	Long: `Parse a timing diagram description and render it to an image.

The output format is picked from the output file's extension: .png for a
raster image, .svg for a vector image. An existing output file is
silently overwritten.`,
	Args: cobra.ExactArgs(2),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	source, output := args[0], args[1]
	log := logger()

	d, err := parse.ParseFile(source)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", source, err)
	}
	log.Debug("parsed diagram",
		"signals", len(d.Signals),
		"window_start", d.Time.Start,
		"window_end", d.Time.End)

	metrics, err := render.NewFontMetrics()
	if err != nil {
		return err
	}
	canvas, err := render.Draw(d, metrics)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	log.Debug("rendered canvas",
		"width", canvas.Width,
		"height", canvas.Height,
		"ops", len(canvas.Ops))

	if err := surface.WriteFile(output, canvas); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%dx%d)\n", output, canvas.Width, canvas.Height)
	return nil
}
