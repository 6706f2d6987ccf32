package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/max99x/drawtime/pkg/diagram"
	"github.com/max99x/drawtime/pkg/parse"
	"github.com/max99x/drawtime/pkg/timeline"
)

var infoCmd = &cobra.Command{
	Use:   "info <source_file>",
	Short: "Show timing diagram information",
	Long:  `Display a summary of a parsed timing diagram description.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	d, err := parse.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	fmt.Printf("Diagram: %s\n", args[0])
	fmt.Printf("Window: [%d, %d]", d.Time.Start, d.Time.End)
	if d.Time.HasStep {
		fmt.Printf(", step %d", d.Time.Step)
	}
	fmt.Printf(", delay %d\n", d.Time.Delay)
	fmt.Printf("Canvas: %dx%d, margin %d\n", d.Style.Width, d.Style.Height, d.Style.Margin)
	fmt.Printf("Font: %s %dpt\n", d.Style.FontFamily, d.Style.FontSize)
	fmt.Println()

	fmt.Printf("Signals: %d\n", len(d.Signals))
	for i := range d.Signals {
		sig := &d.Signals[i]
		events := timeline.ForSignal(sig, d.Time)
		switch sig.Kind {
		case diagram.KindClock:
			fmt.Printf("  %s %q: length %d, duty %g, offset %d (%d visible edges)\n",
				sig.Kind, sig.Label.Display(), sig.Length, sig.Duty, sig.Offset, len(events)-1)
		default:
			fmt.Printf("  %s %q: start %s, %d changes (%d visible)\n",
				sig.Kind, sig.Label.Display(), sig.Start, len(sig.Changes), len(events)-1)
		}
	}
	return nil
}
