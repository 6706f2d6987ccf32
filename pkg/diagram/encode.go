package diagram

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode renders the diagram back into the block grammar. The output is
// normalized (every property written explicitly, blocks in time, style,
// signal order) but re-parses to an equivalent diagram.
func (d *Diagram) Encode() string {
	var b strings.Builder

	b.WriteString("time:\n")
	fmt.Fprintf(&b, "start = %d\n", d.Time.Start)
	fmt.Fprintf(&b, "end = %d\n", d.Time.End)
	if d.Time.HasStep {
		fmt.Fprintf(&b, "step = %d\n", d.Time.Step)
	}
	fmt.Fprintf(&b, "delay = %d\n", d.Time.Delay)

	b.WriteString("\nstyle:\n")
	fmt.Fprintf(&b, "width = %d\n", d.Style.Width)
	fmt.Fprintf(&b, "height = %d\n", d.Style.Height)
	fmt.Fprintf(&b, "margin = %d\n", d.Style.Margin)
	fmt.Fprintf(&b, "font_size = %d\n", d.Style.FontSize)
	fmt.Fprintf(&b, "font_family = %s\n", d.Style.FontFamily)
	fmt.Fprintf(&b, "background = %02x%02x%02x\n",
		d.Style.Background.R, d.Style.Background.G, d.Style.Background.B)
	fmt.Fprintf(&b, "foreground = %02x%02x%02x\n",
		d.Style.Foreground.R, d.Style.Foreground.G, d.Style.Foreground.B)

	for i := range d.Signals {
		sig := &d.Signals[i]
		fmt.Fprintf(&b, "\n%s %s:\n", sig.Kind, sig.Label.Raw)
		switch sig.Kind {
		case KindClock:
			fmt.Fprintf(&b, "length = %d\n", sig.Length)
			fmt.Fprintf(&b, "duty = %s\n", strconv.FormatFloat(sig.Duty, 'f', -1, 64))
			fmt.Fprintf(&b, "offset = %d\n", sig.Offset)
		default:
			fmt.Fprintf(&b, "start = %s\n", sig.Start)
			for _, ch := range sig.Changes {
				fmt.Fprintf(&b, "%d -> %s\n", ch.Time, ch.Value)
			}
		}
	}

	return b.String()
}
