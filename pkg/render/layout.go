package render

import (
	"fmt"

	"github.com/max99x/drawtime/pkg/diagram"
)

// textHeightFactor is the height of text bands relative to font height
const textHeightFactor = 1.2

// Rect is an axis-aligned rectangle in canvas pixel space
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the rectangle's horizontal extent
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the rectangle's vertical extent
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// StepStop is one vertical grid line of the step column grid
type StepStop struct {
	Time  int     // Time instant of the grid line
	Index int     // Step count from the window start; labeled T<Index>
	X     float64 // Canvas X coordinate
}

// Layout holds the computed canvas geometry of a diagram: the outer frame
// inset by the margin, the inner plotting rectangle left of which labels
// live and above which the axis header row sits, and the affine time
// transform.
type Layout struct {
	Time  diagram.TimeSettings
	Style diagram.StyleSettings

	Outer Rect // Canvas inset by the margin
	Inner Rect // Plotting area for waveforms

	TextHeight float64 // Line height of the configured font size
	rowHeight  float64
	signals    int
}

// Compute derives the layout of a diagram. Metrics supplies the text
// measurements used to size the label gutter and the axis header row.
func Compute(d *diagram.Diagram, m Metrics) (*Layout, error) {
	if len(d.Signals) == 0 {
		return nil, fmt.Errorf("a diagram must have at least one signal")
	}

	l := &Layout{
		Time:       d.Time,
		Style:      d.Style,
		TextHeight: m.TextHeight(d.Style.FontSize),
		signals:    len(d.Signals),
	}

	margin := float64(d.Style.Margin)
	l.Outer = Rect{
		Left:   margin,
		Top:    margin,
		Right:  float64(d.Style.Width) - margin,
		Bottom: float64(d.Style.Height) - margin,
	}

	// The label gutter is sized by the widest label plus two spaces of
	// separation from the plot.
	var gutter float64
	for i := range d.Signals {
		w := m.TextWidth(d.Signals[i].Label.Display()+"  ", d.Style.FontSize)
		if w > gutter {
			gutter = w
		}
	}

	l.Inner = Rect{
		Left:   l.Outer.Left + gutter,
		Top:    l.Outer.Top + l.TextHeight*textHeightFactor,
		Right:  l.Outer.Right,
		Bottom: l.Outer.Bottom,
	}
	l.rowHeight = l.Inner.Height() / float64(len(d.Signals))

	return l, nil
}

// X maps a time instant to a canvas X coordinate. The transform is
// affine and strictly increasing; callers clamp times to the window
// before mapping when they need clipping.
func (l *Layout) X(t float64) float64 {
	span := float64(l.Time.End - l.Time.Start)
	return l.Inner.Left + (t-float64(l.Time.Start))/span*l.Inner.Width()
}

// DeltaX maps a time delta to a horizontal pixel distance
func (l *Layout) DeltaX(dt float64) float64 {
	span := float64(l.Time.End - l.Time.Start)
	return dt / span * l.Inner.Width()
}

// Row returns the band of the i-th signal, in declaration order
func (l *Layout) Row(i int) Rect {
	top := l.Inner.Top + float64(i)*l.rowHeight
	return Rect{
		Left:   l.Inner.Left,
		Top:    top,
		Right:  l.Inner.Right,
		Bottom: top + l.rowHeight,
	}
}

// StepStops returns the vertical grid lines of the step column grid:
// one at every whole step counted from the window start, inside the
// window. Without a step setting there is no grid.
func (l *Layout) StepStops() []StepStop {
	if !l.Time.HasStep {
		return nil
	}
	var stops []StepStop
	for k := 0; ; k++ {
		t := l.Time.Start + k*l.Time.Step
		if t > l.Time.End {
			break
		}
		stops = append(stops, StepStop{Time: t, Index: k, X: l.X(float64(t))})
	}
	return stops
}
