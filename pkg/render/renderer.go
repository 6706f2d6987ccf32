package render

import (
	"strconv"

	"github.com/max99x/drawtime/pkg/diagram"
	"github.com/max99x/drawtime/pkg/timeline"
)

// waveWidth is the stroke width of waveform lines
const waveWidth = 2

// Draw resolves, lays out and draws a diagram, returning the canvas
// handed to a surface writer. The model must already be validated; Draw
// is never called on a diagram the parser rejected.
func Draw(d *diagram.Diagram, m Metrics) (*Canvas, error) {
	l, err := Compute(d, m)
	if err != nil {
		return nil, err
	}

	e := &engine{
		layout:  l,
		metrics: m,
		style:   d.Style,
	}

	e.drawFrame()
	e.drawStepGrid()

	timelines := timeline.Resolve(d)
	for i := range d.Signals {
		row := l.Row(i)
		e.drawLabel(d.Signals[i].Label, row)
		if d.Signals[i].Kind == diagram.KindBus {
			e.drawBusWave(timelines[i], row)
		} else {
			e.drawLineWave(timelines[i], row)
		}
	}

	return &Canvas{
		Width:      d.Style.Width,
		Height:     d.Style.Height,
		Background: d.Style.Background,
		Ops:        e.ops,
	}, nil
}

// engine accumulates draw operations for one diagram
type engine struct {
	layout  *Layout
	metrics Metrics
	style   diagram.StyleSettings
	ops     []Op
}

// line appends a stroked segment
func (e *engine) line(x1, y1, x2, y2, width float64, dashed bool) {
	e.ops = append(e.ops, LineOp{
		From:   Point{x1, y1},
		To:     Point{x2, y2},
		Width:  width,
		Dashed: dashed,
		Color:  e.style.Foreground,
	})
}

// text appends a centered text placement
func (e *engine) text(s string, cx, cy float64) {
	e.ops = append(e.ops, TextOp{
		Text:   s,
		Center: Point{cx, cy},
		Size:   e.style.FontSize,
		Family: e.style.FontFamily,
		Color:  e.style.Foreground,
	})
}

// strokeRect appends an unfilled rectangle outline
func (e *engine) strokeRect(r Rect) {
	fg := e.style.Foreground
	e.ops = append(e.ops, PolygonOp{
		Points: []Point{
			{r.Left, r.Top}, {r.Right, r.Top},
			{r.Right, r.Bottom}, {r.Left, r.Bottom},
		},
		Stroke:      &fg,
		StrokeWidth: 1,
	})
}

// drawFrame draws the outer and inner frame rectangles
func (e *engine) drawFrame() {
	e.strokeRect(e.layout.Outer)
	e.strokeRect(e.layout.Inner)
}

// drawStepGrid draws the dashed column separators and their T<index>
// labels in the axis header row.
func (e *engine) drawStepGrid() {
	l := e.layout
	labelY := l.Inner.Top - l.TextHeight*0.5
	for _, stop := range l.StepStops() {
		e.line(stop.X, l.Inner.Top, stop.X, l.Inner.Bottom, 1, true)
		e.text("T"+strconv.Itoa(stop.Index), stop.X, labelY)
	}
}

// drawLabel draws a signal's label in the gutter left of the plot,
// with an overline stroke above each marked segment.
func (e *engine) drawLabel(lab diagram.Label, row Rect) {
	l := e.layout
	display := lab.Display()
	size := e.style.FontSize

	cx := l.Inner.Left - e.metrics.TextWidth(display+"  ", size)/2
	cy := (row.Top + row.Bottom) / 2
	e.text(display, cx, cy)

	top := cy - l.TextHeight/2
	startX := cx - e.metrics.TextWidth(display, size)/2

	// Overlines span each marked segment's text extent. Extents are
	// measured as prefix-width differences so separator glyphs are
	// accounted for.
	prefix := ""
	for i, seg := range lab.Segments {
		if i > 0 {
			prefix += "/"
		}
		x0 := startX + e.metrics.TextWidth(prefix, size)
		prefix += seg.Text
		if seg.Overlined {
			x1 := startX + e.metrics.TextWidth(prefix, size)
			e.line(x0, top, x1, top, 1, false)
		}
	}
}

// levelFor maps a value to its vertical position within a row: one at
// 30% of the row height, zero at 70%, the mid-line states at 50%.
func levelFor(v diagram.Value, row Rect) float64 {
	switch v.Kind {
	case diagram.One:
		return row.Top + row.Height()*0.3
	case diagram.Zero:
		return row.Top + row.Height()*0.7
	default:
		return row.Top + row.Height()*0.5
	}
}

// clampTime clips a time instant to the visible window
func (e *engine) clampTime(t float64) float64 {
	l := e.layout
	if t < float64(l.Time.Start) {
		return float64(l.Time.Start)
	}
	if t > float64(l.Time.End) {
		return float64(l.Time.End)
	}
	return t
}

// drawLineWave draws a line or clock signal as a level-per-value state
// machine over its resolved timeline. Transitions are diagonals of
// horizontal extent delay centered on the change time, clipped at the
// window edges.
func (e *engine) drawLineWave(events []timeline.Event, row Rect) {
	l := e.layout
	delayHalf := float64(l.Time.Delay) / 2
	segStart := float64(l.Time.Start)

	for i, ev := range events {
		y := levelFor(ev.Value, row)
		dashed := ev.Value.Kind == diagram.Unknown

		segEnd := float64(l.Time.End)
		var next *timeline.Event
		if i+1 < len(events) {
			next = &events[i+1]
			segEnd = e.clampTime(float64(next.Time) - delayHalf)
		}
		if segEnd < segStart {
			segEnd = segStart
		}
		if segEnd > segStart {
			e.line(l.X(segStart), y, l.X(segEnd), y, waveWidth, dashed)
		}

		if next == nil {
			break
		}
		transEnd := e.clampTime(float64(next.Time) + delayHalf)
		ny := levelFor(next.Value, row)
		if ny != y {
			e.line(l.X(segEnd), y, l.X(transEnd), ny, waveWidth, false)
		} else if transEnd > segEnd {
			// Same level, different state (dash change only); keep the
			// trace continuous.
			e.line(l.X(segEnd), y, l.X(transEnd), y, waveWidth, false)
		}
		segStart = transEnd
	}
}

// drawBusWave draws a bus signal: data values as filled bands with
// centered text, mid-line states as in drawLineWave, and the crossing
// bowtie shape at transitions between band-like values. Band fills go
// down first so transition strokes are never painted over.
func (e *engine) drawBusWave(events []timeline.Event, row Rect) {
	l := e.layout
	delayHalf := float64(l.Time.Delay) / 2
	top := row.Top + row.Height()*0.3
	mid := row.Top + row.Height()*0.5
	bottom := row.Top + row.Height()*0.7

	bg := e.style.Background
	for i, ev := range events {
		if ev.Value.Kind == diagram.Data {
			pts := e.bandPoints(events, i, row, delayHalf)
			e.ops = append(e.ops, PolygonOp{Points: pts, Fill: &bg})
		}
	}

	segStart := float64(l.Time.Start)
	for i, ev := range events {
		segEnd := float64(l.Time.End)
		var next *timeline.Event
		if i+1 < len(events) {
			next = &events[i+1]
			segEnd = e.clampTime(float64(next.Time) - delayHalf)
		}
		if segEnd < segStart {
			segEnd = segStart
		}

		xs, xe := l.X(segStart), l.X(segEnd)
		if ev.Value.Kind == diagram.Data {
			if xe > xs {
				e.line(xs, top, xe, top, waveWidth, false)
				e.line(xs, bottom, xe, bottom, waveWidth, false)
			}
			e.text(ev.Value.Text, (xs+xe)/2, mid)
		} else if segEnd > segStart {
			e.line(xs, mid, xe, mid, waveWidth, ev.Value.Kind == diagram.Unknown)
		}

		if next == nil {
			break
		}
		x1 := l.X(segEnd)
		x2 := l.X(e.clampTime(float64(next.Time) + delayHalf))
		oldBand := ev.Value.Kind == diagram.Data
		newBand := next.Value.Kind == diagram.Data
		switch {
		case oldBand && newBand:
			// Bowtie: band edges cross over the transition region.
			e.line(x1, top, x2, bottom, waveWidth, false)
			e.line(x1, bottom, x2, top, waveWidth, false)
		case oldBand:
			e.line(x1, top, x2, mid, waveWidth, false)
			e.line(x1, bottom, x2, mid, waveWidth, false)
		case newBand:
			e.line(x1, mid, x2, top, waveWidth, false)
			e.line(x1, mid, x2, bottom, waveWidth, false)
		default:
			if x2 > x1 {
				e.line(x1, mid, x2, mid, waveWidth, false)
			}
		}
		segStart = e.clampTime(float64(next.Time) + delayHalf)
	}
}

// bandPoints computes the hexagonal outline of the i-th event's data
// band: the steady region between the adjoining transitions plus a wedge
// reaching the mid-line at each transition's outer edge. Bands at the
// window edges lose the wedge on that side.
func (e *engine) bandPoints(events []timeline.Event, i int, row Rect, delayHalf float64) []Point {
	l := e.layout
	top := row.Top + row.Height()*0.3
	mid := row.Top + row.Height()*0.5
	bottom := row.Top + row.Height()*0.7

	segStart := float64(l.Time.Start)
	if i > 0 {
		segStart = e.clampTime(float64(events[i].Time) + delayHalf)
	}
	segEnd := float64(l.Time.End)
	if i+1 < len(events) {
		segEnd = e.clampTime(float64(events[i+1].Time) - delayHalf)
	}
	if segEnd < segStart {
		segEnd = segStart
	}
	xs, xe := l.X(segStart), l.X(segEnd)

	var pts []Point
	if i > 0 {
		xOuter := l.X(e.clampTime(float64(events[i].Time) - delayHalf))
		pts = append(pts, Point{xOuter, mid})
	}
	pts = append(pts, Point{xs, top}, Point{xe, top})
	if i+1 < len(events) {
		xOuter := l.X(e.clampTime(float64(events[i+1].Time) + delayHalf))
		pts = append(pts, Point{xOuter, mid})
	}
	return append(pts, Point{xe, bottom}, Point{xs, bottom})
}
