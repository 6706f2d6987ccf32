// Package render lays out a diagram model in pixel space and emits the
// abstract draw operations that surface writers turn into image files.
package render

import (
	"github.com/max99x/drawtime/pkg/diagram"
)

// Point is a position in canvas pixel space. Y increases downward.
type Point struct {
	X, Y float64
}

// Op is one abstract draw operation. The concrete types are LineOp,
// PolygonOp and TextOp; surface writers switch over them.
type Op interface {
	op()
}

// LineOp strokes a segment between two points
type LineOp struct {
	From, To Point
	Width    float64
	Dashed   bool
	Color    diagram.RGB
}

// PolygonOp draws a closed polygon. A nil Fill leaves the interior
// untouched; a nil Stroke leaves the outline undrawn.
type PolygonOp struct {
	Points      []Point
	Fill        *diagram.RGB
	Stroke      *diagram.RGB
	StrokeWidth float64
}

// TextOp places a single line of text centered on a point
type TextOp struct {
	Text   string
	Center Point
	Size   int
	Family string
	Color  diagram.RGB
}

func (LineOp) op()    {}
func (PolygonOp) op() {}
func (TextOp) op()    {}

// Canvas is the core's output contract to a surface writer: final surface
// dimensions, the background to clear with, and the ordered operations to
// draw over it.
type Canvas struct {
	Width      int
	Height     int
	Background diagram.RGB
	Ops        []Op
}
