package surface

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/max99x/drawtime/pkg/diagram"
	"github.com/max99x/drawtime/pkg/render"
)

// PNGWriter rasterizes a canvas and encodes it as PNG
type PNGWriter struct{}

// Write implements Writer
func (p *PNGWriter) Write(w io.Writer, c *render.Canvas) error {
	metrics, err := render.NewFontMetrics()
	if err != nil {
		return errors.Wrap(err, "loading font")
	}

	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(rgba(c.Background)), image.Point{}, draw.Src)

	for _, op := range c.Ops {
		switch o := op.(type) {
		case render.LineOp:
			drawLine(img, o)
		case render.PolygonOp:
			drawPolygon(img, o)
		case render.TextOp:
			if err := drawText(img, metrics, o); err != nil {
				return err
			}
		}
	}

	return errors.Wrap(png.Encode(w, img), "encoding png")
}

// rgba converts a diagram color to an opaque image color
func rgba(c diagram.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// drawLine strokes a segment by stepping along it and painting a
// perpendicular span of the requested thickness at each step. Dashed
// lines alternate four pixels on, four off.
func drawLine(img *image.RGBA, o render.LineOp) {
	c := rgba(o.Color)
	dx := o.To.X - o.From.X
	dy := o.To.Y - o.From.Y
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		img.Set(int(o.From.X), int(o.From.Y), c)
		return
	}

	steps := math.Max(math.Abs(dx), math.Abs(dy))
	halfThick := o.Width / 2
	perpX := -dy / dist
	perpY := dx / dist

	for i := 0.0; i <= steps; i++ {
		t := i / steps
		if o.Dashed && int(t*dist)%8 >= 4 {
			continue
		}
		cx := o.From.X + dx*t
		cy := o.From.Y + dy*t
		for offset := -halfThick; offset <= halfThick; offset += 0.5 {
			img.Set(int(cx+perpX*offset), int(cy+perpY*offset), c)
		}
	}
}

// drawPolygon fills a polygon by horizontal scanlines, then strokes its
// outline if requested.
func drawPolygon(img *image.RGBA, o render.PolygonOp) {
	if len(o.Points) < 3 {
		return
	}

	if o.Fill != nil {
		fillPolygon(img, o.Points, rgba(*o.Fill))
	}

	if o.Stroke != nil {
		width := o.StrokeWidth
		if width <= 0 {
			width = 1
		}
		for i := range o.Points {
			from := o.Points[i]
			to := o.Points[(i+1)%len(o.Points)]
			drawLine(img, render.LineOp{From: from, To: to, Width: width, Color: *o.Stroke})
		}
	}
}

// fillPolygon is an even-odd scanline fill
func fillPolygon(img *image.RGBA, pts []render.Point, c color.RGBA) {
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	for y := int(minY); y <= int(maxY); y++ {
		fy := float64(y) + 0.5
		var xs []float64
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if (a.Y <= fy) == (b.Y <= fy) {
				continue
			}
			x := a.X + (fy-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			xs = append(xs, x)
		}
		if len(xs) < 2 {
			continue
		}
		// Sort the few crossings in place.
		for i := 1; i < len(xs); i++ {
			for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
				xs[j], xs[j-1] = xs[j-1], xs[j]
			}
		}
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(xs[i]); x <= int(xs[i+1]); x++ {
				img.Set(x, y, c)
			}
		}
	}
}

// drawText renders a text op centered on its anchor point using the
// bundled face at the op's size. The requested font family cannot be
// honored without host font access; the bundled face matches the metrics
// the layout was computed with.
func drawText(img *image.RGBA, metrics *render.FontMetrics, o render.TextOp) error {
	face, err := metrics.Face(o.Size)
	if err != nil {
		return errors.Wrap(err, "creating face")
	}

	width := font.MeasureString(face, o.Text)
	ascent := face.Metrics().Ascent
	descent := face.Metrics().Descent

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(rgba(o.Color)),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(int(o.Center.X)) - width/2,
			Y: fixed.I(int(o.Center.Y)) + (ascent-descent)/2,
		},
	}
	d.DrawString(o.Text)
	return nil
}
