package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/max99x/drawtime/pkg/diagram"
	"github.com/max99x/drawtime/pkg/render"
)

// SVGWriter serializes a canvas as a standalone SVG document
type SVGWriter struct{}

// Write implements Writer
func (s *SVGWriter) Write(w io.Writer, c *render.Canvas) error {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		c.Width, c.Height, c.Width, c.Height)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`+"\n",
		c.Width, c.Height, svgColor(c.Background))

	for _, op := range c.Ops {
		switch o := op.(type) {
		case render.LineOp:
			dash := ""
			if o.Dashed {
				dash = ` stroke-dasharray="4 4"`
			}
			fmt.Fprintf(&b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f"%s/>`+"\n",
				o.From.X, o.From.Y, o.To.X, o.To.Y, svgColor(o.Color), o.Width, dash)

		case render.PolygonOp:
			points := make([]string, len(o.Points))
			for i, p := range o.Points {
				points[i] = fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
			}
			fill, stroke := "none", "none"
			width := 0.0
			if o.Fill != nil {
				fill = svgColor(*o.Fill)
			}
			if o.Stroke != nil {
				stroke = svgColor(*o.Stroke)
				width = o.StrokeWidth
			}
			fmt.Fprintf(&b, `<polygon points="%s" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
				strings.Join(points, " "), fill, stroke, width)

		case render.TextOp:
			fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" font-family="%s" font-size="%d" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
				o.Center.X, o.Center.Y, escapeXML(o.Family), o.Size, svgColor(o.Color), escapeXML(o.Text))
		}
	}

	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "writing svg")
}

// svgColor formats an RGB color as a CSS hex value
func svgColor(c diagram.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// escapeXML escapes the characters that are significant in SVG text
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
