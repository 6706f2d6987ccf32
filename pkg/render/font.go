package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Metrics measures text extents for layout. The drawing engine only needs
// widths and heights, so tests can substitute fixed-advance metrics.
type Metrics interface {
	// TextWidth returns the rendered width of text at the given point size
	TextWidth(text string, size int) float64
	// TextHeight returns the line height at the given point size
	TextHeight(size int) float64
}

// FontMetrics measures text with an embedded TrueType font. The
// font_family style property is passed through to surface writers
// unchanged; layout always measures with the bundled face, which keeps
// the pipeline deterministic across machines with different font sets.
type FontMetrics struct {
	font *opentype.Font

	mu    sync.Mutex
	faces map[int]font.Face
}

// NewFontMetrics parses the embedded font and returns a metrics instance
func NewFontMetrics() (*FontMetrics, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded font: %w", err)
	}
	return &FontMetrics{font: fnt, faces: make(map[int]font.Face)}, nil
}

// Face returns a cached face at the given point size
func (m *FontMetrics) Face(size int) (font.Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %dpt face: %w", size, err)
	}
	m.faces[size] = face
	return face, nil
}

// TextWidth implements Metrics
func (m *FontMetrics) TextWidth(text string, size int) float64 {
	face, err := m.Face(size)
	if err != nil {
		return 0
	}
	return fixedToFloat(font.MeasureString(face, text))
}

// TextHeight implements Metrics
func (m *FontMetrics) TextHeight(size int) float64 {
	face, err := m.Face(size)
	if err != nil {
		return 0
	}
	fm := face.Metrics()
	return fixedToFloat(fm.Ascent + fm.Descent)
}

// fixedToFloat converts a 26.6 fixed-point value to float64
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
