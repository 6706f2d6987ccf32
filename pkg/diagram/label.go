package diagram

import "strings"

// Segment is one displayed piece of a signal label
type Segment struct {
	Text      string
	Overlined bool // Draw a horizontal stroke above this segment's text
}

// Label is a signal name split into display segments. Built once at parse
// time and never mutated.
type Label struct {
	Raw      string // Source text, kept for re-serialization
	Segments []Segment
}

// SegmentLabel splits a raw label on '/' and resolves overline markers.
//
// Only the first two segments are inspected for markup: a segment whose
// very first character is '!' is displayed without it and drawn with an
// overline. The third and any later segments are always displayed
// verbatim, leading '!' included. This asymmetry is a documented quirk of
// the language, preserved deliberately; do not generalize it to all
// segments.
func SegmentLabel(raw string) Label {
	parts := strings.Split(raw, "/")
	segments := make([]Segment, len(parts))
	for i, part := range parts {
		if i < 2 && strings.HasPrefix(part, "!") {
			segments[i] = Segment{Text: part[1:], Overlined: true}
		} else {
			segments[i] = Segment{Text: part}
		}
	}
	return Label{Raw: raw, Segments: segments}
}

// Display returns the label as drawn: segments re-joined with '/', markup
// stripped.
func (l Label) Display() string {
	texts := make([]string, len(l.Segments))
	for i, seg := range l.Segments {
		texts[i] = seg.Text
	}
	return strings.Join(texts, "/")
}
