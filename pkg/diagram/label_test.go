package diagram

import (
	"testing"
)

func TestSegmentLabel(t *testing.T) {
	tests := []struct {
		raw  string
		want []Segment
	}{
		{"A", []Segment{{"A", false}}},
		{"!ABCD", []Segment{{"ABCD", true}}},
		{"AB!CD", []Segment{{"AB!CD", false}}},
		{"!AB/CD", []Segment{{"AB", true}, {"CD", false}}},
		{"AB/!CD", []Segment{{"AB", false}, {"CD", true}}},
		{"!AB/!CD", []Segment{{"AB", true}, {"CD", true}}},
		// Only the first two segments are processed; the third keeps its
		// exclamation mark and is never overlined.
		{"!AB/!CD/!EF", []Segment{{"AB", true}, {"CD", true}, {"!EF", false}}},
		// The marker must be the very first character of the segment.
		{"AB/ !CD", []Segment{{"AB", false}, {" !CD", false}}},
		{"", []Segment{{"", false}}},
	}

	for _, tt := range tests {
		got := SegmentLabel(tt.raw)
		if got.Raw != tt.raw {
			t.Errorf("SegmentLabel(%q).Raw = %q", tt.raw, got.Raw)
		}
		if len(got.Segments) != len(tt.want) {
			t.Errorf("SegmentLabel(%q) = %v, want %v", tt.raw, got.Segments, tt.want)
			continue
		}
		for i, seg := range got.Segments {
			if seg != tt.want[i] {
				t.Errorf("SegmentLabel(%q)[%d] = %+v, want %+v", tt.raw, i, seg, tt.want[i])
			}
		}
	}
}

func TestLabelDisplay(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"!AB/CD", "AB/CD"},
		{"!AB/!CD/!EF", "AB/CD/!EF"},
		{"CS", "CS"},
	}
	for _, tt := range tests {
		if got := SegmentLabel(tt.raw).Display(); got != tt.want {
			t.Errorf("Display(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
