package parse

import (
	"reflect"
	"testing"
)

// TestEncodeRoundTrip re-serializes parsed diagrams to the block grammar
// and re-parses them; the two models must be equivalent.
func TestEncodeRoundTrip(t *testing.T) {
	sources := []string{
		"line A:\n",
		"time:\nstart=0\nend=200\nline A:\nstart=0\n100->1\n150->Z\n",
		"time:\nstart = -20\nend = 80\nstep = 10\ndelay = 6\n" +
			"style:\nwidth = 640\nheight = 480\nmargin = 12\nfont_size = 10\n" +
			"font_family = Courier New\nbackground = 101010\nforeground = fefefe\n" +
			"clock !CLK:\nlength = 16\nduty = 0.75\noffset = 3\n" +
			"bus ADDR[7:0]:\nstart = Z\n0 -> \"0x00\"\n40 -> \"it \\\"quoted\\\"\"\n" +
			"line !RD/!WR/!XX:\nstart = ?\n25 -> 0\n",
	}

	for _, source := range sources {
		first, err := Parse(source)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", source, err)
		}
		encoded := first.Encode()
		second, err := Parse(encoded)
		if err != nil {
			t.Fatalf("re-parsing encoded form failed: %v\n%s", err, encoded)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("round trip changed the model.\nsource:\n%s\nencoded:\n%s\nfirst: %+v\nsecond: %+v",
				source, encoded, first, second)
		}
	}
}
