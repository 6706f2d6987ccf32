package parse

import (
	"testing"

	"github.com/max99x/drawtime/pkg/diagram"
)

func TestParseScenario(t *testing.T) {
	source := "time:\nstart=0\nend=200\nline A:\nstart=0\n100->1\n150->Z\n"
	d, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if d.Time.Start != 0 || d.Time.End != 200 {
		t.Errorf("window = [%d, %d], want [0, 200]", d.Time.Start, d.Time.End)
	}
	if len(d.Signals) != 1 {
		t.Fatalf("expected 1 signal, got %d", len(d.Signals))
	}

	sig := d.Signals[0]
	if sig.Kind != diagram.KindLine {
		t.Errorf("kind = %v, want line", sig.Kind)
	}
	if sig.Label.Display() != "A" {
		t.Errorf("label = %q, want A", sig.Label.Display())
	}
	if sig.Start != diagram.ZeroValue {
		t.Errorf("start = %v, want 0", sig.Start)
	}
	want := []diagram.Change{
		{Time: 100, Value: diagram.OneValue},
		{Time: 150, Value: diagram.FloatingValue},
	}
	if len(sig.Changes) != len(want) {
		t.Fatalf("changes = %v, want %v", sig.Changes, want)
	}
	for i, ch := range sig.Changes {
		if ch != want[i] {
			t.Errorf("change[%d] = %v, want %v", i, ch, want[i])
		}
	}
}

func TestParseDefaults(t *testing.T) {
	d, err := Parse("line A:\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if d.Time.Start != 0 || d.Time.End != 100 || d.Time.Delay != 10 || d.Time.HasStep {
		t.Errorf("time defaults = %+v", d.Time)
	}
	s := d.Style
	if s.Width != 800 || s.Height != 600 || s.Margin != 10 || s.FontSize != 12 {
		t.Errorf("style defaults = %+v", s)
	}
	if s.FontFamily != "Times New Roman" {
		t.Errorf("font family = %q", s.FontFamily)
	}
	if s.Background != (diagram.RGB{R: 0xff, G: 0xff, B: 0xff}) || s.Foreground != (diagram.RGB{}) {
		t.Errorf("colors = %v / %v", s.Background, s.Foreground)
	}
	// A signal without a start property is unknown before its first event.
	if d.Signals[0].Start != diagram.UnknownValue {
		t.Errorf("start = %v, want unknown", d.Signals[0].Start)
	}
}

func TestParseStyleAndTime(t *testing.T) {
	source := `time:
start = -50
end = 50
step = 25
delay = 4

style:
width = 1024
height = 768
margin = 15
font_size = 14
font_family = DejaVu Sans Mono
background = 1a2B3c
foreground = ffffff

clock CLK:
length = 20
duty = 0.25
offset = -5
`
	d, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if d.Time.Start != -50 || d.Time.End != 50 || d.Time.Step != 25 || !d.Time.HasStep || d.Time.Delay != 4 {
		t.Errorf("time = %+v", d.Time)
	}
	if d.Style.FontFamily != "DejaVu Sans Mono" {
		t.Errorf("font family = %q", d.Style.FontFamily)
	}
	if d.Style.Background != (diagram.RGB{R: 0x1a, G: 0x2b, B: 0x3c}) {
		t.Errorf("background = %v", d.Style.Background)
	}

	clk := d.Signals[0]
	if clk.Kind != diagram.KindClock || clk.Length != 20 || clk.Duty != 0.25 || clk.Offset != -5 {
		t.Errorf("clock = %+v", clk)
	}
}

func TestParseBusValues(t *testing.T) {
	source := "bus DATA:\nstart = ?\n10 -> \"READ\"\n20 -> Z\n30 -> \"say \\\"hi\\\" \\\\ more\"\n"
	d, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	sig := d.Signals[0]
	if sig.Start != diagram.UnknownValue {
		t.Errorf("start = %v", sig.Start)
	}
	if sig.Changes[0].Value != diagram.DataValue("READ") {
		t.Errorf("change[0] = %v", sig.Changes[0].Value)
	}
	if sig.Changes[1].Value != diagram.FloatingValue {
		t.Errorf("change[1] = %v", sig.Changes[1].Value)
	}
	if got := sig.Changes[2].Value.Text; got != `say "hi" \ more` {
		t.Errorf("escaped text = %q", got)
	}
}

func TestParseLastWins(t *testing.T) {
	// Duplicate property assignments overwrite silently.
	d, err := Parse("time:\nend = 300\nend = 400\nline A:\nstart = 0\nstart = 1\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if d.Time.End != 400 {
		t.Errorf("end = %d, want 400", d.Time.End)
	}
	if d.Signals[0].Start != diagram.OneValue {
		t.Errorf("start = %v, want 1", d.Signals[0].Start)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		kind   ErrorKind
	}{
		{"bus logic level", "bus X:\n0->1\n", ValueKindMismatch},
		{"data on line", "line X:\n0 -> \"READ\"\n", ValueKindMismatch},
		{"bad line value", "line X:\n0 -> 2\n", InvalidSignalValue},
		{"lowercase z", "line X:\n0 -> z\n", InvalidSignalValue},
		{"unquoted bus data", "bus X:\n0 -> READ\n", InvalidSignalValue},
		{"unsupported escape", `bus X:` + "\n" + `0 -> "a\nb"` + "\n", InvalidSignalValue},
		{"float change time", "line X:\n1.5 -> 0\n", MalformedChangeLine},
		{"clock change line", "clock C:\nlength = 10\n5 -> 1\n", MalformedChangeLine},
		{"unknown time property", "time:\nspan = 10\n", UnknownProperty},
		{"unknown style property", "style:\ncolor = ff0000\n", UnknownProperty},
		{"unknown signal property", "line A:\nfinish = 1\n", UnknownProperty},
		{"bad integer", "time:\nstart = ten\n", InvalidPropertyValue},
		{"short color", "style:\nbackground = fff\n", InvalidColor},
		{"non-hex color", "style:\nbackground = ff00zz\n", InvalidColor},
		{"missing equals", "time:\nstart 0\n", InvalidPropertyValue},
		{"duplicate time block", "time:\nstart = 0\ntime:\nend = 10\n", DuplicateBasicBlock},
		{"duplicate style block", "style:\nwidth = 10\nstyle:\nwidth = 20\n", DuplicateBasicBlock},
		{"end before start", "time:\nstart = 50\nend = 50\nline A:\n", InvalidRange},
		{"negative delay", "time:\ndelay = -1\nline A:\n", InvalidRange},
		{"zero width", "style:\nwidth = 0\nline A:\n", InvalidRange},
		{"huge margin", "style:\nmargin = 400\nline A:\n", InvalidRange},
		{"zero step", "time:\nstep = 0\nline A:\n", InvalidRange},
		{"clock without length", "clock C:\nduty = 0.5\n", InvalidRange},
		{"duty of one", "clock C:\nlength = 10\nduty = 1.0\n", InvalidRange},
		{"duty above one", "clock C:\nlength = 10\nduty = 1.5\n", InvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.source)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !IsKind(err, tt.kind) {
				t.Errorf("error = %v, want kind %v", err, tt.kind)
			}
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse("line A:\nstart = 0\n0 -> 5\n")
	if err == nil {
		t.Fatal("expected an error")
	}
	pe, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T", err)
	}
	if pe.Line != 3 {
		t.Errorf("line = %d, want 3", pe.Line)
	}
	if pe.Source != "0 -> 5" {
		t.Errorf("source = %q", pe.Source)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("/nonexistent/diagram.time")
	if !IsKind(err, IOFailure) {
		t.Errorf("error = %v, want IOFailure", err)
	}
}
