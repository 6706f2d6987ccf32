package render

import (
	"math"
	"testing"

	"github.com/max99x/drawtime/pkg/diagram"
)

// stubMetrics measures text with fixed-advance glyphs so layout tests do
// not depend on the bundled font.
type stubMetrics struct{}

func (stubMetrics) TextWidth(text string, size int) float64 {
	return float64(len(text)*size) / 2
}

func (stubMetrics) TextHeight(size int) float64 {
	return float64(size)
}

func testDiagram() *diagram.Diagram {
	d := diagram.New()
	d.Signals = []diagram.Signal{
		{Kind: diagram.KindLine, Label: diagram.SegmentLabel("A"), Start: diagram.ZeroValue},
		{Kind: diagram.KindLine, Label: diagram.SegmentLabel("B"), Start: diagram.OneValue},
	}
	return d
}

func TestComputeGeometry(t *testing.T) {
	d := testDiagram()
	l, err := Compute(d, stubMetrics{})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if l.Outer.Left != 10 || l.Outer.Top != 10 || l.Outer.Right != 790 || l.Outer.Bottom != 590 {
		t.Errorf("outer frame = %+v", l.Outer)
	}
	// Gutter is the widest label plus two spaces: "A  " at 12pt.
	wantLeft := 10 + stubMetrics{}.TextWidth("A  ", 12)
	if l.Inner.Left != wantLeft {
		t.Errorf("inner left = %g, want %g", l.Inner.Left, wantLeft)
	}
	wantTop := 10 + 12*textHeightFactor
	if math.Abs(l.Inner.Top-wantTop) > 1e-9 {
		t.Errorf("inner top = %g, want %g", l.Inner.Top, wantTop)
	}
}

func TestTimeTransform(t *testing.T) {
	d := testDiagram()
	l, err := Compute(d, stubMetrics{})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if got := l.X(0); got != l.Inner.Left {
		t.Errorf("X(0) = %g, want plot left %g", got, l.Inner.Left)
	}
	if got := l.X(100); math.Abs(got-l.Inner.Right) > 1e-9 {
		t.Errorf("X(100) = %g, want plot right %g", got, l.Inner.Right)
	}

	prev := math.Inf(-1)
	for tt := 0.0; tt <= 100; tt++ {
		x := l.X(tt)
		if x <= prev {
			t.Fatalf("X not strictly increasing at t=%g", tt)
		}
		prev = x
	}
}

func TestRowBands(t *testing.T) {
	d := testDiagram()
	l, _ := Compute(d, stubMetrics{})

	r0, r1 := l.Row(0), l.Row(1)
	if r0.Top != l.Inner.Top {
		t.Errorf("first row top = %g, want %g", r0.Top, l.Inner.Top)
	}
	if r0.Bottom != r1.Top {
		t.Errorf("rows not adjacent: %g vs %g", r0.Bottom, r1.Top)
	}
	if math.Abs(r1.Bottom-l.Inner.Bottom) > 1e-9 {
		t.Errorf("last row bottom = %g, want %g", r1.Bottom, l.Inner.Bottom)
	}
	if math.Abs(r0.Height()-r1.Height()) > 1e-9 {
		t.Errorf("unequal row heights: %g vs %g", r0.Height(), r1.Height())
	}
}

func TestStepStops(t *testing.T) {
	d := testDiagram()
	d.Time.Start = -10
	d.Time.End = 35
	d.Time.Step = 10
	d.Time.HasStep = true
	l, _ := Compute(d, stubMetrics{})

	stops := l.StepStops()
	wantTimes := []int{-10, 0, 10, 20, 30}
	if len(stops) != len(wantTimes) {
		t.Fatalf("stops = %+v, want times %v", stops, wantTimes)
	}
	for i, stop := range stops {
		if stop.Time != wantTimes[i] || stop.Index != i {
			t.Errorf("stop[%d] = %+v, want time %d", i, stop, wantTimes[i])
		}
		if stop.X != l.X(float64(stop.Time)) {
			t.Errorf("stop[%d].X = %g", i, stop.X)
		}
	}
}

func TestStepStopsAbsentWithoutStep(t *testing.T) {
	d := testDiagram()
	l, _ := Compute(d, stubMetrics{})
	if stops := l.StepStops(); stops != nil {
		t.Errorf("expected no stops, got %+v", stops)
	}
}

func TestComputeRequiresSignals(t *testing.T) {
	d := diagram.New()
	if _, err := Compute(d, stubMetrics{}); err == nil {
		t.Error("expected an error for a diagram without signals")
	}
}
