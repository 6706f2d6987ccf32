// Package diagram defines the data model for timing diagram descriptions
package diagram

// SignalKind identifies the flavor of a signal block
type SignalKind int

const (
	// KindLine is a single-wire signal with discrete 0/1/Z/? states
	KindLine SignalKind = iota
	// KindBus is a multi-wire signal carrying string-labeled values
	KindBus
	// KindClock is a periodic signal defined by length, duty and offset
	KindClock
)

// String returns the block keyword for the kind
func (k SignalKind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindBus:
		return "bus"
	case KindClock:
		return "clock"
	default:
		return "unknown"
	}
}

// TimeSettings holds the time window and transition delay of a diagram
type TimeSettings struct {
	Start int // Minimum time value displayed; changes before it are hidden
	End   int // Maximum time value displayed; must be greater than Start
	Step  int // Column width in time units; meaningful only when HasStep
	Delay int // Horizontal extent of a value transition, in time units
	// HasStep records whether step was set; without it the chart has no
	// column grid.
	HasStep bool
}

// DefaultTimeSettings returns the time window used when the source has no
// time block.
func DefaultTimeSettings() TimeSettings {
	return TimeSettings{Start: 0, End: 100, Delay: 10}
}

// RGB is a 24-bit color as parsed from an RRGGBB property value
type RGB struct {
	R, G, B uint8
}

// StyleSettings holds the visual properties of a diagram
type StyleSettings struct {
	Width      int    // Canvas width in pixels
	Height     int    // Canvas height in pixels
	Margin     int    // Inset between canvas edge and the outer frame
	FontSize   int    // Label and axis text size in points
	FontFamily string // Requested font family, passed through to writers
	Background RGB
	Foreground RGB
}

// DefaultStyleSettings returns the style used when the source has no style
// block.
func DefaultStyleSettings() StyleSettings {
	return StyleSettings{
		Width:      800,
		Height:     600,
		Margin:     10,
		FontSize:   12,
		FontFamily: "Times New Roman",
		Background: RGB{0xff, 0xff, 0xff},
		Foreground: RGB{0x00, 0x00, 0x00},
	}
}

// Change declares the value a signal takes on at a given time
type Change struct {
	Time  int
	Value Value
}

// Signal is one row of the diagram. Kind-specific fields are populated
// according to Kind: Start/Changes for line and bus signals, Length, Duty
// and Offset for clocks.
type Signal struct {
	Kind  SignalKind
	Label Label

	// Line/Bus: the state held before the first change. Defaults to
	// Unknown when the block has no start property.
	Start Value
	// Line/Bus: declared changes in file order. Not necessarily sorted;
	// the timeline resolver orders them.
	Changes []Change

	// Clock only.
	Length int     // Cycle length in time units
	Duty   float64 // Fraction of the cycle spent high, exclusive (0,1)
	Offset int     // Time at which cycle zero begins
}

// Diagram is the complete parsed model of one source file
type Diagram struct {
	Time    TimeSettings
	Style   StyleSettings
	Signals []Signal // Render order = file order
}

// New returns a diagram with all defaults applied and no signals
func New() *Diagram {
	return &Diagram{
		Time:  DefaultTimeSettings(),
		Style: DefaultStyleSettings(),
	}
}
