package diagram

import "fmt"

// ValueKind discriminates the closed set of signal states
type ValueKind int

const (
	// Zero is the low state of a line or clock
	Zero ValueKind = iota
	// One is the high state of a line or clock
	One
	// Unknown is an indeterminate state, drawn as a dashed mid-line
	Unknown
	// Floating is the high-impedance state, drawn as a solid mid-line
	Floating
	// Data is a string-labeled bus state
	Data
)

// Value is a tagged variant over signal states. Data values carry a string
// payload; the other kinds are pure tags.
type Value struct {
	Kind ValueKind
	Text string // Payload for Data values, empty otherwise
}

// Convenience constructors for the tag-only kinds.
var (
	ZeroValue     = Value{Kind: Zero}
	OneValue      = Value{Kind: One}
	UnknownValue  = Value{Kind: Unknown}
	FloatingValue = Value{Kind: Floating}
)

// DataValue returns a bus data value carrying the given text
func DataValue(text string) Value {
	return Value{Kind: Data, Text: text}
}

// ValidFor reports whether the value is legal for a signal of the given
// kind. Data values are bus-only; logic levels are line/clock-only.
func (v Value) ValidFor(kind SignalKind) bool {
	switch v.Kind {
	case Unknown, Floating:
		return true
	case Zero, One:
		return kind != KindBus
	case Data:
		return kind == KindBus
	default:
		return false
	}
}

// String renders the value in source syntax. Data payloads are quoted with
// backslash escapes so the result re-parses to an equal value.
func (v Value) String() string {
	switch v.Kind {
	case Zero:
		return "0"
	case One:
		return "1"
	case Unknown:
		return "?"
	case Floating:
		return "Z"
	case Data:
		return quote(v.Text)
	default:
		return fmt.Sprintf("Value(%d)", int(v.Kind))
	}
}

// quote wraps s in double quotes, escaping backslashes and quotes. This is
// the full escape set the parser accepts.
func quote(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(append(out, '"'))
}
