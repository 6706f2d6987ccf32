package parse

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures the parser and builder can report.
// Every failure maps to exactly one kind; callers match with IsKind.
type ErrorKind int

const (
	// UnknownBlockKind reports a header with an unrecognized block type
	UnknownBlockKind ErrorKind = iota
	// OrphanLine reports a body line before any block header
	OrphanLine
	// DuplicateBasicBlock reports a second time or style block
	DuplicateBasicBlock
	// UnknownProperty reports a property key the block kind does not take
	UnknownProperty
	// InvalidPropertyValue reports a malformed numeric or malformed line
	InvalidPropertyValue
	// InvalidColor reports a color value that is not six hex digits
	InvalidColor
	// InvalidSignalValue reports a token that is not a legal signal value
	InvalidSignalValue
	// ValueKindMismatch reports a legal value used on the wrong signal kind
	ValueKindMismatch
	// MalformedHeader reports a header line that does not fit the grammar
	MalformedHeader
	// MalformedChangeLine reports a change line that does not fit the grammar
	MalformedChangeLine
	// InvalidRange reports an out-of-range setting detected after parsing
	InvalidRange
	// IOFailure reports an unreadable source or unwritable destination
	IOFailure
)

// String returns the kind's name
func (k ErrorKind) String() string {
	switch k {
	case UnknownBlockKind:
		return "UnknownBlockKind"
	case OrphanLine:
		return "OrphanLine"
	case DuplicateBasicBlock:
		return "DuplicateBasicBlock"
	case UnknownProperty:
		return "UnknownProperty"
	case InvalidPropertyValue:
		return "InvalidPropertyValue"
	case InvalidColor:
		return "InvalidColor"
	case InvalidSignalValue:
		return "InvalidSignalValue"
	case ValueKindMismatch:
		return "ValueKindMismatch"
	case MalformedHeader:
		return "MalformedHeader"
	case MalformedChangeLine:
		return "MalformedChangeLine"
	case InvalidRange:
		return "InvalidRange"
	case IOFailure:
		return "IOFailure"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a structured, position-annotated parse or build failure.
// Line is 1-based; it is zero for failures not tied to a source line,
// such as range validation of assembled settings.
type Error struct {
	Kind    ErrorKind
	Line    int    // Source line number, 0 when unknown
	Source  string // Text of the offending line, may be empty
	Message string
	Cause   error // Underlying error, if any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d: %s)", e.Message, e.Line, e.Source)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsKind reports whether err is or wraps a parse Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Kind == kind
}

// errorf builds an Error annotated with the given source line
func errorf(kind ErrorKind, ln line, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Line:    ln.num,
		Source:  ln.text,
		Message: fmt.Sprintf(format, args...),
	}
}

// rangeErrorf builds an InvalidRange error with no line position
func rangeErrorf(format string, args ...interface{}) *Error {
	return &Error{Kind: InvalidRange, Message: fmt.Sprintf(format, args...)}
}
