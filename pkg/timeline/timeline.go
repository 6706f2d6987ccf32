// Package timeline derives chronologically ordered, window-clipped state
// sequences from declared or periodic signal definitions.
package timeline

import (
	"sort"

	"github.com/max99x/drawtime/pkg/diagram"
)

// Event is one resolved state: the signal holds Value from Time until the
// next event's time.
type Event struct {
	Time  int
	Value diagram.Value
}

// Resolve computes the resolved timeline for every signal of the diagram,
// in signal order.
func Resolve(d *diagram.Diagram) [][]Event {
	out := make([][]Event, len(d.Signals))
	for i := range d.Signals {
		out[i] = ForSignal(&d.Signals[i], d.Time)
	}
	return out
}

// ForSignal computes one signal's resolved timeline over the window
// [t.Start, t.End]. The result always begins with an event at t.Start
// carrying the state held there, is strictly increasing in time, and
// contains no events past t.End.
func ForSignal(sig *diagram.Signal, t diagram.TimeSettings) []Event {
	if sig.Kind == diagram.KindClock {
		return clockEvents(sig, t)
	}
	return changeEvents(sig, t)
}

// changeEvents resolves a line or bus signal's declared changes.
// Changes may be declared out of order; they are sorted stably so that of
// two changes at the same time the last-declared one wins.
func changeEvents(sig *diagram.Signal, t diagram.TimeSettings) []Event {
	sorted := make([]diagram.Change, len(sig.Changes))
	copy(sorted, sig.Changes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})

	// Collapse duplicates, keeping the later declaration.
	deduped := sorted[:0]
	for _, ch := range sorted {
		if n := len(deduped); n > 0 && deduped[n-1].Time == ch.Time {
			deduped[n-1] = ch
			continue
		}
		deduped = append(deduped, ch)
	}

	// The state at the window start is the last change at or before it,
	// or the declared start value when there is none.
	state := sig.Start
	rest := deduped
	for len(rest) > 0 && rest[0].Time <= t.Start {
		state = rest[0].Value
		rest = rest[1:]
	}

	events := []Event{{Time: t.Start, Value: state}}
	for _, ch := range rest {
		if ch.Time > t.End {
			break
		}
		events = append(events, Event{Time: ch.Time, Value: ch.Value})
	}
	return events
}

// clockEvents synthesizes the periodic events of a clock signal.
//
// Cycle n begins at offset + n*length and the signal is high for the
// first trunc(duty*length) time units of it. Truncation is the one
// rounding policy used everywhere, so edge placement and the state
// computed at the window start always agree. The global delay plays no
// part here; slopes are purely a rendering concern.
func clockEvents(sig *diagram.Signal, t diagram.TimeSettings) []Event {
	highLen := int(sig.Duty * float64(sig.Length))
	if highLen <= 0 {
		// The duty cycle truncates to less than one time unit of high
		// state; the clock never leaves zero.
		return []Event{{Time: t.Start, Value: diagram.ZeroValue}}
	}

	phase := mod(t.Start-sig.Offset, sig.Length)
	state := diagram.ZeroValue
	if phase < highLen {
		state = diagram.OneValue
	}
	events := []Event{{Time: t.Start, Value: state}}

	// Walk whole cycles from the one containing the window start.
	for n := floorDiv(t.Start-sig.Offset, sig.Length); ; n++ {
		rise := sig.Offset + n*sig.Length
		if rise > t.End {
			break
		}
		if rise > t.Start {
			events = append(events, Event{Time: rise, Value: diagram.OneValue})
		}
		if fall := rise + highLen; fall > t.Start && fall <= t.End {
			events = append(events, Event{Time: fall, Value: diagram.ZeroValue})
		}
	}
	return events
}

// StateAt returns the value a resolved timeline holds at time instant t.
// Times before the first event return the first event's value.
func StateAt(events []Event, t int) diagram.Value {
	state := events[0].Value
	for _, ev := range events {
		if ev.Time > t {
			break
		}
		state = ev.Value
	}
	return state
}

// mod is the mathematical modulo: the result is always in [0, m)
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
