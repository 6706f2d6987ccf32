// Package parse turns timing diagram source text into a diagram model.
//
// The grammar is line-oriented: a header line opens a block and every
// following line belongs to it. Basic blocks (time, style) hold property
// assignments with plain values; signal blocks (line, bus, clock) hold
// property assignments and change lines whose value syntax depends on the
// signal kind. Signal statements are parsed with a participle grammar;
// basic-block properties are split by hand because their values may be
// raw strings such as font names.
package parse

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/max99x/drawtime/pkg/diagram"
)

// colorPattern validates RRGGBB color property values
var colorPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// Parse parses diagram source text into a validated diagram model.
// The first error encountered aborts parsing; no partial diagram is ever
// returned.
func Parse(source string) (*diagram.Diagram, error) {
	blocks, err := splitBlocks(source)
	if err != nil {
		return nil, err
	}

	d := diagram.New()
	seenTime, seenStyle := false, false

	for _, blk := range blocks {
		switch blk.kind {
		case "time":
			if seenTime {
				return nil, errorf(DuplicateBasicBlock, blk.header, "duplicate time block")
			}
			seenTime = true
			if err := parseTimeBlock(d, blk); err != nil {
				return nil, err
			}
		case "style":
			if seenStyle {
				return nil, errorf(DuplicateBasicBlock, blk.header, "duplicate style block")
			}
			seenStyle = true
			if err := parseStyleBlock(d, blk); err != nil {
				return nil, err
			}
		default:
			sig, err := parseSignalBlock(blk)
			if err != nil {
				return nil, err
			}
			d.Signals = append(d.Signals, *sig)
		}
	}

	if err := validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

// ParseFile reads and parses a diagram source file
func ParseFile(path string) (*diagram.Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{
			Kind:    IOFailure,
			Message: fmt.Sprintf("reading %s: %v", path, err),
			Cause:   err,
		}
	}
	return Parse(string(data))
}

// splitProp splits a basic-block property line on its '=' sign
func splitProp(ln line) (key, value string, err error) {
	key, value, found := strings.Cut(ln.text, "=")
	if !found {
		return "", "", errorf(InvalidPropertyValue, ln, "expected <key> = <value>")
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), nil
}

// parsePropInt parses an integer property value
func parsePropInt(raw string, ln line) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errorf(InvalidPropertyValue, ln, "%q is not a valid integer", raw)
	}
	return n, nil
}

// parseColor parses an RRGGBB color property value
func parseColor(raw string, ln line) (diagram.RGB, error) {
	if !colorPattern.MatchString(raw) {
		return diagram.RGB{}, errorf(InvalidColor, ln,
			"%q is not a valid color; colors use the RRGGBB format", raw)
	}
	n, _ := strconv.ParseUint(raw, 16, 32)
	return diagram.RGB{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}

// parseTimeBlock applies a time block's properties onto the diagram.
// Duplicate assignments overwrite; the last one wins.
func parseTimeBlock(d *diagram.Diagram, blk block) error {
	for _, ln := range blk.body {
		key, value, err := splitProp(ln)
		if err != nil {
			return err
		}
		n, err := parsePropInt(value, ln)
		if err != nil {
			return err
		}
		switch key {
		case "start":
			d.Time.Start = n
		case "end":
			d.Time.End = n
		case "step":
			d.Time.Step = n
			d.Time.HasStep = true
		case "delay":
			d.Time.Delay = n
		default:
			return errorf(UnknownProperty, ln, "unknown time property %q", key)
		}
	}
	return nil
}

// parseStyleBlock applies a style block's properties onto the diagram
func parseStyleBlock(d *diagram.Diagram, blk block) error {
	for _, ln := range blk.body {
		key, value, err := splitProp(ln)
		if err != nil {
			return err
		}
		switch key {
		case "width", "height", "margin", "font_size":
			n, err := parsePropInt(value, ln)
			if err != nil {
				return err
			}
			switch key {
			case "width":
				d.Style.Width = n
			case "height":
				d.Style.Height = n
			case "margin":
				d.Style.Margin = n
			case "font_size":
				d.Style.FontSize = n
			}
		case "font_family":
			d.Style.FontFamily = value
		case "background", "foreground":
			c, err := parseColor(value, ln)
			if err != nil {
				return err
			}
			if key == "background" {
				d.Style.Background = c
			} else {
				d.Style.Foreground = c
			}
		default:
			return errorf(UnknownProperty, ln, "unknown style property %q", key)
		}
	}
	return nil
}

// parseSignalBlock parses one signal block into a Signal
func parseSignalBlock(blk block) (*diagram.Signal, error) {
	sig := &diagram.Signal{
		Label: diagram.SegmentLabel(blk.label),
		Start: diagram.UnknownValue,
	}
	switch blk.kind {
	case "line":
		sig.Kind = diagram.KindLine
	case "bus":
		sig.Kind = diagram.KindBus
	case "clock":
		sig.Kind = diagram.KindClock
		sig.Duty = 0.5
	}

	for _, ln := range blk.body {
		stmt, err := signalParser.ParseString("", ln.text)
		if err != nil {
			if strings.Contains(ln.text, "->") {
				return nil, errorf(MalformedChangeLine, ln, "expected <time> -> <value>")
			}
			return nil, errorf(InvalidPropertyValue, ln, "expected <key> = <value>")
		}

		switch {
		case stmt.Change != nil:
			if sig.Kind == diagram.KindClock {
				return nil, errorf(MalformedChangeLine, ln,
					"clock signals do not take change lines")
			}
			value, err := signalValue(stmt.Change.Value, sig.Kind, ln)
			if err != nil {
				return nil, err
			}
			sig.Changes = append(sig.Changes, diagram.Change{Time: stmt.Change.Time, Value: value})

		case stmt.Prop != nil:
			if err := applySignalProp(sig, stmt.Prop, ln); err != nil {
				return nil, err
			}
		}
	}
	return sig, nil
}

// applySignalProp applies a property assignment to a signal.
// Duplicate assignments overwrite; the last one wins.
func applySignalProp(sig *diagram.Signal, prop *propStmt, ln line) error {
	if sig.Kind != diagram.KindClock {
		if prop.Key != "start" {
			return errorf(UnknownProperty, ln,
				"unknown %s property %q", sig.Kind, prop.Key)
		}
		value, err := signalValue(prop.Value, sig.Kind, ln)
		if err != nil {
			return err
		}
		sig.Start = value
		return nil
	}

	switch prop.Key {
	case "length":
		if prop.Value.Int == nil {
			return errorf(InvalidPropertyValue, ln, "clock length must be an integer")
		}
		sig.Length = *prop.Value.Int
	case "offset":
		if prop.Value.Int == nil {
			return errorf(InvalidPropertyValue, ln, "clock offset must be an integer")
		}
		sig.Offset = *prop.Value.Int
	case "duty":
		switch {
		case prop.Value.Float != nil:
			sig.Duty = *prop.Value.Float
		case prop.Value.Int != nil:
			sig.Duty = float64(*prop.Value.Int)
		default:
			return errorf(InvalidPropertyValue, ln, "clock duty must be a number")
		}
	default:
		return errorf(UnknownProperty, ln, "unknown clock property %q", prop.Key)
	}
	return nil
}

// signalValue is the smart constructor for signal values. It rejects
// kind-mismatched variants here, at parse time, so later stages never see
// a data value on a line or a logic level on a bus.
func signalValue(expr valueExpr, kind diagram.SignalKind, ln line) (diagram.Value, error) {
	switch {
	case expr.Question:
		return diagram.UnknownValue, nil

	case expr.Ident != nil:
		if *expr.Ident == "Z" {
			return diagram.FloatingValue, nil
		}
		return diagram.Value{}, errorf(InvalidSignalValue, ln,
			"%q is not a valid %s value", *expr.Ident, kind)

	case expr.Int != nil:
		if *expr.Int != 0 && *expr.Int != 1 {
			return diagram.Value{}, errorf(InvalidSignalValue, ln,
				"%d is not a valid %s value", *expr.Int, kind)
		}
		if kind == diagram.KindBus {
			return diagram.Value{}, errorf(ValueKindMismatch, ln,
				"bus signals take quoted data values, not logic levels")
		}
		if *expr.Int == 1 {
			return diagram.OneValue, nil
		}
		return diagram.ZeroValue, nil

	case expr.Str != nil:
		if kind != diagram.KindBus {
			return diagram.Value{}, errorf(ValueKindMismatch, ln,
				"only bus signals take quoted data values")
		}
		text, ok := unquote(*expr.Str)
		if !ok {
			return diagram.Value{}, errorf(InvalidSignalValue, ln,
				`unsupported escape in quoted value; only \" and \\ are recognized`)
		}
		return diagram.DataValue(text), nil

	default:
		return diagram.Value{}, errorf(InvalidSignalValue, ln, "missing or invalid signal value")
	}
}

// unquote strips the surrounding quotes from a String token and resolves
// the documented escape set: backslash-quote and backslash-backslash.
// Any other escape is rejected rather than guessed at.
func unquote(raw string) (string, bool) {
	body := raw[1 : len(raw)-1]
	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' {
			i++
			if i >= len(body) || (body[i] != '"' && body[i] != '\\') {
				return "", false
			}
		}
		out = append(out, body[i])
	}
	return string(out), true
}

// validate checks range invariants that only make sense on the assembled
// model. These are reported as InvalidRange, distinct from parse errors.
func validate(d *diagram.Diagram) error {
	if d.Time.End <= d.Time.Start {
		return rangeErrorf("time end (%d) must be greater than start (%d)",
			d.Time.End, d.Time.Start)
	}
	if d.Time.Delay < 0 {
		return rangeErrorf("delay must not be negative, got %d", d.Time.Delay)
	}
	if d.Time.HasStep && d.Time.Step <= 0 {
		return rangeErrorf("step must be positive, got %d", d.Time.Step)
	}
	if d.Style.Width <= 0 {
		return rangeErrorf("width must be positive, got %d", d.Style.Width)
	}
	if d.Style.Height <= 0 {
		return rangeErrorf("height must be positive, got %d", d.Style.Height)
	}
	if d.Style.FontSize <= 0 {
		return rangeErrorf("font_size must be positive, got %d", d.Style.FontSize)
	}
	if d.Style.Margin < 0 {
		return rangeErrorf("margin must not be negative, got %d", d.Style.Margin)
	}
	if 2*d.Style.Margin >= d.Style.Width || 2*d.Style.Margin >= d.Style.Height {
		return rangeErrorf("margin (%d) must be less than half the diagram width and height",
			d.Style.Margin)
	}
	for i := range d.Signals {
		sig := &d.Signals[i]
		if sig.Kind != diagram.KindClock {
			continue
		}
		if sig.Length <= 0 {
			return rangeErrorf("clock %q length must be positive, got %d",
				sig.Label.Raw, sig.Length)
		}
		if sig.Duty <= 0 || sig.Duty >= 1 {
			return rangeErrorf("clock %q duty cycle must be within (0, 1) exclusive, got %g",
				sig.Label.Raw, sig.Duty)
		}
	}
	return nil
}
