package parse

import (
	"strings"
	"unicode"
)

// line is a comment-stripped source line with its 1-based number
type line struct {
	num  int
	text string
}

// block is a header line plus the body lines that follow it
type block struct {
	kind   string // "time", "style", "line", "bus" or "clock"
	label  string // Raw signal label, empty for basic blocks
	header line
	body   []line
}

// basicBlockKinds are the block types that take no label
var basicBlockKinds = map[string]bool{
	"time":  true,
	"style": true,
}

// signalBlockKinds are the block types that require a label
var signalBlockKinds = map[string]bool{
	"line":  true,
	"bus":   true,
	"clock": true,
}

// splitBlocks splits source text into ordered blocks. Blank lines and
// whole-line comments (first non-space character '#') are dropped. A
// header is a line whose last character is a colon; the label runs from
// the end of the block-type token to that final colon, so labels may
// themselves contain colons.
func splitBlocks(source string) ([]block, error) {
	var blocks []block
	current := -1

	for i, raw := range strings.Split(source, "\n") {
		ln := line{num: i + 1, text: strings.TrimSpace(raw)}
		if ln.text == "" || strings.HasPrefix(ln.text, "#") {
			continue
		}

		if !strings.HasSuffix(ln.text, ":") {
			if current < 0 {
				return nil, errorf(OrphanLine, ln, "line outside of any block")
			}
			blocks[current].body = append(blocks[current].body, ln)
			continue
		}

		head := ln.text[:len(ln.text)-1]
		if head == "" {
			return nil, errorf(MalformedHeader, ln, "block header without a type")
		}

		kind, label := head, ""
		if idx := strings.IndexFunc(head, unicode.IsSpace); idx >= 0 {
			kind, label = head[:idx], strings.TrimSpace(head[idx+1:])
		}
		switch {
		case basicBlockKinds[kind]:
			if label != "" {
				return nil, errorf(MalformedHeader, ln, "a %s block takes no label", kind)
			}
		case signalBlockKinds[kind]:
			if label == "" {
				return nil, errorf(MalformedHeader, ln, "a %s block requires a label", kind)
			}
		default:
			return nil, errorf(UnknownBlockKind, ln,
				"unknown block type %q; valid types are time, style, clock, line and bus", kind)
		}

		blocks = append(blocks, block{kind: kind, label: label, header: ln})
		current = len(blocks) - 1
	}

	return blocks, nil
}
