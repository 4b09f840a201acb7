package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic is a source-located defect reported by the scanner or the
// parser. It carries the offending line's text so callers can render a
// caret under the column without re-reading the source.
type Diagnostic struct {
	Message  string
	LineText string
	Line     int // one-based
	Column   int // zero-based byte offset within the line

	// Incomplete marks defects caused by the input ending too early,
	// such as an unterminated string. A REPL can read further lines
	// instead of reporting.
	Incomplete bool
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Message)
}

// Snippet renders the offending line with a caret under the column.
func (d Diagnostic) Snippet() string {
	pad := d.Column
	if pad < 0 {
		pad = 0
	}
	if pad > len(d.LineText) {
		pad = len(d.LineText)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%4d | %s\n", d.Line, d.LineText)
	fmt.Fprintf(&b, "     | %s^", strings.Repeat(" ", pad))
	return b.String()
}

// ErrorList is an ordered collection of diagnostics, in discovery order.
// A non-empty ErrorList satisfies error.
type ErrorList []Diagnostic

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].String()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
}

// Err returns the list as an error, or nil when it is empty.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// IsIncomplete reports whether err is an ErrorList whose diagnostics all
// stem from the input ending too early, meaning the source may parse once
// more text arrives.
func IsIncomplete(err error) bool {
	var list ErrorList
	if !errors.As(err, &list) || len(list) == 0 {
		return false
	}
	for _, d := range list {
		if !d.Incomplete {
			return false
		}
	}
	return true
}

// lineAt returns the text of the line beginning at start, without its
// trailing newline.
func lineAt(src string, start int) string {
	if start < 0 {
		start = 0
	}
	if start > len(src) {
		start = len(src)
	}
	rest := src[start:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		return rest[:i]
	}
	return rest
}
