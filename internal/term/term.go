// Package term styles driver output for the terminal.
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/sergev/golox/parser"
)

// Colors
var (
	colorError = lipgloss.Color("9")
	colorMuted = lipgloss.Color("8")
)

// Styles
var (
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	GutterStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	CaretStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)
)

// SetColorMode applies the configured color mode. "never" forces plain
// output, "always" keeps ANSI styling even without a terminal, and
// "auto" leaves profile detection alone.
func SetColorMode(mode string) {
	switch mode {
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

// RenderDiagnostic renders one diagnostic as a caret block:
//
//	error at 1:7: unterminated string
//
//	   1 | ~ "test
//	     |        ^
//
// The caret column is clamped to the line so malformed positions still
// render.
func RenderDiagnostic(d parser.Diagnostic) string {
	pad := d.Column
	if pad < 0 {
		pad = 0
	}
	if pad > len(d.LineText) {
		pad = len(d.LineText)
	}
	var b strings.Builder
	label := LabelStyle.Render(fmt.Sprintf("error at %d:%d:", d.Line, d.Column))
	fmt.Fprintf(&b, "%s %s\n\n", label, d.Message)
	gutter := GutterStyle.Render(fmt.Sprintf("%4d |", d.Line))
	fmt.Fprintf(&b, "%s %s\n", gutter, d.LineText)
	blank := GutterStyle.Render("     |")
	fmt.Fprintf(&b, "%s %s%s", blank, strings.Repeat(" ", pad), CaretStyle.Render("^"))
	return b.String()
}
