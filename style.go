package gtfobins

import "strings"

// StyleKind names one of the presentation styles used for terminal
// output.
type StyleKind int

// The presentation styles. Every user-facing line is rendered through
// exactly one of these.
const (
	// StyleInfo marks an informational status line.
	StyleInfo StyleKind = iota

	// StyleFail marks a failure report.
	StyleFail

	// StyleTitle frames a category heading.
	StyleTitle

	// StyleDescription marks free-text descriptions, visually muted to
	// stand apart from code.
	StyleDescription

	// StyleDivider separates techniques within a category. The text
	// argument is ignored.
	StyleDivider
)

// Styler renders text in a named presentation style. Implementations
// are pure functions from (kind, text) to styled text and must not
// write to any stream; capability decisions (color support) happen once
// at startup when the concrete Styler is chosen.
type Styler interface {
	Style(kind StyleKind, text string) string
}

// Ensure PlainStyler implements Styler at compile time.
var _ Styler = PlainStyler{}

// PlainStyler renders every style without color or emphasis. It is the
// fallback used when the output stream does not support ANSI styling.
type PlainStyler struct{}

// Style implements Styler using the bare style templates.
func (PlainStyler) Style(kind StyleKind, text string) string {
	switch kind {
	case StyleInfo:
		return "[ * ] " + text
	case StyleFail:
		return "[ - ] " + text
	case StyleTitle:
		return "\n---------- [ " + text + " ] ----------\n"
	case StyleDescription:
		return "# " + text
	case StyleDivider:
		return "\n" + strings.Repeat(" - ", 10) + "\n"
	}
	return text
}
