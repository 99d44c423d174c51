package color

import (
	"strings"

	"github.com/fatih/color"

	gtfobins "github.com/t0thkr1s/gtfobins-cli"
)

// Ensure Styler implements gtfobins.Styler at compile time.
var _ gtfobins.Styler = (*Styler)(nil)

// Styler renders the presentation styles with ANSI colors. Color output
// is force-enabled on each color value rather than left to the
// library's global TTY detection; the capability decision is made once
// at startup by whoever constructs the Styler.
type Styler struct {
	bold  *color.Color
	star  *color.Color
	dash  *color.Color
	title *color.Color
	dim   *color.Color
}

// NewStyler returns a Styler with color output enabled.
func NewStyler() *Styler {
	s := &Styler{
		bold:  color.New(color.Bold),
		star:  color.New(color.FgGreen, color.Bold),
		dash:  color.New(color.FgRed, color.Bold),
		title: color.New(color.FgCyan, color.Bold),
		dim:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{s.bold, s.star, s.dash, s.title, s.dim} {
		c.EnableColor()
	}
	return s
}

// Style implements gtfobins.Styler. The templates match PlainStyler's
// exactly; only the coloring differs.
func (s *Styler) Style(kind gtfobins.StyleKind, text string) string {
	switch kind {
	case gtfobins.StyleInfo:
		return s.bold.Sprint("[ ") + s.star.Sprint("*") + s.bold.Sprint(" ] ") + text
	case gtfobins.StyleFail:
		return s.bold.Sprint("[ ") + s.dash.Sprint("-") + s.bold.Sprint(" ] ") + text
	case gtfobins.StyleTitle:
		return "\n" + s.bold.Sprint("---------- [ ") + s.title.Sprint(text) + s.bold.Sprint(" ] ----------") + "\n"
	case gtfobins.StyleDescription:
		return s.dim.Sprint("# " + text)
	case gtfobins.StyleDivider:
		return "\n" + s.bold.Sprint(strings.Repeat(" - ", 10)) + "\n"
	}
	return text
}
