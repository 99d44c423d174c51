// Package render formats resolved records for terminal display.
package render

import (
	"fmt"
	"io"
	"strings"

	gtfobins "github.com/t0thkr1s/gtfobins-cli"
)

// Ensure Renderer implements gtfobins.Renderer at compile time.
var _ gtfobins.Renderer = (*Renderer)(nil)

// Renderer writes a record's techniques as styled text blocks. The
// Styler decides how each block looks; the Highlighter colors shell
// code. Both are chosen once at startup based on terminal capability.
type Renderer struct {
	Styler      gtfobins.Styler
	Highlighter gtfobins.Highlighter
}

// NewRenderer returns a Renderer using the given styler and highlighter.
func NewRenderer(styler gtfobins.Styler, highlighter gtfobins.Highlighter) *Renderer {
	return &Renderer{Styler: styler, Highlighter: highlighter}
}

// Render writes rec to w: an informational header, the record
// description if present, then every technique group in storage order
// with a divider between entries of the same category, and a closing
// line. A non-empty filter restricts output to that single category;
// if the record has no techniques of that kind, Render reports the
// failure after the header and returns EEMPTY without any technique
// content.
func (r *Renderer) Render(w io.Writer, rec *gtfobins.Record, filter gtfobins.Category) error {
	fmt.Fprintln(w, r.Styler.Style(gtfobins.StyleInfo, "Supplied binary: "+rec.Name))

	if rec.Description != "" {
		fmt.Fprintln(w, "\n"+r.Styler.Style(gtfobins.StyleDescription, rec.Description))
	}

	groups := rec.Groups
	if filter != "" {
		g := rec.Group(filter)
		if g == nil {
			fmt.Fprintln(w, r.Styler.Style(gtfobins.StyleFail, fmt.Sprintf("No '%s' techniques for %s", filter, rec.Name)))
			return gtfobins.Errorf(gtfobins.EEMPTY, "no %s techniques for %q", filter, rec.Name)
		}
		groups = []gtfobins.TechniqueGroup{*g}
	}

	for _, group := range groups {
		fmt.Fprintln(w, r.Styler.Style(gtfobins.StyleTitle, strings.ToUpper(string(group.Category))))

		for i, technique := range group.Techniques {
			if technique.Description != "" {
				fmt.Fprintln(w, r.Styler.Style(gtfobins.StyleDescription, technique.Description)+"\n")
			}
			fmt.Fprintln(w, r.highlight(technique.Code))
			if i != len(group.Techniques)-1 {
				fmt.Fprintln(w, r.Styler.Style(gtfobins.StyleDivider, ""))
			}
		}
	}

	fmt.Fprintln(w, "\n"+r.Styler.Style(gtfobins.StyleInfo, "Goodbye, friend."))
	return nil
}

// highlight colors code for the terminal, falling back to the raw code
// when highlighting fails. Outer whitespace is trimmed either way.
func (r *Renderer) highlight(code string) string {
	out, err := r.Highlighter.Highlight(code)
	if err != nil {
		out = code
	}
	return strings.TrimSpace(out)
}
