package gtfobins

import "strings"

// FormatColumns lays names out in a fixed-width multi-column layout.
// Column width is the longest name in names plus two spaces of padding,
// every cell is left-justified, and each row is prefixed with two
// spaces. Returns the empty string when names is empty. A non-positive
// column count falls back to four columns.
func FormatColumns(names []string, columns int) string {
	if len(names) == 0 {
		return ""
	}
	if columns <= 0 {
		columns = 4
	}

	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	width += 2

	var b strings.Builder
	for i := 0; i < len(names); i += columns {
		row := names[i:min(i+columns, len(names))]
		b.WriteString("  ")
		for _, name := range row {
			b.WriteString(name)
			b.WriteString(strings.Repeat(" ", width-len(name)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
