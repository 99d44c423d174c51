package gtfobins

import "io"

// Renderer presents a resolved record as terminal output. A non-empty
// filter restricts the output to that single category; Render returns
// EEMPTY when the record has nothing of that kind.
type Renderer interface {
	Render(w io.Writer, rec *Record, filter Category) error
}
