package mock

import gtfobins "github.com/t0thkr1s/gtfobins-cli"

var _ gtfobins.Highlighter = (*Highlighter)(nil)

// Highlighter is a mock implementation of gtfobins.Highlighter.
type Highlighter struct {
	HighlightFn func(code string) (string, error)
}

func (h *Highlighter) Highlight(code string) (string, error) {
	return h.HighlightFn(code)
}
