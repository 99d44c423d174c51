package gtfobins

// Highlighter applies terminal syntax highlighting to shell code.
// Highlighting is cosmetic: callers must fall back to the raw code when
// Highlight returns an error, so a failure never hides a technique.
type Highlighter interface {
	Highlight(code string) (string, error)
}

// Ensure NopHighlighter implements Highlighter at compile time.
var _ Highlighter = NopHighlighter{}

// NopHighlighter returns code unchanged. Used when the output stream
// does not support ANSI colors.
type NopHighlighter struct{}

// Highlight implements Highlighter without any transformation.
func (NopHighlighter) Highlight(code string) (string, error) {
	return code, nil
}
