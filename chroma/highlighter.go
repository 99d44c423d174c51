package chroma

import (
	"bytes"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	gtfobins "github.com/t0thkr1s/gtfobins-cli"
)

// Ensure Highlighter implements gtfobins.Highlighter at compile time.
var _ gtfobins.Highlighter = (*Highlighter)(nil)

// Highlighter colors shell code for true-color terminals using chroma's
// bash lexer with the igor style, mirroring pygments'
// TerminalTrueColorFormatter(style='igor').
type Highlighter struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
}

// NewHighlighter returns a new Highlighter.
// Returns EUNAVAILABLE if the lexer, style, or formatter is missing
// from the chroma registries; callers should fall back to plain output.
func NewHighlighter() (*Highlighter, error) {
	lexer := lexers.Get("bash")
	if lexer == nil {
		return nil, gtfobins.Errorf(gtfobins.EUNAVAILABLE, "bash lexer not available")
	}
	style := styles.Get("igor")
	if style == nil {
		return nil, gtfobins.Errorf(gtfobins.EUNAVAILABLE, "igor style not available")
	}
	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		return nil, gtfobins.Errorf(gtfobins.EUNAVAILABLE, "true-color terminal formatter not available")
	}
	return &Highlighter{
		lexer:     chroma.Coalesce(lexer),
		style:     style,
		formatter: formatter,
	}, nil
}

// Highlight returns code with ANSI true-color escapes applied.
func (h *Highlighter) Highlight(code string) (string, error) {
	iterator, err := h.lexer.Tokenise(nil, code)
	if err != nil {
		return "", gtfobins.Errorf(gtfobins.EINTERNAL, "tokenise code: %v", err)
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", gtfobins.Errorf(gtfobins.EINTERNAL, "format code: %v", err)
	}
	return buf.String(), nil
}
