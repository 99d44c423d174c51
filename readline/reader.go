package readline

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"

	gtfobins "github.com/t0thkr1s/gtfobins-cli"
)

// Ensure Reader implements gtfobins.LineReader at compile time.
var _ gtfobins.LineReader = (*Reader)(nil)

// Reader implements gtfobins.LineReader with chzyer/readline, providing
// line editing and tab completion over a fixed suggestion list.
type Reader struct {
	rl *readline.Instance
}

// NewReader returns a Reader prompting with prompt and completing from
// suggestions. Returns EUNAVAILABLE when the terminal cannot support
// line editing; interactive mode declines to start in that case.
func NewReader(prompt string, suggestions []string) (*Reader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       prompt,
		AutoComplete: completer(suggestions),
	})
	if err != nil {
		return nil, gtfobins.Errorf(gtfobins.EUNAVAILABLE, "interactive mode requires a terminal with line editing: %v", err)
	}
	return &Reader{rl: rl}, nil
}

// ReadLine returns the next input line. Interrupts and end-of-input
// both report io.EOF so the session loop ends the same way for Ctrl+C
// and Ctrl+D.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", io.EOF
	} else if err != nil {
		return "", err
	}
	return line, nil
}

// Close releases the terminal.
func (r *Reader) Close() error {
	return r.rl.Close()
}

// completer offers case-insensitive prefix completion over a name list.
type completer []string

// Do implements readline.AutoCompleter. It returns the suffixes that
// complete the word under the cursor and the length of the matched
// prefix.
func (c completer) Do(line []rune, pos int) ([][]rune, int) {
	prefix := strings.ToLower(string(line[:pos]))

	var suggestions [][]rune
	for _, name := range c {
		if strings.HasPrefix(strings.ToLower(name), prefix) {
			suggestions = append(suggestions, []rune(name[len(prefix):]))
		}
	}
	return suggestions, len(prefix)
}
