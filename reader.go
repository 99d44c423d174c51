package gtfobins

// LineReader reads lines of interactive user input with completion
// suggestions. ReadLine returns io.EOF when input is exhausted or the
// user interrupts the session; both end the session cleanly.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// LineReaderFactory builds a LineReader whose completion suggestions
// are drawn from names. Returns EUNAVAILABLE when line editing is not
// possible on the current terminal; interactive mode declines to start
// in that case.
type LineReaderFactory func(names []string) (LineReader, error)
