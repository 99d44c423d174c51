package mock

import (
	"io"

	gtfobins "github.com/t0thkr1s/gtfobins-cli"
)

var _ gtfobins.LineReader = (*LineReader)(nil)

// LineReader is a mock implementation of gtfobins.LineReader.
type LineReader struct {
	ReadLineFn func() (string, error)
	CloseFn    func() error
}

func (r *LineReader) ReadLine() (string, error) {
	return r.ReadLineFn()
}

func (r *LineReader) Close() error {
	if r.CloseFn == nil {
		return nil
	}
	return r.CloseFn()
}

// Lines returns a LineReader that replays the given lines in order and
// then reports io.EOF. Close is a no-op.
func Lines(lines ...string) *LineReader {
	i := 0
	return &LineReader{
		ReadLineFn: func() (string, error) {
			if i >= len(lines) {
				return "", io.EOF
			}
			line := lines[i]
			i++
			return line, nil
		},
	}
}
