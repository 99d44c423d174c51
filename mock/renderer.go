package mock

import (
	"io"

	gtfobins "github.com/t0thkr1s/gtfobins-cli"
)

var _ gtfobins.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of gtfobins.Renderer.
type Renderer struct {
	RenderFn func(w io.Writer, rec *gtfobins.Record, filter gtfobins.Category) error
}

func (r *Renderer) Render(w io.Writer, rec *gtfobins.Record, filter gtfobins.Category) error {
	return r.RenderFn(w, rec, filter)
}
