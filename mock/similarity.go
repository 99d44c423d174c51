package mock

import gtfobins "github.com/t0thkr1s/gtfobins-cli"

var _ gtfobins.Similarity = (*Similarity)(nil)

// Similarity is a mock implementation of gtfobins.Similarity.
type Similarity struct {
	RatioFn func(a, b string) float64
}

func (s *Similarity) Ratio(a, b string) float64 {
	return s.RatioFn(a, b)
}
