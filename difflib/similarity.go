package difflib

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	gtfobins "github.com/t0thkr1s/gtfobins-cli"
)

// Ensure Similarity implements gtfobins.Similarity at compile time.
var _ gtfobins.Similarity = (*Similarity)(nil)

// Similarity computes Ratcliff/Obershelp similarity ratios using
// difflib's sequence matcher over single characters, matching the
// behavior of Python's difflib.SequenceMatcher.ratio().
type Similarity struct{}

// NewSimilarity returns a new Similarity.
func NewSimilarity() *Similarity {
	return &Similarity{}
}

// Ratio returns the normalized similarity of a and b in [0,1]: twice the
// number of matching characters over the total number of characters.
func (*Similarity) Ratio(a, b string) float64 {
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}
