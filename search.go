package gtfobins

import (
	"sort"
	"strings"
)

// DefaultThreshold is the minimum score a candidate must reach to appear
// in fuzzy match results.
const DefaultThreshold = 0.4

// Similarity computes a normalized similarity ratio in [0,1] between two
// strings. Implementations must be deterministic; the matcher relies on
// identical inputs producing identical scores.
type Similarity interface {
	Ratio(a, b string) float64
}

// Score rates how well candidate matches query, case-insensitively.
// An exact match scores 1.0 and a substring match 0.9 regardless of the
// underlying similarity metric; everything else scores sim.Ratio.
func Score(query, candidate string, sim Similarity) float64 {
	q := strings.ToLower(query)
	c := strings.ToLower(candidate)
	if q == c {
		return 1.0
	}
	if strings.Contains(c, q) {
		return 0.9
	}
	return sim.Ratio(q, c)
}

// FuzzyMatch returns the candidates scoring at least threshold against
// query, ordered by descending score with ties broken by ascending
// name. The ordering is deterministic: identical inputs always yield
// the identical sequence.
func FuzzyMatch(query string, candidates []string, threshold float64, sim Similarity) []string {
	type scored struct {
		name  string
		score float64
	}

	results := make([]scored, 0, len(candidates))
	for _, candidate := range candidates {
		if s := Score(query, candidate, sim); s >= threshold {
			results = append(results, scored{name: candidate, score: s})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].name < results[j].name
	})

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.name
	}
	return names
}
