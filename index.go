package gtfobins

import "sort"

// Index maps each binary name to the categories it offers. It is
// derived from record content, rebuilt on demand, and never persisted.
// It answers "which binaries support category X" without exposing full
// record content.
type Index map[string][]Category

// Names returns every indexed binary name, sorted.
func (ix Index) Names() []string {
	names := make([]string, 0, len(ix))
	for name := range ix {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithCategory returns the sorted names of binaries offering category c.
func (ix Index) WithCategory(c Category) []string {
	names := make([]string, 0, len(ix))
	for name, cats := range ix {
		for _, have := range cats {
			if have == c {
				names = append(names, name)
				break
			}
		}
	}
	sort.Strings(names)
	return names
}
