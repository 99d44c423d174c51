package gtfobins

import "context"

// Technique is one concrete exploitation example within a category. Code
// may contain placeholders the user substitutes manually; nothing is
// ever executed.
type Technique struct {
	Description string `json:"description,omitempty"`
	Code        string `json:"code"`
}

// TechniqueGroup holds the ordered techniques a record stores under one
// category.
type TechniqueGroup struct {
	Category   Category
	Techniques []Technique
}

// Record is the stored knowledge for one binary. Groups preserve the
// order categories appear in the record file. Records are immutable
// once loaded.
type Record struct {
	Name        string
	Description string
	Groups      []TechniqueGroup
}

// Group returns the technique group for category c, or nil if the record
// has no techniques of that kind.
func (r *Record) Group(c Category) *TechniqueGroup {
	for i := range r.Groups {
		if r.Groups[i].Category == c {
			return &r.Groups[i]
		}
	}
	return nil
}

// Categories returns the record's categories in storage order.
func (r *Record) Categories() []Category {
	out := make([]Category, len(r.Groups))
	for i, g := range r.Groups {
		out[i] = g.Category
	}
	return out
}

// Validate returns an error if the record violates the storage contract.
// Violations are data-integrity failures, not user errors.
func (r *Record) Validate() error {
	if r.Name == "" {
		return Errorf(ECORRUPT, "record name required")
	}
	for _, g := range r.Groups {
		if _, err := ParseCategory(string(g.Category)); err != nil {
			return Errorf(ECORRUPT, "record %q: unknown category %q", r.Name, g.Category)
		}
		for i, t := range g.Techniques {
			if t.Code == "" {
				return Errorf(ECORRUPT, "record %q: %s technique %d has no code", r.Name, g.Category, i+1)
			}
		}
	}
	return nil
}

// RecordService provides read access to the record collection. The
// collection is read-only for the life of the process.
type RecordService interface {
	// ListNames returns every binary name in the collection, sorted
	// lexicographically and deduplicated.
	ListNames(ctx context.Context) ([]string, error)

	// FindRecord loads the record for the named binary.
	// Returns ENOTFOUND if no record exists for name, ECORRUPT if the
	// record file fails to parse.
	FindRecord(ctx context.Context, name string) (*Record, error)

	// Index scans every record and returns the derived category index.
	Index(ctx context.Context) (Index, error)

	// NamesWithCategory returns the sorted names of binaries offering at
	// least one technique in category c.
	NamesWithCategory(ctx context.Context, c Category) ([]string, error)
}
