// Package doctor inspects a record collection for integrity problems.
// The record store fails fast on the first corrupt file it touches; the
// doctor instead walks the whole collection permissively and reports
// everything it finds, so an operator can fix a broken data directory
// in one pass.
package doctor

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"mvdan.cc/sh/v3/syntax"

	gtfobins "github.com/t0thkr1s/gtfobins-cli"
)

// recordExt is the filename extension of record files.
const recordExt = ".json"

// Problem describes an integrity violation in one record file. Any
// problem means lookups against that file would fail, so problems fail
// the check.
type Problem struct {
	Name   string
	Detail string
}

// Warning describes a suspect finding that does not break lookups.
type Warning struct {
	Name   string
	Detail string
}

// Report summarizes one integrity check over a collection.
type Report struct {
	ID         string
	Records    int
	Techniques int
	Categories map[gtfobins.Category]int
	Problems   []Problem
	Warnings   []Warning
}

// OK reports whether the collection passed the check. Warnings alone do
// not fail a collection.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// Checker validates every record file in a collection.
type Checker struct {
	fsys   fs.FS
	parser *syntax.Parser
}

// NewChecker returns a Checker over fsys.
func NewChecker(fsys fs.FS) *Checker {
	return &Checker{
		fsys:   fsys,
		parser: syntax.NewParser(syntax.KeepComments(false), syntax.Variant(syntax.LangBash)),
	}
}

// Check reads every record file and returns a Report of all problems
// and warnings found. A finding in one file never hides findings in the
// files after it; the returned error is non-nil only when the
// collection itself cannot be read.
func (c *Checker) Check(ctx context.Context) (*Report, error) {
	entries, err := fs.ReadDir(c.fsys, ".")
	if err != nil {
		return nil, gtfobins.Errorf(gtfobins.EINTERNAL, "read collection: %v", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), recordExt))
	}
	sort.Strings(names)

	report := &Report{
		ID:         uuid.New().String(),
		Categories: make(map[gtfobins.Category]int),
	}
	seen := make(map[uint64]string)
	for _, name := range names {
		c.checkRecord(report, seen, name)
	}
	return report, nil
}

// checkRecord examines a single record file, appending its findings to
// report. seen maps code hashes to the technique that introduced them,
// shared across the whole collection for duplicate detection.
func (c *Checker) checkRecord(report *Report, seen map[uint64]string, name string) {
	data, err := fs.ReadFile(c.fsys, name+recordExt)
	if err != nil {
		report.problem(name, fmt.Sprintf("unreadable: %v", err))
		return
	}
	report.Records++

	if !gjson.ValidBytes(data) {
		report.problem(name, "not valid JSON")
		return
	}

	doc := gjson.ParseBytes(data)
	if desc := doc.Get("description"); desc.Exists() && desc.Type != gjson.String {
		report.problem(name, "description is not a string")
	}

	functions := doc.Get("functions")
	if !functions.Exists() || !functions.IsObject() {
		report.problem(name, "no functions object")
		return
	}

	functions.ForEach(func(key, value gjson.Result) bool {
		category := gtfobins.Category(key.String())
		if _, err := gtfobins.ParseCategory(key.String()); err != nil {
			report.problem(name, fmt.Sprintf("unknown category %q", key.String()))
			return true
		}
		if !value.IsArray() {
			report.problem(name, fmt.Sprintf("category %q is not a list", key.String()))
			return true
		}

		value.ForEach(func(idx, entry gjson.Result) bool {
			code := entry.Get("code").String()
			if code == "" {
				report.problem(name, fmt.Sprintf("category %q entry %d has no code", key.String(), idx.Int()))
				return true
			}
			report.Techniques++
			report.Categories[category]++
			c.checkCode(report, seen, name, category, code)
			return true
		})
		return true
	})
}

// checkCode flags shell code that bash cannot parse and code shared
// verbatim between techniques.
func (c *Checker) checkCode(report *Report, seen map[uint64]string, name string, category gtfobins.Category, code string) {
	if _, err := c.parser.Parse(strings.NewReader(code), ""); err != nil {
		report.warn(name, fmt.Sprintf("category %q code does not parse as bash: %v", category, err))
	}

	sum := xxhash.Sum64String(code)
	if first, ok := seen[sum]; ok {
		report.warn(name, fmt.Sprintf("category %q code duplicates %s", category, first))
		return
	}
	seen[sum] = fmt.Sprintf("%s (%s)", name, category)
}

func (r *Report) problem(name, detail string) {
	r.Problems = append(r.Problems, Problem{Name: name, Detail: detail})
}

func (r *Report) warn(name, detail string) {
	r.Warnings = append(r.Warnings, Warning{Name: name, Detail: detail})
}
