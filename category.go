package gtfobins

import "strings"

// Category identifies one kind of exploitation technique.
type Category string

// The closed set of technique categories, in canonical order. Record
// files must not use category keys outside this set, and filter values
// outside it are rejected before any record is read.
const (
	CategoryShell                      Category = "shell"
	CategoryCommand                    Category = "command"
	CategoryReverseShell               Category = "reverse-shell"
	CategoryNonInteractiveReverseShell Category = "non-interactive-reverse-shell"
	CategoryBindShell                  Category = "bind-shell"
	CategoryNonInteractiveBindShell    Category = "non-interactive-bind-shell"
	CategoryFileUpload                 Category = "file-upload"
	CategoryFileDownload               Category = "file-download"
	CategoryFileWrite                  Category = "file-write"
	CategoryFileRead                   Category = "file-read"
	CategoryLibraryLoad                Category = "library-load"
	CategorySUID                       Category = "suid"
	CategorySudo                       Category = "sudo"
	CategoryCapabilities               Category = "capabilities"
	CategoryLimitedSUID                Category = "limited-suid"
)

// categories lists every valid category in canonical order.
var categories = []Category{
	CategoryShell,
	CategoryCommand,
	CategoryReverseShell,
	CategoryNonInteractiveReverseShell,
	CategoryBindShell,
	CategoryNonInteractiveBindShell,
	CategoryFileUpload,
	CategoryFileDownload,
	CategoryFileWrite,
	CategoryFileRead,
	CategoryLibraryLoad,
	CategorySUID,
	CategorySudo,
	CategoryCapabilities,
	CategoryLimitedSUID,
}

// Categories returns every valid category in canonical order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryList returns the valid category names joined for display,
// e.g. in help text and invalid-filter reports.
func CategoryList() string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// ParseCategory validates s against the closed category set. Matching is
// exact and case-sensitive. Returns EINVALID if s is not a valid
// category.
func ParseCategory(s string) (Category, error) {
	for _, c := range categories {
		if s == string(c) {
			return c, nil
		}
	}
	return "", Errorf(EINVALID, "unknown category %q", s)
}
