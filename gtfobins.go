// Package gtfobins provides a local, CLI-based lookup tool over the
// GTFOBins catalog of Unix binaries and their security-bypass
// techniques. It resolves a binary name, fuzzy search term, or
// exploitation-category filter against a collection of per-binary JSON
// records and renders the matching techniques with syntax-highlighted
// shell code.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., gjson/,
// chroma/, readline/).
package gtfobins

// Version is the current release version.
const Version = "1.1.0"
