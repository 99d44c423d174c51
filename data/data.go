// Package data ships the built-in record collection, one JSON file per
// binary, embedded at build time so lookups work with no setup. The
// files follow the record store's contract and the doctor checks them
// in this package's tests.
package data

import (
	"embed"
	"io/fs"
)

//go:embed *.json
var records embed.FS

// Records returns the embedded record collection.
func Records() fs.FS {
	return records
}
