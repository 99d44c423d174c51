package gjson

import (
	"context"
	"errors"
	"io/fs"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	gtfobins "github.com/t0thkr1s/gtfobins-cli"
)

// recordExt is the filename extension of record files.
const recordExt = ".json"

// Ensure RecordService implements gtfobins.RecordService at compile time.
var _ gtfobins.RecordService = (*RecordService)(nil)

// RecordService implements gtfobins.RecordService over a directory of
// JSON record files, one file per binary, named <binary>.json. The
// backing filesystem can be the embedded collection, an on-disk
// directory, or any other fs.FS honoring the record file contract.
//
// Records are parsed with gjson rather than encoding/json because the
// order of category keys in the functions object is significant and
// must survive the round trip; gjson's ForEach visits object members in
// document order.
type RecordService struct {
	fsys fs.FS
}

// NewRecordService returns a RecordService reading records from fsys.
func NewRecordService(fsys fs.FS) *RecordService {
	return &RecordService{fsys: fsys}
}

// ListNames returns every binary name in the collection, sorted. Names
// derive from filenames with the extension stripped; directory entries
// and foreign files are ignored.
func (s *RecordService) ListNames(ctx context.Context) ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, gtfobins.Errorf(gtfobins.EINTERNAL, "list records: %v", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), recordExt))
	}
	sort.Strings(names)
	return names, nil
}

// FindRecord loads and parses the record for the named binary.
func (s *RecordService) FindRecord(ctx context.Context, name string) (*gtfobins.Record, error) {
	path := name + recordExt
	if name == "" || strings.Contains(name, "/") || !fs.ValidPath(path) {
		return nil, gtfobins.Errorf(gtfobins.ENOTFOUND, "no record for %q", name)
	}

	data, err := fs.ReadFile(s.fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, gtfobins.Errorf(gtfobins.ENOTFOUND, "no record for %q", name)
	} else if err != nil {
		return nil, gtfobins.Errorf(gtfobins.EINTERNAL, "read record %q: %v", name, err)
	}

	return parseRecord(name, data)
}

// Index scans every record and returns the derived category index.
func (s *RecordService) Index(ctx context.Context) (gtfobins.Index, error) {
	names, err := s.ListNames(ctx)
	if err != nil {
		return nil, err
	}

	ix := make(gtfobins.Index, len(names))
	for _, name := range names {
		rec, err := s.FindRecord(ctx, name)
		if err != nil {
			return nil, err
		}
		ix[name] = rec.Categories()
	}
	return ix, nil
}

// NamesWithCategory scans every record and returns the sorted names of
// binaries offering category c. This is an O(total records) scan per
// call; the collection is small and read-only, and no index is
// persisted.
func (s *RecordService) NamesWithCategory(ctx context.Context, c gtfobins.Category) ([]string, error) {
	ix, err := s.Index(ctx)
	if err != nil {
		return nil, err
	}
	return ix.WithCategory(c), nil
}

// parseRecord decodes a record file. The functions object's key order
// becomes the record's group order.
func parseRecord(name string, data []byte) (*gtfobins.Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, gtfobins.Errorf(gtfobins.ECORRUPT, "record %q is not valid JSON", name)
	}

	doc := gjson.ParseBytes(data)
	functions := doc.Get("functions")
	if !functions.Exists() || !functions.IsObject() {
		return nil, gtfobins.Errorf(gtfobins.ECORRUPT, "record %q has no functions object", name)
	}

	rec := &gtfobins.Record{
		Name:        name,
		Description: doc.Get("description").String(),
	}

	var parseErr error
	functions.ForEach(func(key, value gjson.Result) bool {
		if !value.IsArray() {
			parseErr = gtfobins.Errorf(gtfobins.ECORRUPT, "record %q: category %q is not a list", name, key.String())
			return false
		}

		group := gtfobins.TechniqueGroup{Category: gtfobins.Category(key.String())}
		value.ForEach(func(_, entry gjson.Result) bool {
			group.Techniques = append(group.Techniques, gtfobins.Technique{
				Description: entry.Get("description").String(),
				Code:        entry.Get("code").String(),
			})
			return true
		})
		rec.Groups = append(rec.Groups, group)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}
