package doctor_test

import (
	"context"
	"testing"
	"testing/fstest"

	gtfobins "github.com/t0thkr1s/gtfobins-cli"
	"github.com/t0thkr1s/gtfobins-cli/doctor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func check(t *testing.T, fsys fstest.MapFS) *doctor.Report {
	t.Helper()
	report, err := doctor.NewChecker(fsys).Check(context.Background())
	require.NoError(t, err)
	return report
}

func TestChecker_Check(t *testing.T) {
	t.Parallel()

	t.Run("passes a clean collection and counts its contents", func(t *testing.T) {
		t.Parallel()

		report := check(t, fstest.MapFS{
			"find.json": &fstest.MapFile{Data: []byte(`{"functions":{"shell":[{"code":"find . -exec /bin/sh \\; -quit"}],"suid":[{"code":"./find . -exec /bin/sh -p \\; -quit"}]}}`)},
			"vim.json":  &fstest.MapFile{Data: []byte(`{"functions":{"shell":[{"code":"vim -c ':!/bin/sh'"}]}}`)},
		})

		assert.True(t, report.OK())
		assert.NotEmpty(t, report.ID)
		assert.Equal(t, 2, report.Records)
		assert.Equal(t, 3, report.Techniques)
		assert.Equal(t, 2, report.Categories[gtfobins.CategoryShell])
		assert.Equal(t, 1, report.Categories[gtfobins.CategorySUID])
		assert.Empty(t, report.Problems)
		assert.Empty(t, report.Warnings)
	})

	t.Run("flags invalid JSON", func(t *testing.T) {
		t.Parallel()

		report := check(t, fstest.MapFS{
			"broken.json": &fstest.MapFile{Data: []byte(`{"functions": {`)},
		})

		assert.False(t, report.OK())
		require.Len(t, report.Problems, 1)
		assert.Equal(t, "broken", report.Problems[0].Name)
		assert.Equal(t, "not valid JSON", report.Problems[0].Detail)
	})

	t.Run("flags a missing functions object", func(t *testing.T) {
		t.Parallel()

		report := check(t, fstest.MapFS{
			"nofuncs.json": &fstest.MapFile{Data: []byte(`{"description":"nothing else"}`)},
		})

		require.Len(t, report.Problems, 1)
		assert.Equal(t, "no functions object", report.Problems[0].Detail)
	})

	t.Run("flags categories outside the closed set", func(t *testing.T) {
		t.Parallel()

		report := check(t, fstest.MapFS{
			"odd.json": &fstest.MapFile{Data: []byte(`{"functions":{"root-shell":[{"code":"x"}]}}`)},
		})

		require.Len(t, report.Problems, 1)
		assert.Contains(t, report.Problems[0].Detail, `unknown category "root-shell"`)
	})

	t.Run("flags a category holding a non-list", func(t *testing.T) {
		t.Parallel()

		report := check(t, fstest.MapFS{
			"notlist.json": &fstest.MapFile{Data: []byte(`{"functions":{"shell":{"code":"x"}}}`)},
		})

		require.Len(t, report.Problems, 1)
		assert.Contains(t, report.Problems[0].Detail, "not a list")
	})

	t.Run("flags entries without code by position", func(t *testing.T) {
		t.Parallel()

		report := check(t, fstest.MapFS{
			"nocode.json": &fstest.MapFile{Data: []byte(`{"functions":{"shell":[{"code":"x"},{"description":"oops"}]}}`)},
		})

		require.Len(t, report.Problems, 1)
		assert.Contains(t, report.Problems[0].Detail, `category "shell" entry 1 has no code`)
	})

	t.Run("flags a non-string description", func(t *testing.T) {
		t.Parallel()

		report := check(t, fstest.MapFS{
			"odd.json": &fstest.MapFile{Data: []byte(`{"description":42,"functions":{"shell":[{"code":"x"}]}}`)},
		})

		require.Len(t, report.Problems, 1)
		assert.Equal(t, "description is not a string", report.Problems[0].Detail)
	})

	t.Run("a bad file does not hide findings in later files", func(t *testing.T) {
		t.Parallel()

		report := check(t, fstest.MapFS{
			"aaa.json": &fstest.MapFile{Data: []byte(`not json`)},
			"zzz.json": &fstest.MapFile{Data: []byte(`{"functions":{"shell":[{"description":"oops"}]}}`)},
		})

		require.Len(t, report.Problems, 2)
		assert.Equal(t, "aaa", report.Problems[0].Name)
		assert.Equal(t, "zzz", report.Problems[1].Name)
	})

	t.Run("warns about code bash cannot parse without failing the check", func(t *testing.T) {
		t.Parallel()

		report := check(t, fstest.MapFS{
			"odd.json": &fstest.MapFile{Data: []byte(`{"functions":{"shell":[{"code":"echo \"unclosed"}]}}`)},
		})

		assert.True(t, report.OK())
		require.Len(t, report.Warnings, 1)
		assert.Contains(t, report.Warnings[0].Detail, "does not parse as bash")
	})

	t.Run("warns about code duplicated across techniques", func(t *testing.T) {
		t.Parallel()

		report := check(t, fstest.MapFS{
			"aaa.json": &fstest.MapFile{Data: []byte(`{"functions":{"shell":[{"code":"/bin/sh"}]}}`)},
			"bbb.json": &fstest.MapFile{Data: []byte(`{"functions":{"sudo":[{"code":"/bin/sh"}]}}`)},
		})

		assert.True(t, report.OK())
		require.Len(t, report.Warnings, 1)
		assert.Equal(t, "bbb", report.Warnings[0].Name)
		assert.Contains(t, report.Warnings[0].Detail, "duplicates aaa (shell)")
	})

	t.Run("ignores foreign files", func(t *testing.T) {
		t.Parallel()

		report := check(t, fstest.MapFS{
			"README.md": &fstest.MapFile{Data: []byte("docs")},
			"vim.json":  &fstest.MapFile{Data: []byte(`{"functions":{"shell":[{"code":"vim -c ':!/bin/sh'"}]}}`)},
		})

		assert.True(t, report.OK())
		assert.Equal(t, 1, report.Records)
	})
}
