package gtfobins_test

import (
	"testing"

	gtfobins "github.com/t0thkr1s/gtfobins-cli"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Group(t *testing.T) {
	t.Parallel()

	rec := &gtfobins.Record{
		Name: "find",
		Groups: []gtfobins.TechniqueGroup{
			{Category: gtfobins.CategoryShell, Techniques: []gtfobins.Technique{{Code: "find . -exec /bin/sh \\; -quit"}}},
			{Category: gtfobins.CategorySudo, Techniques: []gtfobins.Technique{{Code: "sudo find . -exec /bin/sh \\; -quit"}}},
		},
	}

	t.Run("returns the group for a present category", func(t *testing.T) {
		t.Parallel()

		g := rec.Group(gtfobins.CategorySudo)

		require.NotNil(t, g)
		assert.Equal(t, gtfobins.CategorySudo, g.Category)
		assert.Len(t, g.Techniques, 1)
	})

	t.Run("returns nil for an absent category", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, rec.Group(gtfobins.CategoryCapabilities))
	})
}

func TestRecord_Categories(t *testing.T) {
	t.Parallel()

	t.Run("preserves storage order", func(t *testing.T) {
		t.Parallel()

		rec := &gtfobins.Record{
			Name: "nmap",
			Groups: []gtfobins.TechniqueGroup{
				{Category: gtfobins.CategorySudo},
				{Category: gtfobins.CategoryShell},
				{Category: gtfobins.CategoryFileRead},
			},
		}

		assert.Equal(t, []gtfobins.Category{
			gtfobins.CategorySudo,
			gtfobins.CategoryShell,
			gtfobins.CategoryFileRead,
		}, rec.Categories())
	})

	t.Run("is empty for a record without techniques", func(t *testing.T) {
		t.Parallel()

		rec := &gtfobins.Record{Name: "true"}

		assert.Empty(t, rec.Categories())
	})
}

func TestRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a well-formed record", func(t *testing.T) {
		t.Parallel()

		rec := &gtfobins.Record{
			Name:        "find",
			Description: "GTFO find",
			Groups: []gtfobins.TechniqueGroup{
				{Category: gtfobins.CategoryShell, Techniques: []gtfobins.Technique{{Code: "find . -exec /bin/sh \\; -quit"}}},
			},
		}

		assert.NoError(t, rec.Validate())
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		t.Parallel()

		rec := &gtfobins.Record{}

		err := rec.Validate()
		require.Error(t, err)
		assert.Equal(t, gtfobins.ECORRUPT, gtfobins.ErrorCode(err))
	})

	t.Run("rejects a category outside the closed set", func(t *testing.T) {
		t.Parallel()

		rec := &gtfobins.Record{
			Name: "bad",
			Groups: []gtfobins.TechniqueGroup{
				{Category: "root-shell", Techniques: []gtfobins.Technique{{Code: "x"}}},
			},
		}

		err := rec.Validate()
		require.Error(t, err)
		assert.Equal(t, gtfobins.ECORRUPT, gtfobins.ErrorCode(err))
		assert.Contains(t, gtfobins.ErrorMessage(err), "root-shell")
	})

	t.Run("rejects a technique without code", func(t *testing.T) {
		t.Parallel()

		rec := &gtfobins.Record{
			Name: "bad",
			Groups: []gtfobins.TechniqueGroup{
				{Category: gtfobins.CategoryShell, Techniques: []gtfobins.Technique{{Description: "no code"}}},
			},
		}

		err := rec.Validate()
		require.Error(t, err)
		assert.Equal(t, gtfobins.ECORRUPT, gtfobins.ErrorCode(err))
	})
}

func TestIndex(t *testing.T) {
	t.Parallel()

	ix := gtfobins.Index{
		"find": {gtfobins.CategoryShell, gtfobins.CategorySudo},
		"file": {gtfobins.CategorySUID},
		"grep": {gtfobins.CategoryShell, gtfobins.CategoryFileRead},
	}

	t.Run("Names are sorted", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"file", "find", "grep"}, ix.Names())
	})

	t.Run("WithCategory returns exactly the binaries holding the category", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"find", "grep"}, ix.WithCategory(gtfobins.CategoryShell))
		assert.Equal(t, []string{"file"}, ix.WithCategory(gtfobins.CategorySUID))
	})

	t.Run("WithCategory is empty for an unused category", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, ix.WithCategory(gtfobins.CategoryBindShell))
	})
}
