// Package session drives the user-facing workflows: one-shot lookups,
// listings, fuzzy search, category filtering, and the interactive
// prompt loop. It owns input validation and styled status reporting;
// record access and technique rendering are delegated to its
// collaborators.
package session

import (
	"context"
	"fmt"
	"io"
	"strings"

	gtfobins "github.com/t0thkr1s/gtfobins-cli"
)

// Driver composes the record store, matcher, and renderer behind the
// command surface. All output goes to Out; errors that have already
// been reported as styled lines are still returned so callers can set
// the exit status.
type Driver struct {
	Records    gtfobins.RecordService
	Renderer   gtfobins.Renderer
	Styler     gtfobins.Styler
	Similarity gtfobins.Similarity
	NewReader  gtfobins.LineReaderFactory
	Out        io.Writer
	Columns    int
}

// Lookup resolves binary and renders its techniques, restricted to the
// filter category when filter is non-empty. The filter is validated
// before any record is read; an unknown binary is reported and returned
// as ENOTFOUND.
func (d *Driver) Lookup(ctx context.Context, binary, filter string) error {
	var category gtfobins.Category
	if filter != "" {
		c, err := d.parseCategory(filter)
		if err != nil {
			return err
		}
		category = c
	}

	rec, err := d.Records.FindRecord(ctx, binary)
	if gtfobins.ErrorCode(err) == gtfobins.ENOTFOUND {
		d.fail("Sorry, couldn't find anything for " + binary)
		return err
	} else if err != nil {
		return err
	}

	return d.Renderer.Render(d.Out, rec, category)
}

// List prints every binary name in the collection in columns.
func (d *Driver) List(ctx context.Context) error {
	names, err := d.Records.ListNames(ctx)
	if err != nil {
		return err
	}

	d.info(fmt.Sprintf("Available binaries (%d):", len(names)))
	fmt.Fprintln(d.Out)
	d.columns(names)
	return nil
}

// Search prints the binaries whose names fuzzy-match term, best match
// first. Returns EEMPTY when nothing scores above the threshold.
func (d *Driver) Search(ctx context.Context, term string) error {
	names, err := d.Records.ListNames(ctx)
	if err != nil {
		return err
	}

	matches := gtfobins.FuzzyMatch(term, names, gtfobins.DefaultThreshold, d.Similarity)
	if len(matches) == 0 {
		d.fail(fmt.Sprintf("No binaries matching '%s'", term))
		return gtfobins.Errorf(gtfobins.EEMPTY, "no binaries matching %q", term)
	}

	d.info(fmt.Sprintf("Search results for '%s' (%d matches):", term, len(matches)))
	fmt.Fprintln(d.Out)
	d.columns(matches)
	return nil
}

// Filter prints the binaries offering techniques of the given category.
// The value is validated before the collection is scanned. Returns
// EEMPTY when no binary has the category.
func (d *Driver) Filter(ctx context.Context, value string) error {
	category, err := d.parseCategory(value)
	if err != nil {
		return err
	}

	names, err := d.Records.NamesWithCategory(ctx, category)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		d.fail(fmt.Sprintf("No binaries with '%s'", value))
		return gtfobins.Errorf(gtfobins.EEMPTY, "no binaries with %q", value)
	}

	d.info(fmt.Sprintf("Binaries with '%s' (%d):", value, len(names)))
	fmt.Fprintln(d.Out)
	d.columns(names)
	return nil
}

// Interactive runs the prompt loop: each non-empty line is looked up
// and rendered inline, with completion suggestions drawn from the full
// name list. The loop ends on an exit keyword, an interrupt, or
// end-of-input. A failed lookup is reported and the loop continues; a
// corrupt record store still ends the session.
func (d *Driver) Interactive(ctx context.Context) error {
	names, err := d.Records.ListNames(ctx)
	if err != nil {
		return err
	}

	reader, err := d.NewReader(names)
	if err != nil {
		d.fail(gtfobins.ErrorMessage(err))
		return err
	}
	defer reader.Close()

	d.info(fmt.Sprintf("Interactive mode - %d binaries available", len(names)))
	d.info("Type binary name (Tab for autocomplete, Ctrl+C to exit)")
	fmt.Fprintln(d.Out)

	for {
		line, err := reader.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isExitKeyword(line) {
			break
		}

		if err := d.Lookup(ctx, line, ""); err != nil {
			switch gtfobins.ErrorCode(err) {
			case gtfobins.ENOTFOUND, gtfobins.EEMPTY:
				// reported as a styled line; keep prompting
			default:
				return err
			}
		}
		fmt.Fprintln(d.Out)
	}

	fmt.Fprintln(d.Out, "\n"+d.Styler.Style(gtfobins.StyleInfo, "Goodbye, friend."))
	return nil
}

// parseCategory validates a user-supplied category value, reporting the
// valid list on failure.
func (d *Driver) parseCategory(value string) (gtfobins.Category, error) {
	c, err := gtfobins.ParseCategory(value)
	if err != nil {
		d.fail(fmt.Sprintf("Unknown type '%s'", value))
		d.info("Valid types: " + gtfobins.CategoryList())
		return "", err
	}
	return c, nil
}

// columns writes names in the standard column layout, or the no-result
// line when names is empty.
func (d *Driver) columns(names []string) {
	if len(names) == 0 {
		d.fail("No binaries found.")
		return
	}
	fmt.Fprint(d.Out, gtfobins.FormatColumns(names, d.Columns))
}

func (d *Driver) info(text string) {
	fmt.Fprintln(d.Out, d.Styler.Style(gtfobins.StyleInfo, text))
}

func (d *Driver) fail(text string) {
	fmt.Fprintln(d.Out, d.Styler.Style(gtfobins.StyleFail, text))
}

// isExitKeyword reports whether line asks to leave the interactive
// session.
func isExitKeyword(line string) bool {
	switch strings.ToLower(line) {
	case "exit", "quit", "q":
		return true
	}
	return false
}
