package main

import (
	"context"
	"fmt"
	"io"

	gtfobins "github.com/t0thkr1s/gtfobins-cli"
	"github.com/t0thkr1s/gtfobins-cli/doctor"
)

// runDoctor checks the record collection and prints the findings.
// Problems fail the run with ECORRUPT; warnings are advisory.
func runDoctor(ctx context.Context, checker *doctor.Checker, w io.Writer, styler gtfobins.Styler) error {
	report, err := checker.Check(ctx)
	if err != nil {
		return err
	}

	info := func(text string) { fmt.Fprintln(w, styler.Style(gtfobins.StyleInfo, text)) }
	fail := func(text string) { fmt.Fprintln(w, styler.Style(gtfobins.StyleFail, text)) }

	info(fmt.Sprintf("Checked %d records, %d techniques (run %s)", report.Records, report.Techniques, report.ID))
	fmt.Fprintln(w)
	for _, c := range gtfobins.Categories() {
		fmt.Fprintf(w, "  %-30s %d\n", c, report.Categories[c])
	}
	fmt.Fprintln(w)

	for _, p := range report.Problems {
		fail(fmt.Sprintf("%s: %s", p.Name, p.Detail))
	}
	for _, warning := range report.Warnings {
		info(fmt.Sprintf("warning: %s: %s", warning.Name, warning.Detail))
	}

	if !report.OK() {
		fail(fmt.Sprintf("Collection has %d problems", len(report.Problems)))
		return gtfobins.Errorf(gtfobins.ECORRUPT, "collection has %d problems", len(report.Problems))
	}
	info("Collection is healthy.")
	return nil
}
