package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	gtfobins "github.com/t0thkr1s/gtfobins-cli"
	"github.com/t0thkr1s/gtfobins-cli/chroma"
	"github.com/t0thkr1s/gtfobins-cli/color"
	"github.com/t0thkr1s/gtfobins-cli/data"
	"github.com/t0thkr1s/gtfobins-cli/difflib"
	"github.com/t0thkr1s/gtfobins-cli/doctor"
	"github.com/t0thkr1s/gtfobins-cli/gjson"
	"github.com/t0thkr1s/gtfobins-cli/readline"
	"github.com/t0thkr1s/gtfobins-cli/render"
	"github.com/t0thkr1s/gtfobins-cli/session"
	gtfoslog "github.com/t0thkr1s/gtfobins-cli/slog"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Binary      string `arg:"" optional:"" help:"Unix binary to search for exploitation techniques"`
	Search      string `short:"s" placeholder:"TERM" help:"Fuzzy search binaries by name"`
	Filter      string `short:"f" placeholder:"TYPE" help:"Filter binaries by exploitation type: ${categories}"`
	Interactive bool   `short:"i" help:"Interactive mode with autocomplete"`
	List        bool   `short:"l" help:"List all available binaries"`
	Version     bool   `short:"v" help:"Show version and exit"`
	Doctor      bool   `help:"Check the record collection for integrity problems"`
	Columns     int    `default:"4" help:"Columns for binary listings"`
	Data        string `placeholder:"DIR" help:"Read records from DIR instead of the built-in collection"`
	NoColor     bool   `help:"Disable colors and syntax highlighting"`
	Debug       bool   `help:"Log record store operations to stderr"`
}

// Main represents the program.
type Main struct {
	// Color enables styled output and syntax highlighting. main sets it
	// from the terminal capability check; --no-color overrides it.
	Color bool
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("gtfo"),
		kong.Description("Command-line tool for GTFOBins - helps you bypass system security restrictions."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"categories": gtfobins.CategoryList()},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.Version {
		fmt.Fprintf(stdout, "gtfo %s\n", gtfobins.Version)
		return nil
	}

	// Wire the record store over the embedded collection or an
	// operator-supplied directory honoring the same contract.
	var fsys fs.FS = data.Records()
	if cli.Data != "" {
		fsys = os.DirFS(cli.Data)
	}
	var records gtfobins.RecordService = gjson.NewRecordService(fsys)
	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil)).With("run", uuid.New().String())
		records = gtfoslog.NewLoggingRecordService(records, logger)
	}

	styler, highlighter := m.presentation(cli)

	driver := &session.Driver{
		Records:    records,
		Renderer:   render.NewRenderer(styler, highlighter),
		Styler:     styler,
		Similarity: difflib.NewSimilarity(),
		NewReader: func(names []string) (gtfobins.LineReader, error) {
			return readline.NewReader("gtfo> ", names)
		},
		Out:     stdout,
		Columns: cli.Columns,
	}

	// One primary action per invocation.
	switch {
	case cli.Interactive:
		return driver.Interactive(ctx)
	case cli.List:
		return driver.List(ctx)
	case cli.Doctor:
		return runDoctor(ctx, doctor.NewChecker(fsys), stdout, styler)
	case cli.Search != "":
		return driver.Search(ctx, cli.Search)
	case cli.Binary != "":
		return driver.Lookup(ctx, cli.Binary, cli.Filter)
	case cli.Filter != "":
		return driver.Filter(ctx, cli.Filter)
	}

	fmt.Fprintln(stdout, styler.Style(gtfobins.StyleFail, "No binary specified. Use -h for help."))
	return gtfobins.Errorf(gtfobins.EINVALID, "no binary specified")
}

// presentation picks the styler and highlighter for this invocation.
// Highlighting degrades to plain code rather than blocking output when
// the terminal theme cannot be assembled.
func (m *Main) presentation(cli *CLI) (gtfobins.Styler, gtfobins.Highlighter) {
	if !m.Color || cli.NoColor {
		return gtfobins.PlainStyler{}, gtfobins.NopHighlighter{}
	}

	var highlighter gtfobins.Highlighter = gtfobins.NopHighlighter{}
	if h, err := chroma.NewHighlighter(); err == nil {
		highlighter = h
	}
	return color.NewStyler(), highlighter
}
