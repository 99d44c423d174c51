package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	gtfobins "github.com/t0thkr1s/gtfobins-cli"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	m.Color = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	if m.Color {
		clearScreen(os.Stdout)
	}
	fmt.Fprintln(os.Stdout, banner)

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		switch gtfobins.ErrorCode(err) {
		case gtfobins.ENOTFOUND, gtfobins.EINVALID, gtfobins.EEMPTY, gtfobins.EUNAVAILABLE:
			// already reported as a styled line on stdout
		default:
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// clearScreen resets the terminal before the banner. Only called when
// stdout is a terminal.
func clearScreen(w io.Writer) {
	fmt.Fprint(w, "\x1b[2J\x1b[H")
}
