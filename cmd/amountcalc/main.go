package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// main builds the command tree, colors its help output and executes it.
// Errors are printed to stderr and the process exits with status 1.
func main() {
	rootCmd := newRootCmd()

	cc.Init(&cc.Config{
		RootCmd:  rootCmd,
		Headings: cc.HiCyan + cc.Bold + cc.Underline,
		Commands: cc.HiYellow + cc.Bold,
		Example:  cc.Italic,
		ExecName: cc.Bold,
		Flags:    cc.Bold,
	})

	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// isTerminal reports whether f is an interactive terminal, including
// Cygwin and MSYS pseudo terminals.
func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd) //nolint:gosec
}

// setColorMode applies the --color flag to the global color state.
func setColorMode(mode string) error {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stderr)
	default:
		return fmt.Errorf("invalid color mode %q, want auto, on or off", mode)
	}
	return nil
}

var errorColor = color.New(color.FgRed, color.Bold)

func printError(w io.Writer, err error) {
	errorColor.Fprint(w, "error:") //nolint:errcheck
	fmt.Fprintf(w, " %v\n", err)   //nolint:errcheck
}
