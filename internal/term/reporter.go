// Package term renders the user-facing progress of a split on standard
// output: colored start/success indicators, created file paths, and a
// small spinner while files are being written. Colors and the spinner
// switch off when stdout is not a terminal, so piped output stays clean.
package term

import (
	"fmt"
	"io"
	"os"

	isatty "github.com/mattn/go-isatty"
)

const (
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiBlue  = "\033[34m"
	ansiReset = "\033[0m"
)

// Reporter prints progress indicators to out. Created paths are printed
// only in verbose mode; start and success indicators always.
type Reporter struct {
	out     io.Writer
	color   bool
	verbose bool
}

// NewReporter builds a Reporter on stdout, coloring only when stdout is a
// terminal.
func NewReporter(verbose bool) *Reporter {
	fd := os.Stdout.Fd()
	color := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return &Reporter{out: os.Stdout, color: color, verbose: verbose}
}

// NewReporterWriter builds a Reporter on an arbitrary writer with colors
// off. Used in tests.
func NewReporterWriter(out io.Writer, verbose bool) *Reporter {
	return &Reporter{out: out, verbose: verbose}
}

// Start prints the start indicator.
func (r *Reporter) Start() {
	fmt.Fprintln(r.out, r.paint(ansiGreen, "start..."))
}

// Created prints the path of a freshly written output file in verbose mode.
func (r *Reporter) Created(path string) {
	if !r.verbose {
		return
	}
	fmt.Fprintln(r.out, r.paint(ansiBlue, path))
}

// Success prints the final success indicator.
func (r *Reporter) Success() {
	fmt.Fprintln(r.out, r.paint(ansiGreen, "success!"))
}

// Errorf prints an error message in red.
func (r *Reporter) Errorf(format string, args ...any) {
	fmt.Fprintln(r.out, r.paint(ansiRed, "error: "+fmt.Sprintf(format, args...)))
}

// Interactive reports whether the reporter writes to a terminal.
func (r *Reporter) Interactive() bool { return r.color }

func (r *Reporter) paint(color, s string) string {
	if !r.color {
		return s
	}
	return color + s + ansiReset
}
