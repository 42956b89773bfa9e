package config

import (
	"fmt"
	"io"
	"os"
)

// ExitCodeFailure is the status used for every fatal CLI exit.
const ExitCodeFailure = 1

// Exitf writes a formatted error message to stderr and exits with code 1.
// It provides a consistent fatal-exit pattern for CLI entry points.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(ExitCodeFailure)
}

// ExitLines writes each line to stderr and exits with code 1.
func ExitLines(lines ...string) {
	writeLines(os.Stderr, lines)
	os.Exit(ExitCodeFailure)
}

func writeLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
