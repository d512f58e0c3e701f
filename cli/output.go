// Package cli holds terminal output helpers for the theft-demo binary.
package cli

import (
	"fmt"
	"os"

	"github.com/lochsh/theft"
)

// FatalErr prints an error with details to stderr and exits with code 2.
func FatalErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(2)
}

// Infof prints a formatted informational message to stdout.
func Infof(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

// Result prints one property's run outcome with its counters: a ✓ line for
// passing runs, a ✗ line for failing ones.
func Result(name string, res theft.RunResult, rep theft.Report) {
	mark := "✓"
	if res == theft.RunFail {
		mark = "✗"
	}
	fmt.Printf("%s %s: %s (%d passed, %d failed, %d skipped, %d duplicates)\n",
		mark, name, res, rep.Passes, rep.Failures, rep.Skipped, rep.Duplicates)
}
