// Package main is the entry point for the vin CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/thoreinstein/vin/cmd/vin/commands"
	"github.com/thoreinstein/vin/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

// reportError prints err with its suggestion and hints and returns the exit
// code for it.
func reportError(w io.Writer, err error) int {
	fmt.Fprintf(w, "%s %v\n", color.RedString("Error:"), err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintln(w, exitErr.Suggestion)
	}
	if hints := errors.FlattenHints(err); hints != "" {
		fmt.Fprintln(w, hints)
	}
	return errors.ExitCode(err)
}
