// Package main is the entry point for the winepath CLI.
package main

import (
	"fmt"
	"os"

	"github.com/rjdinis/winepath/internal/cli"
	"github.com/rjdinis/winepath/internal/types"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCommand(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		// If it's a TranslateError with help text, print that too
		if terr, ok := err.(*types.TranslateError); ok && terr.Help != "" {
			fmt.Fprintf(os.Stderr, "\n%s\n", terr.Help)
		}

		os.Exit(1)
	}
}
