// Package cmd wires the thrax CLI's cobra subcommands: run, ast, and repl.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "thrax",
	Short: "thrax language interpreter",
	Long: `thrax is a tree-walking interpreter for a small, dynamically typed,
curly-brace scripting language: numbers, strings, booleans, arrays,
objects, first-class functions, and null.`,
	Version: "0.1.0",
}

// Execute runs the root command; it is the single entry point main.go
// calls.
func Execute() error {
	return rootCmd.Execute()
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
