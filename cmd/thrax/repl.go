package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/elijah-potter/thrax-language/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive thrax session",
	Args:  cobra.NoArgs,
	Run:   runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) {
	r := repl.NewRepl(
		"thrax",
		rootCmd.Version,
		"elijah-potter",
		"----------------------------------------",
		"MIT",
		"thrax> ",
	)
	r.Start(os.Stdout)
}
