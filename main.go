package main

import (
	"fmt"
	"os"

	cmd "github.com/elijah-potter/thrax-language/cmd/thrax"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
