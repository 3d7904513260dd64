package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elijah-potter/thrax-language/eval"
	"github.com/elijah-potter/thrax-language/langerr"
	"github.com/elijah-potter/thrax-language/lexer"
	"github.com/elijah-potter/thrax-language/parser"
	"github.com/elijah-potter/thrax-language/stdlib"
	"github.com/elijah-potter/thrax-language/token"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Lex, parse, and evaluate a thrax source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", filename, err)
	}
	source := string(content)

	tokens, err := lexer.Lex(source)
	if err != nil {
		lexErr := err.(*langerr.LexError)
		if line, col, ok := lineColFromIndex(lexErr.Index, source); ok {
			fmt.Fprintf(os.Stderr, "lex error at line %d, column %d: %s\n", line, col, lexErr)
		} else {
			fmt.Fprintf(os.Stderr, "lex error: %s\n", lexErr)
		}
		os.Exit(1)
	}

	program, err := parser.Parse(tokens)
	if err != nil {
		parseErr := err.(*langerr.ParseError)
		printParseError(parseErr, tokens, source)
		os.Exit(1)
	}

	ctx := eval.NewContext(true)
	stdlib.Register(ctx, os.Stdout)

	exit, err := ctx.EvalProgram(program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "runtime error: %s\n", err)
		os.Exit(1)
	}
	if exit.HasValue {
		v := ctx.Heap.MustGet(exit.Value)
		fmt.Println(v.ToDisplayString())
	}
	return nil
}

// printParseError resolves the token index a parse error points at back to
// a source span and prints a caret-pointing excerpt, mirroring the
// original implementation's line_col_from_index/print_line_col.
func printParseError(parseErr *langerr.ParseError, tokens []token.Token, source string) {
	if parseErr.Index < 0 || parseErr.Index >= len(tokens) {
		fmt.Fprintf(os.Stderr, "parse error: %s\n", parseErr)
		return
	}
	tok := tokens[parseErr.Index]
	startLine, startCol, okStart := lineColFromIndex(tok.Span.Start, source)
	if !okStart {
		fmt.Fprintf(os.Stderr, "parse error: %s\n", parseErr)
		return
	}
	// The excerpt covers only the token's first line: the end column is the
	// start plus the span width, so a string literal spanning several lines
	// gets a caret run longer than that line.
	endCol := startCol + (tok.Span.End - tok.Span.Start)
	printLineCol(startLine, startLine, startCol, endCol, source)
	if parseErr.Recoverable {
		fmt.Fprint(os.Stderr, "recoverable error: ")
	} else {
		fmt.Fprint(os.Stderr, "unrecoverable error: ")
	}
	fmt.Fprintf(os.Stderr, "%s\nat line %d, column %d\n", parseErr, startLine, startCol)
}
