// Package repl implements the interactive Read-Eval-Print Loop for the
// thrax interpreter: one line of source in, one evaluated result (or
// diagnostic) out, with command history across the session.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/elijah-potter/thrax-language/eval"
	"github.com/elijah-potter/thrax-language/parser"
	"github.com/elijah-potter/thrax-language/stdlib"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl bundles the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to thrax!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop until the user exits or EOF is reached.
// One Context is shared across every line, so declarations made on one
// line are visible to the next.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	ctx := eval.NewContext(true)
	ctx.Writer = writer
	stdlib.Register(ctx, writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		r.executeWithRecovery(writer, line, ctx)
	}
}

// executeWithRecovery parses and evaluates one line, recovering from any
// panic so a single bad line never kills the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, ctx *eval.Context) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	program, err := parser.ParseSource(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	exit, err := ctx.EvalProgram(program)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	if exit.HasValue {
		v := ctx.Heap.MustGet(exit.Value)
		yellowColor.Fprintf(writer, "%s\n", v.ToDisplayString())
	}
}
