package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// lineColFromIndex computes the 1-indexed (line, column) a character
// offset falls at in source. It returns false if index is out of range.
func lineColFromIndex(index int, source string) (line, col int, ok bool) {
	traversed := 0
	for i, sourceLine := range strings.Split(source, "\n") {
		runes := []rune(sourceLine)
		if index >= traversed && index < traversed+len(runes) {
			return i + 1, index - traversed + 1, true
		}
		traversed += len(runes) + 1
	}
	return 0, 0, false
}

// printLineCol prints the source line(s) a diagnostic refers to, followed
// by a caret pointer under the offending span, to stderr.
func printLineCol(startLine, endLine, startCol, endCol int, source string) {
	lines := strings.Split(source, "\n")
	lineNrWidth := len(fmt.Sprintf("%d", startLine))
	padding := strings.Repeat(" ", lineNrWidth)

	blue := color.New(color.FgBlue)
	white := color.New(color.FgWhite)
	red := color.New(color.FgRed)

	for i, line := range lines {
		lineNr := i + 1
		if lineNr < startLine || lineNr > endLine {
			continue
		}
		nrStr := fmt.Sprintf("%d", lineNr)
		blue.Fprintf(os.Stderr, "%s%s | ", strings.Repeat(" ", lineNrWidth-len(nrStr)), nrStr)
		white.Fprintf(os.Stderr, "%s\n", line)
		if lineNr == endLine {
			blue.Fprintf(os.Stderr, "%s | ", padding)
			red.Fprintf(os.Stderr, "%s%s\n", strings.Repeat(" ", startCol-1), strings.Repeat("^", max(1, endCol-startCol)))
		}
	}
}
