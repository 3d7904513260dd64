// Package parser implements a recursive-descent parser over the token
// stream produced by package lexer.
//
// Every grammar production is a plain function taking a token slice and
// returning either a result or a *langerr.ParseError. Statement
// productions also return the number of tokens they consumed; expression
// productions must consume the whole slice they are given. Dispatchers (parseStmt, parseExpr) try a fixed list
// of productions in order and take the first success. The twist, carried
// over intact from the reference implementation, is that a production's
// error carries a Recoverable bit: "this production doesn't apply here,
// try the next one" versus "this production definitely applies but its
// body is malformed". The statement dispatcher honors that bit and stops
// early on an unrecoverable error; the expression dispatcher does not (it
// always tries every alternative, since expressions have much more
// syntactic overlap — see parseExpr).
package parser

import (
	"github.com/elijah-potter/thrax-language/ast"
	"github.com/elijah-potter/thrax-language/langerr"
	"github.com/elijah-potter/thrax-language/lexer"
	"github.com/elijah-potter/thrax-language/token"
)

// Parse turns a full token stream into a program (a statement list). Every
// token must be consumed; a trailing malformed statement is an error, never
// a silently truncated partial AST.
func Parse(tokens []token.Token) ([]ast.Stmt, error) {
	return parseStmtList(tokens)
}

// ParseSource lexes and parses source in one step, for callers (the REPL,
// the CLI, tests) that don't need the intermediate token stream.
func ParseSource(source string) ([]ast.Stmt, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

type foundStmt struct {
	stmt      ast.Stmt
	nextIndex int
}

// parseStmtList parses a flat sequence of statements, folding each
// production's locally-relative error index into tokens' absolute
// numbering as it goes.
func parseStmtList(tokens []token.Token) ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	current := 0
	for current < len(tokens) {
		fs, err := parseStmt(tokens[current:])
		if err != nil {
			if pe, ok := err.(*langerr.ParseError); ok {
				return nil, pe.Offset(current)
			}
			return nil, err
		}
		stmts = append(stmts, fs.stmt)
		current += fs.nextIndex
	}
	return stmts, nil
}

type stmtParser func([]token.Token) (foundStmt, error)

// stmtParsers is tried in this exact order; it is part of the observable
// grammar (e.g. a bare expression that happens to look like the start of a
// var-assign is given to parseVarAssign first).
var stmtParsers []stmtParser

// The table is filled in init because block-bodied entries recurse back
// into parseStmt, which reads the table.
func init() {
	stmtParsers = []stmtParser{
		parseVarDecl,
		parseVarAssign,
		parseFnDecl,
		parseWhileLoop,
		parseIfElse,
		parseReturn,
		parseBreakContinue,
		parseExprStmt,
	}
}

func parseStmt(tokens []token.Token) (foundStmt, error) {
	if len(tokens) == 0 {
		return foundStmt{}, langerr.NoTokensProvidedErr(0)
	}

	var lastErr *langerr.ParseError
	for _, p := range stmtParsers {
		fs, err := p(tokens)
		if err == nil {
			return fs, nil
		}
		pe, ok := err.(*langerr.ParseError)
		if !ok {
			return foundStmt{}, err
		}
		if !pe.Recoverable {
			return foundStmt{}, pe
		}
		lastErr = pe
	}
	return foundStmt{}, lastErr
}
