package parser

import (
	"github.com/elijah-potter/thrax-language/ast"
	"github.com/elijah-potter/thrax-language/token"
)

// locateFirst returns the index of the first token of the given kind at or
// after start. The statement-level separator this is used for (`;`) cannot
// appear nested inside an expression, so this plain linear scan never needs
// bracket-depth tracking.
func locateFirst(tokens []token.Token, kind token.Kind, start int) (int, bool) {
	for i := start; i < len(tokens); i++ {
		if tokens[i].Kind == kind {
			return i, true
		}
	}
	return 0, false
}

func locateFirstBinaryOp(tokens []token.Token, start int) (int, bool) {
	for i := start; i < len(tokens); i++ {
		if tokens[i].IsBinaryOperator() {
			return i, true
		}
	}
	return 0, false
}

// locateFirstAssignOp scans for the first top-level assignment operator at
// or after start, skipping over anything nested inside `()`/`{}`/`[]` —
// an assignment inside a while/if/fn body must not be mistaken for the
// enclosing statement's own operator. The scan stops at the end of the
// current statement (a top-level `;`, or a `}` that closes a top-level
// block), so an operator belonging to a later statement is never found.
func locateFirstAssignOp(tokens []token.Token, start int) (int, bool) {
	depth := 0
	for i := start; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case token.LeftParen, token.LeftBrace, token.LeftBracket:
			depth++
		case token.RightParen, token.RightBracket:
			depth--
		case token.RightBrace:
			depth--
			if depth == 0 {
				return 0, false
			}
		case token.Semicolon:
			if depth == 0 {
				return 0, false
			}
		default:
			if depth == 0 && tokens[i].IsAssignOperator() {
				return i, true
			}
		}
	}
	return 0, false
}

// locateLastMatchedRight requires tokens[0] == left and scans forward with
// a depth counter to find the right token that closes it, returning its
// index. Used for `(...)`, `{...}`, and `[...]`.
func locateLastMatchedRight(tokens []token.Token, left, right token.Kind) (int, bool) {
	if len(tokens) == 0 || tokens[0].Kind != left {
		return 0, false
	}
	depth := 0
	for i, tok := range tokens {
		switch tok.Kind {
		case left:
			depth++
		case right:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// matchingLeftFromRight scans backward from rightIdx (which must hold a
// `right`-kind token) to find the `left` that opens it.
func matchingLeftFromRight(tokens []token.Token, rightIdx int, left, right token.Kind) (int, bool) {
	depth := 0
	for i := rightIdx; i >= 0; i-- {
		switch tokens[i].Kind {
		case right:
			depth++
		case left:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func binaryOpKindOf(k token.Kind) ast.BinaryOpKind {
	switch k {
	case token.Plus:
		return ast.Add
	case token.Minus:
		return ast.Subtract
	case token.Asterisk:
		return ast.Multiply
	case token.Slash:
		return ast.Divide
	case token.Pow:
		return ast.Pow
	case token.GreaterThan:
		return ast.GreaterThan
	case token.LessThan:
		return ast.LessThan
	case token.Equals:
		return ast.Equals
	}
	panic("parser: token kind is not a binary operator")
}

func assignOpKindOf(k token.Kind) ast.AssignOpKind {
	switch k {
	case token.Assign:
		return ast.AssignNoOp
	case token.AddAssign:
		return ast.AssignAdd
	case token.SubAssign:
		return ast.AssignSubtract
	case token.MulAssign:
		return ast.AssignMultiply
	case token.DivAssign:
		return ast.AssignDivide
	}
	panic("parser: token kind is not an assignment operator")
}
