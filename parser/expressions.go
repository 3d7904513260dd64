package parser

import (
	"github.com/elijah-potter/thrax-language/ast"
	"github.com/elijah-potter/thrax-language/langerr"
	"github.com/elijah-potter/thrax-language/token"
)

type exprParser func([]token.Token) (ast.Expr, error)

// exprParsers is tried, in order, for every sub-expression. Unlike
// parseStmt, this dispatcher does NOT honor the Recoverable bit: every
// alternative always gets a chance, because the grammar's expression forms
// overlap far more than its statement forms do (an index expression that
// contains an operator, such as `a[1 + 2]`, must be allowed to fail the
// "whole slice is a binary op" attempt and fall through to "whole slice is
// one member access").
var exprParsers []exprParser

// The table is filled in init because its entries recurse back into
// parseExpr, which reads the table.
func init() {
	exprParsers = []exprParser{
		parseBinaryOp,
		parseMemberAccess,
		parseFnCall,
		parseArrayLiteral,
		parseObjectLiteral,
		parseSingleToken,
	}
}

// parseExpr is the expression dispatcher: try every alternative, keep the
// last error if none succeed.
func parseExpr(tokens []token.Token) (ast.Expr, error) {
	if len(tokens) == 0 {
		return nil, langerr.NoTokensProvidedErr(0)
	}
	var lastErr error
	for _, p := range exprParsers {
		expr, err := p(tokens)
		if err == nil {
			return expr, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// parseBinaryOp implements the outside-in operator scan: walk left to right looking for a binary-operator token, and for
// each candidate try to parse everything before it and everything after it
// as complete expressions (using the whole sub-slice, not a prefix of it).
// If either side fails, advance the scan past this operator occurrence and
// try the next one. This is what makes `1 - 2 - 3` group as
// `1 - (2 - 3)`: the first `-` found is tried first, but it only succeeds
// once the right-hand recursive parseExpr(tokens[i+1:]) itself bottoms out
// into a nested BinaryOp.
func parseBinaryOp(tokens []token.Token) (ast.Expr, error) {
	start := 0
	for {
		idx, ok := locateFirstBinaryOp(tokens, start)
		if !ok {
			return nil, langerr.ExpectedBinaryOperatorErr(0)
		}
		a, errA := parseExpr(tokens[:idx])
		if errA == nil {
			b, errB := parseExpr(tokens[idx+1:])
			if errB == nil {
				return ast.BinaryOp{Kind: binaryOpKindOf(tokens[idx].Kind), A: a, B: b}, nil
			}
		}
		start = idx + 1
	}
}

// parseMemberAccess handles both `parent[child]` and `parent.child`,
// trying the bracket form first. Both forms recurse on the parent slice,
// which naturally produces left-associative chaining for `a.b.c` since the
// dot scan below finds the rightmost top-level dot first and recurses on
// everything to its left.
func parseMemberAccess(tokens []token.Token) (ast.Expr, error) {
	n := len(tokens)
	if n >= 2 && tokens[n-1].Kind == token.RightBracket {
		openIdx, ok := matchingLeftFromRight(tokens, n-1, token.LeftBracket, token.RightBracket)
		if ok && openIdx > 0 {
			parent, errP := parseExpr(tokens[:openIdx])
			if errP == nil {
				child, errC := parseExpr(tokens[openIdx+1 : n-1])
				if errC == nil {
					return ast.Member{Parent: parent, Child: child}, nil
				}
			}
		}
	}

	if n >= 2 && tokens[n-1].Kind == token.Ident {
		depth := 0
		for i := n - 2; i >= 0; i-- {
			switch tokens[i].Kind {
			case token.RightParen, token.RightBrace, token.RightBracket:
				depth++
			case token.LeftParen, token.LeftBrace, token.LeftBracket:
				depth--
			case token.Dot:
				if depth == 0 {
					parent, err := parseExpr(tokens[:i])
					if err == nil {
						return ast.Member{Parent: parent, Child: ast.StringLit{Value: tokens[n-1].Text}}, nil
					}
					return nil, err
				}
			}
		}
	}

	return nil, langerr.NoValidExprErr(0)
}

// parseFnCall matches `IDENT ( ARGS )` across the whole slice.
func parseFnCall(tokens []token.Token) (ast.Expr, error) {
	if len(tokens) < 3 || tokens[0].Kind != token.Ident || tokens[1].Kind != token.LeftParen {
		return nil, langerr.ExpectedTokenErr(0, token.Ident.String(), received(tokens, 0), len(tokens) > 0)
	}
	if tokens[len(tokens)-1].Kind != token.RightParen {
		return nil, langerr.ExpectedTokenErr(len(tokens), token.RightParen.String(), "", false)
	}
	closeIdx, ok := locateLastMatchedRight(tokens[1:], token.LeftParen, token.RightParen)
	if !ok || closeIdx+1 != len(tokens)-1 {
		return nil, langerr.FailedToConsumeErr(0)
	}
	args, err := parseExprList(tokens[2 : len(tokens)-1])
	if err != nil {
		return nil, err
	}
	return ast.FnCall{Name: tokens[0].Text, Args: args}, nil
}

// parseSingleToken handles the base-case literals and bare identifiers;
// it only succeeds when the entire slice is exactly one token.
func parseSingleToken(tokens []token.Token) (ast.Expr, error) {
	if len(tokens) != 1 {
		return nil, langerr.FailedToConsumeErr(0)
	}
	tok := tokens[0]
	switch tok.Kind {
	case token.Ident:
		return ast.Ident{Name: tok.Text}, nil
	case token.Number:
		return ast.NumberLit{Value: tok.Num}, nil
	case token.String:
		return ast.StringLit{Value: tok.Text}, nil
	case token.True:
		return ast.BoolLit{Value: true}, nil
	case token.False:
		return ast.BoolLit{Value: false}, nil
	default:
		return nil, langerr.ExpectedLiteralErr(0)
	}
}

// parseArrayLiteral matches `[ EXPR_LIST ]` across the whole slice.
func parseArrayLiteral(tokens []token.Token) (ast.Expr, error) {
	if len(tokens) < 2 || tokens[0].Kind != token.LeftBracket {
		return nil, langerr.ExpectedTokenErr(0, token.LeftBracket.String(), received(tokens, 0), len(tokens) > 0)
	}
	closeIdx, ok := locateLastMatchedRight(tokens, token.LeftBracket, token.RightBracket)
	if !ok || closeIdx != len(tokens)-1 {
		return nil, langerr.FailedToConsumeErr(0)
	}
	elems, err := parseExprList(tokens[1 : len(tokens)-1])
	if err != nil {
		return nil, err
	}
	return ast.ArrayLiteral{Elements: elems}, nil
}

// parseObjectLiteral matches `{ FIELD_LIST }` where each field is
// `IDENT : EXPR`, across the whole slice.
func parseObjectLiteral(tokens []token.Token) (ast.Expr, error) {
	if len(tokens) < 2 || tokens[0].Kind != token.LeftBrace {
		return nil, langerr.ExpectedTokenErr(0, token.LeftBrace.String(), received(tokens, 0), len(tokens) > 0)
	}
	closeIdx, ok := locateLastMatchedRight(tokens, token.LeftBrace, token.RightBrace)
	if !ok || closeIdx != len(tokens)-1 {
		return nil, langerr.FailedToConsumeErr(0)
	}
	fields, order, err := parseFieldList(tokens[1 : len(tokens)-1])
	if err != nil {
		return nil, err
	}
	return ast.ObjectLiteral{Fields: fields, Order: order}, nil
}

// parseExprList splits tokens on top-level commas using the shrink-from-
// right retry: for the remaining slice, try the longest prefix that both
// parses as a complete expression and is immediately followed by a comma
// (or is the entire remaining slice, for the final element). This is what
// correctly handles list elements that are themselves compound literals
// containing their own commas — a naive first-comma scan would split
// inside a nested `[1, 2]` element.
func parseExprList(tokens []token.Token) ([]ast.Expr, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	var out []ast.Expr
	remaining := tokens
	for len(remaining) > 0 {
		elem, consumed, err := shrinkParseOne(remaining, parseExpr)
		if err != nil {
			return nil, err
		}
		out = append(out, elem)
		remaining = advancePastSeparator(remaining, consumed)
	}
	return out, nil
}

// parseFieldList splits `IDENT : EXPR` pairs the same way parseExprList
// splits elements, additionally peeling off the `IDENT :` prefix of each
// field before shrink-parsing the value expression.
func parseFieldList(tokens []token.Token) (map[string]ast.Expr, []string, error) {
	fields := map[string]ast.Expr{}
	var order []string
	if len(tokens) == 0 {
		return fields, order, nil
	}
	remaining := tokens
	for len(remaining) > 0 {
		if len(remaining) < 2 || remaining[0].Kind != token.Ident || remaining[1].Kind != token.Colon {
			return nil, nil, langerr.ExpectedTokenErr(0, token.Colon.String(), received(remaining, 1), len(remaining) > 1)
		}
		name := remaining[0].Text
		valueTokens := remaining[2:]
		elem, consumed, err := shrinkParseOne(valueTokens, parseExpr)
		if err != nil {
			return nil, nil, err
		}
		fields[name] = elem
		order = append(order, name)
		remaining = advancePastSeparator(valueTokens, consumed)
	}
	return fields, order, nil
}

// parseIdentList splits a bare comma-separated identifier list (function
// parameters), where no shrink-retry is needed since identifiers can't
// contain commas.
func parseIdentList(tokens []token.Token) ([]string, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	var out []string
	remaining := tokens
	for len(remaining) > 0 {
		if remaining[0].Kind != token.Ident {
			return nil, langerr.ExpectedTokenErr(0, token.Ident.String(), received(remaining, 0), true)
		}
		out = append(out, remaining[0].Text)
		if len(remaining) == 1 {
			break
		}
		if remaining[1].Kind != token.Comma {
			return nil, langerr.ExpectedTokenErr(1, token.Comma.String(), received(remaining, 1), len(remaining) > 1)
		}
		remaining = remaining[2:]
	}
	return out, nil
}

// shrinkParseOne tries the longest prefix of tokens (from len(tokens) down
// to 1) that parse succeeds on AND is immediately followed by a comma or
// is the entire slice. It returns the parsed value and how many tokens it
// consumed (not including a trailing comma).
func shrinkParseOne(tokens []token.Token, parse func([]token.Token) (ast.Expr, error)) (ast.Expr, int, error) {
	for length := len(tokens); length >= 1; length-- {
		prefix := tokens[:length]
		if length < len(tokens) && tokens[length].Kind != token.Comma {
			continue
		}
		expr, err := parse(prefix)
		if err != nil {
			continue
		}
		return expr, length, nil
	}
	return nil, 0, langerr.NoValidExprErr(0)
}

// advancePastSeparator drops the just-consumed element and, if present, the
// comma immediately following it.
func advancePastSeparator(remaining []token.Token, consumed int) []token.Token {
	rest := remaining[consumed:]
	if len(rest) > 0 && rest[0].Kind == token.Comma {
		rest = rest[1:]
	}
	return rest
}
