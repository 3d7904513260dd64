package parser

import (
	"github.com/elijah-potter/thrax-language/ast"
	"github.com/elijah-potter/thrax-language/langerr"
	"github.com/elijah-potter/thrax-language/token"
)

// parseVarDecl matches `let IDENT = EXPR ;`. Recoverable up through
// confirming the leading `let`; every failure after that is unrecoverable,
// per the "definitive keyword" recoverability rule.
func parseVarDecl(tokens []token.Token) (foundStmt, error) {
	if len(tokens) == 0 || tokens[0].Kind != token.Let {
		return foundStmt{}, langerr.ExpectedTokenErr(0, token.Let.String(), received(tokens, 0), len(tokens) > 0)
	}
	if len(tokens) < 2 || tokens[1].Kind != token.Ident {
		return foundStmt{}, langerr.ExpectedTokenErr(1, token.Ident.String(), received(tokens, 1), len(tokens) > 1).Unrecoverable()
	}
	ident := tokens[1].Text
	if len(tokens) < 3 || tokens[2].Kind != token.Assign {
		return foundStmt{}, langerr.ExpectedTokenErr(2, token.Assign.String(), received(tokens, 2), len(tokens) > 2).Unrecoverable()
	}
	semi, ok := locateFirst(tokens, token.Semicolon, 3)
	if !ok {
		return foundStmt{}, langerr.ExpectedTokenErr(len(tokens), token.Semicolon.String(), "", false).Unrecoverable()
	}
	init, err := parseExpr(tokens[3:semi])
	if err != nil {
		return foundStmt{}, asUnrecoverable(err).Offset(3)
	}
	return foundStmt{stmt: ast.VarDecl{Ident: ident, Init: init}, nextIndex: semi + 1}, nil
}

// parseVarAssign matches `LVALUE ASSIGN_OP EXPR ;`. Finding a top-level
// assignment operator is the commit point: once found, every downstream
// failure is unrecoverable.
func parseVarAssign(tokens []token.Token) (foundStmt, error) {
	opIdx, ok := locateFirstAssignOp(tokens, 1)
	if !ok {
		return foundStmt{}, langerr.ExpectedAssignmentOperatorErr(0)
	}
	semi, ok := locateFirst(tokens, token.Semicolon, opIdx+1)
	if !ok {
		return foundStmt{}, langerr.ExpectedTokenErr(len(tokens), token.Semicolon.String(), "", false).Unrecoverable()
	}
	to, err := parseExpr(tokens[:opIdx])
	if err != nil {
		return foundStmt{}, asUnrecoverable(err)
	}
	value, err := parseExpr(tokens[opIdx+1 : semi])
	if err != nil {
		return foundStmt{}, asUnrecoverable(err).Offset(opIdx + 1)
	}
	return foundStmt{
		stmt:      ast.VarAssign{To: to, Value: value, Op: assignOpKindOf(tokens[opIdx].Kind)},
		nextIndex: semi + 1,
	}, nil
}

// parseFnDecl matches `fn IDENT ( IDENT_LIST ) { STMT_LIST }`.
func parseFnDecl(tokens []token.Token) (foundStmt, error) {
	if len(tokens) == 0 || tokens[0].Kind != token.Fn {
		return foundStmt{}, langerr.ExpectedTokenErr(0, token.Fn.String(), received(tokens, 0), len(tokens) > 0)
	}
	if len(tokens) < 2 || tokens[1].Kind != token.Ident {
		return foundStmt{}, langerr.ExpectedTokenErr(1, token.Ident.String(), received(tokens, 1), len(tokens) > 1).Unrecoverable()
	}
	ident := tokens[1].Text
	if len(tokens) < 3 || tokens[2].Kind != token.LeftParen {
		return foundStmt{}, langerr.ExpectedTokenErr(2, token.LeftParen.String(), received(tokens, 2), len(tokens) > 2).Unrecoverable()
	}
	parenEnd, ok := locateLastMatchedRight(tokens[2:], token.LeftParen, token.RightParen)
	if !ok {
		return foundStmt{}, langerr.ExpectedTokenErr(len(tokens), token.RightParen.String(), "", false).Unrecoverable()
	}
	parenEnd += 2
	params, err := parseIdentList(tokens[3:parenEnd])
	if err != nil {
		return foundStmt{}, asUnrecoverable(err).Offset(3)
	}
	if len(tokens) < parenEnd+2 || tokens[parenEnd+1].Kind != token.LeftBrace {
		return foundStmt{}, langerr.ExpectedTokenErr(parenEnd+1, token.LeftBrace.String(), received(tokens, parenEnd+1), len(tokens) > parenEnd+1).Unrecoverable()
	}
	bodyEnd, ok := locateLastMatchedRight(tokens[parenEnd+1:], token.LeftBrace, token.RightBrace)
	if !ok {
		return foundStmt{}, langerr.ExpectedTokenErr(len(tokens), token.RightBrace.String(), "", false).Unrecoverable()
	}
	bodyEnd += parenEnd + 1
	body, err := parseStmtList(tokens[parenEnd+2 : bodyEnd])
	if err != nil {
		return foundStmt{}, asUnrecoverable(err).Offset(parenEnd + 2)
	}
	return foundStmt{stmt: ast.FnDecl{Ident: ident, Params: params, Body: body}, nextIndex: bodyEnd + 1}, nil
}

// parseWhileLoop matches `while ( EXPR ) { STMT_LIST }`.
func parseWhileLoop(tokens []token.Token) (foundStmt, error) {
	if len(tokens) == 0 || tokens[0].Kind != token.While {
		return foundStmt{}, langerr.ExpectedTokenErr(0, token.While.String(), received(tokens, 0), len(tokens) > 0)
	}
	cond, body, bodyEnd, err := parseParenCondAndBraceBody(tokens)
	if err != nil {
		return foundStmt{}, err
	}
	return foundStmt{stmt: ast.WhileLoop{Cond: cond, Body: body}, nextIndex: bodyEnd + 1}, nil
}

// parseIfElse matches
// `if ( EXPR ) { STMT_LIST } [ else ( { STMT_LIST } | IfElse ) ]`.
func parseIfElse(tokens []token.Token) (foundStmt, error) {
	if len(tokens) == 0 || tokens[0].Kind != token.If {
		return foundStmt{}, langerr.ExpectedTokenErr(0, token.If.String(), received(tokens, 0), len(tokens) > 0)
	}
	cond, trueBranch, afterTrue, err := parseParenCondAndBraceBody(tokens)
	if err != nil {
		return foundStmt{}, err
	}

	if len(tokens) <= afterTrue+1 || tokens[afterTrue+1].Kind != token.Else {
		return foundStmt{stmt: ast.IfElse{Cond: cond, TrueBranch: trueBranch}, nextIndex: afterTrue + 1}, nil
	}

	elseStart := afterTrue + 2
	if len(tokens) > elseStart && tokens[elseStart].Kind == token.If {
		nested, err := parseIfElse(tokens[elseStart:])
		if err != nil {
			return foundStmt{}, asUnrecoverable(err).Offset(elseStart)
		}
		return foundStmt{
			stmt:      ast.IfElse{Cond: cond, TrueBranch: trueBranch, ElseBranch: []ast.Stmt{nested.stmt}},
			nextIndex: elseStart + nested.nextIndex,
		}, nil
	}

	if len(tokens) <= elseStart || tokens[elseStart].Kind != token.LeftBrace {
		return foundStmt{}, langerr.ExpectedTokenErr(elseStart, token.LeftBrace.String(), received(tokens, elseStart), len(tokens) > elseStart).Unrecoverable()
	}
	elseEnd, ok := locateLastMatchedRight(tokens[elseStart:], token.LeftBrace, token.RightBrace)
	if !ok {
		return foundStmt{}, langerr.ExpectedTokenErr(len(tokens), token.RightBrace.String(), "", false).Unrecoverable()
	}
	elseEnd += elseStart
	elseBranch, err := parseStmtList(tokens[elseStart+1 : elseEnd])
	if err != nil {
		return foundStmt{}, asUnrecoverable(err).Offset(elseStart + 1)
	}
	return foundStmt{
		stmt:      ast.IfElse{Cond: cond, TrueBranch: trueBranch, ElseBranch: elseBranch},
		nextIndex: elseEnd + 1,
	}, nil
}

// parseParenCondAndBraceBody factors the `( EXPR ) { STMT_LIST }` shape
// shared by while-loops and if/else, assuming tokens[0] is already the
// confirmed leading keyword.
func parseParenCondAndBraceBody(tokens []token.Token) (ast.Expr, []ast.Stmt, int, error) {
	if len(tokens) < 2 || tokens[1].Kind != token.LeftParen {
		return nil, nil, 0, langerr.ExpectedTokenErr(1, token.LeftParen.String(), received(tokens, 1), len(tokens) > 1).Unrecoverable()
	}
	parenEnd, ok := locateLastMatchedRight(tokens[1:], token.LeftParen, token.RightParen)
	if !ok {
		return nil, nil, 0, langerr.ExpectedTokenErr(len(tokens), token.RightParen.String(), "", false).Unrecoverable()
	}
	parenEnd += 1
	cond, err := parseExpr(tokens[2:parenEnd])
	if err != nil {
		return nil, nil, 0, asUnrecoverable(err).Offset(2)
	}
	if len(tokens) < parenEnd+2 || tokens[parenEnd+1].Kind != token.LeftBrace {
		return nil, nil, 0, langerr.ExpectedTokenErr(parenEnd+1, token.LeftBrace.String(), received(tokens, parenEnd+1), len(tokens) > parenEnd+1).Unrecoverable()
	}
	bodyEnd, ok := locateLastMatchedRight(tokens[parenEnd+1:], token.LeftBrace, token.RightBrace)
	if !ok {
		return nil, nil, 0, langerr.ExpectedTokenErr(len(tokens), token.RightBrace.String(), "", false).Unrecoverable()
	}
	bodyEnd += parenEnd + 1
	body, err := parseStmtList(tokens[parenEnd+2 : bodyEnd])
	if err != nil {
		return nil, nil, 0, asUnrecoverable(err).Offset(parenEnd + 2)
	}
	return cond, body, bodyEnd, nil
}

// parseReturn matches `return [EXPR] ;`.
func parseReturn(tokens []token.Token) (foundStmt, error) {
	if len(tokens) == 0 || tokens[0].Kind != token.Return {
		return foundStmt{}, langerr.ExpectedTokenErr(0, token.Return.String(), received(tokens, 0), len(tokens) > 0)
	}
	if len(tokens) > 1 && tokens[1].Kind == token.Semicolon {
		return foundStmt{stmt: ast.ReturnStmt{}, nextIndex: 2}, nil
	}
	semi, ok := locateFirst(tokens, token.Semicolon, 1)
	if !ok {
		return foundStmt{}, langerr.ExpectedTokenErr(len(tokens), token.Semicolon.String(), "", false).Unrecoverable()
	}
	value, err := parseExpr(tokens[1:semi])
	if err != nil {
		return foundStmt{}, asUnrecoverable(err).Offset(1)
	}
	return foundStmt{stmt: ast.ReturnStmt{Value: value}, nextIndex: semi + 1}, nil
}

// parseBreakContinue matches `break ;` or `continue ;`.
func parseBreakContinue(tokens []token.Token) (foundStmt, error) {
	if len(tokens) == 0 || (tokens[0].Kind != token.Break && tokens[0].Kind != token.Continue) {
		return foundStmt{}, langerr.ExpectedTokenErr(0, "break or continue", received(tokens, 0), len(tokens) > 0)
	}
	if len(tokens) < 2 || tokens[1].Kind != token.Semicolon {
		return foundStmt{}, langerr.ExpectedTokenErr(1, token.Semicolon.String(), received(tokens, 1), len(tokens) > 1).Unrecoverable()
	}
	if tokens[0].Kind == token.Break {
		return foundStmt{stmt: ast.BreakStmt{}, nextIndex: 2}, nil
	}
	return foundStmt{stmt: ast.ContinueStmt{}, nextIndex: 2}, nil
}

// parseExprStmt matches `EXPR ;`, the last-resort statement alternative.
func parseExprStmt(tokens []token.Token) (foundStmt, error) {
	semi, ok := locateFirst(tokens, token.Semicolon, 0)
	if !ok {
		return foundStmt{}, langerr.ExpectedTokenErr(len(tokens), token.Semicolon.String(), "", false)
	}
	expr, err := parseExpr(tokens[:semi])
	if err != nil {
		return foundStmt{}, err
	}
	return foundStmt{stmt: ast.ExprStmt{X: expr}, nextIndex: semi + 1}, nil
}

func received(tokens []token.Token, idx int) string {
	if idx < 0 || idx >= len(tokens) {
		return ""
	}
	return tokens[idx].Kind.String()
}

// asUnrecoverable marks any *langerr.ParseError unrecoverable, leaving
// other error types untouched.
func asUnrecoverable(err error) *langerr.ParseError {
	if pe, ok := err.(*langerr.ParseError); ok {
		return pe.Unrecoverable()
	}
	return &langerr.ParseError{Kind: langerr.FailedToConsume, Recoverable: false}
}
