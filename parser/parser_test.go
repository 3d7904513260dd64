package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elijah-potter/thrax-language/ast"
	"github.com/elijah-potter/thrax-language/langerr"
)

func TestParseSource_VarDecl(t *testing.T) {
	stmts, err := ParseSource("let x = 1 + 2;")
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	decl, ok := stmts[0].(ast.VarDecl)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Ident)
	bin, ok := decl.Init.(ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.Add, bin.Kind)
}

func TestParseSource_OutsideInGrouping(t *testing.T) {
	stmts, err := ParseSource("let x = 1 - 2 - 3;")
	require.NoError(t, err)
	decl := stmts[0].(ast.VarDecl)
	outer := decl.Init.(ast.BinaryOp)
	assert.Equal(t, ast.Subtract, outer.Kind)
	assert.Equal(t, ast.NumberLit{Value: 1}, outer.A)
	inner := outer.B.(ast.BinaryOp)
	assert.Equal(t, ast.Subtract, inner.Kind)
	assert.Equal(t, ast.NumberLit{Value: 2}, inner.A)
	assert.Equal(t, ast.NumberLit{Value: 3}, inner.B)
}

func TestParseSource_FnDeclAndCall(t *testing.T) {
	stmts, err := ParseSource("fn add(a, b) { return a + b; } add(1, 2);")
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	fn, ok := stmts[0].(ast.FnDecl)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Ident)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	require.Len(t, fn.Body, 1)
	ret, ok := fn.Body[0].(ast.ReturnStmt)
	require.True(t, ok)
	assert.NotNil(t, ret.Value)

	call, ok := stmts[1].(ast.ExprStmt).X.(ast.FnCall)
	require.True(t, ok)
	assert.Equal(t, "add", call.Name)
	assert.Len(t, call.Args, 2)
}

func TestParseSource_WhileLoop(t *testing.T) {
	stmts, err := ParseSource("while (x < 10) { x += 1; }")
	require.NoError(t, err)
	loop, ok := stmts[0].(ast.WhileLoop)
	require.True(t, ok)
	cond := loop.Cond.(ast.BinaryOp)
	assert.Equal(t, ast.LessThan, cond.Kind)
	require.Len(t, loop.Body, 1)
}

func TestParseSource_IfElseChain(t *testing.T) {
	stmts, err := ParseSource(`
		if (x > 0) {
			y = 1;
		} else if (x < 0) {
			y = -1;
		} else {
			y = 0;
		}
	`)
	require.NoError(t, err)
	top, ok := stmts[0].(ast.IfElse)
	require.True(t, ok)
	require.Len(t, top.ElseBranch, 1)
	nested, ok := top.ElseBranch[0].(ast.IfElse)
	require.True(t, ok)
	require.Len(t, nested.ElseBranch, 1)
}

func TestParseSource_ArrayAndObjectLiterals(t *testing.T) {
	stmts, err := ParseSource(`let a = [1, [2, 3], 4];`)
	require.NoError(t, err)
	decl := stmts[0].(ast.VarDecl)
	arr, ok := decl.Init.(ast.ArrayLiteral)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)
	nested, ok := arr.Elements[1].(ast.ArrayLiteral)
	require.True(t, ok)
	assert.Len(t, nested.Elements, 2)

	stmts, err = ParseSource(`let o = {a: 1, b: {c: 2}};`)
	require.NoError(t, err)
	decl = stmts[0].(ast.VarDecl)
	obj, ok := decl.Init.(ast.ObjectLiteral)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, obj.Order)
	innerObj, ok := obj.Fields["b"].(ast.ObjectLiteral)
	require.True(t, ok)
	assert.Equal(t, []string{"c"}, innerObj.Order)
}

func TestParseSource_MemberAccessBothForms(t *testing.T) {
	stmts, err := ParseSource(`let x = a.b.c;`)
	require.NoError(t, err)
	decl := stmts[0].(ast.VarDecl)
	outer, ok := decl.Init.(ast.Member)
	require.True(t, ok)
	assert.Equal(t, ast.StringLit{Value: "c"}, outer.Child)
	inner, ok := outer.Parent.(ast.Member)
	require.True(t, ok)
	assert.Equal(t, ast.StringLit{Value: "b"}, inner.Child)
	assert.Equal(t, ast.Ident{Name: "a"}, inner.Parent)

	stmts, err = ParseSource(`let y = a[b];`)
	require.NoError(t, err)
	decl = stmts[0].(ast.VarDecl)
	member, ok := decl.Init.(ast.Member)
	require.True(t, ok)
	assert.Equal(t, ast.Ident{Name: "a"}, member.Parent)
	assert.Equal(t, ast.Ident{Name: "b"}, member.Child)
}

func TestParseSource_BreakContinue(t *testing.T) {
	stmts, err := ParseSource(`while (true) { break; continue; }`)
	require.NoError(t, err)
	loop := stmts[0].(ast.WhileLoop)
	require.Len(t, loop.Body, 2)
	_, ok := loop.Body[0].(ast.BreakStmt)
	assert.True(t, ok)
	_, ok = loop.Body[1].(ast.ContinueStmt)
	assert.True(t, ok)
}

func TestParseSource_ReturnWithoutValue(t *testing.T) {
	stmts, err := ParseSource(`fn f() { return; }`)
	require.NoError(t, err)
	fn := stmts[0].(ast.FnDecl)
	ret := fn.Body[0].(ast.ReturnStmt)
	assert.Nil(t, ret.Value)
}

func TestParseSource_MalformedVarDeclIsUnrecoverable(t *testing.T) {
	_, err := ParseSource(`let = 1;`)
	require.Error(t, err)
	pe, ok := err.(*langerr.ParseError)
	require.True(t, ok)
	assert.False(t, pe.Recoverable)
}

func TestParseSource_CompoundAssign(t *testing.T) {
	stmts, err := ParseSource(`x += 1;`)
	require.NoError(t, err)
	assign := stmts[0].(ast.VarAssign)
	assert.Equal(t, ast.AssignAdd, assign.Op)
}

func TestParseSource_TrailingGarbageErrors(t *testing.T) {
	_, err := ParseSource(`let x = 1; )`)
	assert.Error(t, err)
}
