package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elijah-potter/thrax-language/parser"
	"github.com/elijah-potter/thrax-language/value"
)

func run(t *testing.T, ctx *Context, source string) BlockExit {
	t.Helper()
	program, err := parser.ParseSource(source)
	require.NoError(t, err, source)
	exit, err := ctx.EvalProgram(program)
	require.NoError(t, err, source)
	return exit
}

func registerTestStdlib(ctx *Context) {
	ctx.RegisterCallable("len", func(rt value.Runtime, args []value.Handle) (value.Handle, error) {
		v, _ := rt.Deref(args[0])
		switch v.Kind {
		case value.KindString:
			return rt.Alloc(value.Number(float64(len([]rune(v.Str))))), nil
		case value.KindArray:
			return rt.Alloc(value.Number(float64(len(v.Elems)))), nil
		default:
			return rt.Alloc(value.Number(0)), nil
		}
	})
	ctx.RegisterCallable("push", func(rt value.Runtime, args []value.Handle) (value.Handle, error) {
		arr, _ := rt.Deref(args[0])
		arr.Elems = append(arr.Elems, args[1:]...)
		return rt.Alloc(value.Null()), nil
	})
}

func TestEval_ArithmeticPrecedence(t *testing.T) {
	ctx := NewContext(false)
	exit := run(t, ctx, "let x = 1 + 2 * 3; return x;")
	require.True(t, exit.HasValue)
	assert.Equal(t, 7.0, ctx.Heap.MustGet(exit.Value).Num)
}

func TestEval_SubtractGroupsRightScan(t *testing.T) {
	ctx := NewContext(false)
	exit := run(t, ctx, "return 1 - 2 - 3;")
	require.True(t, exit.HasValue)
	assert.Equal(t, 2.0, ctx.Heap.MustGet(exit.Value).Num)
}

func TestEval_WhileLoop(t *testing.T) {
	ctx := NewContext(false)
	exit := run(t, ctx, `
		let i = 0; let s = 0;
		while (i < 5) { s = s + i; i = i + 1; }
		return s;
	`)
	require.True(t, exit.HasValue)
	assert.Equal(t, 10.0, ctx.Heap.MustGet(exit.Value).Num)
}

func TestEval_Recursion(t *testing.T) {
	ctx := NewContext(false)
	exit := run(t, ctx, `
		fn fib(n) {
			if (n < 2) { return n; }
			return fib(n - 1) + fib(n - 2);
		}
		return fib(10);
	`)
	require.True(t, exit.HasValue)
	assert.Equal(t, 55.0, ctx.Heap.MustGet(exit.Value).Num)
}

func TestEval_ScalarCopySemantics(t *testing.T) {
	ctx := NewContext(false)
	run(t, ctx, "let a = 1; let b = a; b = 2;")
	_, aHandle, _ := ctx.Stack.Find("a")
	assert.Equal(t, 1.0, ctx.Heap.MustGet(aHandle).Num)
}

func TestEval_AliasSemantics(t *testing.T) {
	ctx := NewContext(false)
	registerTestStdlib(ctx)
	exit := run(t, ctx, "let a = [1]; let b = a; push(b, 2); return len(a);")
	require.True(t, exit.HasValue)
	assert.Equal(t, 2.0, ctx.Heap.MustGet(exit.Value).Num)
}

func TestEval_ArrayIndexAssignment(t *testing.T) {
	ctx := NewContext(false)
	exit := run(t, ctx, "let a = [1,2,3]; a[1] = 9; return a[1];")
	require.True(t, exit.HasValue)
	assert.Equal(t, 9.0, ctx.Heap.MustGet(exit.Value).Num)
}

func TestEval_MemberAccessOnObject(t *testing.T) {
	ctx := NewContext(false)
	exit := run(t, ctx, "let o = { a: 1, b: 2 }; return o.b;")
	require.True(t, exit.HasValue)
	assert.Equal(t, 2.0, ctx.Heap.MustGet(exit.Value).Num)
}

func TestEval_Redeclaration(t *testing.T) {
	ctx := NewContext(false)
	program, err := parser.ParseSource("let x = 1; let x = 2;")
	require.NoError(t, err)
	_, err = ctx.EvalProgram(program)
	require.Error(t, err)
}

func TestEval_ScopeDisciplineAfterCall(t *testing.T) {
	ctx := NewContext(false)
	before := ctx.StackSize()
	run(t, ctx, "fn f(){ return 1; } let x = f();")
	_ = before
	assert.Equal(t, 1, ctx.Stack.FrameCount())
}

func TestEval_ForwardReferenceFails(t *testing.T) {
	ctx := NewContext(false)
	program, err := parser.ParseSource("fn f(){ return g(); } fn g(){ return 1; } return f();")
	require.NoError(t, err)
	_, err = ctx.EvalProgram(program)
	require.Error(t, err)
}

func TestEval_DivideIsRealDivision(t *testing.T) {
	ctx := NewContext(false)
	exit := run(t, ctx, "return 6 / 3;")
	require.True(t, exit.HasValue)
	assert.Equal(t, 2.0, ctx.Heap.MustGet(exit.Value).Num)
}

func TestEval_IndexOutOfBounds(t *testing.T) {
	ctx := NewContext(false)
	program, err := parser.ParseSource("let a = [1]; return a[5];")
	require.NoError(t, err)
	_, err = ctx.EvalProgram(program)
	require.Error(t, err)
}

func TestEval_GCSafeWithCycles(t *testing.T) {
	ctx := NewContext(true)
	ctx.gcEvery = 1
	registerTestStdlib(ctx)
	exit := run(t, ctx, `
		let a = [];
		let b = [];
		push(a, b);
		push(b, a);
		let c = 0;
	`)
	assert.Equal(t, Completed, exit.Kind)
}
