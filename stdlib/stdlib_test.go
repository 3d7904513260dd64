package stdlib

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elijah-potter/thrax-language/eval"
	"github.com/elijah-potter/thrax-language/parser"
)

func evalReturn(t *testing.T, ctx *eval.Context, source string) float64 {
	t.Helper()
	program, err := parser.ParseSource(source)
	require.NoError(t, err, source)
	exit, err := ctx.EvalProgram(program)
	require.NoError(t, err, source)
	require.True(t, exit.HasValue)
	return ctx.Heap.MustGet(exit.Value).Num
}

func TestStdlib_PushLen(t *testing.T) {
	ctx := eval.NewContext(false)
	Register(ctx, &bytes.Buffer{})
	got := evalReturn(t, ctx, "let a = [1,2,3]; push(a, 4); return len(a);")
	assert.Equal(t, 4.0, got)
}

func TestStdlib_PopShiftUnshift(t *testing.T) {
	ctx := eval.NewContext(false)
	Register(ctx, &bytes.Buffer{})
	got := evalReturn(t, ctx, `
		let a = [1,2,3];
		pop(a);
		unshift(a, 0);
		shift(a);
		return len(a);
	`)
	assert.Equal(t, 2.0, got)
}

func TestStdlib_PrintlnWritesToProvidedWriter(t *testing.T) {
	var buf bytes.Buffer
	ctx := eval.NewContext(false)
	Register(ctx, &buf)
	program, err := parser.ParseSource(`println("hello", 1);`)
	require.NoError(t, err)
	_, err = ctx.EvalProgram(program)
	require.NoError(t, err)
	assert.Equal(t, "hello1\n", buf.String())
}

func TestStdlib_LenOnString(t *testing.T) {
	ctx := eval.NewContext(false)
	Register(ctx, &bytes.Buffer{})
	got := evalReturn(t, ctx, `return len("hello");`)
	assert.Equal(t, 5.0, got)
}
