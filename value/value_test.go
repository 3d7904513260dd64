package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elijah-potter/thrax-language/ast"
)

func TestBinaryOp_Numeric(t *testing.T) {
	a, b := Number(6), Number(3)

	sum, err := a.BinaryOp(b, ast.Add)
	require.NoError(t, err)
	assert.Equal(t, 9.0, sum.Num)

	div, err := a.BinaryOp(b, ast.Divide)
	require.NoError(t, err)
	assert.Equal(t, 2.0, div.Num)

	pow, err := Number(2).BinaryOp(Number(10), ast.Pow)
	require.NoError(t, err)
	assert.Equal(t, 1024.0, pow.Num)
}

func TestBinaryOp_StringConcat(t *testing.T) {
	v, err := String("foo").BinaryOp(String("bar"), ast.Add)
	require.NoError(t, err)
	assert.Equal(t, "foobar", v.Str)
}

func TestBinaryOp_EqualsIsTypeDirected(t *testing.T) {
	v, err := Number(1).BinaryOp(Number(1), ast.Equals)
	require.NoError(t, err)
	assert.True(t, v.Bool)

	_, err = Number(1).BinaryOp(String("1"), ast.Equals)
	assert.Error(t, err)
}

func TestBinaryOp_MismatchedTypesError(t *testing.T) {
	_, err := Number(1).BinaryOp(String("x"), ast.Subtract)
	assert.Error(t, err)
}

func TestHeap_ShallowCopy(t *testing.T) {
	h := NewHeap()
	scalar := h.Alloc(Number(1))
	copied := h.ShallowCopy(scalar)
	assert.NotEqual(t, scalar, copied)

	h.MustGet(copied).Num = 2
	assert.Equal(t, 1.0, h.MustGet(scalar).Num)

	arr := h.Alloc(Array([]Handle{scalar}))
	sharedCopy := h.ShallowCopy(arr)
	assert.Equal(t, arr, sharedCopy)
}
