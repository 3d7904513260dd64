package gc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elijah-potter/thrax-language/value"
)

func TestCollect_FreesUnreachable(t *testing.T) {
	h := value.NewHeap()
	root := h.Alloc(value.Number(1))
	garbage := h.Alloc(value.Number(2))

	freed := Collect(h, []value.Handle{root})

	assert.Equal(t, 1, freed)
	_, ok := h.Get(garbage)
	assert.False(t, ok)
	_, ok = h.Get(root)
	assert.True(t, ok)
}

func TestCollect_TracesCycles(t *testing.T) {
	h := value.NewHeap()
	aElems := h.Alloc(value.Array(nil))
	bElems := h.Alloc(value.Array(nil))

	// a := [b]; b := [a] -- a cycle, both reachable from the stack root `a`.
	h.MustGet(aElems).Elems = []value.Handle{bElems}
	h.MustGet(bElems).Elems = []value.Handle{aElems}

	freed := Collect(h, []value.Handle{aElems})
	require.Equal(t, 0, freed)
	assert.Equal(t, 2, h.Len())
}

func TestCollect_FreesUnreachableCycle(t *testing.T) {
	h := value.NewHeap()
	root := h.Alloc(value.Number(1))
	aElems := h.Alloc(value.Array(nil))
	bElems := h.Alloc(value.Array(nil))
	h.MustGet(aElems).Elems = []value.Handle{bElems}
	h.MustGet(bElems).Elems = []value.Handle{aElems}

	freed := Collect(h, []value.Handle{root})
	assert.Equal(t, 2, freed)
	assert.Equal(t, 1, h.Len())
}
