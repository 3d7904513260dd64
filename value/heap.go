package value

// Heap is a flat store of boxed Values keyed by Handle, ported from the
// reference implementation's Heap<T>{items: HashMap<usize,T>}. It never
// reuses a freed key within a single run, which keeps handle identity
// comparisons (used by the garbage collector's visited-set) simple.
type Heap struct {
	items map[Handle]*Value
	next  Handle
}

func NewHeap() *Heap {
	return &Heap{items: make(map[Handle]*Value)}
}

// Alloc copies v onto the heap and returns a fresh handle to it.
func (h *Heap) Alloc(v Value) Handle {
	id := h.next
	h.next++
	cp := v
	h.items[id] = &cp
	return id
}

// Get dereferences a handle. The returned pointer aliases heap storage;
// mutating *Value through it is how assignment-through-handle works.
func (h *Heap) Get(handle Handle) (*Value, bool) {
	v, ok := h.items[handle]
	return v, ok
}

// MustGet panics if handle does not exist; only used where the caller has
// already established the handle is valid (e.g. it was just allocated).
func (h *Heap) MustGet(handle Handle) *Value {
	v, ok := h.items[handle]
	if !ok {
		panic("thrax: dereferenced a freed or unknown handle")
	}
	return v
}

// Len reports how many live handles the heap currently holds.
func (h *Heap) Len() int {
	return len(h.items)
}

// Keep deletes every handle not present in the given set, implementing the
// sweep half of mark-and-sweep.
func (h *Heap) Keep(reachable map[Handle]bool) int {
	freed := 0
	for k := range h.items {
		if !reachable[k] {
			delete(h.items, k)
			freed++
		}
	}
	return freed
}

// ShallowCopy implements the bind/return contract: scalars get a fresh
// handle holding a copy of their contents, compounds share the same
// handle.
func (h *Heap) ShallowCopy(handle Handle) Handle {
	v := h.MustGet(handle)
	if v.IsCompound() {
		return handle
	}
	return h.Alloc(*v)
}
