// Package gc implements the mark-and-sweep collector over value.Heap. It
// has no dependency on the evaluator: callers supply the heap and the
// current root set (typically env.Stack.Roots()).
package gc

import "github.com/elijah-potter/thrax-language/value"

// Collect marks every handle reachable from roots (tracing through arrays
// and objects) and frees everything else. It returns the number of handles
// freed, for diagnostics. Handles are visited by identity, so cyclic
// arrays/objects are traced safely — a handle already in the visited set is
// never re-queued.
func Collect(heap *value.Heap, roots []value.Handle) int {
	visited := make(map[value.Handle]bool, len(roots))
	queue := append([]value.Handle(nil), roots...)

	for len(queue) > 0 {
		h := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if visited[h] {
			continue
		}
		visited[h] = true

		v, ok := heap.Get(h)
		if !ok {
			continue
		}
		switch v.Kind {
		case value.KindArray:
			queue = append(queue, v.Elems...)
		case value.KindObject:
			for _, fh := range v.Fields {
				queue = append(queue, fh)
			}
		}
	}

	return heap.Keep(visited)
}
