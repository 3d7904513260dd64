// Package eval walks the AST produced by package parser against a flat
// stack-of-bindings environment and a shared value heap. There is no
// parent-pointer scope chain and no closures: a function call splices the
// caller's locals back in after it returns, and an interpreted callable
// only ever sees the stack height it was declared at.
package eval

import (
	"io"
	"os"

	"github.com/elijah-potter/thrax-language/ast"
	"github.com/elijah-potter/thrax-language/env"
	"github.com/elijah-potter/thrax-language/gc"
	"github.com/elijah-potter/thrax-language/value"
)

// Context bundles the interpreter's mutable state: the binding stack, the
// value heap, and the set of installed host callables. One Context is
// reused across a REPL session; each top-level ParseSource result is run
// through the same Context's EvalProgram.
type Context struct {
	Stack   *env.Stack
	Heap    *value.Heap
	GC      bool
	Writer  io.Writer
	gcEvery int
	sinceGC int
}

// NewContext builds a Context with an empty stack and heap. enableGC turns
// on a mark-sweep pass before every 64th variable declaration; tests that
// want to inspect exact handle counts typically pass false.
func NewContext(enableGC bool) *Context {
	return &Context{
		Stack:   env.NewStack(),
		Heap:    value.NewHeap(),
		GC:      enableGC,
		Writer:  os.Stdout,
		gcEvery: 64,
	}
}

// RegisterCallable installs a host (native) function under name, reachable
// from source as an ordinary function call.
func (c *Context) RegisterCallable(name string, fn value.HostFunc) {
	handle := c.Heap.Alloc(value.NewCallable(&value.Callable{Native: fn}))
	c.Stack.PushValue(name, handle)
}

// StackSize reports the current number of live bindings, for diagnostics
// and tests asserting on scope discipline.
func (c *Context) StackSize() int { return c.Stack.Height() }

// HeapSize reports the number of live heap entries.
func (c *Context) HeapSize() int { return c.Heap.Len() }

// Alloc implements value.Runtime.
func (c *Context) Alloc(v value.Value) value.Handle { return c.Heap.Alloc(v) }

// Deref implements value.Runtime.
func (c *Context) Deref(h value.Handle) (*value.Value, bool) { return c.Heap.Get(h) }

// HeapMap implements value.Runtime. Named HeapMap rather than Heap since
// the Heap field already owns that name on this struct.
func (c *Context) HeapMap() *value.Heap { return c.Heap }

// Call implements value.Runtime, letting a host function invoke an
// arbitrary callable value.
func (c *Context) Call(fnHandle value.Handle, args []value.Handle) (value.Handle, error) {
	return c.callValue(fnHandle, args)
}

// maybeCollect runs a GC pass rooted at the current stack if GC is enabled
// and it has been called gcEvery times since the last pass.
func (c *Context) maybeCollect() {
	if !c.GC {
		return
	}
	c.sinceGC++
	if c.sinceGC < c.gcEvery {
		return
	}
	c.sinceGC = 0
	gc.Collect(c.Heap, c.Stack.Roots())
}

// EvalProgram runs a top-level statement list (or a function body) against
// the current stack height, returning how the block was exited.
func (c *Context) EvalProgram(program []ast.Stmt) (BlockExit, error) {
	for _, stmt := range program {
		exit, err := c.evalStmt(stmt)
		if err != nil {
			return BlockExit{}, err
		}
		if exit.Kind != Completed {
			return exit, nil
		}
	}
	return BlockExit{Kind: Completed}, nil
}

// BlockExitKind classifies how a statement list finished.
type BlockExitKind int

const (
	Completed BlockExitKind = iota
	Returned
	Break
	Continue
)

// BlockExit propagates up through nested blocks (if/else bodies, loop
// bodies) until it reaches something that can act on it: a WhileLoop
// consumes Break/Continue, and a function call boundary consumes Returned.
type BlockExit struct {
	Kind     BlockExitKind
	Value    value.Handle
	HasValue bool
}

