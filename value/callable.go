package value

import "github.com/elijah-potter/thrax-language/ast"

// Runtime is the capability surface a host-provided native function can use
// to observe and mutate the executing program. eval.Context implements
// this; it is declared here (not imported from eval) to avoid an import
// cycle between value and eval.
type Runtime interface {
	Alloc(v Value) Handle
	Deref(h Handle) (*Value, bool)
	HeapMap() *Heap
	Call(fnHandle Handle, args []Handle) (Handle, error)
}

// HostFunc is the signature every host-registered native function has:
// (runtime, args) -> result handle | error.
type HostFunc func(rt Runtime, args []Handle) (Handle, error)

// Callable is either an interpreted function (Native == nil) or a host
// function (Native != nil). DefHeight is the stack height captured at the
// interpreted function's declaration site; the call-time pop-splice
// protocol splices at this index, not at wherever the function's own
// binding happens to be looked up from.
type Callable struct {
	Native    HostFunc
	Params    []string
	Body      []ast.Stmt
	DefHeight int
}

func (c *Callable) IsNative() bool { return c.Native != nil }
