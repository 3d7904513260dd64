package eval

import (
	"github.com/elijah-potter/thrax-language/ast"
	"github.com/elijah-potter/thrax-language/env"
	"github.com/elijah-potter/thrax-language/langerr"
	"github.com/elijah-potter/thrax-language/value"
)

func (c *Context) evalFnCall(e ast.FnCall) (value.Handle, error) {
	args := make([]value.Handle, len(e.Args))
	for i, a := range e.Args {
		h, err := c.evalExpr(a)
		if err != nil {
			return 0, err
		}
		args[i] = c.Heap.ShallowCopy(h)
	}

	_, fnHandle, ok := c.Stack.Find(e.Name)
	if !ok {
		return 0, &langerr.EvalError{Kind: langerr.Undeclared, Name: e.Name}
	}
	return c.callValue(fnHandle, args)
}

// callValue dispatches a resolved callable handle with already-evaluated
// (and shallow-copied) argument handles. It is also the implementation of
// value.Runtime.Call, letting host natives invoke callback arguments.
func (c *Context) callValue(fnHandle value.Handle, args []value.Handle) (value.Handle, error) {
	fn := c.Heap.MustGet(fnHandle)
	if fn.Kind != value.KindCallable {
		return 0, &langerr.EvalError{Kind: langerr.TypeError, Expected: value.KindCallable.String(), Actual: fn.Kind.String()}
	}

	if fn.Fn.IsNative() {
		return fn.Fn.Native(c, args)
	}
	return c.callInterpreted(fn.Fn, args)
}

// callInterpreted implements the pop-splice protocol: splice the stack
// back to the callee's own definition index (hiding every local declared
// since then, including the caller's own locals), open a fresh frame
// holding only the parameters, run the body, then restore the spliced
// suffix. This is what makes interpreted functions see globals and their
// own parameters only — never an enclosing call's locals.
func (c *Context) callInterpreted(fn *value.Callable, args []value.Handle) (value.Handle, error) {
	if len(args) != len(fn.Params) {
		return 0, &langerr.EvalError{Kind: langerr.IncorrectArgumentCount, ExpectedCount: len(fn.Params), ActualCount: len(args)}
	}

	saved := c.Stack.PopUntilIndex(fn.DefHeight)

	bindings := make([]env.Binding, len(fn.Params))
	for i, p := range fn.Params {
		bindings[i] = env.Binding{Name: p, Handle: args[i]}
	}
	c.Stack.PushFrame(bindings)

	exit, err := c.EvalProgram(fn.Body)

	c.Stack.PopFrame()
	c.Stack.PushPoppedStack(saved)

	if err != nil {
		return 0, err
	}

	switch exit.Kind {
	case Returned:
		if exit.HasValue {
			return exit.Value, nil
		}
		return c.Heap.Alloc(value.Null()), nil
	case Completed:
		return c.Heap.Alloc(value.Null()), nil
	default:
		return 0, &langerr.EvalError{Kind: langerr.UnexpectedBlockExit}
	}
}
