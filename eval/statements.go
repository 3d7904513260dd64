package eval

import (
	"github.com/elijah-potter/thrax-language/ast"
	"github.com/elijah-potter/thrax-language/langerr"
	"github.com/elijah-potter/thrax-language/value"
)

// evalStmt dispatches a single statement and returns how its block should
// continue: Completed to fall through to the next statement, or a
// Returned/Break/Continue that the caller must propagate or consume.
func (c *Context) evalStmt(stmt ast.Stmt) (BlockExit, error) {
	switch s := stmt.(type) {
	case ast.VarDecl:
		return c.evalVarDecl(s)
	case ast.VarAssign:
		return c.evalVarAssign(s)
	case ast.FnDecl:
		return c.evalFnDecl(s)
	case ast.WhileLoop:
		return c.evalWhileLoop(s)
	case ast.IfElse:
		return c.evalIfElse(s)
	case ast.ReturnStmt:
		return c.evalReturn(s)
	case ast.BreakStmt:
		return BlockExit{Kind: Break}, nil
	case ast.ContinueStmt:
		return BlockExit{Kind: Continue}, nil
	case ast.ExprStmt:
		if _, err := c.evalExpr(s.X); err != nil {
			return BlockExit{}, err
		}
		return BlockExit{Kind: Completed}, nil
	default:
		panic("eval: unhandled statement node")
	}
}

// evalBlock runs a nested statement list inside its own frame (used by
// if/else branches and loop bodies), closing the frame whether the block
// completed normally or exited early.
func (c *Context) evalBlock(body []ast.Stmt) (BlockExit, error) {
	c.Stack.OpenFrame()
	exit, err := c.EvalProgram(body)
	c.Stack.PopFrame()
	return exit, err
}

func (c *Context) evalVarDecl(s ast.VarDecl) (BlockExit, error) {
	c.maybeCollect()

	handle, err := c.evalExpr(s.Init)
	if err != nil {
		return BlockExit{}, err
	}
	if _, _, ok := c.Stack.Find(s.Ident); ok {
		return BlockExit{}, &langerr.EvalError{Kind: langerr.Redeclaration, Name: s.Ident}
	}
	c.Stack.PushValue(s.Ident, c.Heap.ShallowCopy(handle))
	return BlockExit{Kind: Completed}, nil
}

func (c *Context) evalVarAssign(s ast.VarAssign) (BlockExit, error) {
	rhsHandle, err := c.evalExpr(s.Value)
	if err != nil {
		return BlockExit{}, err
	}
	rhsVal := *c.Heap.MustGet(rhsHandle)

	targetHandle, err := c.evalExpr(s.To)
	if err != nil {
		return BlockExit{}, err
	}
	target := c.Heap.MustGet(targetHandle)

	if kind, ok := s.Op.BinaryOp(); ok {
		result, err := target.BinaryOp(rhsVal, kind)
		if err != nil {
			return BlockExit{}, err
		}
		*target = result
	} else {
		*target = rhsVal
	}
	return BlockExit{Kind: Completed}, nil
}

func (c *Context) evalFnDecl(s ast.FnDecl) (BlockExit, error) {
	if _, _, ok := c.Stack.Find(s.Ident); ok {
		return BlockExit{}, &langerr.EvalError{Kind: langerr.Redeclaration, Name: s.Ident}
	}
	callable := &value.Callable{
		Params:    s.Params,
		Body:      s.Body,
		DefHeight: c.Stack.Height(),
	}
	handle := c.Heap.Alloc(value.NewCallable(callable))
	c.Stack.PushValue(s.Ident, handle)
	return BlockExit{Kind: Completed}, nil
}

func (c *Context) evalWhileLoop(s ast.WhileLoop) (BlockExit, error) {
	for {
		cond, err := c.evalBool(s.Cond)
		if err != nil {
			return BlockExit{}, err
		}
		if !cond {
			return BlockExit{Kind: Completed}, nil
		}

		exit, err := c.evalBlock(s.Body)
		if err != nil {
			return BlockExit{}, err
		}
		switch exit.Kind {
		case Break:
			return BlockExit{Kind: Completed}, nil
		case Returned:
			return exit, nil
		case Continue, Completed:
			// fall through to re-check the condition
		}
	}
}

func (c *Context) evalIfElse(s ast.IfElse) (BlockExit, error) {
	cond, err := c.evalBool(s.Cond)
	if err != nil {
		return BlockExit{}, err
	}
	if cond {
		return c.evalBlock(s.TrueBranch)
	}
	if s.ElseBranch == nil {
		return BlockExit{Kind: Completed}, nil
	}
	return c.evalBlock(s.ElseBranch)
}

func (c *Context) evalReturn(s ast.ReturnStmt) (BlockExit, error) {
	if s.Value == nil {
		return BlockExit{Kind: Returned}, nil
	}
	handle, err := c.evalExpr(s.Value)
	if err != nil {
		return BlockExit{}, err
	}
	return BlockExit{Kind: Returned, Value: handle, HasValue: true}, nil
}

// evalBool evaluates expr and requires the result to be a Bool, per the
// contract that every condition (while/if) is type-checked before use.
func (c *Context) evalBool(expr ast.Expr) (bool, error) {
	handle, err := c.evalExpr(expr)
	if err != nil {
		return false, err
	}
	v := c.Heap.MustGet(handle)
	if v.Kind != value.KindBool {
		return false, &langerr.EvalError{Kind: langerr.TypeError, Expected: value.KindBool.String(), Actual: v.Kind.String()}
	}
	return v.Bool, nil
}
