package eval

import (
	"math"

	"github.com/elijah-potter/thrax-language/ast"
	"github.com/elijah-potter/thrax-language/langerr"
	"github.com/elijah-potter/thrax-language/value"
)

// evalExpr evaluates expr and returns the handle the expression yields.
// For Ident and the array/object cases of Member, the returned handle is
// the live binding or element — not a copy — so that assignment-through-
// handle and the alias testable properties hold. FnCall yields whatever
// handle the callee returns. Every other case allocates a fresh handle.
func (c *Context) evalExpr(expr ast.Expr) (value.Handle, error) {
	switch e := expr.(type) {
	case ast.Ident:
		_, handle, ok := c.Stack.Find(e.Name)
		if !ok {
			return 0, &langerr.EvalError{Kind: langerr.Undeclared, Name: e.Name}
		}
		return handle, nil
	case ast.NumberLit:
		return c.Heap.Alloc(value.Number(e.Value)), nil
	case ast.StringLit:
		return c.Heap.Alloc(value.String(e.Value)), nil
	case ast.BoolLit:
		return c.Heap.Alloc(value.Boolean(e.Value)), nil
	case ast.ArrayLiteral:
		return c.evalArrayLiteral(e)
	case ast.ObjectLiteral:
		return c.evalObjectLiteral(e)
	case ast.BinaryOp:
		return c.evalBinaryOp(e)
	case ast.FnCall:
		return c.evalFnCall(e)
	case ast.Member:
		return c.evalMember(e)
	default:
		panic("eval: unhandled expression node")
	}
}

func (c *Context) evalArrayLiteral(e ast.ArrayLiteral) (value.Handle, error) {
	elems := make([]value.Handle, len(e.Elements))
	for i, el := range e.Elements {
		h, err := c.evalExpr(el)
		if err != nil {
			return 0, err
		}
		elems[i] = c.Heap.ShallowCopy(h)
	}
	return c.Heap.Alloc(value.Array(elems)), nil
}

func (c *Context) evalObjectLiteral(e ast.ObjectLiteral) (value.Handle, error) {
	fields := make(map[string]value.Handle, len(e.Order))
	for _, name := range e.Order {
		h, err := c.evalExpr(e.Fields[name])
		if err != nil {
			return 0, err
		}
		fields[name] = c.Heap.ShallowCopy(h)
	}
	return c.Heap.Alloc(value.Object(fields)), nil
}

func (c *Context) evalBinaryOp(e ast.BinaryOp) (value.Handle, error) {
	aHandle, err := c.evalExpr(e.A)
	if err != nil {
		return 0, err
	}
	bHandle, err := c.evalExpr(e.B)
	if err != nil {
		return 0, err
	}
	a := *c.Heap.MustGet(aHandle)
	b := *c.Heap.MustGet(bHandle)
	result, err := a.BinaryOp(b, e.Kind)
	if err != nil {
		return 0, err
	}
	return c.Heap.Alloc(result), nil
}

// evalMember implements the three indexing rules: string-by-number yields
// a fresh single-character string, array-by-number yields the element's
// own handle (shared), object-by-string yields the field's own handle
// (shared). Any other parent/child combination is an error.
func (c *Context) evalMember(e ast.Member) (value.Handle, error) {
	parentHandle, err := c.evalExpr(e.Parent)
	if err != nil {
		return 0, err
	}
	parent := c.Heap.MustGet(parentHandle)

	childHandle, err := c.evalExpr(e.Child)
	if err != nil {
		return 0, err
	}
	child := c.Heap.MustGet(childHandle)

	switch parent.Kind {
	case value.KindString:
		idx, err := indexOf(child)
		if err != nil {
			return 0, err
		}
		runes := []rune(parent.Str)
		if idx < 0 || idx >= len(runes) {
			return 0, &langerr.EvalError{Kind: langerr.IndexOutOfBounds, Index: idx}
		}
		return c.Heap.Alloc(value.String(string(runes[idx]))), nil
	case value.KindArray:
		idx, err := indexOf(child)
		if err != nil {
			return 0, err
		}
		if idx < 0 || idx >= len(parent.Elems) {
			return 0, &langerr.EvalError{Kind: langerr.IndexOutOfBounds, Index: idx}
		}
		return parent.Elems[idx], nil
	case value.KindObject:
		if child.Kind != value.KindString {
			return 0, &langerr.EvalError{Kind: langerr.TypeError, Expected: value.KindString.String(), Actual: child.Kind.String()}
		}
		h, ok := parent.Fields[child.Str]
		if !ok {
			return 0, &langerr.EvalError{Kind: langerr.ObjectMissingKey, Key: child.Str}
		}
		return h, nil
	default:
		return 0, &langerr.EvalError{Kind: langerr.CannotIndexType, Actual: parent.Kind.String()}
	}
}

// indexOf requires v to be a Number that is integral (within floating
// point tolerance) and returns it as an int.
func indexOf(v *value.Value) (int, error) {
	if v.Kind != value.KindNumber {
		return 0, &langerr.EvalError{Kind: langerr.TypeError, Expected: value.KindNumber.String(), Actual: v.Kind.String()}
	}
	rounded := math.Round(v.Num)
	if !(math.Abs(v.Num-rounded) <= 1e-9) {
		return 0, &langerr.EvalError{Kind: langerr.ExpectedInteger, Number: v.Num}
	}
	return int(rounded), nil
}
