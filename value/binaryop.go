package value

import (
	"math"

	"github.com/elijah-potter/thrax-language/ast"
	"github.com/elijah-potter/thrax-language/langerr"
)

// BinaryOp evaluates `v OP other` per the dispatch table: numeric ops work
// on Number/Number, Add also works on String/String (concatenation),
// ordering ops are Number-only, and Equals is type-directed across
// Number/String/Bool. Every other combination is an error.
func (v Value) BinaryOp(other Value, kind ast.BinaryOpKind) (Value, error) {
	switch kind {
	case ast.Add:
		if v.Kind == KindNumber && other.Kind == KindNumber {
			return Number(v.Num + other.Num), nil
		}
		if v.Kind == KindString && other.Kind == KindString {
			return String(v.Str + other.Str), nil
		}
		return Value{}, invalidArgs(v, other, "Add")
	case ast.Subtract:
		if v.Kind == KindNumber && other.Kind == KindNumber {
			return Number(v.Num - other.Num), nil
		}
		return Value{}, invalidArgs(v, other, "Subtract")
	case ast.Multiply:
		if v.Kind == KindNumber && other.Kind == KindNumber {
			return Number(v.Num * other.Num), nil
		}
		return Value{}, invalidArgs(v, other, "Multiply")
	case ast.Divide:
		if v.Kind == KindNumber && other.Kind == KindNumber {
			return Number(v.Num / other.Num), nil
		}
		return Value{}, invalidArgs(v, other, "Divide")
	case ast.Pow:
		if v.Kind == KindNumber && other.Kind == KindNumber {
			return Number(math.Pow(v.Num, other.Num)), nil
		}
		return Value{}, invalidArgs(v, other, "Pow")
	case ast.GreaterThan:
		if v.Kind == KindNumber && other.Kind == KindNumber {
			return Boolean(v.Num > other.Num), nil
		}
		return Value{}, invalidArgs(v, other, "GreaterThan")
	case ast.LessThan:
		if v.Kind == KindNumber && other.Kind == KindNumber {
			return Boolean(v.Num < other.Num), nil
		}
		return Value{}, invalidArgs(v, other, "LessThan")
	case ast.Equals:
		switch {
		case v.Kind == KindNumber && other.Kind == KindNumber:
			return Boolean(v.Num == other.Num), nil
		case v.Kind == KindString && other.Kind == KindString:
			return Boolean(v.Str == other.Str), nil
		case v.Kind == KindBool && other.Kind == KindBool:
			return Boolean(v.Bool == other.Bool), nil
		default:
			return Value{}, invalidArgs(v, other, "Equals")
		}
	default:
		return Value{}, invalidArgs(v, other, "Unknown")
	}
}

func invalidArgs(a, b Value, op string) *langerr.EvalError {
	return &langerr.EvalError{
		Kind:     langerr.InvalidBinaryOpArgs,
		Op:       op,
		Expected: a.Kind.String(),
		Actual:   b.Kind.String(),
	}
}
