// Package stdlib is the thin demonstration of the core's capability
// contract: host-registered native functions that observe and mutate
// values through the exact same value.Runtime interface a user-defined
// function's call site uses. It is not a general-purpose standard
// library — spec.md scopes the stdlib surface to push/pop/shift/unshift,
// len, print/println, and timestamp.
package stdlib

import (
	"fmt"
	"io"
	"time"

	"github.com/elijah-potter/thrax-language/langerr"
	"github.com/elijah-potter/thrax-language/value"
)

// registerable is the part of eval.Context that Register needs.
type registerable interface {
	RegisterCallable(name string, fn value.HostFunc)
}

// Register installs the full capability-contract demo set. writer is where
// print/println send their output (typically os.Stdout for the CLI,
// the REPL's own writer for interactive sessions).
func Register(ctx registerable, writer io.Writer) {
	ctx.RegisterCallable("print", printFn(writer))
	ctx.RegisterCallable("println", printlnFn(writer))
	ctx.RegisterCallable("len", lenFn)
	ctx.RegisterCallable("push", pushFn)
	ctx.RegisterCallable("pop", popFn)
	ctx.RegisterCallable("unshift", unshiftFn)
	ctx.RegisterCallable("shift", shiftFn)
	ctx.RegisterCallable("timestamp", timestampFn)
}

func printFn(writer io.Writer) value.HostFunc {
	return func(rt value.Runtime, args []value.Handle) (value.Handle, error) {
		for _, a := range args {
			v, _ := rt.Deref(a)
			fmt.Fprint(writer, v.ToDisplayString())
		}
		return rt.Alloc(value.Null()), nil
	}
}

func printlnFn(writer io.Writer) value.HostFunc {
	return func(rt value.Runtime, args []value.Handle) (value.Handle, error) {
		for _, a := range args {
			v, _ := rt.Deref(a)
			fmt.Fprint(writer, v.ToDisplayString())
		}
		fmt.Fprintln(writer)
		return rt.Alloc(value.Null()), nil
	}
}

// lenFn returns the length of a String, Array, or Object argument.
func lenFn(rt value.Runtime, args []value.Handle) (value.Handle, error) {
	if len(args) != 1 {
		return 0, &langerr.EvalError{Kind: langerr.IncorrectArgumentCount, ExpectedCount: 1, ActualCount: len(args)}
	}
	v, _ := rt.Deref(args[0])
	switch v.Kind {
	case value.KindString:
		return rt.Alloc(value.Number(float64(len([]rune(v.Str))))), nil
	case value.KindArray:
		return rt.Alloc(value.Number(float64(len(v.Elems)))), nil
	case value.KindObject:
		return rt.Alloc(value.Number(float64(len(v.Fields)))), nil
	default:
		return 0, &langerr.EvalError{Kind: langerr.CannotIndexType, Actual: v.Kind.String()}
	}
}

// pushFn appends every argument after the first to the first argument's
// array, in order, and returns null. Mutation happens in place through the
// array's own handle so every alias observes the new length.
func pushFn(rt value.Runtime, args []value.Handle) (value.Handle, error) {
	if len(args) < 2 {
		return 0, &langerr.EvalError{Kind: langerr.IncorrectArgumentCount, ExpectedCount: 2, ActualCount: len(args)}
	}
	arr, err := requireArray(rt, args[0])
	if err != nil {
		return 0, err
	}
	arr.Elems = append(arr.Elems, args[1:]...)
	return rt.Alloc(value.Null()), nil
}

// popFn removes and returns the last element of the first argument's
// array, or null if the array is empty.
func popFn(rt value.Runtime, args []value.Handle) (value.Handle, error) {
	if len(args) != 1 {
		return 0, &langerr.EvalError{Kind: langerr.IncorrectArgumentCount, ExpectedCount: 1, ActualCount: len(args)}
	}
	arr, err := requireArray(rt, args[0])
	if err != nil {
		return 0, err
	}
	if len(arr.Elems) == 0 {
		return rt.Alloc(value.Null()), nil
	}
	last := arr.Elems[len(arr.Elems)-1]
	arr.Elems = arr.Elems[:len(arr.Elems)-1]
	return last, nil
}

// unshiftFn prepends every argument after the first to the front of the
// first argument's array, preserving their given order.
func unshiftFn(rt value.Runtime, args []value.Handle) (value.Handle, error) {
	if len(args) < 2 {
		return 0, &langerr.EvalError{Kind: langerr.IncorrectArgumentCount, ExpectedCount: 2, ActualCount: len(args)}
	}
	arr, err := requireArray(rt, args[0])
	if err != nil {
		return 0, err
	}
	arr.Elems = append(append([]value.Handle{}, args[1:]...), arr.Elems...)
	return rt.Alloc(value.Null()), nil
}

// shiftFn removes and returns the first element of the first argument's
// array, or null if the array is empty.
func shiftFn(rt value.Runtime, args []value.Handle) (value.Handle, error) {
	if len(args) != 1 {
		return 0, &langerr.EvalError{Kind: langerr.IncorrectArgumentCount, ExpectedCount: 1, ActualCount: len(args)}
	}
	arr, err := requireArray(rt, args[0])
	if err != nil {
		return 0, err
	}
	if len(arr.Elems) == 0 {
		return rt.Alloc(value.Null()), nil
	}
	first := arr.Elems[0]
	arr.Elems = arr.Elems[1:]
	return first, nil
}

// timestampFn returns the current Unix time in milliseconds, matching the
// original implementation's SystemTime::now().duration_since(UNIX_EPOCH).
func timestampFn(rt value.Runtime, args []value.Handle) (value.Handle, error) {
	ms := time.Now().UnixMilli()
	return rt.Alloc(value.Number(float64(ms))), nil
}

func requireArray(rt value.Runtime, h value.Handle) (*value.Value, error) {
	v, _ := rt.Deref(h)
	if v.Kind != value.KindArray {
		return nil, &langerr.EvalError{Kind: langerr.TypeError, Expected: value.KindArray.String(), Actual: v.Kind.String()}
	}
	return v, nil
}
