// Package env implements the flat name-stack environment model: an ordered
// sequence of (name, handle) bindings plus an ordered sequence of frame
// markers. There is no parent-pointer scope chain and no captured
// environment — this is deliberate (see value.Callable.DefHeight and the
// pop-splice protocol in package eval): functions see only globals and
// their own parameters, never outer locals.
//
// This is a direct port of the reference implementation's Stack type.
package env

import "github.com/elijah-potter/thrax-language/value"

// Binding is one (name, handle) pair living on the stack.
type Binding struct {
	Name   string
	Handle value.Handle
}

// Stack holds every binding currently in scope plus the frame markers that
// divide them into nested scopes. The initial state has one marker at 0.
type Stack struct {
	Values []Binding
	Frames []int
}

func NewStack() *Stack {
	return &Stack{Frames: []int{0}}
}

// OpenFrame starts a new inner scope at the current height.
func (s *Stack) OpenFrame() {
	s.Frames = append(s.Frames, len(s.Values))
}

// PopFrame closes the innermost scope, discarding every binding pushed
// since the matching OpenFrame/PushFrame, and returns them.
func (s *Stack) PopFrame() []Binding {
	n := len(s.Frames)
	marker := s.Frames[n-1]
	s.Frames = s.Frames[:n-1]
	popped := append([]Binding(nil), s.Values[marker:]...)
	s.Values = s.Values[:marker]
	return popped
}

// PushFrame opens a new scope pre-populated with values, used to bind a
// callee's parameters in one step.
func (s *Stack) PushFrame(values []Binding) {
	s.Frames = append(s.Frames, len(s.Values))
	s.Values = append(s.Values, values...)
}

// PushValue binds a single name in the current (innermost) scope.
func (s *Stack) PushValue(name string, h value.Handle) {
	s.Values = append(s.Values, Binding{Name: name, Handle: h})
}

// Find returns the most recent (rightmost) binding with the given name,
// searched across every frame, and the index it lives at.
func (s *Stack) Find(name string) (index int, h value.Handle, ok bool) {
	for i := len(s.Values) - 1; i >= 0; i-- {
		if s.Values[i].Name == name {
			return i, s.Values[i].Handle, true
		}
	}
	return -1, 0, false
}

// PoppedStack is the suffix of the stack spliced off by PopUntilIndex, to
// be restored later by PushPoppedStack.
type PoppedStack struct {
	Values []Binding
	Frames []int
}

// PopUntilIndex splices off every binding after index (keeping index
// itself), along with every frame marker that lies strictly after the
// frame containing index. This is the core of the pop-splice call
// protocol: it temporarily hides everything a callee should not see.
func (s *Stack) PopUntilIndex(index int) PoppedStack {
	values := append([]Binding(nil), s.Values[index+1:]...)
	s.Values = s.Values[:index+1]

	containingFrame := 0
	for i := len(s.Frames) - 1; i >= 0; i-- {
		if s.Frames[i] <= index {
			containingFrame = i
			break
		}
	}
	frames := append([]int(nil), s.Frames[containingFrame+1:]...)
	s.Frames = s.Frames[:containingFrame+1]

	return PoppedStack{Values: values, Frames: frames}
}

// PushPoppedStack restores a splice saved by PopUntilIndex.
func (s *Stack) PushPoppedStack(p PoppedStack) {
	s.Values = append(s.Values, p.Values...)
	s.Frames = append(s.Frames, p.Frames...)
}

// Height is the number of bindings currently on the stack.
func (s *Stack) Height() int {
	return len(s.Values)
}

// FrameCount is the number of open frame markers, used by the scope
// discipline test property (it must equal 1 after eval_program returns to
// top level, matching the initial state).
func (s *Stack) FrameCount() int {
	return len(s.Frames)
}

// Roots returns every handle currently bound on the stack, the garbage
// collector's root set.
func (s *Stack) Roots() []value.Handle {
	roots := make([]value.Handle, len(s.Values))
	for i, b := range s.Values {
		roots[i] = b.Handle
	}
	return roots
}
