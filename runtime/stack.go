package runtime

import (
	"github.com/veldtlabs/script-runtime/errors"
	"github.com/veldtlabs/script-runtime/value"
)

// Stack is the argument-passing surface between the host and native
// functions. It is not safe for concurrent use; each call site owns its
// stack for the duration of an invocation.
type Stack struct {
	items []value.Value
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push places v on top of the stack.
func (s *Stack) Push(v value.Value) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top value.
func (s *Stack) Pop() (value.Value, error) {
	if len(s.items) == 0 {
		return value.Unit(), errors.Underflow()
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = value.Value{}
	s.items = s.items[:len(s.items)-1]
	return top, nil
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int {
	return len(s.items)
}
