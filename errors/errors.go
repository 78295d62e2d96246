package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCall     Phase = "call"     // calling-convention handling
	PhaseValidate Phase = "validate" // outer argument classification
	PhaseCoerce   Phase = "coerce"   // per-element future coercion
	PhaseJoin     Phase = "join"     // concurrent join execution
	PhaseExec     Phase = "exec"     // registry dispatch
	PhaseScenario Phase = "scenario" // scenario loading
)

// Kind categorizes the error
type Kind string

const (
	KindArityMismatch   Kind = "arity_mismatch"
	KindStackUnderflow  Kind = "stack_underflow"
	KindTypeMismatch    Kind = "type_mismatch"
	KindSlotConflict    Kind = "slot_conflict"
	KindNotFound        Kind = "not_found"
	KindInvalidScenario Kind = "invalid_scenario"
	KindUnsupported     Kind = "unsupported"
)

// Error is the structured error type used throughout the runtime.
//
// ArgIndex and ElemIndex are -1 when absent. A coercion failure sets both:
// the outer call argument that held the collection and the offending element
// inside it. Both facts travel in one error value.
type Error struct {
	Cause     error
	Phase     Phase
	Kind      Kind
	Expected  string
	Actual    string
	Detail    string
	ArgIndex  int
	ElemIndex int
	Want      int
	Got       int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Kind == KindArityMismatch {
		b.WriteString(": want ")
		b.WriteString(strconv.Itoa(e.Want))
		b.WriteString(" argument(s), got ")
		b.WriteString(strconv.Itoa(e.Got))
	}

	if e.ArgIndex >= 0 {
		b.WriteString(" at argument #")
		b.WriteString(strconv.Itoa(e.ArgIndex))
	}
	if e.ElemIndex >= 0 {
		b.WriteString(", element #")
		b.WriteString(strconv.Itoa(e.ElemIndex))
	}

	if e.Expected != "" || e.Actual != "" {
		b.WriteString(": expected ")
		b.WriteString(e.Expected)
		if e.Actual != "" {
			b.WriteString(", found ")
			b.WriteString(e.Actual)
		}
	}

	if e.Detail != "" {
		if e.Expected != "" || e.Actual != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:     phase,
			Kind:      kind,
			ArgIndex:  -1,
			ElemIndex: -1,
		},
	}
}

// Arg sets the call-argument index
func (b *Builder) Arg(i int) *Builder {
	b.err.ArgIndex = i
	return b
}

// Elem sets the element index inside the collection argument
func (b *Builder) Elem(i int) *Builder {
	b.err.ElemIndex = i
	return b
}

// Expected sets the expected type name
func (b *Builder) Expected(t string) *Builder {
	b.err.Expected = t
	return b
}

// Actual sets the observed type name
func (b *Builder) Actual(t string) *Builder {
	b.err.Actual = t
	return b
}

// Counts sets the wanted and observed argument counts
func (b *Builder) Counts(want, got int) *Builder {
	b.err.Want = want
	b.err.Got = got
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Arity reports a wrong argument count, detected before any value access.
func Arity(want, got int) *Error {
	return New(PhaseCall, KindArityMismatch).Counts(want, got).Build()
}

// Underflow reports a pop from an empty argument stack.
func Underflow() *Error {
	return New(PhaseCall, KindStackUnderflow).Detail("argument stack is empty").Build()
}

// ShapeMismatch reports an outer argument that is neither tuple- nor list-shaped.
func ShapeMismatch(arg int, expected, actual string) *Error {
	return New(PhaseValidate, KindTypeMismatch).Arg(arg).Expected(expected).Actual(actual).Build()
}

// BadElement reports a collection element without the required capability.
// The result carries both the outer argument index and the element index.
func BadElement(arg, elem int, expected, actual string) *Error {
	return New(PhaseCoerce, KindTypeMismatch).Arg(arg).Elem(elem).Expected(expected).Actual(actual).Build()
}

// SlotConflict reports a second write to an already-filled result slot.
// This indicates a corrupted task index, never a user error.
func SlotConflict(index int) *Error {
	return New(PhaseJoin, KindSlotConflict).Elem(index).
		Detail("result slot written twice; task index invariant violated").Build()
}

// NotFound reports an unknown module or function name at dispatch time.
func NotFound(what, name string) *Error {
	return New(PhaseExec, KindNotFound).Detail("%s %q is not registered", what, name).Build()
}
