package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a dynamically-typed runtime value. The zero Value is Unit.
//
// Values are cheap to copy. Collection kinds share their backing slice and
// the Future kind shares its *Future handle, so a copy observes the same
// completion as the original.
type Value struct {
	fut   *Future
	data  any
	elems []Value
	str   string
	num   int64
	flt   float64
	kind  Kind
}

// Unit returns the empty value.
func Unit() Value {
	return Value{kind: KindUnit}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	n := int64(0)
	if b {
		n = 1
	}
	return Value{kind: KindBool, num: n}
}

// Int returns an integer value.
func Int(n int64) Value {
	return Value{kind: KindInt, num: n}
}

// Float returns a floating-point value.
func Float(f float64) Value {
	return Value{kind: KindFloat, flt: f}
}

// Str returns a string value.
func Str(s string) Value {
	return Value{kind: KindString, str: s}
}

// Tuple returns a tuple-shaped collection. Tuple() is the empty tuple,
// which is indistinguishable from Unit.
func Tuple(elems ...Value) Value {
	if len(elems) == 0 {
		return Unit()
	}
	return Value{kind: KindTuple, elems: elems}
}

// List returns a list-shaped collection. Unlike Tuple, an empty List
// keeps its list identity.
func List(elems ...Value) Value {
	return Value{kind: KindList, elems: elems}
}

// Opaque wraps a host object the runtime does not interpret.
func Opaque(v any) Value {
	return Value{kind: KindOpaque, data: v}
}

// FromFuture wraps a pending computation as a value.
func FromFuture(f *Future) Value {
	return Value{kind: KindFuture, fut: f}
}

// Go starts nothing but records fn as a pending computation value.
// The computation runs when the value's future is first awaited.
func Go(fn ComputeFunc) Value {
	return FromFuture(NewFuture(fn))
}

// Kind returns the variant tag of v.
func (v Value) Kind() Kind {
	return v.kind
}

// AsTuple returns the tuple elements when v is tuple-shaped.
func (v Value) AsTuple() ([]Value, bool) {
	if v.kind != KindTuple {
		return nil, false
	}
	return v.elems, true
}

// AsList returns the list elements when v is list-shaped.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.elems, true
}

// AsFuture returns the pending computation when v holds one.
func (v Value) AsFuture() (*Future, bool) {
	if v.kind != KindFuture {
		return nil, false
	}
	return v.fut, true
}

// AsBool returns the boolean payload when v is a bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.num != 0, true
}

// AsInt returns the integer payload when v is an int.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.num, true
}

// AsFloat returns the float payload when v is a float.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.flt, true
}

// AsString returns the string payload when v is a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsOpaque returns the host payload when v is opaque.
func (v Value) AsOpaque() (any, bool) {
	if v.kind != KindOpaque {
		return nil, false
	}
	return v.data, true
}

// Equal reports deep structural equality. Future values compare by handle
// identity and opaque values by interface equality.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindUnit:
		return true
	case KindBool, KindInt:
		return v.num == o.num
	case KindFloat:
		return v.flt == o.flt
	case KindString:
		return v.str == o.str
	case KindTuple, KindList:
		if len(v.elems) != len(o.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(o.elems[i]) {
				return false
			}
		}
		return true
	case KindFuture:
		return v.fut == o.fut
	case KindOpaque:
		return v.data == o.data
	default:
		return false
	}
}

// String renders v for diagnostics. Pending computations render as their
// state, never their (possibly unfinished) result.
func (v Value) String() string {
	switch v.kind {
	case KindUnit:
		return "()"
	case KindBool:
		if v.num != 0 {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.str)
	case KindTuple:
		return "(" + joinElems(v.elems) + ")"
	case KindList:
		return "[" + joinElems(v.elems) + "]"
	case KindFuture:
		return "<future " + v.fut.stateName() + ">"
	case KindOpaque:
		return fmt.Sprintf("<opaque %T>", v.data)
	default:
		return "<unknown>"
	}
}

func joinElems(elems []Value) string {
	var b strings.Builder
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	return b.String()
}
