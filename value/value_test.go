package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnit, "unit"},
		{KindBool, "bool"},
		{KindInt, "int"},
		{KindFloat, "float"},
		{KindString, "string"},
		{KindTuple, "tuple"},
		{KindList, "list"},
		{KindFuture, "future"},
		{KindOpaque, "opaque"},
		{Kind(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestConstructorsAndCapabilities(t *testing.T) {
	if Unit().Kind() != KindUnit {
		t.Error("Unit() is not unit-kinded")
	}

	if v, ok := Int(42).AsInt(); !ok || v != 42 {
		t.Errorf("AsInt = %v, %v", v, ok)
	}
	if v, ok := Str("hi").AsString(); !ok || v != "hi" {
		t.Errorf("AsString = %v, %v", v, ok)
	}
	if v, ok := Bool(true).AsBool(); !ok || !v {
		t.Errorf("AsBool = %v, %v", v, ok)
	}
	if v, ok := Float(1.5).AsFloat(); !ok || v != 1.5 {
		t.Errorf("AsFloat = %v, %v", v, ok)
	}

	// Capability queries fail on other kinds without panicking.
	if _, ok := Int(1).AsList(); ok {
		t.Error("int should not expose list capability")
	}
	if _, ok := List().AsTuple(); ok {
		t.Error("list should not expose tuple capability")
	}
	if _, ok := Str("x").AsFuture(); ok {
		t.Error("string should not expose future capability")
	}
}

func TestEmptyTupleIsUnit(t *testing.T) {
	if Tuple().Kind() != KindUnit {
		t.Error("empty tuple should collapse to unit")
	}
	if List().Kind() != KindList {
		t.Error("empty list must keep list identity")
	}
	elems, ok := List().AsList()
	if !ok || len(elems) != 0 {
		t.Errorf("empty list AsList = %v, %v", elems, ok)
	}
}

func TestEqual(t *testing.T) {
	fut := Resolved(Int(1))
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"units", Unit(), Unit(), true},
		{"ints", Int(3), Int(3), true},
		{"int mismatch", Int(3), Int(4), false},
		{"kind mismatch", Int(3), Float(3), false},
		{"tuples", Tuple(Int(1), Str("a")), Tuple(Int(1), Str("a")), true},
		{"tuple vs list", Tuple(Int(1), Int(2)), List(Int(1), Int(2)), false},
		{"nested", List(Tuple(Int(1)), List(Str("x"))), List(Tuple(Int(1)), List(Str("x"))), true},
		{"length mismatch", List(Int(1)), List(Int(1), Int(2)), false},
		{"same future handle", FromFuture(fut), FromFuture(fut), true},
		{"distinct future handles", FromFuture(Resolved(Int(1))), FromFuture(Resolved(Int(1))), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqualDrivesCmp(t *testing.T) {
	a := List(Int(1), Tuple(Str("x"), Bool(true)))
	b := List(Int(1), Tuple(Str("x"), Bool(true)))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("cmp.Diff mismatch (-want +got):\n%s", diff)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Unit(), "()"},
		{Bool(false), "false"},
		{Int(-7), "-7"},
		{Str("a"), `"a"`},
		{Tuple(Int(1), Int(2)), "(1, 2)"},
		{List(Str("x")), `["x"]`},
		{FromFuture(Resolved(Int(1))), "<future completed>"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCopySharesFuture(t *testing.T) {
	fut := Resolved(Int(9))
	a := FromFuture(fut)
	b := a

	fa, _ := a.AsFuture()
	fb, _ := b.AsFuture()
	if fa != fb {
		t.Error("copying a future value must share the handle")
	}
}
