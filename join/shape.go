package join

import (
	"github.com/veldtlabs/script-runtime/errors"
	"github.com/veldtlabs/script-runtime/value"
)

// Shape is the container classification of the join input. It is recorded
// once at classification and drives result reconstruction; it is never
// re-derived from the results.
type Shape uint8

const (
	ShapeUnit Shape = iota
	ShapeTuple
	ShapeList
)

func (s Shape) String() string {
	switch s {
	case ShapeUnit:
		return "unit"
	case ShapeTuple:
		return "tuple"
	case ShapeList:
		return "list"
	default:
		return "unknown"
	}
}

// Classify determines the container shape of the single join argument and
// returns its elements. Values that are neither tuple- nor list-shaped fail
// with a type mismatch on argument 0.
func Classify(v value.Value) (Shape, []value.Value, error) {
	switch v.Kind() {
	case value.KindUnit:
		return ShapeUnit, nil, nil
	case value.KindTuple:
		elems, _ := v.AsTuple()
		return ShapeTuple, elems, nil
	case value.KindList:
		elems, _ := v.AsList()
		return ShapeList, elems, nil
	default:
		return ShapeUnit, nil, errors.ShapeMismatch(0, "tuple or list of futures", v.Kind().String())
	}
}

// Rebuild wraps the completed results in the recorded shape.
func (s Shape) Rebuild(results []value.Value) value.Value {
	switch s {
	case ShapeTuple:
		return value.Tuple(results...)
	case ShapeList:
		return value.List(results...)
	default:
		return value.Unit()
	}
}
