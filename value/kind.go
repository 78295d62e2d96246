package value

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindUnit Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindTuple
	KindList
	KindFuture
	KindOpaque
)

var kindNames = [...]string{
	KindUnit:   "unit",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindTuple:  "tuple",
	KindList:   "list",
	KindFuture: "future",
	KindOpaque: "opaque",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}
