package ir

type Type int

const (
	NullType Type = iota
	ScalarType
	MapType
	ListType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		ScalarType: "Scalar",
		MapType:    "Map",
		ListType:   "List",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) IsLeaf() bool {
	switch t {
	case MapType, ListType:
		return false
	default:
		return true
	}
}

// ScalarKind says how a scalar was written in its source format.
type ScalarKind int

const (
	StringKind ScalarKind = iota
	NumberKind
	BoolKind
)

func (k ScalarKind) String() string {
	switch k {
	case StringKind:
		return "string"
	case NumberKind:
		return "number"
	case BoolKind:
		return "bool"
	default:
		return "<unknown kind>"
	}
}
