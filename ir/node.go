package ir

import "slices"

type Node struct {
	Type Type

	// Fields holds map keys; Fields[i] names Values[i].
	Fields []string
	// Values holds map values or list elements.
	Values []*Node

	String string
	Kind   ScalarKind
}

// KeyVal is a single map entry, used to build maps in order.
type KeyVal struct {
	Key string
	Val *Node
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: ScalarType, String: v, Kind: StringKind}
}

// FromNumber returns a number scalar with the given literal text.
func FromNumber(text string) *Node {
	return &Node{Type: ScalarType, String: text, Kind: NumberKind}
}

func FromBool(v bool) *Node {
	s := "false"
	if v {
		s = "true"
	}
	return &Node{Type: ScalarType, String: s, Kind: BoolKind}
}

// FromKeyVals builds a map in the order of kvs. A repeated key replaces the
// earlier value in place.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   MapType,
		Fields: make([]string, 0, len(kvs)),
		Values: make([]*Node, 0, len(kvs)),
	}
	for _, kv := range kvs {
		res.Put(kv.Key, kv.Val)
	}
	return res
}

func FromSlice(ys []*Node) *Node {
	if ys == nil {
		ys = []*Node{}
	}
	return &Node{Type: ListType, Values: ys}
}

// Wrap returns the single-entry map {key: v}.
func Wrap(key string, v *Node) *Node {
	return FromKeyVals([]KeyVal{{Key: key, Val: v}})
}

// Index returns the position of key in a map node, or -1.
func (y *Node) Index(key string) int {
	if y.Type != MapType {
		return -1
	}
	return slices.Index(y.Fields, key)
}

// Get returns the value stored under key in a map node, or nil.
func (y *Node) Get(key string) *Node {
	i := y.Index(key)
	if i < 0 {
		return nil
	}
	return y.Values[i]
}

// Put sets key to v on a map node. An existing key keeps its position.
func (y *Node) Put(key string, v *Node) {
	if y.Type != MapType {
		panic("Put on " + y.Type.String())
	}
	if i := y.Index(key); i >= 0 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
}

// Len returns the number of entries of a map or list, and 0 otherwise.
func (y *Node) Len() int {
	switch y.Type {
	case MapType, ListType:
		return len(y.Values)
	default:
		return 0
	}
}

// KeyVals returns the entries of a map node in order.
func (y *Node) KeyVals() []KeyVal {
	if y.Type != MapType {
		return nil
	}
	res := make([]KeyVal, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = KeyVal{Key: f, Val: y.Values[i]}
	}
	return res
}

// Single returns the key and value of a single-entry map.
func (y *Node) Single() (string, *Node, bool) {
	if y.Type != MapType || len(y.Fields) != 1 {
		return "", nil, false
	}
	return y.Fields[0], y.Values[0], true
}
