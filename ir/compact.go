package ir

import (
	"strconv"
	"strings"
)

// Compact renders y on one line in a JSON-like notation. String scalars
// are quoted, number and boolean scalars are not.
func (y *Node) Compact() string {
	buf := &strings.Builder{}
	compact(buf, y)
	return buf.String()
}

func compact(buf *strings.Builder, y *Node) {
	if y == nil {
		buf.WriteString("<nil>")
		return
	}
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case ScalarType:
		if y.Kind == StringKind {
			buf.WriteString(strconv.Quote(y.String))
			return
		}
		buf.WriteString(y.String)
	case MapType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(strconv.Quote(f))
			buf.WriteString(": ")
			compact(buf, y.Values[i])
		}
		buf.WriteByte('}')
	case ListType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteString(", ")
			}
			compact(buf, v)
		}
		buf.WriteByte(']')
	default:
		buf.WriteString("<" + y.Type.String() + ">")
	}
}
