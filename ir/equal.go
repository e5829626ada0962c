package ir

// Equal reports whether a and b are structurally equal. Map entries are
// matched by key; their order is not compared.
func Equal(a, b *Node) bool {
	return equal(a, b, false)
}

// EqualOrdered is like Equal but also requires map entries to be in the
// same order.
func EqualOrdered(a, b *Node) bool {
	return equal(a, b, true)
}

func equal(a, b *Node, ordered bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case ScalarType:
		return a.Kind == b.Kind && a.String == b.String
	case ListType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !equal(a.Values[i], b.Values[i], ordered) {
				return false
			}
		}
		return true
	case MapType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, f := range a.Fields {
			j := i
			if b.Fields[i] != f {
				if ordered {
					return false
				}
				if j = b.Index(f); j < 0 {
					return false
				}
			}
			if !equal(a.Values[i], b.Values[j], ordered) {
				return false
			}
		}
		return true
	}
	return false
}
