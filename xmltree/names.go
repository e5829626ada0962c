package xmltree

import "unicode"

// isName reports whether s is an XML Name. Prefixed names are accepted
// since namespaces are not interpreted.
func isName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == ':' || unicode.IsLetter(r):
		case i == 0:
			return false
		case r == '-' || r == '.' || r == '·' || unicode.IsDigit(r):
		case unicode.In(r, unicode.Mn, unicode.Mc):
		default:
			return false
		}
	}
	return true
}
