package ir

import (
	"strconv"
	"strings"
)

// Walk calls fn for n and every node below it in pre-order, together with
// the node's path from n (see FieldPath and IndexPath). If fn returns false
// the children of that node are skipped.
func Walk(n *Node, fn func(path string, n *Node) bool) {
	walk("$", n, fn)
}

func walk(path string, n *Node, fn func(string, *Node) bool) {
	if !fn(path, n) {
		return
	}
	switch n.Type {
	case MapType:
		for i, f := range n.Fields {
			walk(FieldPath(path, f), n.Values[i], fn)
		}
	case ListType:
		for i, v := range n.Values {
			walk(IndexPath(path, i), v, fn)
		}
	}
}

// FieldPath extends path with a map field. Fields containing path
// metacharacters are quoted.
func FieldPath(path, f string) string {
	prefix := path + "."
	if f != "" && strings.IndexAny(f, "'.*$[] ") == -1 {
		return prefix + f
	}
	return prefix + "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// IndexPath extends path with a list index.
func IndexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
