// Package debug provides environment controlled debug logging to stderr.
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/signadot/treeconv/ir"
)

type debug struct {
	Parse  bool
	Encode bool
	Route  bool
}

var (
	d *debug
	w io.Writer = os.Stderr
)

func init() {
	d = &debug{}
	d.Parse = boolEnv("CONVERT_DEBUG_PARSE")
	d.Encode = boolEnv("CONVERT_DEBUG_ENCODE")
	d.Route = boolEnv("CONVERT_DEBUG_ROUTE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Route() bool {
	return d.Route
}

// Logf writes a formatted message to stderr. *ir.Node arguments are
// rendered compactly, maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = x.Compact()
		default:
		}
	}
	fmt.Fprintf(w, msg, args...)
}
