package convert

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/treeconv/format"
	"github.com/signadot/treeconv/ir"
	"github.com/signadot/treeconv/parse"
)

func check(w io.Writer, node *ir.Node, out []byte, inFmt, outFmt format.Format) error {
	back, err := parse.Parse(out, parse.ParseFormat(outFmt))
	if err != nil {
		return fmt.Errorf("re-reading %s output: %w", outFmt, err)
	}
	if ir.Equal(node, back) {
		return nil
	}
	fmt.Fprintf(w, "conversion from %s to %s is lossy:\n", inFmt, outFmt)
	writeDiff(w, leaves(node), leaves(back))
	return nil
}

// leaves renders every leaf and empty container of n as "path = value", one
// per line, sorted so that map entry order does not show up as a change.
func leaves(n *ir.Node) string {
	var res []string
	ir.Walk(n, func(path string, y *ir.Node) bool {
		if y.Type.IsLeaf() || y.Len() == 0 {
			res = append(res, path+" = "+y.Compact()+"\n")
		}
		return true
	})
	slices.Sort(res)
	return strings.Join(res, "")
}

func writeDiff(w io.Writer, before, after string) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		default:
			continue
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			io.WriteString(w, prefix+ln)
		}
	}
}
