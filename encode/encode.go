package encode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/treeconv/debug"
	"github.com/signadot/treeconv/format"
	"github.com/signadot/treeconv/ir"
)

type EncState struct {
	indent  int
	rootTag string

	format format.Format
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent <= 0 {
		es.indent = 2
		if es.format.IsJSON() {
			es.indent = 4
		}
	}
	if es.rootTag != "" {
		node = ir.Wrap(es.rootTag, node)
	}
	if debug.Encode() {
		debug.Logf("encoding %s: %s\n", es.format, node)
	}
	switch es.format {
	case format.XMLFormat:
		return encodeXML(node, w, es)
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	default:
		return fmt.Errorf("%w: %s", format.ErrUnsupportedFormat, es.format)
	}
}

// Bytes encodes node into memory.
func Bytes(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
