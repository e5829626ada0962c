package parse

import (
	"fmt"

	"github.com/signadot/treeconv/debug"
	"github.com/signadot/treeconv/format"
	"github.com/signadot/treeconv/ir"
)

// Parse decodes d into an IR node. The format defaults to XML.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.XMLFormat}
	for _, f := range opts {
		f(pOpts)
	}
	var (
		res *ir.Node
		err error
	)
	switch pOpts.format {
	case format.XMLFormat:
		res, err = parseXML(d)
	case format.JSONFormat:
		res, err = parseJSON(d)
	case format.YAMLFormat:
		res, err = parseYAML(d)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrUnsupportedFormat, pOpts.format)
	}
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %s: %s\n", pOpts.format, res)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}
