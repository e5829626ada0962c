package encode

import (
	"io"

	"github.com/signadot/treeconv/ir"
	"github.com/signadot/treeconv/xmltree"
)

func encodeXML(node *ir.Node, w io.Writer, es *EncState) error {
	doc, err := xmltree.Encode(node)
	if err != nil {
		return err
	}
	doc.Indent(es.indent)
	_, err = doc.WriteTo(w)
	return err
}
