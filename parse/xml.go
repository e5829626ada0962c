package parse

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/signadot/treeconv/ir"
	"github.com/signadot/treeconv/xmltree"
)

func parseXML(d []byte) (*ir.Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(d); err != nil {
		return nil, fmt.Errorf("%w: xml: %w", ir.ErrParse, err)
	}
	return xmltree.DecodeDocument(doc)
}
