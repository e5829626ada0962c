package xmltree

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/signadot/treeconv/ir"
)

// Decode returns the IR of el wrapped under its tag.
func Decode(el *etree.Element) *ir.Node {
	return ir.Wrap(el.FullTag(), DecodeContent(el))
}

// DecodeContent returns the IR of el without the tag wrapper. This is the
// value stored under el's tag in its parent's map.
func DecodeContent(el *etree.Element) *ir.Node {
	children := el.ChildElements()
	text := strings.TrimSpace(el.Text())
	if len(el.Attr) == 0 && len(children) == 0 {
		if text == "" {
			return ir.Null()
		}
		return ir.FromString(text)
	}
	res := ir.FromKeyVals(nil)
	for _, a := range el.Attr {
		res.Put(a.FullKey(), ir.FromString(a.Value))
	}
	seen := make(map[string]bool, len(children))
	for _, c := range children {
		tag := c.FullTag()
		v := DecodeContent(c)
		if !seen[tag] {
			seen[tag] = true
			res.Put(tag, v)
			continue
		}
		// content is never a list, so a list here is an aggregate
		prev := res.Get(tag)
		if prev.Type == ir.ListType {
			prev.Values = append(prev.Values, v)
			continue
		}
		res.Put(tag, ir.FromSlice([]*ir.Node{prev, v}))
	}
	if text != "" {
		res.Put(TextKey, ir.FromString(text))
	}
	return res
}

// DecodeDocument decodes the root element of doc. A document must have
// exactly one element at top level and no text outside of it.
func DecodeDocument(doc *etree.Document) (*ir.Node, error) {
	var root *etree.Element
	for _, tok := range doc.Child {
		switch x := tok.(type) {
		case *etree.Element:
			if root != nil {
				return nil, fmt.Errorf("%w: junk after document element <%s>", ir.ErrParse, root.FullTag())
			}
			root = x
		case *etree.CharData:
			if strings.TrimSpace(x.Data) != "" {
				return nil, fmt.Errorf("%w: text outside of the document element", ir.ErrParse)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ir.ErrParse)
	}
	return Decode(root), nil
}

// TextKey is the map key holding the inline text of a structured element.
const TextKey = "text"
