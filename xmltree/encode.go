package xmltree

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/signadot/treeconv/ir"
)

// Encode builds a document from v, which must be a map with exactly one
// entry naming the root element.
func Encode(v *ir.Node) (*etree.Document, error) {
	if v.Type != ir.MapType {
		return nil, shapeErr("$", "document root must be a map with one entry, got %s", v.Type)
	}
	tag, content, ok := v.Single()
	if !ok {
		return nil, shapeErr("$", "document root must have exactly one entry, got %d", len(v.Fields))
	}
	root, err := encodeElement(ir.FieldPath("$", tag), tag, content)
	if err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	// scalars are attributes; reading normalizes raw \r and \n in them
	doc.WriteSettings.CanonicalAttrVal = true
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.SetRoot(root)
	return doc, nil
}

// EncodeElement builds the element named tag with content v.
func EncodeElement(tag string, v *ir.Node) (*etree.Element, error) {
	return encodeElement(ir.FieldPath("$", tag), tag, v)
}

func encodeElement(path, tag string, v *ir.Node) (*etree.Element, error) {
	if !isName(tag) {
		return nil, shapeErr(path, "%q is not a valid element name", tag)
	}
	el := etree.NewElement(tag)
	switch v.Type {
	case ir.NullType:
		return el, nil
	case ir.MapType:
		for i, key := range v.Fields {
			if err := encodeEntry(el, ir.FieldPath(path, key), key, v.Values[i]); err != nil {
				return nil, err
			}
		}
		return el, nil
	case ir.ScalarType, ir.ListType:
		return nil, shapeErr(path, "element content cannot be a %s", v.Type)
	default:
		return nil, ir.UnknownTypeError(v)
	}
}

func encodeEntry(el *etree.Element, path, key string, v *ir.Node) error {
	switch v.Type {
	case ir.MapType:
		child, err := encodeElement(path, key, v)
		if err != nil {
			return err
		}
		el.AddChild(child)
		return nil
	case ir.ScalarType:
		if !isName(key) {
			return shapeErr(path, "%q is not a valid attribute name", key)
		}
		el.CreateAttr(key, v.String)
		return nil
	case ir.ListType:
		return shapeErr(path, "lists cannot be encoded as repeated elements")
	case ir.NullType:
		return shapeErr(path, "null entries cannot be encoded")
	default:
		return ir.UnknownTypeError(v)
	}
}

func shapeErr(path, msg string, args ...any) error {
	return fmt.Errorf("%w at %s: %s", ir.ErrUnsupportedShape, path, fmt.Sprintf(msg, args...))
}
