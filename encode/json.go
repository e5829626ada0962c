package encode

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/signadot/treeconv/ir"
	"github.com/tailscale/hujson"
)

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := toJSON(node)
	if err != nil {
		return err
	}
	val := hujson.Value{Value: v}
	val.Standardize()
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, val.Pack(), "", strings.Repeat(" ", es.indent)); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

func toJSON(node *ir.Node) (hujson.ValueTrimmed, error) {
	switch node.Type {
	case ir.NullType:
		return hujson.Literal("null"), nil
	case ir.ScalarType:
		switch node.Kind {
		case ir.BoolKind:
			return hujson.Bool(node.String == "true"), nil
		case ir.NumberKind:
			if isJSONNumber(node.String) {
				return hujson.Literal(node.String), nil
			}
		}
		return hujson.String(node.String), nil
	case ir.MapType:
		entries := node.KeyVals()
		obj := &hujson.Object{Members: make([]hujson.ObjectMember, len(entries))}
		for i, kv := range entries {
			v, err := toJSON(kv.Val)
			if err != nil {
				return nil, err
			}
			obj.Members[i] = hujson.ObjectMember{
				Name:  hujson.Value{Value: hujson.String(kv.Key)},
				Value: hujson.Value{Value: v},
			}
		}
		return obj, nil
	case ir.ListType:
		arr := &hujson.Array{Elements: make([]hujson.ArrayElement, len(node.Values))}
		for i, e := range node.Values {
			v, err := toJSON(e)
			if err != nil {
				return nil, err
			}
			arr.Elements[i] = hujson.ArrayElement{Value: v}
		}
		return arr, nil
	default:
		return nil, ir.UnknownTypeError(node)
	}
}

// isJSONNumber reports whether s is a JSON number literal. Number scalars
// from YAML may be spelled in ways JSON does not accept.
func isJSONNumber(s string) bool {
	var n json.Number
	if err := json.Unmarshal([]byte(s), &n); err != nil {
		return false
	}
	return s != "" && s[0] != '"'
}
