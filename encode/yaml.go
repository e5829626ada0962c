package encode

import (
	"io"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/signadot/treeconv/ir"
)

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := toYAML(node)
	if err != nil {
		return err
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(es.indent))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func toYAML(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.ScalarType:
		switch node.Kind {
		case ir.BoolKind:
			return node.String == "true", nil
		case ir.NumberKind:
			if i, err := strconv.ParseInt(node.String, 10, 64); err == nil {
				return i, nil
			}
			if u, err := strconv.ParseUint(node.String, 10, 64); err == nil {
				return u, nil
			}
			if f, err := strconv.ParseFloat(node.String, 64); err == nil {
				return f, nil
			}
		}
		return node.String, nil
	case ir.MapType:
		entries := node.KeyVals()
		res := make(yaml.MapSlice, len(entries))
		for i, kv := range entries {
			v, err := toYAML(kv.Val)
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: kv.Key, Value: v}
		}
		return res, nil
	case ir.ListType:
		res := make([]any, len(node.Values))
		for i, e := range node.Values {
			v, err := toYAML(e)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	default:
		return nil, ir.UnknownTypeError(node)
	}
}
