package parse

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/treeconv/ir"
	"github.com/tailscale/hujson"
)

func parseJSON(d []byte) (*ir.Node, error) {
	v, err := hujson.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%w: json: %w", ir.ErrParse, err)
	}
	return fromJSON(v.Value)
}

func fromJSON(v hujson.ValueTrimmed) (*ir.Node, error) {
	switch x := v.(type) {
	case hujson.Literal:
		switch x.Kind() {
		case 'n':
			return ir.Null(), nil
		case 't':
			return ir.FromBool(true), nil
		case 'f':
			return ir.FromBool(false), nil
		case '0':
			return ir.FromNumber(string(x)), nil
		case '"':
			s, err := unquote(x)
			if err != nil {
				return nil, err
			}
			return ir.FromString(s), nil
		}
		return nil, fmt.Errorf("%w: json: invalid literal %s", ir.ErrParse, x)
	case *hujson.Object:
		res := ir.FromKeyVals(nil)
		for _, m := range x.Members {
			name, ok := m.Name.Value.(hujson.Literal)
			if !ok {
				return nil, fmt.Errorf("%w: json: object key is not a string", ir.ErrParse)
			}
			key, err := unquote(name)
			if err != nil {
				return nil, err
			}
			val, err := fromJSON(m.Value.Value)
			if err != nil {
				return nil, err
			}
			res.Put(key, val)
		}
		return res, nil
	case *hujson.Array:
		vs := make([]*ir.Node, 0, len(x.Elements))
		for _, e := range x.Elements {
			val, err := fromJSON(e.Value)
			if err != nil {
				return nil, err
			}
			vs = append(vs, val)
		}
		return ir.FromSlice(vs), nil
	}
	return nil, fmt.Errorf("%w: json: unexpected value %T", ir.ErrParse, v)
}

func unquote(lit hujson.Literal) (string, error) {
	var s string
	if err := json.Unmarshal(lit, &s); err != nil {
		return "", fmt.Errorf("%w: json: %w", ir.ErrParse, err)
	}
	return s, nil
}
