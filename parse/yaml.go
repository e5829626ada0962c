package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/signadot/treeconv/ir"
)

// parseYAML reads a single YAML document. An empty stream is null.
func parseYAML(d []byte) (*ir.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(d), yaml.UseOrderedMap())
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return ir.Null(), nil
		}
		return nil, fmt.Errorf("%w: yaml: %w", ir.ErrParse, err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, fmt.Errorf("%w: yaml: expected a single document", ir.ErrParse)
		}
		return nil, fmt.Errorf("%w: yaml: %w", ir.ErrParse, err)
	}
	return fromYAML(v), nil
}

func fromYAML(v any) *ir.Node {
	switch x := v.(type) {
	case nil:
		return ir.Null()
	case string:
		return ir.FromString(x)
	case bool:
		return ir.FromBool(x)
	case int:
		return ir.FromNumber(strconv.Itoa(x))
	case int64:
		return ir.FromNumber(strconv.FormatInt(x, 10))
	case uint64:
		return ir.FromNumber(strconv.FormatUint(x, 10))
	case float64:
		return fromFloat(x)
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339Nano))
	case yaml.MapSlice:
		res := ir.FromKeyVals(nil)
		for _, item := range x {
			res.Put(yamlKey(item.Key), fromYAML(item.Value))
		}
		return res
	case map[string]any:
		res := ir.FromKeyVals(nil)
		for _, k := range slices.Sorted(maps.Keys(x)) {
			res.Put(k, fromYAML(x[k]))
		}
		return res
	case []any:
		vs := make([]*ir.Node, len(x))
		for i, e := range x {
			vs[i] = fromYAML(e)
		}
		return ir.FromSlice(vs)
	default:
		return ir.FromString(fmt.Sprint(x))
	}
}

// fromFloat keeps non-finite values as their YAML spelling since JSON has
// no number for them.
func fromFloat(f float64) *ir.Node {
	switch {
	case math.IsNaN(f):
		return ir.FromString(".nan")
	case math.IsInf(f, 1):
		return ir.FromString(".inf")
	case math.IsInf(f, -1):
		return ir.FromString("-.inf")
	}
	return ir.FromNumber(strconv.FormatFloat(f, 'g', -1, 64))
}

func yamlKey(k any) string {
	switch x := k.(type) {
	case nil:
		return "null"
	case string:
		return x
	default:
		return fromYAML(x).Compact()
	}
}
