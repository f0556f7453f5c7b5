package encode

import (
	"math"

	"github.com/goccy/go-yaml"
	"github.com/signadot/jsonir/ir"
)

func encodeYAML(node *ir.Node, es *EncState) ([]byte, error) {
	v, err := yamlValue(node, es)
	if err != nil {
		return nil, err
	}
	indent := es.indent
	if indent <= 0 {
		indent = 2
	}
	return yaml.MarshalWithOptions(v, yaml.Indent(indent), yaml.UseLiteralStyleIfMultiline(true))
}

// yamlValue converts node to values which goccy/go-yaml encodes with
// member order preserved.
func yamlValue(node *ir.Node, es *EncState) (any, error) {
	switch node.Type() {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.AsBool()
	case ir.IntType:
		return node.AsInt64()
	case ir.UintType:
		return node.AsUint64()
	case ir.FloatType:
		f, _ := node.AsFloat64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, nil
		}
		return f, nil
	case ir.StringType:
		s, _ := node.AsString()
		if es.invalid == ErrorStrict {
			if _, err := es.quote(nil, s); err != nil {
				return nil, err
			}
		}
		return s, nil
	case ir.ArrayType:
		res := make([]any, 0, node.Size())
		for v := range node.Elements() {
			yv, err := yamlValue(v, es)
			if err != nil {
				return nil, err
			}
			res = append(res, yv)
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, node.Size())
		for k, v := range node.Items() {
			yv, err := yamlValue(v, es)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: k, Value: yv})
		}
		return res, nil
	case ir.BinaryType:
		bin, _ := node.AsBinary()
		bs := make([]any, len(bin.Bytes))
		for i, b := range bin.Bytes {
			bs[i] = uint64(b)
		}
		var sub any
		if bin.HasSubtype {
			sub = uint64(bin.Subtype)
		}
		return yaml.MapSlice{{Key: "bytes", Value: bs}, {Key: "subtype", Value: sub}}, nil
	}
	return "<discarded>", nil
}
