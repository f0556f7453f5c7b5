package parse

import (
	"fmt"
	"math"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/signadot/jsonir/errs"
	"github.com/signadot/jsonir/ir"
)

// parseYAML decodes a YAML document and converts it to nodes. The
// callback, if any, is driven by replaying the decoded value.
func parseYAML(d []byte, opts *parseOpts) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, errs.Parse(101, -1, "parse error: %s", yaml.FormatError(err, false, false))
	}
	b := newDOMBuilder(opts)
	type item struct {
		v     any
		key   string
		isKey bool
		end   bool
		obj   bool
	}
	work := []item{{v: v}}
	for len(work) > 0 {
		it := work[len(work)-1]
		work = work[:len(work)-1]
		switch {
		case it.end && it.obj:
			b.EndObject()
			continue
		case it.end:
			b.EndArray()
			continue
		case it.isKey:
			b.Key(it.key)
		}
		if len(b.stack) >= opts.maxDepth && opts.maxDepth > 0 {
			switch it.v.(type) {
			case yaml.MapSlice, []any:
				return nil, errs.Parse(101, -1, "parse error: maximum depth %d exceeded", opts.maxDepth)
			}
		}
		switch x := it.v.(type) {
		case yaml.MapSlice:
			b.StartObject()
			work = append(work, item{end: true, obj: true})
			for i := len(x) - 1; i >= 0; i-- {
				work = append(work, item{v: x[i].Value, key: yamlKey(x[i].Key), isKey: true})
			}
		case []any:
			b.StartArray()
			work = append(work, item{end: true})
			for i := len(x) - 1; i >= 0; i-- {
				work = append(work, item{v: x[i]})
			}
		default:
			if err := yamlScalar(b, x); err != nil {
				return nil, err
			}
		}
	}
	return b.result(), nil
}

func yamlKey(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	}
	return fmt.Sprint(k)
}

func yamlScalar(b *domBuilder, v any) error {
	switch x := v.(type) {
	case nil:
		b.Null()
	case bool:
		b.Bool(x)
	case string:
		b.String(x)
	case int:
		b.Int(int64(x))
	case int64:
		if x >= 0 {
			b.Uint(uint64(x))
		} else {
			b.Int(x)
		}
	case uint64:
		b.Uint(x)
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return errs.OutOfRange(406, "number overflow parsing '%v'", x)
		}
		b.Float(x, "")
	case time.Time:
		b.String(x.Format(time.RFC3339Nano))
	case []byte:
		b.value(ir.FromBinary(x))
	default:
		b.String(fmt.Sprint(x))
	}
	return nil
}
