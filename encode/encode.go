package encode

import (
	"io"
	"strconv"

	"github.com/signadot/jsonir/format"
	"github.com/signadot/jsonir/ir"
)

type EncState struct {
	indent      int
	indentChar  byte
	ensureASCII bool
	invalid     ErrorHandler

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:     -1,
		indentChar: ' ',
	}
	for _, opt := range opts {
		opt(es)
	}
	var (
		d   []byte
		err error
	)
	if es.format.IsYAML() {
		d, err = encodeYAML(node, es)
	} else {
		d, err = es.appendJSON(nil, node)
		d = append(d, '\n')
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func (es *EncState) pretty() bool {
	return es.indent >= 0
}

func (es *EncState) newline(dst []byte, depth int) []byte {
	if !es.pretty() {
		return dst
	}
	dst = append(dst, '\n')
	for range es.indent * depth {
		dst = append(dst, es.indentChar)
	}
	return dst
}

func (es *EncState) colored(dst []byte, t ir.Type, a ColorAttr, s string) []byte {
	if es.Color == nil {
		return append(dst, s...)
	}
	return append(dst, es.Color(t, a, s)...)
}

func (es *EncState) sep(dst []byte, t ir.Type, s string) []byte {
	return es.colored(dst, t, SepColor, s)
}

func (es *EncState) colon(dst []byte, t ir.Type) []byte {
	dst = es.sep(dst, t, ":")
	if es.pretty() {
		dst = append(dst, ' ')
	}
	return dst
}

type frame struct {
	n    *ir.Node
	keys []string
	vals []*ir.Node
	next int
}

func newFrame(n *ir.Node) frame {
	return frame{n: n, keys: n.Keys(), vals: n.Values()}
}

func openContainer(n *ir.Node) bool {
	return n.IsStructured() && !n.Empty()
}

// appendJSON walks the tree with an explicit stack so that nesting depth
// does not grow the Go stack.
func (es *EncState) appendJSON(dst []byte, node *ir.Node) ([]byte, error) {
	dst, err := es.open(dst, node, 0)
	if err != nil || !openContainer(node) {
		return dst, err
	}
	stack := []frame{newFrame(node)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		depth := len(stack)
		t := top.n.Type()
		if top.next == len(top.vals) {
			dst = es.newline(dst, depth-1)
			if t == ir.ArrayType {
				dst = es.sep(dst, t, "]")
			} else {
				dst = es.sep(dst, t, "}")
			}
			stack = stack[:len(stack)-1]
			continue
		}
		if top.next > 0 {
			dst = es.sep(dst, t, ",")
		}
		dst = es.newline(dst, depth)
		if t == ir.ObjectType {
			var q []byte
			q, err = es.quote(nil, top.keys[top.next])
			if err != nil {
				return nil, err
			}
			dst = es.colored(dst, ir.ObjectType, FieldColor, string(q))
			dst = es.colon(dst, t)
		}
		child := top.vals[top.next]
		top.next++
		dst, err = es.open(dst, child, depth)
		if err != nil {
			return nil, err
		}
		if openContainer(child) {
			stack = append(stack, newFrame(child))
		}
	}
	return dst, nil
}

// open writes a leaf, an empty container, or the opening bracket of a
// non-empty container.
func (es *EncState) open(dst []byte, n *ir.Node, depth int) ([]byte, error) {
	t := n.Type()
	var v []byte
	switch t {
	case ir.ArrayType:
		if n.Empty() {
			return es.sep(dst, t, "[]"), nil
		}
		return es.sep(dst, t, "["), nil
	case ir.ObjectType:
		if n.Empty() {
			return es.sep(dst, t, "{}"), nil
		}
		return es.sep(dst, t, "{"), nil
	case ir.BinaryType:
		return es.binary(dst, n, depth), nil
	case ir.NullType:
		v = append(v, "null"...)
	case ir.BoolType:
		b, _ := n.AsBool()
		v = strconv.AppendBool(v, b)
	case ir.IntType:
		i, _ := n.AsInt64()
		v = strconv.AppendInt(v, i, 10)
	case ir.UintType:
		u, _ := n.AsUint64()
		v = strconv.AppendUint(v, u, 10)
	case ir.FloatType:
		f, _ := n.AsFloat64()
		v = ir.AppendFloat(v, f)
	case ir.StringType:
		s, _ := n.AsString()
		var err error
		if v, err = es.quote(v, s); err != nil {
			return nil, err
		}
	case ir.DiscardedType:
		v = append(v, `"<discarded>"`...)
	}
	return es.colored(dst, t, ValueColor, string(v)), nil
}

func (es *EncState) binary(dst []byte, n *ir.Node, depth int) []byte {
	bin, _ := n.AsBinary()
	t := ir.BinaryType
	dst = es.sep(dst, t, "{")
	dst = es.newline(dst, depth+1)
	dst = es.colored(dst, ir.ObjectType, FieldColor, `"bytes"`)
	dst = es.colon(dst, t)
	dst = es.sep(dst, t, "[")
	var v []byte
	for i, b := range bin.Bytes {
		if i > 0 {
			v = append(v, ',')
			if es.pretty() {
				v = append(v, ' ')
			}
		}
		v = strconv.AppendUint(v, uint64(b), 10)
	}
	dst = es.colored(dst, t, ValueColor, string(v))
	dst = es.sep(dst, t, "]")
	dst = es.sep(dst, t, ",")
	dst = es.newline(dst, depth+1)
	dst = es.colored(dst, ir.ObjectType, FieldColor, `"subtype"`)
	dst = es.colon(dst, t)
	if bin.HasSubtype {
		dst = es.colored(dst, ir.UintType, ValueColor, strconv.Itoa(int(bin.Subtype)))
	} else {
		dst = es.colored(dst, ir.NullType, ValueColor, "null")
	}
	dst = es.newline(dst, depth)
	return es.sep(dst, t, "}")
}
