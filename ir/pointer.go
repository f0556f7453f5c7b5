package ir

import (
	"github.com/signadot/jsonir/errs"
	"github.com/signadot/jsonir/ir/jpointer"
)

// AtPointer resolves p against n without creating anything.
func (n *Node) AtPointer(p jpointer.Pointer) (*Node, error) {
	cur := n
	for _, tok := range p {
		switch cur.typ {
		case ObjectType:
			v := Get(cur, tok)
			if v == nil {
				return nil, keyNotFound(tok)
			}
			cur = v
		case ArrayType:
			if tok == jpointer.AppendToken {
				return nil, errs.OutOfRange(402, "array index '-' (%d) is out of range", len(cur.arr))
			}
			i, err := jpointer.ArrayIndex(tok)
			if err != nil {
				return nil, err
			}
			if i >= len(cur.arr) {
				return nil, arrayIndexRange(i)
			}
			cur = cur.arr[i]
		default:
			return nil, errs.OutOfRange(404, "unresolved reference token '%s'", tok)
		}
	}
	return cur, nil
}

// AtPointerString parses s and resolves it with AtPointer.
func (n *Node) AtPointerString(s string) (*Node, error) {
	p, err := jpointer.Parse(s)
	if err != nil {
		return nil, err
	}
	return n.AtPointer(p)
}

// Ref resolves p against n, creating what is missing the way Elem and Field
// do. A null on the path becomes an array if the next token is a number or
// "-", and an object otherwise. "-" appends a null to an array.
func (n *Node) Ref(p jpointer.Pointer) (*Node, error) {
	return n.resolveCreate(p, func(tok string, _ *Node) error {
		return errs.OutOfRange(404, "unresolved reference token '%s'", tok)
	})
}

func (n *Node) resolveCreate(p jpointer.Pointer, onPrimitive func(string, *Node) error) (*Node, error) {
	cur := n
	for _, tok := range p {
		if cur.typ == NullType {
			if tok == jpointer.AppendToken || isDigits(tok) {
				cur.reset(ArrayType)
			} else {
				cur.reset(ObjectType)
			}
		}
		switch cur.typ {
		case ObjectType:
			v, err := cur.Field(tok)
			if err != nil {
				return nil, err
			}
			cur = v
		case ArrayType:
			if tok == jpointer.AppendToken {
				v := Null()
				cur.arr = append(cur.arr, v)
				cur = v
				continue
			}
			i, err := jpointer.ArrayIndex(tok)
			if err != nil {
				return nil, err
			}
			v, err := cur.Elem(i)
			if err != nil {
				return nil, err
			}
			cur = v
		default:
			return nil, onPrimitive(tok, cur)
		}
	}
	return cur, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ContainsPointer reports whether p resolves against n.
func (n *Node) ContainsPointer(p jpointer.Pointer) bool {
	_, err := n.AtPointer(p)
	return err == nil
}

// ValueAt returns a copy of the value at p, or def if p does not resolve.
func (n *Node) ValueAt(p jpointer.Pointer, def *Node) (*Node, error) {
	if n.typ != ObjectType {
		return nil, errs.Type(306, "cannot use value() with %s", n.TypeName())
	}
	v, err := n.AtPointer(p)
	if err != nil {
		if errs.HasID(err, errs.RangeKind, 401) || errs.HasID(err, errs.RangeKind, 402) ||
			errs.HasID(err, errs.RangeKind, 403) || errs.HasID(err, errs.RangeKind, 404) {
			return def, nil
		}
		return nil, err
	}
	return v.Clone(), nil
}
