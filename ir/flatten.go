package ir

import (
	"github.com/signadot/jsonir/errs"
	"github.com/signadot/jsonir/ir/jpointer"
)

// Flatten returns an object mapping the pointer of every primitive value
// in n to a copy of that value. Empty arrays and objects flatten to null,
// so they do not survive Unflatten.
func (n *Node) Flatten() *Node {
	res := New(ObjectType)
	n.Walk(func(p jpointer.Pointer, v *Node) bool {
		if v.IsStructured() && !v.Empty() {
			return true
		}
		if v.IsStructured() {
			res.obj.Put(p.String(), Null())
		} else {
			res.obj.Put(p.String(), v.Clone())
		}
		return false
	})
	return res
}

// Unflatten is the inverse of Flatten. n must be an object whose values
// are all primitive.
func (n *Node) Unflatten() (*Node, error) {
	if n.typ != ObjectType {
		return nil, errs.Type(314, "only objects can be unflattened")
	}
	res := Null()
	for i := range n.obj.Len() {
		k, v := n.obj.At(i)
		if !v.IsPrimitive() {
			return nil, errs.Type(315, "values in object must be primitive")
		}
		p, err := jpointer.Parse(k)
		if err != nil {
			return nil, err
		}
		dst, err := res.resolveCreate(p, func(string, *Node) error {
			return errs.Type(313, "invalid value to unflatten")
		})
		if err != nil {
			return nil, err
		}
		dst.Assign(v.Clone())
	}
	return res, nil
}
