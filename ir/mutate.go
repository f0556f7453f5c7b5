package ir

import (
	"slices"

	"github.com/signadot/jsonir/errs"
)

// Append adds v to the end of an array, converting a null n to an array
// first.
func (n *Node) Append(v *Node) error {
	if n.typ == NullType {
		n.reset(ArrayType)
	}
	if n.typ != ArrayType {
		return errs.Type(308, "cannot use push_back() with %s", n.TypeName())
	}
	n.arr = append(n.arr, n.adopt(v))
	return nil
}

// AppendKeyVal adds the pair key, v to an object, converting a null n to an
// object first. An existing member key is replaced.
func (n *Node) AppendKeyVal(key string, v *Node) error {
	if n.typ == NullType {
		n.reset(ObjectType)
	}
	if n.typ != ObjectType {
		return errs.Type(308, "cannot use push_back() with %s", n.TypeName())
	}
	n.obj.Put(key, n.adopt(v))
	return nil
}

// Set stores v as member key, converting a null n to an object first.
func (n *Node) Set(key string, v *Node) error {
	if n.typ == NullType {
		n.reset(ObjectType)
	}
	if n.typ != ObjectType {
		return errs.Type(305, "cannot use operator[] with a string argument with %s", n.TypeName())
	}
	n.obj.Put(key, n.adopt(v))
	return nil
}

// Emplace stores v as member key only if key is absent, and reports
// whether it did. v is untouched when it is not inserted.
func (n *Node) Emplace(key string, v *Node) (bool, error) {
	if n.typ == NullType {
		n.reset(ObjectType)
	}
	if n.typ != ObjectType {
		return false, errs.Type(311, "cannot use emplace() with %s", n.TypeName())
	}
	if n.obj.Index(key) >= 0 {
		return false, nil
	}
	n.obj.Put(key, n.adopt(v))
	return true, nil
}

// Insert inserts vs before index i of an array; i may equal the array's
// size.
func (n *Node) Insert(i int, vs ...*Node) error {
	if n.typ != ArrayType {
		return errs.Type(309, "cannot use insert() with %s", n.TypeName())
	}
	if i < 0 || i > len(n.arr) {
		return arrayIndexRange(i)
	}
	adopted := make([]*Node, len(vs))
	for j, v := range vs {
		adopted[j] = n.adopt(v)
	}
	n.arr = slices.Insert(n.arr, i, adopted...)
	return nil
}

// Erase removes member key from an object and returns the number of
// members removed.
func (n *Node) Erase(key string) (int, error) {
	if n.typ != ObjectType {
		return 0, errs.Type(307, "cannot use erase() with %s", n.TypeName())
	}
	i := n.obj.Index(key)
	if i < 0 {
		return 0, nil
	}
	n.obj.DeleteAt(i)
	return 1, nil
}

// EraseAt removes the element at index i from an array.
func (n *Node) EraseAt(i int) error {
	if n.typ != ArrayType {
		return errs.Type(307, "cannot use erase() with %s", n.TypeName())
	}
	if i < 0 || i >= len(n.arr) {
		return arrayIndexRange(i)
	}
	n.arr = slices.Delete(n.arr, i, i+1)
	return nil
}

// Update copies the members of other into n, replacing existing members.
// With mergeObjects, members which are objects on both sides are updated
// recursively instead of replaced. A null n becomes an object.
func (n *Node) Update(other *Node, mergeObjects bool) error {
	if n.typ == NullType {
		n.reset(ObjectType)
	}
	if n.typ != ObjectType {
		return errs.Type(312, "cannot use update() with %s", n.TypeName())
	}
	if other.typ != ObjectType {
		return errs.Type(312, "cannot use update() with %s", other.TypeName())
	}
	for i := range other.obj.Len() {
		k, v := other.obj.At(i)
		if mergeObjects && v.typ == ObjectType {
			if cur := Get(n, k); cur != nil && cur.typ == ObjectType {
				if err := cur.Update(v, true); err != nil {
					return err
				}
				continue
			}
		}
		n.obj.Put(k, v.Clone())
	}
	return nil
}

// Clear resets n to the empty value of its type, keeping the type.
func (n *Node) Clear() {
	switch n.typ {
	case ObjectType:
		n.obj.Reset()
	case ArrayType:
		n.arr = []*Node{}
	case BinaryType:
		n.bin = &Binary{Bytes: []byte{}}
	case NullType, DiscardedType:
	default:
		n.reset(n.typ)
	}
}
