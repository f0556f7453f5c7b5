package ir

import (
	"iter"
	"slices"
	"strconv"

	"github.com/signadot/jsonir/errs"
)

// Items iterates over the key/value pairs of an object, the index/value
// pairs of an array (indices as decimal strings), or the single pair "", n
// of any other non-null value.
func (n *Node) Items() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		switch n.typ {
		case NullType, DiscardedType:
		case ArrayType:
			for i, v := range n.arr {
				if !yield(strconv.Itoa(i), v) {
					return
				}
			}
		case ObjectType:
			for i := range n.obj.Len() {
				if !yield(n.obj.At(i)) {
					return
				}
			}
		default:
			yield("", n)
		}
	}
}

// Elements iterates over the elements of an array, the member values of an
// object, or n itself for any other non-null value.
func (n *Node) Elements() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, v := range n.Items() {
			if !yield(v) {
				return
			}
		}
	}
}

// Iterator is a position within a node. For arrays and objects it indexes
// the elements in iteration order; other values have the two positions
// begin (0) and end (1).
//
// An Iterator is invalidated by any mutation of its node other than
// through the Iterator-accepting methods of that node.
type Iterator struct {
	node *Node
	pos  int
}

func (n *Node) Begin() Iterator {
	return Iterator{node: n}
}

func (n *Node) End() Iterator {
	switch n.typ {
	case NullType, DiscardedType:
		return Iterator{node: n}
	case ArrayType, ObjectType:
		return Iterator{node: n, pos: n.Size()}
	}
	return Iterator{node: n, pos: 1}
}

// Find returns an iterator at member key, or End if there is none.
func (n *Node) Find(key string) Iterator {
	if n.typ == ObjectType {
		if i := n.obj.Index(key); i >= 0 {
			return Iterator{node: n, pos: i}
		}
	}
	return n.End()
}

func (it Iterator) Node() *Node {
	return it.node
}

func (it Iterator) Pos() int {
	return it.pos
}

func (it Iterator) AtEnd() bool {
	return it.node == nil || it == it.node.End()
}

func (it Iterator) Next() Iterator {
	it.pos++
	return it
}

// Offset moves the iterator by d positions. Object iterators cannot be
// offset.
func (it Iterator) Offset(d int) (Iterator, error) {
	if it.node.typ == ObjectType {
		return it, errs.Iterator(209, "cannot use offsets with object iterators")
	}
	it.pos += d
	return it, nil
}

// Key returns the member name at the iterator.
func (it Iterator) Key() (string, error) {
	if it.node == nil || it.node.typ != ObjectType {
		return "", errs.Iterator(207, "cannot use key() for non-object iterators")
	}
	if it.pos < 0 || it.pos >= it.node.obj.Len() {
		return "", errs.Iterator(214, "cannot get value")
	}
	k, _ := it.node.obj.At(it.pos)
	return k, nil
}

func (it Iterator) Value() (*Node, error) {
	if it.node == nil {
		return nil, errs.Iterator(214, "cannot get value")
	}
	n := it.node
	switch n.typ {
	case ArrayType:
		if it.pos >= 0 && it.pos < len(n.arr) {
			return n.arr[it.pos], nil
		}
	case ObjectType:
		if it.pos >= 0 && it.pos < n.obj.Len() {
			_, v := n.obj.At(it.pos)
			return v, nil
		}
	case NullType, DiscardedType:
	default:
		if it.pos == 0 {
			return n, nil
		}
	}
	return nil, errs.Iterator(214, "cannot get value")
}

// Equal reports whether two iterators denote the same position of the
// same node.
func (it Iterator) Equal(other Iterator) (bool, error) {
	if it.node != other.node {
		return false, errs.Iterator(212, "cannot compare iterators of different containers")
	}
	return it.pos == other.pos, nil
}

// EraseIter removes the element at it and returns an iterator to the
// element which followed it. Erasing a primitive value makes it null.
func (n *Node) EraseIter(it Iterator) (Iterator, error) {
	if it.node != n {
		return it, errs.Iterator(202, "iterator does not fit current value")
	}
	switch n.typ {
	case ArrayType:
		if it.pos < 0 || it.pos >= len(n.arr) {
			return it, errs.Iterator(205, "iterator out of range")
		}
		n.arr = slices.Delete(n.arr, it.pos, it.pos+1)
		return it, nil
	case ObjectType:
		if it.pos < 0 || it.pos >= n.obj.Len() {
			return it, errs.Iterator(205, "iterator out of range")
		}
		n.obj.DeleteAt(it.pos)
		return it, nil
	case NullType, DiscardedType:
		return it, errs.Type(307, "cannot use erase() with %s", n.TypeName())
	}
	if it.pos != 0 {
		return it, errs.Iterator(205, "iterator out of range")
	}
	*n = Node{}
	return n.End(), nil
}

// EraseRange removes the elements in [first, last).
func (n *Node) EraseRange(first, last Iterator) (Iterator, error) {
	if first.node != n || last.node != n {
		return first, errs.Iterator(203, "iterators do not fit current value")
	}
	switch n.typ {
	case ArrayType, ObjectType:
		if first.pos < 0 || last.pos > n.Size() || first.pos > last.pos {
			return first, errs.Iterator(204, "iterators out of range")
		}
		if n.typ == ArrayType {
			n.arr = slices.Delete(n.arr, first.pos, last.pos)
			return first, nil
		}
		for range last.pos - first.pos {
			n.obj.DeleteAt(first.pos)
		}
		return first, nil
	case NullType, DiscardedType:
		return first, errs.Type(307, "cannot use erase() with %s", n.TypeName())
	}
	if first.pos != 0 || last.pos != 1 {
		return first, errs.Iterator(204, "iterators out of range")
	}
	*n = Node{}
	return n.End(), nil
}

// InsertAt inserts vs before it in an array and returns an iterator to the
// first inserted element.
func (n *Node) InsertAt(it Iterator, vs ...*Node) (Iterator, error) {
	if n.typ != ArrayType {
		return it, errs.Type(309, "cannot use insert() with %s", n.TypeName())
	}
	if it.node != n {
		return it, errs.Iterator(202, "iterator does not fit current value")
	}
	if err := n.Insert(it.pos, vs...); err != nil {
		return it, err
	}
	return it, nil
}

// InsertRange inserts copies of the elements [first, last) of another
// array before it.
func (n *Node) InsertRange(it Iterator, first, last Iterator) (Iterator, error) {
	if n.typ != ArrayType {
		return it, errs.Type(309, "cannot use insert() with %s", n.TypeName())
	}
	if it.node != n {
		return it, errs.Iterator(202, "iterator does not fit current value")
	}
	if first.node != last.node {
		return it, errs.Iterator(210, "iterators do not fit")
	}
	if first.node == n {
		return it, errs.Iterator(211, "passed iterators may not belong to container")
	}
	src := first.node
	if src.typ != ArrayType || first.pos < 0 || last.pos > len(src.arr) || first.pos > last.pos {
		return it, errs.Iterator(204, "iterators out of range")
	}
	vs := make([]*Node, 0, last.pos-first.pos)
	for _, v := range src.arr[first.pos:last.pos] {
		vs = append(vs, v.Clone())
	}
	if err := n.Insert(it.pos, vs...); err != nil {
		return it, err
	}
	return it, nil
}
