package ir

import (
	"strconv"

	"github.com/signadot/jsonir/ir/jpointer"
)

// Walk visits n and its descendants in pre-order, passing each node with
// its pointer from n. Returning false from fn skips the node's children.
// Members are visited in iteration order.
//
// The pointer passed to fn is reused; copy it to retain it.
func (n *Node) Walk(fn func(p jpointer.Pointer, v *Node) bool) {
	type frame struct {
		depth int
		tok   string
		node  *Node
	}
	var p jpointer.Pointer
	work := []frame{{node: n}}
	for len(work) > 0 {
		f := work[len(work)-1]
		work = work[:len(work)-1]
		if f.depth > 0 {
			p = append(p[:f.depth-1], f.tok)
		}
		if !fn(p, f.node) {
			continue
		}
		d := len(p) + 1
		switch f.node.typ {
		case ArrayType:
			for i := len(f.node.arr) - 1; i >= 0; i-- {
				work = append(work, frame{d, strconv.Itoa(i), f.node.arr[i]})
			}
		case ObjectType:
			for i := f.node.obj.Len() - 1; i >= 0; i-- {
				k, v := f.node.obj.At(i)
				work = append(work, frame{d, k, v})
			}
		}
	}
}

// PathTo returns the pointer from n to target, which must be n or one of
// its descendants.
func (n *Node) PathTo(target *Node) (jpointer.Pointer, bool) {
	var res jpointer.Pointer
	found := false
	n.Walk(func(p jpointer.Pointer, v *Node) bool {
		if found {
			return false
		}
		if v == target {
			res = append(jpointer.Pointer{}, p...)
			found = true
			return false
		}
		return true
	})
	return res, found
}
