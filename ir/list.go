package ir

import "github.com/signadot/jsonir/errs"

// FromList builds a value from a literal list of values the way a brace
// initializer would: if every element is a two element array whose first
// element is a string, the result is an object of those pairs; otherwise
// it is an array of the elements. An empty list gives an empty object.
//
// Use FromSlice or ObjectFromList to force the result type.
func FromList(vs ...*Node) *Node {
	if !allPairs(vs) {
		return FromSlice(vs)
	}
	res := New(ObjectType)
	for _, v := range vs {
		res.obj.Put(v.arr[0].s, take(v.arr[1]))
	}
	return res
}

// ObjectFromList is FromList forced to produce an object.
func ObjectFromList(vs ...*Node) (*Node, error) {
	if !allPairs(vs) {
		return nil, errs.Type(301, "cannot create object from initializer list")
	}
	return FromList(vs...), nil
}

// ArrayFromList is FromList forced to produce an array.
func ArrayFromList(vs ...*Node) *Node {
	return FromSlice(vs)
}

func allPairs(vs []*Node) bool {
	for _, v := range vs {
		if v == nil || v.typ != ArrayType || len(v.arr) != 2 || v.arr[0].typ != StringType {
			return false
		}
	}
	return true
}
