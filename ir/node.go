package ir

import (
	"maps"
	"slices"
)

// Node is a JSON value: a tagged union over the types listed in Type.
//
// Scalars are held inline. Strings, arrays, objects and binaries are owned
// by exactly one node. Nodes passed to constructors and mutators are
// moved into the receiving tree: their contents are transferred and the
// argument is left Null. Use Clone to insert a copy instead.
//
// The zero Node is null.
type Node struct {
	typ Type
	b   bool
	i   int64
	u   uint64
	f   float64
	s   string
	arr []*Node
	obj members
	bin *Binary
}

// Binary is the payload of a BinaryType node.
type Binary struct {
	Bytes      []byte
	Subtype    uint8
	HasSubtype bool
}

func (b *Binary) clone() *Binary {
	return &Binary{Bytes: slices.Clone(b.Bytes), Subtype: b.Subtype, HasSubtype: b.HasSubtype}
}

func Null() *Node {
	return &Node{}
}

// Discarded returns the marker produced for values rejected by a parse
// callback.
func Discarded() *Node {
	return &Node{typ: DiscardedType}
}

func FromBool(v bool) *Node {
	return &Node{typ: BoolType, b: v}
}

func FromInt(v int64) *Node {
	return &Node{typ: IntType, i: v}
}

func FromUint(v uint64) *Node {
	return &Node{typ: UintType, u: v}
}

func FromFloat(f float64) *Node {
	return &Node{typ: FloatType, f: f}
}

func FromString(v string) *Node {
	return &Node{typ: StringType, s: v}
}

func FromBinary(d []byte) *Node {
	return &Node{typ: BinaryType, bin: &Binary{Bytes: d}}
}

func FromBinarySubtype(d []byte, subtype uint8) *Node {
	return &Node{typ: BinaryType, bin: &Binary{Bytes: d, Subtype: subtype, HasSubtype: true}}
}

// New returns the canonical empty value of type t: null, false, 0, "",
// [], {} or empty binary.
func New(t Type) *Node {
	res := &Node{}
	res.reset(t)
	return res
}

// OrderedObject returns an empty object which keeps its members in
// insertion order.
func OrderedObject() *Node {
	return &Node{typ: ObjectType, obj: newOrderedMembers(0)}
}

func (n *Node) reset(t Type) {
	*n = Node{typ: t}
	switch t {
	case ArrayType:
		n.arr = []*Node{}
	case ObjectType:
		n.obj = newSortedMembers(0)
	case BinaryType:
		n.bin = &Binary{Bytes: []byte{}}
	}
}

// FromSlice returns an array holding vs.
func FromSlice(vs []*Node) *Node {
	res := &Node{typ: ArrayType, arr: make([]*Node, len(vs))}
	for i, v := range vs {
		res.arr[i] = take(v)
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals returns an object holding kvs. Later duplicates replace
// earlier ones.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{typ: ObjectType, obj: newSortedMembers(len(kvs))}
	for _, kv := range kvs {
		res.obj.Put(kv.Key, take(kv.Val))
	}
	return res
}

func FromMap(m map[string]*Node) *Node {
	res := &Node{typ: ObjectType, obj: newSortedMembers(len(m))}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res.obj.Put(k, take(m[k]))
	}
	return res
}

// Take moves the contents of n into a new node, leaving n null.
func (n *Node) Take() *Node {
	res := &Node{}
	*res = *n
	*n = Node{}
	return res
}

// Assign replaces the contents of n with those of v, leaving v null. If n
// lies within v, v is copied instead.
func (n *Node) Assign(v *Node) {
	if v == n {
		return
	}
	*n = *n.adopt(v)
}

func (n *Node) Swap(other *Node) {
	*n, *other = *other, *n
}

// take moves v for insertion below a node which nothing else can reach.
func take(v *Node) *Node {
	if v == nil {
		return Null()
	}
	return v.Take()
}

// adopt prepares v for insertion below n.
func (n *Node) adopt(v *Node) *Node {
	if v == nil {
		return Null()
	}
	if v.reaches(n) {
		return v.Clone()
	}
	return v.Take()
}

// reaches reports whether target is n or one of its descendants.
func (n *Node) reaches(target *Node) bool {
	work := []*Node{n}
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		if cur == target {
			return true
		}
		switch cur.typ {
		case ArrayType:
			work = append(work, cur.arr...)
		case ObjectType:
			for i := range cur.obj.Len() {
				_, v := cur.obj.At(i)
				work = append(work, v)
			}
		}
	}
	return false
}

// Clone returns a deep copy of n. It uses an explicit work list so that
// arbitrarily deep trees do not grow the stack.
func (n *Node) Clone() *Node {
	res := &Node{}
	type job struct{ src, dst *Node }
	work := []job{{n, res}}
	for len(work) > 0 {
		j := work[len(work)-1]
		work = work[:len(work)-1]
		*j.dst = *j.src
		switch j.src.typ {
		case ArrayType:
			j.dst.arr = make([]*Node, len(j.src.arr))
			for i, v := range j.src.arr {
				d := &Node{}
				j.dst.arr[i] = d
				work = append(work, job{v, d})
			}
		case ObjectType:
			j.dst.obj = j.src.obj.Map(func(v *Node) *Node {
				d := &Node{}
				work = append(work, job{v, d})
				return d
			})
		case BinaryType:
			j.dst.bin = j.src.bin.clone()
		}
	}
	return res
}
