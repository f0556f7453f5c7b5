package ir

import (
	"slices"
	"strings"
)

// Builder creates containers from nodes which the caller has just created
// and holds no other references to, as a parser does. Unlike FromSlice
// and FromKeyVals it does not guard against aliasing, so it takes time
// proportional to the number of children rather than to their size.
type Builder struct {
	// Ordered makes Object keep members in the order given.
	Ordered bool
}

// Array returns an array whose elements are vs. The array takes over vs.
func (b Builder) Array(vs []*Node) *Node {
	if vs == nil {
		vs = []*Node{}
	}
	return &Node{typ: ArrayType, arr: vs}
}

// Object returns an object of pairs. Later duplicate keys replace earlier
// ones.
func (b Builder) Object(pairs []KeyVal) *Node {
	var m kvs
	if b.Ordered {
		m = kvs{keys: make([]string, 0, len(pairs)), vals: make([]*Node, 0, len(pairs))}
		index := make(map[string]int, len(pairs))
		for _, kv := range pairs {
			if i, ok := index[kv.Key]; ok {
				m.vals[i] = kv.Val
				continue
			}
			index[kv.Key] = len(m.keys)
			m.keys = append(m.keys, kv.Key)
			m.vals = append(m.vals, kv.Val)
		}
		return &Node{typ: ObjectType, obj: &orderedMembers{m}}
	}
	sorted := slices.Clone(pairs)
	slices.SortStableFunc(sorted, func(a, b KeyVal) int {
		return strings.Compare(a.Key, b.Key)
	})
	m = kvs{keys: make([]string, 0, len(sorted)), vals: make([]*Node, 0, len(sorted))}
	for i, kv := range sorted {
		if i+1 < len(sorted) && sorted[i+1].Key == kv.Key {
			continue
		}
		m.keys = append(m.keys, kv.Key)
		m.vals = append(m.vals, kv.Val)
	}
	return &Node{typ: ObjectType, obj: &sortedMembers{m}}
}
