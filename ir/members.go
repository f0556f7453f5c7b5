package ir

import (
	"slices"
	"strings"
)

// members is the container holding the key/value pairs of an ObjectType
// node. Keys are unique: putting an existing key replaces its value.
//
// Positions index the container's iteration order, which is key order for
// sortedMembers and insertion order for orderedMembers.
type members interface {
	Len() int
	Index(key string) int
	At(i int) (string, *Node)
	// Put stores v under key, returning the position and whether the key
	// is new.
	Put(key string, v *Node) (int, bool)
	DeleteAt(i int)
	Reset()
	Ordered() bool
	// Map returns a container of the same kind with the same keys and
	// values f(v).
	Map(f func(*Node) *Node) members
}

type kvs struct {
	keys []string
	vals []*Node
}

func (m *kvs) Len() int {
	return len(m.keys)
}

func (m *kvs) At(i int) (string, *Node) {
	return m.keys[i], m.vals[i]
}

func (m *kvs) DeleteAt(i int) {
	m.keys = slices.Delete(m.keys, i, i+1)
	m.vals = slices.Delete(m.vals, i, i+1)
}

func (m *kvs) Reset() {
	m.keys = m.keys[:0]
	clear(m.vals)
	m.vals = m.vals[:0]
}

func (m *kvs) mapped(f func(*Node) *Node) kvs {
	res := kvs{
		keys: slices.Clone(m.keys),
		vals: make([]*Node, len(m.vals)),
	}
	for i, v := range m.vals {
		res.vals[i] = f(v)
	}
	return res
}

// sortedMembers keeps keys in byte-wise order. Lookup is O(log n).
type sortedMembers struct {
	kvs
}

func newSortedMembers(n int) *sortedMembers {
	return &sortedMembers{kvs{keys: make([]string, 0, n), vals: make([]*Node, 0, n)}}
}

func (m *sortedMembers) Index(key string) int {
	i, found := slices.BinarySearch(m.keys, key)
	if !found {
		return -1
	}
	return i
}

func (m *sortedMembers) Put(key string, v *Node) (int, bool) {
	i, found := slices.BinarySearch(m.keys, key)
	if found {
		m.vals[i] = v
		return i, false
	}
	m.keys = slices.Insert(m.keys, i, key)
	m.vals = slices.Insert(m.vals, i, v)
	return i, true
}

func (m *sortedMembers) Ordered() bool { return false }

func (m *sortedMembers) Map(f func(*Node) *Node) members {
	return &sortedMembers{m.mapped(f)}
}

// orderedMembers keeps keys in insertion order. Lookup and deletion are
// O(n).
type orderedMembers struct {
	kvs
}

func newOrderedMembers(n int) *orderedMembers {
	return &orderedMembers{kvs{keys: make([]string, 0, n), vals: make([]*Node, 0, n)}}
}

func (m *orderedMembers) Index(key string) int {
	return slices.Index(m.keys, key)
}

func (m *orderedMembers) Put(key string, v *Node) (int, bool) {
	if i := m.Index(key); i >= 0 {
		m.vals[i] = v
		return i, false
	}
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, v)
	return len(m.keys) - 1, true
}

func (m *orderedMembers) Ordered() bool { return true }

func (m *orderedMembers) Map(f func(*Node) *Node) members {
	return &orderedMembers{m.mapped(f)}
}

// sortedPositions returns the positions of m in key order.
func sortedPositions(m members) []int {
	res := make([]int, m.Len())
	for i := range res {
		res[i] = i
	}
	if !m.Ordered() {
		return res
	}
	slices.SortFunc(res, func(a, b int) int {
		ka, _ := m.At(a)
		kb, _ := m.At(b)
		return strings.Compare(ka, kb)
	})
	return res
}
