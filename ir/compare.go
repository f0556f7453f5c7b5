package ir

import (
	"bytes"
	"cmp"
	"math"
	"strings"
)

// rank orders values of unrelated types:
//
//	null < object < array < string < boolean < number < binary < discarded
//
// All numeric types share a rank and compare by value.
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case ObjectType:
		return 1
	case ArrayType:
		return 2
	case StringType:
		return 3
	case BoolType:
		return 4
	case IntType, UintType, FloatType:
		return 5
	case BinaryType:
		return 6
	}
	return 7
}

// compareNumbers compares two numeric nodes. Signed and unsigned integers
// compare exactly; an integer compared with a float is converted to
// float64. ok is false when a NaN makes the operands unordered.
func compareNumbers(a, b *Node) (c int, ok bool) {
	switch {
	case a.typ == IntType && b.typ == IntType:
		return cmp.Compare(a.i, b.i), true
	case a.typ == UintType && b.typ == UintType:
		return cmp.Compare(a.u, b.u), true
	case a.typ == IntType && b.typ == UintType:
		if a.i < 0 {
			return -1, true
		}
		return cmp.Compare(uint64(a.i), b.u), true
	case a.typ == UintType && b.typ == IntType:
		if b.i < 0 {
			return 1, true
		}
		return cmp.Compare(a.u, uint64(b.i)), true
	}
	fa, fb := a.num(), b.num()
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return cmp.Compare(fa, fb), false
	}
	return cmp.Compare(fa, fb), true
}

func (n *Node) num() float64 {
	switch n.typ {
	case IntType:
		return float64(n.i)
	case UintType:
		return float64(n.u)
	}
	return n.f
}

// Equal reports whether a and b are the same JSON value. Numbers of
// different types are equal when their values are; NaN is never equal to
// anything. Object member order is irrelevant. Discarded values are never
// equal.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.typ.IsNumber() && b.typ.IsNumber() {
		c, ok := compareNumbers(a, b)
		return ok && c == 0
	}
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case NullType:
		return true
	case BoolType:
		return a.b == b.b
	case StringType:
		return a.s == b.s
	case BinaryType:
		return bytes.Equal(a.bin.Bytes, b.bin.Bytes) &&
			a.bin.HasSubtype == b.bin.HasSubtype &&
			a.bin.Subtype == b.bin.Subtype
	case ArrayType:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for i := range a.obj.Len() {
			k, av := a.obj.At(i)
			bv := Get(b, k)
			if bv == nil || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}

// Equal is the method form of the package function Equal.
func (n *Node) Equal(o *Node) bool {
	return Equal(n, o)
}

// Compare returns an integer comparing two nodes: 0 if a == b, -1 if
// a < b and +1 if a > b. It is a total order suitable for sorting; NaN
// sorts before every other number and compares equal to itself here even
// though Equal reports it unequal.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	rankA, rankB := rank(a.typ), rank(b.typ)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	switch a.typ {
	case IntType, UintType, FloatType:
		c, _ := compareNumbers(a, b)
		return c
	case StringType:
		return strings.Compare(a.s, b.s)
	case BoolType:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case BinaryType:
		if c := bytes.Compare(a.bin.Bytes, b.bin.Bytes); c != 0 {
			return c
		}
		if a.bin.HasSubtype != b.bin.HasSubtype {
			if !a.bin.HasSubtype {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.bin.Subtype, b.bin.Subtype)
	}
	return 0
}

// Less reports whether a orders before b. Unlike Compare, it is false
// whenever the decision rests on a NaN.
func Less(a, b *Node) bool {
	if a != nil && b != nil && a.typ.IsNumber() && b.typ.IsNumber() {
		c, ok := compareNumbers(a, b)
		return ok && c < 0
	}
	return Compare(a, b) < 0
}

func compareArrays(a, b *Node) int {
	minLen := min(len(a.arr), len(b.arr))
	for i := range minLen {
		if c := Compare(a.arr[i], b.arr[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.arr), len(b.arr))
}

// compareObjects compares members pairwise in key order, key first.
func compareObjects(a, b *Node) int {
	pa, pb := sortedPositions(a.obj), sortedPositions(b.obj)
	minLen := min(len(pa), len(pb))
	for i := range minLen {
		ka, va := a.obj.At(pa[i])
		kb, vb := b.obj.At(pb[i])
		if c := strings.Compare(ka, kb); c != 0 {
			return c
		}
		if c := Compare(va, vb); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(pa), len(pb))
}
