package ir

import "math"

// Truth reports whether n is truthy: non-empty containers, strings and
// binaries, non-zero numbers and true. Null and discarded are false.
func Truth(n *Node) bool {
	switch n.typ {
	case ObjectType:
		return n.obj.Len() != 0
	case ArrayType:
		return len(n.arr) != 0
	case StringType:
		return n.s != ""
	case BinaryType:
		return len(n.bin.Bytes) != 0
	case IntType:
		return n.i != 0
	case UintType:
		return n.u != 0
	case FloatType:
		return n.f != 0 && !math.IsNaN(n.f)
	case BoolType:
		return n.b
	}
	return false
}
