package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// numeric values share this tag so that equal numbers of different types
// hash alike. Distinct integers beyond 2^53 may collide.
const hashNumberTag = 0xfe

// Hash returns a 64-bit structural hash of n. Values which are Equal hash
// alike within a process. It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	var b [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(b[:], v)
		h.Write(b[:])
	}

	switch n.typ {
	case IntType, UintType, FloatType:
		h.WriteByte(hashNumberTag)
	default:
		h.WriteByte(byte(n.typ))
	}

	switch n.typ {
	case NullType, DiscardedType:
	case BoolType:
		if n.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntType, UintType, FloatType:
		// Equal promotes mixed numbers to float64, so hash that.
		f := n.num()
		if f == 0 {
			f = 0
		}
		put(math.Float64bits(f))
	case StringType:
		h.WriteString(n.s)
	case BinaryType:
		h.Write(n.bin.Bytes)
		if n.bin.HasSubtype {
			h.WriteByte(1)
			h.WriteByte(n.bin.Subtype)
		}
	case ArrayType:
		for _, v := range n.arr {
			put(v.Hash())
		}
	case ObjectType:
		for _, i := range sortedPositions(n.obj) {
			k, v := n.obj.At(i)
			h.WriteString(k)
			put(v.Hash())
		}
	}
	return h.Sum64()
}
