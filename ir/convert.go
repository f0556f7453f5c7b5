package ir

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/signadot/jsonir/errs"
)

// ToIRer is implemented by types which know how to represent themselves as
// a node.
type ToIRer interface {
	ToIR() (*Node, error)
}

// FromIRer is implemented by pointer types which can be filled from a node.
type FromIRer interface {
	FromIR(*Node) error
}

// From converts a Go value to a node. It handles nil, *Node (copied),
// ToIRer, booleans, integers, floats, strings, []byte (as binary), []any,
// []*Node, map[string]any and map[string]*Node.
func From(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if x == nil {
			return Null(), nil
		}
		return x.Clone(), nil
	case ToIRer:
		return x.ToIR()
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromUint(uint64(x)), nil
	case uint8:
		return FromUint(uint64(x)), nil
	case uint16:
		return FromUint(uint64(x)), nil
	case uint32:
		return FromUint(uint64(x)), nil
	case uint64:
		return FromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case string:
		return FromString(x), nil
	case []byte:
		return FromBinary(slices.Clone(x)), nil
	case []*Node:
		res := New(ArrayType)
		for _, e := range x {
			res.arr = append(res.arr, e.Clone())
		}
		return res, nil
	case []any:
		res := New(ArrayType)
		for i, e := range x {
			en, err := From(e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			res.arr = append(res.arr, en)
		}
		return res, nil
	case map[string]*Node:
		res := New(ObjectType)
		for _, k := range slices.Sorted(maps.Keys(x)) {
			res.obj.Put(k, x[k].Clone())
		}
		return res, nil
	case map[string]any:
		res := New(ObjectType)
		for _, k := range slices.Sorted(maps.Keys(x)) {
			en, err := From(x[k])
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", k, err)
			}
			res.obj.Put(k, en)
		}
		return res, nil
	}
	return nil, errs.Type(302, "cannot convert %T to a node", v)
}

// GetAs converts n to a value of type T. *T may implement FromIRer;
// otherwise T must be one of the types handled by From, or any.
func GetAs[T any](n *Node) (T, error) {
	var res T
	err := Decode(n, &res)
	return res, err
}

// Decode fills dst, which must be a pointer, from n.
func Decode(n *Node, dst any) error {
	switch x := dst.(type) {
	case FromIRer:
		return x.FromIR(n)
	case **Node:
		*x = n.Clone()
	case *any:
		*x = ToAny(n)
	case *bool:
		v, err := n.AsBool()
		if err != nil {
			return err
		}
		*x = v
	case *string:
		v, err := n.AsString()
		if err != nil {
			return err
		}
		*x = v
	case *[]byte:
		b, err := n.AsBinary()
		if err != nil {
			return err
		}
		*x = slices.Clone(b.Bytes)
	case *float64:
		v, err := n.AsFloat64()
		if err != nil {
			return err
		}
		*x = v
	case *float32:
		v, err := n.AsFloat64()
		if err != nil {
			return err
		}
		*x = float32(v)
	case *int:
		return decodeInt(n, x, math.MinInt, math.MaxInt)
	case *int8:
		return decodeInt(n, x, math.MinInt8, math.MaxInt8)
	case *int16:
		return decodeInt(n, x, math.MinInt16, math.MaxInt16)
	case *int32:
		return decodeInt(n, x, math.MinInt32, math.MaxInt32)
	case *int64:
		return decodeInt(n, x, math.MinInt64, math.MaxInt64)
	case *uint:
		return decodeUint(n, x, math.MaxUint)
	case *uint8:
		return decodeUint(n, x, math.MaxUint8)
	case *uint16:
		return decodeUint(n, x, math.MaxUint16)
	case *uint32:
		return decodeUint(n, x, math.MaxUint32)
	case *uint64:
		return decodeUint(n, x, math.MaxUint64)
	case *[]any:
		if n.typ != ArrayType {
			return typeMismatch("array", n)
		}
		res := make([]any, len(n.arr))
		for i, v := range n.arr {
			res[i] = ToAny(v)
		}
		*x = res
	case *map[string]any:
		if n.typ != ObjectType {
			return typeMismatch("object", n)
		}
		*x = ToAny(n).(map[string]any)
	default:
		return errs.Type(302, "cannot convert %s to %T", n.TypeName(), dst)
	}
	return nil
}

func decodeInt[T ~int | ~int8 | ~int16 | ~int32 | ~int64](n *Node, dst *T, lo, hi int64) error {
	v, err := n.AsInt64()
	if err != nil {
		return err
	}
	if v < lo || v > hi {
		return errs.OutOfRange(406, "number overflow converting %d to %T", v, *dst)
	}
	*dst = T(v)
	return nil
}

func decodeUint[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](n *Node, dst *T, hi uint64) error {
	v, err := n.AsUint64()
	if err != nil {
		return err
	}
	if v > hi {
		return errs.OutOfRange(406, "number overflow converting %d to %T", v, *dst)
	}
	*dst = T(v)
	return nil
}

// ToAny converts n to plain Go values: nil, bool, int64, uint64, float64,
// string, []byte, []any and map[string]any.
func ToAny(n *Node) any {
	switch n.typ {
	case BoolType:
		return n.b
	case IntType:
		return n.i
	case UintType:
		return n.u
	case FloatType:
		return n.f
	case StringType:
		return n.s
	case BinaryType:
		return slices.Clone(n.bin.Bytes)
	case ArrayType:
		res := make([]any, len(n.arr))
		for i, v := range n.arr {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, n.obj.Len())
		for i := range n.obj.Len() {
			k, v := n.obj.At(i)
			res[k] = ToAny(v)
		}
		return res
	}
	return nil
}
