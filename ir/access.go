package ir

import (
	"math"

	"github.com/signadot/jsonir/errs"
)

func (n *Node) Type() Type {
	return n.typ
}

// TypeName returns the JSON name of n's type.
func (n *Node) TypeName() string {
	return n.typ.Name()
}

func (n *Node) IsNull() bool           { return n.typ == NullType }
func (n *Node) IsBool() bool           { return n.typ == BoolType }
func (n *Node) IsNumber() bool         { return n.typ.IsNumber() }
func (n *Node) IsNumberInteger() bool  { return n.typ == IntType || n.typ == UintType }
func (n *Node) IsNumberUnsigned() bool { return n.typ == UintType }
func (n *Node) IsNumberFloat() bool    { return n.typ == FloatType }
func (n *Node) IsString() bool         { return n.typ == StringType }
func (n *Node) IsArray() bool          { return n.typ == ArrayType }
func (n *Node) IsObject() bool         { return n.typ == ObjectType }
func (n *Node) IsBinary() bool         { return n.typ == BinaryType }
func (n *Node) IsDiscarded() bool      { return n.typ == DiscardedType }
func (n *Node) IsStructured() bool     { return n.typ == ArrayType || n.typ == ObjectType }
func (n *Node) IsOrderedObject() bool  { return n.typ == ObjectType && n.obj.Ordered() }

// IsPrimitive reports whether n is null, a string, a boolean, a number or
// a binary.
func (n *Node) IsPrimitive() bool {
	switch n.typ {
	case NullType, StringType, BoolType, IntType, UintType, FloatType, BinaryType:
		return true
	}
	return false
}

// Size returns 0 for null, the number of elements or members for arrays
// and objects, and 1 otherwise.
func (n *Node) Size() int {
	switch n.typ {
	case NullType:
		return 0
	case ArrayType:
		return len(n.arr)
	case ObjectType:
		return n.obj.Len()
	}
	return 1
}

func (n *Node) Empty() bool {
	return n.Size() == 0
}

func typeMismatch(want string, n *Node) error {
	return errs.Type(302, "type must be %s, but is %s", want, n.TypeName())
}

func (n *Node) AsBool() (bool, error) {
	if n.typ != BoolType {
		return false, typeMismatch("boolean", n)
	}
	return n.b, nil
}

func (n *Node) AsString() (string, error) {
	if n.typ != StringType {
		return "", typeMismatch("string", n)
	}
	return n.s, nil
}

// AsBinary returns the binary payload of n. The result aliases n.
func (n *Node) AsBinary() (*Binary, error) {
	if n.typ != BinaryType {
		return nil, typeMismatch("binary", n)
	}
	return n.bin, nil
}

// AsInt64 returns the numeric value of n as an int64. Floats are
// truncated; values which do not fit are out_of_range 406.
func (n *Node) AsInt64() (int64, error) {
	switch n.typ {
	case IntType:
		return n.i, nil
	case UintType:
		if n.u > math.MaxInt64 {
			return 0, errs.OutOfRange(406, "number overflow converting %d to int64", n.u)
		}
		return int64(n.u), nil
	case FloatType:
		if math.IsNaN(n.f) || n.f < math.MinInt64 || n.f >= math.MaxInt64 {
			return 0, errs.OutOfRange(406, "number overflow converting %v to int64", n.f)
		}
		return int64(n.f), nil
	}
	return 0, typeMismatch("number", n)
}

func (n *Node) AsUint64() (uint64, error) {
	switch n.typ {
	case IntType:
		if n.i < 0 {
			return 0, errs.OutOfRange(406, "number overflow converting %d to uint64", n.i)
		}
		return uint64(n.i), nil
	case UintType:
		return n.u, nil
	case FloatType:
		if math.IsNaN(n.f) || n.f < 0 || n.f >= math.MaxUint64 {
			return 0, errs.OutOfRange(406, "number overflow converting %v to uint64", n.f)
		}
		return uint64(n.f), nil
	}
	return 0, typeMismatch("number", n)
}

func (n *Node) AsFloat64() (float64, error) {
	switch n.typ {
	case IntType:
		return float64(n.i), nil
	case UintType:
		return float64(n.u), nil
	case FloatType:
		return n.f, nil
	}
	return 0, typeMismatch("number", n)
}

func arrayIndexRange(i int) error {
	return errs.OutOfRange(401, "array index %d is out of range", i)
}

func keyNotFound(key string) error {
	return errs.OutOfRange(403, "key '%s' not found", key)
}

// At returns the element at index i of an array, without creating
// anything.
func (n *Node) At(i int) (*Node, error) {
	if n.typ != ArrayType {
		return nil, errs.Type(304, "cannot use at() with %s", n.TypeName())
	}
	if i < 0 || i >= len(n.arr) {
		return nil, arrayIndexRange(i)
	}
	return n.arr[i], nil
}

// AtKey returns the member key of an object, without creating anything.
func (n *Node) AtKey(key string) (*Node, error) {
	if n.typ != ObjectType {
		return nil, errs.Type(304, "cannot use at() with %s", n.TypeName())
	}
	i := n.obj.Index(key)
	if i < 0 {
		return nil, keyNotFound(key)
	}
	_, v := n.obj.At(i)
	return v, nil
}

// Elem returns the element at index i, converting a null n to an array
// and growing the array with nulls as needed.
func (n *Node) Elem(i int) (*Node, error) {
	if n.typ == NullType {
		n.reset(ArrayType)
	}
	if n.typ != ArrayType {
		return nil, errs.Type(305, "cannot use operator[] with a numeric argument with %s", n.TypeName())
	}
	if i < 0 {
		return nil, arrayIndexRange(i)
	}
	for len(n.arr) <= i {
		n.arr = append(n.arr, Null())
	}
	return n.arr[i], nil
}

// Field returns the member key, converting a null n to an object and
// inserting a null member if key is absent.
func (n *Node) Field(key string) (*Node, error) {
	if n.typ == NullType {
		n.reset(ObjectType)
	}
	if n.typ != ObjectType {
		return nil, errs.Type(305, "cannot use operator[] with a string argument with %s", n.TypeName())
	}
	if i := n.obj.Index(key); i >= 0 {
		_, v := n.obj.At(i)
		return v, nil
	}
	v := Null()
	n.obj.Put(key, v)
	return v, nil
}

// Get returns the member key of an object, or nil if n is not an object
// or has no such member. Callers which need to distinguish a missing key
// from a failure should use Contains or AtKey.
func Get(n *Node, key string) *Node {
	if n.typ != ObjectType {
		return nil
	}
	i := n.obj.Index(key)
	if i < 0 {
		return nil
	}
	_, v := n.obj.At(i)
	return v
}

// Get is the method form of the package function Get.
func (n *Node) Get(key string) *Node {
	return Get(n, key)
}

// Value returns a copy of member key, or def when n has no such member.
func (n *Node) Value(key string, def *Node) (*Node, error) {
	if n.typ != ObjectType {
		return nil, errs.Type(306, "cannot use value() with %s", n.TypeName())
	}
	if v := Get(n, key); v != nil {
		return v.Clone(), nil
	}
	return def, nil
}

func (n *Node) Contains(key string) bool {
	return n.typ == ObjectType && n.obj.Index(key) >= 0
}

func (n *Node) Count(key string) int {
	if n.Contains(key) {
		return 1
	}
	return 0
}

// Front returns the first element of an array or object, or n itself for
// other non-null values.
func (n *Node) Front() (*Node, error) {
	switch n.typ {
	case NullType, DiscardedType:
		return nil, errs.Iterator(214, "cannot get value")
	case ArrayType:
		if len(n.arr) == 0 {
			return nil, errs.Iterator(214, "cannot get value")
		}
		return n.arr[0], nil
	case ObjectType:
		if n.obj.Len() == 0 {
			return nil, errs.Iterator(214, "cannot get value")
		}
		_, v := n.obj.At(0)
		return v, nil
	}
	return n, nil
}

func (n *Node) Back() (*Node, error) {
	switch n.typ {
	case NullType, DiscardedType:
		return nil, errs.Iterator(214, "cannot get value")
	case ArrayType:
		if len(n.arr) == 0 {
			return nil, errs.Iterator(214, "cannot get value")
		}
		return n.arr[len(n.arr)-1], nil
	case ObjectType:
		if n.obj.Len() == 0 {
			return nil, errs.Iterator(214, "cannot get value")
		}
		_, v := n.obj.At(n.obj.Len() - 1)
		return v, nil
	}
	return n, nil
}

// Keys returns the member names of an object in iteration order.
func (n *Node) Keys() []string {
	if n.typ != ObjectType {
		return nil
	}
	res := make([]string, n.obj.Len())
	for i := range res {
		res[i], _ = n.obj.At(i)
	}
	return res
}

// Values returns the elements of an array or the member values of an
// object. The slice is fresh but its nodes are n's children.
func (n *Node) Values() []*Node {
	switch n.typ {
	case ArrayType:
		return append([]*Node(nil), n.arr...)
	case ObjectType:
		res := make([]*Node, n.obj.Len())
		for i := range res {
			_, res[i] = n.obj.At(i)
		}
		return res
	}
	return nil
}
