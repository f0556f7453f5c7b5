package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	ObjectType
	ArrayType
	StringType
	BoolType
	IntType
	UintType
	FloatType
	BinaryType
	DiscardedType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:      "Null",
		ObjectType:    "Object",
		ArrayType:     "Array",
		StringType:    "String",
		BoolType:      "Bool",
		IntType:       "Int",
		UintType:      "Uint",
		FloatType:     "Float",
		BinaryType:    "Binary",
		DiscardedType: "Discarded",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

// Name returns the JSON name of the type, as used in error messages. All
// numeric types are named "number".
func (t Type) Name() string {
	switch t {
	case NullType:
		return "null"
	case ObjectType:
		return "object"
	case ArrayType:
		return "array"
	case StringType:
		return "string"
	case BoolType:
		return "boolean"
	case IntType, UintType, FloatType:
		return "number"
	case BinaryType:
		return "binary"
	case DiscardedType:
		return "discarded"
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for _, tt := range Types() {
		if tt.String() == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		NullType,
		ObjectType,
		ArrayType,
		StringType,
		BoolType,
		IntType,
		UintType,
		FloatType,
		BinaryType,
		DiscardedType,
	}
}

func (t Type) IsNumber() bool {
	switch t {
	case IntType, UintType, FloatType:
		return true
	}
	return false
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}
