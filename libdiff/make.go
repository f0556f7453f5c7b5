package libdiff

import (
	"github.com/signadot/jsonir/ir"
	"github.com/signadot/jsonir/ir/jpointer"
)

// MakeOp returns the operation {"op": op, "path": path, "value": value}.
// value is moved into the result; a nil value is omitted.
func MakeOp(op string, path jpointer.Pointer, value *ir.Node) *ir.Node {
	kvs := []ir.KeyVal{
		{Key: OpField, Val: ir.FromString(op)},
		{Key: PathField, Val: ir.FromString(path.String())},
	}
	if value != nil {
		kvs = append(kvs, ir.KeyVal{Key: ValueField, Val: value})
	}
	return ir.FromKeyVals(kvs)
}

// MakeFromOp returns a move or copy operation.
func MakeFromOp(op string, from, path jpointer.Pointer) *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: OpField, Val: ir.FromString(op)},
		{Key: FromField, Val: ir.FromString(from.String())},
		{Key: PathField, Val: ir.FromString(path.String())},
	})
}
