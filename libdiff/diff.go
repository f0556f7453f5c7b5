package libdiff

import (
	"github.com/signadot/jsonir/debug"
	"github.com/signadot/jsonir/ir"
	"github.com/signadot/jsonir/ir/jpointer"
)

// Diff returns a patch document which transforms from into to. Equal
// subtrees produce nothing and values of different kinds are replaced
// whole.
//
// Arrays are compared index by index over their common length; surplus
// elements of from are removed from the highest index down and surplus
// elements of to are appended with "-". Object members only in from are
// removed, shared members are compared and members only in to are added.
func Diff(from, to *ir.Node) *ir.Node {
	ops := diff(nil, from, to, jpointer.Pointer{})
	if debug.Diff() {
		debug.Logf("diff gave %d operations\n", len(ops))
	}
	return ir.FromSlice(ops)
}

func diff(ops []*ir.Node, from, to *ir.Node, p jpointer.Pointer) []*ir.Node {
	if ir.Equal(from, to) {
		return ops
	}
	if from.Type() != to.Type() {
		return append(ops, MakeOp(OpReplace, p, to.Clone()))
	}
	switch from.Type() {
	case ir.ArrayType:
		return diffArray(ops, from, to, p)
	case ir.ObjectType:
		return diffObject(ops, from, to, p)
	}
	return append(ops, MakeOp(OpReplace, p, to.Clone()))
}

func diffArray(ops []*ir.Node, from, to *ir.Node, p jpointer.Pointer) []*ir.Node {
	fv, tv := from.Values(), to.Values()
	i := 0
	for ; i < len(fv) && i < len(tv); i++ {
		ops = diff(ops, fv[i], tv[i], p.PushIndex(i))
	}
	for j := len(fv) - 1; j >= i; j-- {
		ops = append(ops, MakeOp(OpRemove, p.PushIndex(j), nil))
	}
	for ; i < len(tv); i++ {
		ops = append(ops, MakeOp(OpAdd, p.PushBack(jpointer.AppendToken), tv[i].Clone()))
	}
	return ops
}

func diffObject(ops []*ir.Node, from, to *ir.Node, p jpointer.Pointer) []*ir.Node {
	for k, v := range from.Items() {
		tv := to.Get(k)
		if tv == nil {
			ops = append(ops, MakeOp(OpRemove, p.PushBack(k), nil))
			continue
		}
		ops = diff(ops, v, tv, p.PushBack(k))
	}
	for k, v := range to.Items() {
		if !from.Contains(k) {
			ops = append(ops, MakeOp(OpAdd, p.PushBack(k), v.Clone()))
		}
	}
	return ops
}
