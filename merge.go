package jsonir

import (
	"github.com/signadot/jsonir/debug"
	"github.com/signadot/jsonir/ir"
)

// MergePatch applies the RFC 7396 merge patch patch to target, in place.
// A non-object patch replaces target. An object patch turns target into
// an object if it is not one, removes the members whose patch value is
// null and merges the others recursively. It cannot fail. patch is not
// modified.
func MergePatch(target, patch *ir.Node) {
	if debug.Merge() {
		debug.Logf("merge patch %s into %s\n", patch, target.TypeName())
	}
	if !patch.IsObject() {
		target.Assign(patch.Clone())
		return
	}
	if !target.IsObject() {
		target.Assign(ir.New(ir.ObjectType))
	}
	for k, v := range patch.Items() {
		if v.IsNull() {
			target.Erase(k)
			continue
		}
		f, _ := target.Field(k)
		MergePatch(f, v)
	}
}

// CreateMergePatch returns a merge patch which turns from into to.
//
// Arrays are replaced whole. A member of to whose value is null cannot be
// expressed in a merge patch, since null removes the member; applying the
// result removes such members instead.
func CreateMergePatch(from, to *ir.Node) *ir.Node {
	if !from.IsObject() || !to.IsObject() {
		return to.Clone()
	}
	res := ir.New(ir.ObjectType)
	for k := range from.Items() {
		if !to.Contains(k) {
			res.Set(k, ir.Null())
		}
	}
	for k, tv := range to.Items() {
		fv := from.Get(k)
		switch {
		case fv == nil:
			if !tv.IsNull() {
				res.Set(k, tv.Clone())
			}
		case ir.Equal(fv, tv):
		case tv.IsNull():
			res.Set(k, ir.Null())
		default:
			res.Set(k, CreateMergePatch(fv, tv))
		}
	}
	return res
}
