package jsonir

import (
	"errors"

	"github.com/signadot/jsonir/debug"
	"github.com/signadot/jsonir/errs"
	"github.com/signadot/jsonir/ir"
	"github.com/signadot/jsonir/ir/jpointer"
	"github.com/signadot/jsonir/libdiff"
)

// Patch applies the RFC 6902 patch document patch to a copy of doc and
// returns the copy. doc is not modified.
//
// A malformed patch document is parse_error 104 or 105. A failed test
// operation is other_error 501. Operations addressing missing locations
// fail with the out_of_range errors of pointer resolution.
func Patch(doc, patch *ir.Node, opts ...PatchOption) (*ir.Node, error) {
	cfg := &patchConfig{}
	for _, o := range opts {
		o(cfg)
	}
	if !patch.IsArray() {
		return nil, errs.Parse(104, -1, "JSON patch must be an array of objects")
	}
	res := doc.Clone()
	for op := range patch.Elements() {
		if err := apply(res, op, cfg); err != nil {
			if debug.Patch() {
				debug.Logf("patch operation %s failed: %v\n", op, err)
			}
			return nil, err
		}
	}
	return res, nil
}

// PatchInPlace is Patch, replacing the contents of doc with the result on
// success. On failure doc is unchanged.
func PatchInPlace(doc, patch *ir.Node, opts ...PatchOption) error {
	res, err := Patch(doc, patch, opts...)
	if err != nil {
		return err
	}
	doc.Swap(res)
	return nil
}

// Diff returns a patch document which turns from into to.
func Diff(from, to *ir.Node) *ir.Node {
	return libdiff.Diff(from, to)
}

// member returns the member name of op. With str, the member must be a
// string.
func member(op *ir.Node, opName, name string, str bool) (*ir.Node, error) {
	desc := "operation"
	if name != libdiff.OpField {
		desc = "operation '" + opName + "'"
	}
	v := op.Get(name)
	if v == nil {
		return nil, errs.Parse(105, -1, "%s must have member '%s'", desc, name)
	}
	if str && !v.IsString() {
		return nil, errs.Parse(105, -1, "%s must have string member '%s'", desc, name)
	}
	return v, nil
}

func pointerMember(op *ir.Node, opName, name string) (jpointer.Pointer, error) {
	v, err := member(op, opName, name, true)
	if err != nil {
		return nil, err
	}
	s, _ := v.AsString()
	return jpointer.Parse(s)
}

func apply(doc, op *ir.Node, cfg *patchConfig) error {
	if !op.IsObject() {
		return errs.Parse(104, -1, "JSON patch must be an array of objects")
	}
	v, err := member(op, "op", libdiff.OpField, true)
	if err != nil {
		return err
	}
	name, _ := v.AsString()
	path, err := pointerMember(op, name, libdiff.PathField)
	if err != nil {
		return err
	}
	if debug.Patch() {
		debug.Logf("patch %s %s\n", name, path)
	}
	switch name {
	case libdiff.OpAdd:
		val, err := member(op, name, libdiff.ValueField, false)
		if err != nil {
			return err
		}
		return add(doc, path, val.Clone(), cfg)
	case libdiff.OpRemove:
		return remove(doc, path)
	case libdiff.OpReplace:
		val, err := member(op, name, libdiff.ValueField, false)
		if err != nil {
			return err
		}
		target, err := doc.AtPointer(path)
		if err != nil {
			return err
		}
		target.Assign(val.Clone())
		return nil
	case libdiff.OpMove, libdiff.OpCopy:
		from, err := pointerMember(op, name, libdiff.FromField)
		if err != nil {
			return err
		}
		src, err := doc.AtPointer(from)
		if err != nil {
			return err
		}
		val := src.Clone()
		if name == libdiff.OpMove {
			if err := remove(doc, from); err != nil {
				return err
			}
		}
		return add(doc, path, val, cfg)
	case libdiff.OpTest:
		val, err := member(op, name, libdiff.ValueField, false)
		if err != nil {
			return err
		}
		cur, err := doc.AtPointer(path)
		if err != nil && !errors.Is(err, errs.ErrOutOfRange) {
			return err
		}
		if err != nil || !ir.Equal(cur, val) {
			return errs.Other(501, "unsuccessful: %s", op)
		}
		return nil
	}
	return errs.Parse(105, -1, "operation value '%s' is invalid", name)
}

// parent resolves the container holding the last token of p.
func parent(doc *ir.Node, p jpointer.Pointer, create bool) (*ir.Node, error) {
	pp := p.Parent()
	if create {
		return doc.Ref(pp)
	}
	return doc.AtPointer(pp)
}

func add(doc *ir.Node, p jpointer.Pointer, val *ir.Node, cfg *patchConfig) error {
	if p.IsRoot() {
		doc.Assign(val)
		return nil
	}
	par, err := parent(doc, p, cfg.createParents)
	if err != nil {
		return err
	}
	last, _ := p.Back()
	if cfg.createParents && par.IsNull() && (last == jpointer.AppendToken || isIndex(last)) {
		par.Assign(ir.New(ir.ArrayType))
	}
	switch par.Type() {
	case ir.NullType, ir.ObjectType:
		return par.Set(last, val)
	case ir.ArrayType:
		if last == jpointer.AppendToken {
			return par.Append(val)
		}
		i, err := jpointer.ArrayIndex(last)
		if err != nil {
			return err
		}
		if i > par.Size() {
			return errs.OutOfRange(401, "array index %d is out of range", i)
		}
		return par.Insert(i, val)
	}
	return errs.OutOfRange(404, "unresolved reference token '%s'", last)
}

func isIndex(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

func remove(doc *ir.Node, p jpointer.Pointer) error {
	last, err := p.Back()
	if err != nil {
		return err
	}
	par, err := doc.AtPointer(p.Parent())
	if err != nil {
		return err
	}
	switch par.Type() {
	case ir.ObjectType:
		if n, _ := par.Erase(last); n == 0 {
			return errs.OutOfRange(403, "key '%s' not found", last)
		}
		return nil
	case ir.ArrayType:
		i, err := jpointer.ArrayIndex(last)
		if err != nil {
			return err
		}
		return par.EraseAt(i)
	}
	return errs.OutOfRange(404, "unresolved reference token '%s'", last)
}
