package jsonir

import (
	"github.com/signadot/jsonir/debug"
	"github.com/signadot/jsonir/ir"
)

// Match reports whether doc matches pattern. A null pattern matches
// anything. An object pattern matches an object having every member of
// the pattern, each matching; other members of doc are ignored. An array
// pattern matches an array of the same length whose elements match
// pairwise. Any other pattern matches a value Equal to it.
func Match(doc, pattern *ir.Node) bool {
	if debug.Match() {
		debug.Logf("match %s against %s\n", doc.TypeName(), pattern)
	}
	switch pattern.Type() {
	case ir.NullType:
		return true
	case ir.ObjectType:
		return matchObject(doc, pattern)
	case ir.ArrayType:
		return matchArray(doc, pattern)
	}
	return ir.Equal(doc, pattern)
}

func matchObject(doc, pattern *ir.Node) bool {
	if !doc.IsObject() {
		return false
	}
	for k, p := range pattern.Items() {
		v := doc.Get(k)
		if v == nil || !Match(v, p) {
			return false
		}
	}
	return true
}

func matchArray(doc, pattern *ir.Node) bool {
	if !doc.IsArray() || doc.Size() != pattern.Size() {
		return false
	}
	dv, pv := doc.Values(), pattern.Values()
	for i := range dv {
		if !Match(dv[i], pv[i]) {
			return false
		}
	}
	return true
}

// Trim returns a copy of doc restricted to what pattern mentions. Object
// members of doc absent from pattern are dropped. For an array pattern,
// each pattern element selects the first unused element of doc which
// matches it. Anything else is copied whole.
func Trim(pattern, doc *ir.Node) *ir.Node {
	switch {
	case pattern.IsObject() && doc.IsObject():
		res := ir.New(ir.ObjectType)
		if doc.IsOrderedObject() {
			res = ir.OrderedObject()
		}
		for k, v := range doc.Items() {
			p := pattern.Get(k)
			if p == nil {
				continue
			}
			res.Set(k, Trim(p, v))
		}
		return res
	case pattern.IsArray() && doc.IsArray():
		var res []*ir.Node
		dv := doc.Values()
		used := make([]bool, len(dv))
		for p := range pattern.Elements() {
			for i, v := range dv {
				if used[i] || !Match(v, p) {
					continue
				}
				res = append(res, Trim(p, v))
				used[i] = true
				break
			}
		}
		return ir.FromSlice(res)
	}
	return doc.Clone()
}
