package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jsonir/errs"
)

func TestItems(t *testing.T) {
	var keys []string
	for k, v := range sample().Items() {
		keys = append(keys, k+"="+v.String())
	}
	if diff := cmp.Diff([]string{"a=1", `b=[true,null,"x"]`}, keys); diff != "" {
		t.Error(diff)
	}
	keys = nil
	for k := range FromSlice([]*Node{FromInt(5), FromInt(6)}).Items() {
		keys = append(keys, k)
	}
	if diff := cmp.Diff([]string{"0", "1"}, keys); diff != "" {
		t.Error(diff)
	}
	count := 0
	for range Null().Elements() {
		count++
	}
	for range FromInt(1).Elements() {
		count++
	}
	if count != 1 {
		t.Errorf("count %d", count)
	}
}

func TestIterator(t *testing.T) {
	n := sample()
	var keys []string
	for it := n.Begin(); !it.AtEnd(); it = it.Next() {
		k, err := it.Key()
		if err != nil {
			t.Fatal(err)
		}
		keys = append(keys, k)
	}
	if diff := cmp.Diff([]string{"a", "b"}, keys); diff != "" {
		t.Error(diff)
	}

	it := n.Find("b")
	v, err := it.Value()
	if err != nil || v.Size() != 3 {
		t.Errorf("find b: %v %v", v, err)
	}
	if !n.Find("zz").AtEnd() {
		t.Error("find missing should be end")
	}
	if _, err := n.Begin().Offset(1); !errs.HasID(err, errs.IteratorKind, 209) {
		t.Errorf("expected 209, got %v", err)
	}
	if _, err := n.Get("b").Begin().Key(); !errs.HasID(err, errs.IteratorKind, 207) {
		t.Errorf("expected 207, got %v", err)
	}
	if _, err := n.End().Value(); !errs.HasID(err, errs.IteratorKind, 214) {
		t.Errorf("expected 214, got %v", err)
	}
	if _, err := n.Begin().Equal(n.Get("b").Begin()); !errs.HasID(err, errs.IteratorKind, 212) {
		t.Errorf("expected 212, got %v", err)
	}
	eq, err := n.Begin().Next().Equal(n.Find("b"))
	if err != nil || !eq {
		t.Errorf("equal: %v %v", eq, err)
	}

	s := FromString("s")
	sv, err := s.Begin().Value()
	if err != nil || sv != s {
		t.Errorf("primitive begin: %v %v", sv, err)
	}
	if !s.Begin().Next().AtEnd() {
		t.Error("primitive has one position")
	}
}

func TestEraseIter(t *testing.T) {
	n := FromSlice([]*Node{FromInt(1), FromInt(2), FromInt(3)})
	it, err := n.EraseIter(n.Begin().Next())
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := it.Value(); v.String() != "3" || n.String() != "[1,3]" {
		t.Errorf("after erase: %s at %v", n, v)
	}
	if _, err := n.EraseIter(sample().Begin()); !errs.HasID(err, errs.IteratorKind, 202) {
		t.Errorf("expected 202, got %v", err)
	}
	if _, err := n.EraseIter(n.End()); !errs.HasID(err, errs.IteratorKind, 205) {
		t.Errorf("expected 205, got %v", err)
	}
	s := FromString("s")
	if _, err := s.EraseIter(s.Begin()); err != nil || !s.IsNull() {
		t.Errorf("erase primitive: %s %v", s, err)
	}
	nl := Null()
	if _, err := nl.EraseIter(nl.Begin()); !errs.HasID(err, errs.TypeKind, 307) {
		t.Errorf("expected 307, got %v", err)
	}
}

func TestEraseRange(t *testing.T) {
	o := sample()
	if err := o.Set("c", FromInt(3)); err != nil {
		t.Fatal(err)
	}
	if _, err := o.EraseRange(o.Begin(), o.Find("c")); err != nil {
		t.Fatal(err)
	}
	if got := o.String(); got != `{"c":3}` {
		t.Errorf("got %s", got)
	}
	a := FromSlice([]*Node{FromInt(1)})
	if _, err := a.EraseRange(a.Begin(), sample().End()); !errs.HasID(err, errs.IteratorKind, 203) {
		t.Errorf("expected 203, got %v", err)
	}
	if _, err := a.EraseRange(a.End(), a.Begin()); !errs.HasID(err, errs.IteratorKind, 204) {
		t.Errorf("expected 204, got %v", err)
	}
}

func TestInsertRange(t *testing.T) {
	dst := FromSlice([]*Node{FromInt(1), FromInt(4)})
	src := FromSlice([]*Node{FromInt(0), FromInt(2), FromInt(3)})
	if _, err := dst.InsertRange(dst.Begin().Next(), src.Begin().Next(), src.End()); err != nil {
		t.Fatal(err)
	}
	if got := dst.String(); got != "[1,2,3,4]" {
		t.Errorf("got %s", got)
	}
	if src.String() != "[0,2,3]" {
		t.Errorf("source changed: %s", src)
	}
	if _, err := dst.InsertRange(dst.Begin(), dst.Begin(), dst.End()); !errs.HasID(err, errs.IteratorKind, 211) {
		t.Errorf("expected 211, got %v", err)
	}
	if _, err := dst.InsertRange(dst.Begin(), src.Begin(), sample().End()); !errs.HasID(err, errs.IteratorKind, 210) {
		t.Errorf("expected 210, got %v", err)
	}
	if _, err := dst.InsertAt(src.Begin(), FromInt(9)); !errs.HasID(err, errs.IteratorKind, 202) {
		t.Errorf("expected 202, got %v", err)
	}
	o := New(ObjectType)
	if _, err := o.InsertAt(o.Begin(), FromInt(9)); !errs.HasID(err, errs.TypeKind, 309) {
		t.Errorf("expected 309, got %v", err)
	}
}
