package ir

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jsonir/errs"
)

func sample() *Node {
	return FromKeyVals([]KeyVal{
		{Key: "a", Val: FromUint(1)},
		{Key: "b", Val: FromSlice([]*Node{FromBool(true), Null(), FromString("x")})},
	})
}

func TestTypeQueries(t *testing.T) {
	n := sample()
	if !n.IsObject() || !n.IsStructured() || n.IsPrimitive() {
		t.Errorf("object predicates wrong")
	}
	a := n.Get("a")
	if !a.IsNumber() || !a.IsNumberInteger() || !a.IsNumberUnsigned() || a.IsNumberFloat() {
		t.Errorf("uint predicates wrong")
	}
	if !FromFloat(1).IsNumberFloat() || FromInt(-1).IsNumberUnsigned() {
		t.Errorf("number predicates wrong")
	}
	if n.TypeName() != "object" || a.TypeName() != "number" || FromBinary(nil).TypeName() != "binary" {
		t.Errorf("type names wrong")
	}
	if n.Size() != 2 || n.Get("b").Size() != 3 || a.Size() != 1 {
		t.Errorf("sizes wrong")
	}
}

func TestCheckedAccess(t *testing.T) {
	n := sample()
	tests := []struct {
		name string
		get  func() (*Node, error)
		want string
		kind errs.Kind
		id   int
	}{
		{"key", func() (*Node, error) { return n.AtKey("a") }, "1", 0, 0},
		{"missing key", func() (*Node, error) { return n.AtKey("c") }, "", errs.RangeKind, 403},
		{"key on array", func() (*Node, error) { return n.Get("b").AtKey("c") }, "", errs.TypeKind, 304},
		{"index", func() (*Node, error) { return n.Get("b").At(2) }, `"x"`, 0, 0},
		{"index past end", func() (*Node, error) { return n.Get("b").At(3) }, "", errs.RangeKind, 401},
		{"index on object", func() (*Node, error) { return n.At(0) }, "", errs.TypeKind, 304},
		{"index on null", func() (*Node, error) { return Null().At(0) }, "", errs.TypeKind, 304},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.get()
			if tt.id != 0 {
				if !errs.HasID(err, tt.kind, tt.id) {
					t.Fatalf("expected %s.%d, got %v", tt.kind, tt.id, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got.String() != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
	if n.String() != sample().String() {
		t.Errorf("checked access modified the tree: %s", n)
	}
}

func TestCreatingAccess(t *testing.T) {
	n := Null()
	v, err := n.Elem(2)
	if err != nil {
		t.Fatal(err)
	}
	v.Assign(FromInt(7))
	if got := n.String(); got != "[null,null,7]" {
		t.Errorf("got %s", got)
	}

	o := Null()
	f, err := o.Field("k")
	if err != nil {
		t.Fatal(err)
	}
	if !f.IsNull() || o.String() != `{"k":null}` {
		t.Errorf("got %s", o)
	}
	if _, err := FromString("s").Field("k"); !errs.HasID(err, errs.TypeKind, 305) {
		t.Errorf("expected 305, got %v", err)
	}
	if _, err := FromBool(true).Elem(0); !errs.HasID(err, errs.TypeKind, 305) {
		t.Errorf("expected 305, got %v", err)
	}
}

func TestGetAndValue(t *testing.T) {
	n := sample()
	if n.Get("missing") != nil {
		t.Error("expected nil for missing key")
	}
	if Get(FromInt(1), "a") != nil {
		t.Error("expected nil for non-object")
	}
	v, err := n.Value("missing", FromString("def"))
	if err != nil || v.String() != `"def"` {
		t.Errorf("got %v, %v", v, err)
	}
	v, err = n.Value("a", FromString("def"))
	if err != nil || v.String() != "1" {
		t.Errorf("got %v, %v", v, err)
	}
	v.Assign(FromInt(9))
	if n.Get("a").String() != "1" {
		t.Error("Value did not return a copy")
	}
	if _, err := Null().Value("a", Null()); !errs.HasID(err, errs.TypeKind, 306) {
		t.Errorf("expected 306, got %v", err)
	}
	if !n.Contains("a") || n.Contains("c") || n.Count("b") != 1 || n.Count("c") != 0 {
		t.Error("contains/count wrong")
	}
}

func TestScalarReads(t *testing.T) {
	if _, err := FromString("x").AsBool(); !errs.HasID(err, errs.TypeKind, 302) {
		t.Errorf("expected 302, got %v", err)
	} else if err.Error() != "[type_error.302] type must be boolean, but is string" {
		t.Errorf("message: %s", err)
	}
	if v, err := FromUint(5).AsInt64(); err != nil || v != 5 {
		t.Errorf("got %d, %v", v, err)
	}
	if _, err := FromUint(math.MaxUint64).AsInt64(); !errs.HasID(err, errs.RangeKind, 406) {
		t.Errorf("expected 406, got %v", err)
	}
	if _, err := FromInt(-1).AsUint64(); !errs.HasID(err, errs.RangeKind, 406) {
		t.Errorf("expected 406, got %v", err)
	}
	if v, err := FromFloat(2.9).AsInt64(); err != nil || v != 2 {
		t.Errorf("got %d, %v", v, err)
	}
	if v, err := FromInt(-3).AsFloat64(); err != nil || v != -3 {
		t.Errorf("got %v, %v", v, err)
	}
	if _, err := Null().AsFloat64(); !errs.HasID(err, errs.TypeKind, 302) {
		t.Errorf("expected 302, got %v", err)
	}
}

func TestFrontBack(t *testing.T) {
	n := sample()
	f, err := n.Front()
	if err != nil || f.String() != "1" {
		t.Errorf("front %v %v", f, err)
	}
	b, err := n.Get("b").Back()
	if err != nil || b.String() != `"x"` {
		t.Errorf("back %v %v", b, err)
	}
	s := FromString("s")
	if v, _ := s.Front(); v != s {
		t.Error("front of scalar should be itself")
	}
	for _, e := range []*Node{Null(), New(ArrayType), New(ObjectType)} {
		if _, err := e.Front(); !errs.HasID(err, errs.IteratorKind, 214) {
			t.Errorf("front of %s: %v", e, err)
		}
	}
}

func TestKeysValues(t *testing.T) {
	n := sample()
	if diff := cmp.Diff([]string{"a", "b"}, n.Keys()); diff != "" {
		t.Error(diff)
	}
	vals := n.Values()
	if len(vals) != 2 || vals[0] != n.Get("a") {
		t.Errorf("values %v", vals)
	}
	if FromInt(1).Keys() != nil {
		t.Error("keys of scalar")
	}
}
