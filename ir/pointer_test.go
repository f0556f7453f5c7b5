package ir

import (
	"testing"

	"github.com/signadot/jsonir/errs"
	"github.com/signadot/jsonir/ir/jpointer"
)

func TestAtPointer(t *testing.T) {
	doc := sample()
	tests := []struct {
		ptr  string
		want string
		kind errs.Kind
		id   int
	}{
		{ptr: "", want: `{"a":1,"b":[true,null,"x"]}`},
		{ptr: "/b/0", want: "true"},
		{ptr: "/b/2", want: `"x"`},
		{ptr: "/c", kind: errs.RangeKind, id: 403},
		{ptr: "/b/3", kind: errs.RangeKind, id: 401},
		{ptr: "/b/-", kind: errs.RangeKind, id: 402},
		{ptr: "/b/01", kind: errs.ParseKind, id: 106},
		{ptr: "/b/x", kind: errs.ParseKind, id: 109},
		{ptr: "/a/x", kind: errs.RangeKind, id: 404},
		{ptr: "b", kind: errs.ParseKind, id: 107},
	}
	for _, tt := range tests {
		t.Run(tt.ptr, func(t *testing.T) {
			got, err := doc.AtPointerString(tt.ptr)
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
	_, err := doc.AtPointerString("/c")
	if err == nil || err.Error() != "[out_of_range.403] key 'c' not found" {
		t.Errorf("message: %v", err)
	}
}

func TestRef(t *testing.T) {
	n := Null()
	for _, p := range []string{"/a/b/1", "/a/c", "/l/-", "/l/-"} {
		v, err := n.Ref(jpointer.MustParse(p))
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		v.Assign(FromString(p))
	}
	want := `{"a":{"b":[null,"/a/b/1"],"c":"/a/c"},"l":["/l/-","/l/-"]}`
	if got := n.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if _, err := n.Ref(jpointer.MustParse("/a/c/d")); !errs.HasID(err, errs.RangeKind, 404) {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestPointerRoundTrip(t *testing.T) {
	ptrs := []string{"/x/0/y", "/a~1b/m~0n", "/0", "/x/3"}
	n := Null()
	for i, p := range ptrs {
		ptr := jpointer.MustParse(p)
		v, err := n.Ref(ptr)
		if err != nil {
			t.Fatal(err)
		}
		v.Assign(FromInt(int64(i)))
	}
	for i, p := range ptrs {
		got, err := n.AtPointerString(p)
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if !Equal(got, FromInt(int64(i))) {
			t.Errorf("%s: got %s", p, got)
		}
	}
}

func TestValueAt(t *testing.T) {
	doc := sample()
	def := FromString("def")
	v, err := doc.ValueAt(jpointer.MustParse("/b/1"), def)
	if err != nil || !v.IsNull() {
		t.Errorf("got %v %v", v, err)
	}
	v, err = doc.ValueAt(jpointer.MustParse("/b/9"), def)
	if err != nil || v != def {
		t.Errorf("got %v %v", v, err)
	}
	if _, err := doc.ValueAt(jpointer.MustParse("/b/09"), def); !errs.HasID(err, errs.ParseKind, 106) {
		t.Errorf("expected 106, got %v", err)
	}
	if !doc.ContainsPointer(jpointer.MustParse("/b/2")) || doc.ContainsPointer(jpointer.MustParse("/b/3")) {
		t.Error("ContainsPointer wrong")
	}
}

func TestFlatten(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		{"pi", FromFloat(3.141)},
		{"happy", FromBool(true)},
		{"a/b", FromString("slash")},
		{"list", FromSlice([]*Node{FromInt(1), FromInt(0), FromInt(2)})},
		{"object", FromKeyVals([]KeyVal{{"currency", FromString("USD")}, {"value", FromFloat(42.99)}})},
		{"empty", New(ArrayType)},
	})
	flat := doc.Flatten()
	want := `{"/a~1b":"slash","/empty":null,"/happy":true,"/list/0":1,"/list/1":0,"/list/2":2,` +
		`"/object/currency":"USD","/object/value":42.99,"/pi":3.141}`
	if got := flat.String(); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}

	back, err := flat.Unflatten()
	if err != nil {
		t.Fatal(err)
	}
	doc.Set("empty", Null())
	if !Equal(doc, back) {
		t.Errorf("unflatten: got %s, want %s", back, doc)
	}

	if got := FromInt(1).Flatten().String(); got != `{"":1}` {
		t.Errorf("primitive root: %s", got)
	}
}

func TestFlattenRoundTrip(t *testing.T) {
	docs := []*Node{
		sample(),
		FromSlice([]*Node{FromSlice([]*Node{FromString("deep")}), FromInt(2)}),
		FromString("s"),
		FromKeyVals([]KeyVal{{"~", FromKeyVals([]KeyVal{{"/", Null()}})}}),
	}
	for _, d := range docs {
		back, err := d.Flatten().Unflatten()
		if err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if !Equal(d, back) {
			t.Errorf("got %s, want %s", back, d)
		}
	}
}

func TestUnflattenErrors(t *testing.T) {
	if _, err := FromInt(1).Unflatten(); !errs.HasID(err, errs.TypeKind, 314) {
		t.Errorf("expected 314, got %v", err)
	}
	nested := FromKeyVals([]KeyVal{{"/a", New(ArrayType)}})
	if _, err := nested.Unflatten(); !errs.HasID(err, errs.TypeKind, 315) {
		t.Errorf("expected 315, got %v", err)
	}
	clash := FromKeyVals([]KeyVal{{"/a", FromInt(1)}, {"/a/b", FromInt(2)}})
	if _, err := clash.Unflatten(); !errs.HasID(err, errs.TypeKind, 313) {
		t.Errorf("expected 313, got %v", err)
	}
}

func TestWalk(t *testing.T) {
	var got []string
	sample().Walk(func(p jpointer.Pointer, v *Node) bool {
		got = append(got, p.String())
		return true
	})
	want := []string{"", "/a", "/b", "/b/0", "/b/1", "/b/2"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
	doc := sample()
	target, _ := doc.AtPointerString("/b/2")
	p, ok := doc.PathTo(target)
	if !ok || p.String() != "/b/2" {
		t.Errorf("PathTo: %v %v", p, ok)
	}
}
