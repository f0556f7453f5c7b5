package ir

import (
	"testing"

	"github.com/signadot/jsonir/errs"
)

func TestMutate(t *testing.T) {
	tests := []struct {
		name string
		in   *Node
		op   func(n *Node) error
		want string
		kind errs.Kind
		id   int
	}{
		{
			name: "append to null",
			in:   Null(),
			op:   func(n *Node) error { return n.Append(FromInt(1)) },
			want: "[1]",
		},
		{
			name: "append to number",
			in:   FromInt(1),
			op:   func(n *Node) error { return n.Append(FromInt(1)) },
			kind: errs.TypeKind, id: 308,
		},
		{
			name: "append pair to null",
			in:   Null(),
			op:   func(n *Node) error { return n.AppendKeyVal("k", FromInt(1)) },
			want: `{"k":1}`,
		},
		{
			name: "append pair to array",
			in:   New(ArrayType),
			op:   func(n *Node) error { return n.AppendKeyVal("k", FromInt(1)) },
			kind: errs.TypeKind, id: 308,
		},
		{
			name: "set overwrites",
			in:   FromKeyVals([]KeyVal{{Key: "k", Val: FromInt(1)}}),
			op:   func(n *Node) error { return n.Set("k", FromInt(2)) },
			want: `{"k":2}`,
		},
		{
			name: "emplace keeps",
			in:   FromKeyVals([]KeyVal{{Key: "k", Val: FromInt(1)}}),
			op: func(n *Node) error {
				ok, err := n.Emplace("k", FromInt(2))
				if ok {
					t.Error("emplace replaced existing member")
				}
				return err
			},
			want: `{"k":1}`,
		},
		{
			name: "emplace on string",
			in:   FromString("s"),
			op: func(n *Node) error {
				_, err := n.Emplace("k", FromInt(2))
				return err
			},
			kind: errs.TypeKind, id: 311,
		},
		{
			name: "insert middle",
			in:   FromSlice([]*Node{FromInt(1), FromInt(4)}),
			op:   func(n *Node) error { return n.Insert(1, FromInt(2), FromInt(3)) },
			want: "[1,2,3,4]",
		},
		{
			name: "insert at end",
			in:   FromSlice([]*Node{FromInt(1)}),
			op:   func(n *Node) error { return n.Insert(1, FromInt(2)) },
			want: "[1,2]",
		},
		{
			name: "insert past end",
			in:   FromSlice([]*Node{FromInt(1)}),
			op:   func(n *Node) error { return n.Insert(2, FromInt(2)) },
			kind: errs.RangeKind, id: 401,
		},
		{
			name: "insert into object",
			in:   New(ObjectType),
			op:   func(n *Node) error { return n.Insert(0, FromInt(2)) },
			kind: errs.TypeKind, id: 309,
		},
		{
			name: "erase key",
			in:   sample(),
			op: func(n *Node) error {
				c, err := n.Erase("b")
				if c != 1 {
					t.Errorf("erased %d", c)
				}
				return err
			},
			want: `{"a":1}`,
		},
		{
			name: "erase missing key",
			in:   sample(),
			op: func(n *Node) error {
				c, err := n.Erase("zz")
				if c != 0 {
					t.Errorf("erased %d", c)
				}
				return err
			},
			want: `{"a":1,"b":[true,null,"x"]}`,
		},
		{
			name: "erase key from array",
			in:   New(ArrayType),
			op: func(n *Node) error {
				_, err := n.Erase("k")
				return err
			},
			kind: errs.TypeKind, id: 307,
		},
		{
			name: "erase index",
			in:   FromSlice([]*Node{FromInt(1), FromInt(2)}),
			op:   func(n *Node) error { return n.EraseAt(0) },
			want: "[2]",
		},
		{
			name: "erase index out of range",
			in:   FromSlice([]*Node{FromInt(1)}),
			op:   func(n *Node) error { return n.EraseAt(1) },
			kind: errs.RangeKind, id: 401,
		},
		{
			name: "update",
			in:   FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "o", Val: FromKeyVals([]KeyVal{{Key: "x", Val: FromInt(1)}})}}),
			op: func(n *Node) error {
				return n.Update(FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(2)}, {Key: "o", Val: FromKeyVals([]KeyVal{{Key: "y", Val: FromInt(2)}})}}), false)
			},
			want: `{"a":1,"b":2,"o":{"y":2}}`,
		},
		{
			name: "update merging objects",
			in:   FromKeyVals([]KeyVal{{Key: "o", Val: FromKeyVals([]KeyVal{{Key: "x", Val: FromInt(1)}})}}),
			op: func(n *Node) error {
				return n.Update(FromKeyVals([]KeyVal{{Key: "o", Val: FromKeyVals([]KeyVal{{Key: "y", Val: FromInt(2)}})}}), true)
			},
			want: `{"o":{"x":1,"y":2}}`,
		},
		{
			name: "update array",
			in:   New(ArrayType),
			op:   func(n *Node) error { return n.Update(New(ObjectType), false) },
			kind: errs.TypeKind, id: 312,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.in.String()
			err := tt.op(tt.in)
			if tt.id != 0 {
				if !errs.HasID(err, tt.kind, tt.id) {
					t.Fatalf("expected %s.%d, got %v", tt.kind, tt.id, err)
				}
				if got := tt.in.String(); got != before {
					t.Errorf("failed operation modified value: %s -> %s", before, got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := tt.in.String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClear(t *testing.T) {
	tests := []struct {
		in   *Node
		want string
	}{
		{sample(), "{}"},
		{FromSlice([]*Node{FromInt(1)}), "[]"},
		{FromString("s"), `""`},
		{FromInt(-4), "0"},
		{FromUint(4), "0"},
		{FromFloat(4.5), "0.0"},
		{FromBool(true), "false"},
		{Null(), "null"},
		{FromBinarySubtype([]byte{1}, 3), `{"bytes":[],"subtype":null}`},
	}
	for _, tt := range tests {
		typ := tt.in.Type()
		tt.in.Clear()
		if tt.in.Type() != typ {
			t.Errorf("clear changed type %s to %s", typ, tt.in.Type())
		}
		if got := tt.in.String(); got != tt.want {
			t.Errorf("clear %s: got %s, want %s", typ, got, tt.want)
		}
	}
}
