package ir

import (
	"math"
	"slices"
	"testing"
)

func TestCompare(t *testing.T) {
	obj := func(kvs ...KeyVal) *Node { return FromKeyVals(kvs) }
	arr := func(vs ...*Node) *Node { return FromSlice(vs) }
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// type rank: null < object < array < string < boolean < number < binary
		{"Null < Object", Null(), obj(), -1},
		{"Object < Array", obj(), arr(), -1},
		{"Array < String", arr(), FromString(""), -1},
		{"String < Bool", FromString("z"), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(-5), -1},
		{"Number < Binary", FromFloat(1e300), FromBinary(nil), -1},
		{"Binary < Discarded", FromBinary([]byte{9}), Discarded(), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		{"Int < Int", FromInt(-1), FromInt(2), -1},
		{"Int == Uint", FromInt(3), FromUint(3), 0},
		{"negative Int < Uint", FromInt(-1), FromUint(0), -1},
		{"Uint > MaxInt64", FromUint(math.MaxUint64), FromInt(math.MaxInt64), 1},
		{"Int == Float", FromInt(1), FromFloat(1.0), 0},
		{"Float < Uint", FromFloat(1.5), FromUint(2), -1},
		{"NaN first", FromFloat(math.NaN()), FromInt(math.MinInt64), -1},

		{"String bytes", FromString("B"), FromString("a"), -1},

		{"Empty Array == Empty Array", arr(), arr(), 0},
		{"Short Array < Long Array", arr(FromInt(1)), arr(FromInt(1), FromInt(2)), -1},
		{"Array Element", arr(FromInt(1), FromInt(9)), arr(FromInt(2)), -1},

		{"Empty Object == Empty Object", obj(), obj(), 0},
		{"Short Object < Long Object",
			obj(KeyVal{"a", FromInt(1)}),
			obj(KeyVal{"a", FromInt(1)}, KeyVal{"b", FromInt(2)}),
			-1},
		{"Object Key", obj(KeyVal{"a", FromInt(9)}), obj(KeyVal{"b", FromInt(1)}), -1},
		{"Object Value", obj(KeyVal{"a", FromInt(1)}), obj(KeyVal{"a", FromInt(2)}), -1},

		{"Binary bytes", FromBinary([]byte{1}), FromBinary([]byte{2}), -1},
		{"Binary subtype", FromBinary([]byte{1}), FromBinarySubtype([]byte{1}, 0), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestOrderedObjectCompare(t *testing.T) {
	a := OrderedObject()
	a.Set("b", FromInt(1))
	a.Set("a", FromInt(2))
	b := FromKeyVals([]KeyVal{{"a", FromInt(2)}, {"b", FromInt(1)}})
	if Compare(a, b) != 0 || !Equal(a, b) {
		t.Errorf("ordered and sorted objects with the same members differ")
	}
}

func TestEqual(t *testing.T) {
	nan := FromFloat(math.NaN())
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"1 == 1.0", FromUint(1), FromFloat(1), true},
		{"-1 == -1.0", FromInt(-1), FromFloat(-1), true},
		{"int uint", FromInt(7), FromUint(7), true},
		{"NaN self", nan, nan, false},
		{"NaN in array", FromSlice([]*Node{FromFloat(math.NaN())}), FromSlice([]*Node{FromFloat(math.NaN())}), false},
		{"null null", Null(), Null(), true},
		{"null false", Null(), FromBool(false), false},
		{"discarded", Discarded(), Discarded(), false},
		{"strings", FromString("x"), FromString("x"), true},
		{"string number", FromString("1"), FromInt(1), false},
		{"binary", FromBinarySubtype([]byte{1, 2}, 4), FromBinarySubtype([]byte{1, 2}, 4), true},
		{"binary subtype", FromBinarySubtype([]byte{1, 2}, 4), FromBinary([]byte{1, 2}), false},
		{"objects", sample(), sample(), true},
		{"object extra key", sample(), FromKeyVals([]KeyVal{{"a", FromInt(1)}}), false},
		{"nil", nil, Null(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLess(t *testing.T) {
	nan := FromFloat(math.NaN())
	if Less(nan, FromInt(1)) || Less(FromInt(1), nan) || Less(nan, nan) {
		t.Error("Less with NaN should be false")
	}
	if !Less(FromInt(1), FromFloat(1.5)) || Less(FromFloat(1.5), FromInt(1)) {
		t.Error("numeric Less wrong")
	}
	if !Less(Null(), FromString("")) {
		t.Error("rank Less wrong")
	}
}

func TestSortStable(t *testing.T) {
	vs := []*Node{FromInt(3), FromString("a"), Null(), FromFloat(0.5), FromBool(false), New(ArrayType), New(ObjectType)}
	slices.SortFunc(vs, Compare)
	var got []string
	for _, v := range vs {
		got = append(got, v.String())
	}
	want := []string{"null", "{}", "[]", `"a"`, "false", "0.5", "3"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
