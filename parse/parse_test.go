package parse

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jsonir/errs"
	"github.com/signadot/jsonir/ir"
	"github.com/tidwall/gjson"
)

func TestParseOK(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `null`, want: `null`},
		{in: ` true `, want: `true`},
		{in: `false`, want: `false`},
		{in: `22`, want: `22`},
		{in: `-22`, want: `-22`},
		{in: `1e14`, want: `1e+14`},
		{in: `1.5`, want: `1.5`},
		{in: `"hello"`, want: `"hello"`},
		{in: `[]`, want: `[]`},
		{in: `{}`, want: `{}`},
		{in: `[[]]`, want: `[[]]`},
		{in: `[1,[2,[3]]]`, want: `[1,[2,[3]]]`},
		{in: `{"a":1,"b":[true,null,"x"]}`, want: `{"a":1,"b":[true,null,"x"]}`},
		{in: "{\n  \"b\": {},\n  \"a\": [ ]\n}", want: `{"a":[],"b":{}}`},
		{in: `{"a":1,"a":2}`, want: `{"a":2}`},
		{in: `"\u00e9😀"`, want: `"é😀"`},
		{in: "\xef\xbb\xbf[1]", want: `[1]`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, err := ParseString(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := n.String(); got != tt.want {
				t.Errorf("got %s want %s", got, tt.want)
			}
		})
	}
}

func TestParseNumberKinds(t *testing.T) {
	n, err := ParseString(`[1, -1, 1.0, 18446744073709551615, 18446744073709551616]`)
	if err != nil {
		t.Fatal(err)
	}
	want := []ir.Type{ir.UintType, ir.IntType, ir.FloatType, ir.UintType, ir.FloatType}
	var got []ir.Type
	for v := range n.Elements() {
		got = append(got, v.Type())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in  string
		id  int
		msg string
	}{
		{
			in:  ``,
			id:  101,
			msg: "[parse_error.101] parse error at line 1, column 0: attempting to parse an empty input; check that your input string or stream contains the expected JSON",
		},
		{
			in:  `[1,2`,
			id:  101,
			msg: "[parse_error.101] parse error at line 1, column 4: syntax error while parsing array - unexpected end of input; expected ']'",
		},
		{
			in:  `{"a":1,}`,
			id:  101,
			msg: "[parse_error.101] parse error at line 1, column 8: syntax error while parsing object key - unexpected '}'; expected string literal",
		},
		{
			in:  `{"a" 1}`,
			id:  101,
			msg: "[parse_error.101] parse error at line 1, column 6: syntax error while parsing object separator - unexpected number literal; expected ':'",
		},
		{
			in:  `[1] 2`,
			id:  101,
			msg: "[parse_error.101] parse error at line 1, column 5: syntax error while parsing value - unexpected number literal; expected end of input",
		},
		{
			in:  `tru`,
			id:  101,
			msg: "[parse_error.101] parse error at line 1, column 3: syntax error while parsing value - invalid literal; last read: 'tru'",
		},
		{
			in:  "[\n\"a\tb\"]",
			id:  101,
			msg: "[parse_error.101] parse error at line 2, column 3: syntax error while parsing value - invalid string: control character U+0009 must be escaped to \\u0009; last read: '\"a<U+0009>'",
		},
		{
			in:  `1e400`,
			id:  406,
			msg: "[out_of_range.406] number overflow parsing '1e400'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseString(tt.in)
			if err == nil {
				t.Fatal("no error")
			}
			if id := errs.IDOf(err); id != tt.id {
				t.Errorf("id %d want %d", id, tt.id)
			}
			if err.Error() != tt.msg {
				t.Errorf("got  %s\nwant %s", err, tt.msg)
			}
		})
	}
}

func TestParseErrorOffset(t *testing.T) {
	_, err := ParseString(`[1,,2]`)
	var e *errs.Error
	if !errors.As(err, &e) {
		t.Fatalf("%v", err)
	}
	if e.Offset != 4 {
		t.Errorf("offset %d", e.Offset)
	}
	if !errors.Is(err, errs.ErrParse) {
		t.Error("not a parse error")
	}
}

func TestNoErrors(t *testing.T) {
	n, err := ParseString(`[1,`, NoErrors())
	if err != nil {
		t.Fatal(err)
	}
	if !n.IsDiscarded() {
		t.Errorf("got %s", n.TypeName())
	}
	n, err = ParseString(`[1]`, NoErrors())
	if err != nil || n.String() != `[1]` {
		t.Errorf("got %v %v", n, err)
	}
}

func TestStrict(t *testing.T) {
	n, err := ParseString(`[1] 2`, Strict(false))
	if err != nil {
		t.Fatal(err)
	}
	if n.String() != `[1]` {
		t.Errorf("got %s", n)
	}
}

func TestComments(t *testing.T) {
	in := "/* head */ [1, // one\n 2 /* two */]"
	if _, err := ParseString(in); err == nil {
		t.Error("comments accepted by default")
	}
	n, err := ParseString(in, SkipComments(true))
	if err != nil {
		t.Fatal(err)
	}
	if n.String() != `[1,2]` {
		t.Errorf("got %s", n)
	}
}

func TestMaxDepth(t *testing.T) {
	if _, err := ParseString(`[[1]]`, MaxDepth(2)); err != nil {
		t.Error(err)
	}
	_, err := ParseString(`[[[1]]]`, MaxDepth(2))
	if err == nil || !strings.Contains(err.Error(), "maximum depth 2 exceeded") {
		t.Errorf("got %v", err)
	}
}

func TestDeepNesting(t *testing.T) {
	const depth = 100000
	in := strings.Repeat("[", depth) + strings.Repeat("]", depth)
	n, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	for range depth - 1 {
		n = n.Values()[0]
	}
	if !n.IsArray() || !n.Empty() {
		t.Errorf("innermost %s", n)
	}
}

func TestOrderedObjects(t *testing.T) {
	n, err := ParseString(`{"b":1,"a":2,"b":3}`, OrderedObjects())
	if err != nil {
		t.Fatal(err)
	}
	if !n.IsOrderedObject() {
		t.Fatal("not ordered")
	}
	if got := n.String(); got != `{"b":3,"a":2}` {
		t.Errorf("got %s", got)
	}
}

type event struct {
	Depth int
	Ev    string
	Node  string
}

func TestCallbackEvents(t *testing.T) {
	var got []event
	_, err := ParseString(`{"a":[1]}`, Callback(func(depth int, ev Event, n *ir.Node) bool {
		got = append(got, event{depth, ev.String(), n.String()})
		return true
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := []event{
		{0, "object_start", `"<discarded>"`},
		{1, "key", `"a"`},
		{1, "array_start", `"<discarded>"`},
		{2, "value", `1`},
		{1, "array_end", `[1]`},
		{0, "object_end", `{"a":[1]}`},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestCallbackFilter(t *testing.T) {
	in := `{"a":1,"b":{"c":2},"d":[1,2,3],"e":"x"}`
	tests := []struct {
		name string
		cb   CallbackFunc
		want string
	}{
		{
			name: "drop key",
			cb: func(_ int, ev Event, n *ir.Node) bool {
				s, _ := n.AsString()
				return ev != Key || s != "b"
			},
			want: `{"a":1,"d":[1,2,3],"e":"x"}`,
		},
		{
			name: "drop arrays at end",
			cb: func(_ int, ev Event, _ *ir.Node) bool {
				return ev != ArrayEnd
			},
			want: `{"a":1,"b":{"c":2},"e":"x"}`,
		},
		{
			name: "drop objects at start",
			cb: func(depth int, ev Event, _ *ir.Node) bool {
				return depth == 0 || ev != ObjectStart
			},
			want: `{"a":1,"d":[1,2,3],"e":"x"}`,
		},
		{
			name: "drop values",
			cb: func(depth int, ev Event, n *ir.Node) bool {
				return ev != Value || !n.Equal(ir.FromInt(2))
			},
			want: `{"a":1,"b":{},"d":[1,3],"e":"x"}`,
		},
		{
			name: "drop root",
			cb: func(depth int, ev Event, _ *ir.Node) bool {
				return depth != 0
			},
			want: `null`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseString(in, Callback(tt.cb))
			if err != nil {
				t.Fatal(err)
			}
			if got := n.String(); got != tt.want {
				t.Errorf("got %s want %s", got, tt.want)
			}
		})
	}
}

func TestCallbackNotCalledInsideDropped(t *testing.T) {
	calls := 0
	_, err := ParseString(`[{"a":[1,2]},3]`, Callback(func(_ int, ev Event, _ *ir.Node) bool {
		calls++
		return ev != ObjectStart
	}))
	if err != nil {
		t.Fatal(err)
	}
	// array_start, object_start, value 3, array_end
	if calls != 4 {
		t.Errorf("%d calls", calls)
	}
}

func TestParseReader(t *testing.T) {
	n, err := ParseReader(iotest.OneByteReader(strings.NewReader(`{"a": [1, "two", 3.5]}`)))
	if err != nil {
		t.Fatal(err)
	}
	if got := n.String(); got != `{"a":[1,"two",3.5]}` {
		t.Errorf("got %s", got)
	}
	_, err = ParseReader(iotest.TimeoutReader(strings.NewReader(`[1, 2]`)))
	if err == nil || !errors.Is(err, iotest.ErrTimeout) {
		t.Errorf("got %v", err)
	}
}

func TestParseYAML(t *testing.T) {
	in := "b: [true, null, x]\na: 1\nc:\n  d: -2\n  e: 1.5\n"
	n, err := ParseString(in, ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := n.String(), `{"a":1,"b":[true,null,"x"],"c":{"d":-2,"e":1.5}}`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
	n, err = ParseString(in, ParseYAML(), OrderedObjects())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := n.String(), `{"b":[true,null,"x"],"a":1,"c":{"d":-2,"e":1.5}}`; got != want {
		t.Errorf("ordered: got %s want %s", got, want)
	}
	if _, err := ParseString("a: [1, 2", ParseYAML()); errs.IDOf(err) != 101 {
		t.Errorf("got %v", err)
	}
	n, err = ParseString("a: [1, 2", ParseYAML(), NoErrors())
	if err != nil || !n.IsDiscarded() {
		t.Errorf("got %v %v", n, err)
	}
}

type counter struct {
	acceptor
	strings int
}

func (c *counter) String(string) bool {
	c.strings++
	return c.strings < 2
}

func TestSAXParse(t *testing.T) {
	c := &counter{}
	ok, err := SAXParse([]byte(`["a", "b", "c"]`), c)
	if err != nil {
		t.Fatal(err)
	}
	if ok || c.strings != 2 {
		t.Errorf("ok %v strings %d", ok, c.strings)
	}
	c = &counter{}
	_, err = SAXParse([]byte(`[1`), c)
	if errs.IDOf(err) != 101 {
		t.Errorf("got %v", err)
	}
}

func TestAcceptMatchesGJSON(t *testing.T) {
	inputs := []string{
		`{}`, `[]`, `[1,2]`, `{"a":[true,false,null]}`, `"x"`, `1.5e3`, `-0`,
		` [ 1 , { "b" : "c" } ] `, `"é"`, `"\\\"\/"`,
		``, `[1,]`, `{"a"}`, `tru`, `[1] x`, `{"a":1}}`, `[`, `{"a":}`, `"abc`,
		`1.`, `-`, `[1 2]`, `{1:2}`, `nul`,
	}
	for _, in := range inputs {
		got, want := Accept([]byte(in)), gjson.Valid(in)
		if got != want {
			t.Errorf("%q: Accept %v, gjson.Valid %v", in, got, want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`{"a":1,"b":[true,null,"x"]}`,
		`[-1,0.5,18446744073709551615,"\u0001\"\\",{}]`,
		`{"nested":{"deeper":{"deepest":[[],[{}]]}}}`,
	}
	for _, d := range docs {
		n, err := ParseString(d)
		if err != nil {
			t.Fatal(err)
		}
		m, err := ParseString(n.String())
		if err != nil {
			t.Fatal(err)
		}
		if !ir.Equal(n, m) {
			t.Errorf("%s: round trip gave %s", d, m)
		}
	}
}

func ExampleParse() {
	n, err := Parse([]byte(`{"a": 1, "b": [true, null, "x"]}`))
	if err != nil {
		panic(err)
	}
	b, _ := n.AtKey("b")
	fmt.Println(n.Size(), b.Size(), n)
	// Output: 2 3 {"a":1,"b":[true,null,"x"]}
}
