package filter

import (
	"testing"

	"github.com/signadot/jsonir/parse"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		expr string
		in   string
		want string
	}{
		{
			expr: `!(event == "key" && key == "secret")`,
			in:   `{"a":1,"secret":{"b":2}}`,
			want: `{"a":1}`,
		},
		{
			expr: `event != "value" || value != 2`,
			in:   `{"a":[1,2,3],"b":2}`,
			want: `{"a":[1,3]}`,
		},
		{
			expr: `depth < 2`,
			in:   `{"a":{"b":1},"c":1}`,
			want: `{"a":{},"c":1}`,
		},
		{
			expr: `event == "value" ? value : true`,
			in:   `[0,1,"","x",[],[1],null,false]`,
			want: `[1,"x",[],[1]]`,
		},
		{
			expr: `event == "key" || type != "string"`,
			in:   `["a",1,{"k":"v","n":true}]`,
			want: `[1,{"n":true}]`,
		},
		{
			expr: `event != "value" || value == nil || value > 1`,
			in:   `{"a":[1,2,null],"b":0.5}`,
			want: `{"a":[2,null]}`,
		},
		{
			expr: `event != "array_end" || depth == 0 || len(value) == 2`,
			in:   `[[1],[1,2],[[3,4]]]`,
			want: `[[1,2]]`,
		},
		{
			expr: `event != "object_end" || len(value) > 1`,
			in:   `[{"a":1},{"a":1,"b":2}]`,
			want: `[{"a":1,"b":2}]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := Compile(tt.expr)
			if err != nil {
				t.Fatal(err)
			}
			n, err := parse.ParseString(tt.in, parse.Callback(f.Callback()))
			if err != nil {
				t.Fatal(err)
			}
			if err := f.Err(); err != nil {
				t.Fatal(err)
			}
			if got := n.String(); got != tt.want {
				t.Errorf("got %s want %s", got, tt.want)
			}
		})
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile(`event ==`); err == nil {
		t.Error("no error")
	}
}

func TestEvalError(t *testing.T) {
	f, err := Compile(`depth % depth == 0`)
	if err != nil {
		t.Fatal(err)
	}
	n, err := parse.ParseString(`[1]`, parse.Callback(f.Callback()))
	if err != nil {
		t.Fatal(err)
	}
	if f.Err() == nil {
		t.Error("no evaluation error")
	}
	if n.String() != `[1]` {
		t.Errorf("got %s", n)
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("JV_FILTER_KEY", "drop")
	f, err := Compile(`key != getenv("JV_FILTER_KEY")`)
	if err != nil {
		t.Fatal(err)
	}
	n, err := parse.ParseString(`{"drop":1,"keep":2}`, parse.Callback(f.Callback()))
	if err != nil {
		t.Fatal(err)
	}
	if n.String() != `{"keep":2}` {
		t.Errorf("got %s", n)
	}
}
