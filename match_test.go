package jsonir

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		doc, pattern string
		want         bool
	}{
		{`{"a":1,"b":2}`, `{"a":1}`, true},
		{`{"a":1,"b":2}`, `{"a":1.0}`, true},
		{`{"a":1,"b":2}`, `{"c":null}`, false},
		{`{"a":1,"b":2}`, `{"a":null}`, true},
		{`{"a":{"b":[1,{"c":2,"d":3}]}}`, `{"a":{"b":[1,{"c":2}]}}`, true},
		{`{"a":{"b":[1,{"c":2,"d":3}]}}`, `{"a":{"b":[1]}}`, false},
		{`[1,2]`, `[1,null]`, true},
		{`[1,2]`, `{}`, false},
		{`"x"`, `"x"`, true},
		{`"x"`, `"y"`, false},
		{`1`, `null`, true},
	}
	for _, tt := range tests {
		if got := Match(mustParse(t, tt.doc), mustParse(t, tt.pattern)); got != tt.want {
			t.Errorf("match(%s, %s) = %v", tt.doc, tt.pattern, got)
		}
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		pattern, doc string
		want         string
	}{
		{`{"a":null}`, `{"a":{"x":1},"b":2}`, `{"a":{"x":1}}`},
		{`{"a":{"x":null}}`, `{"a":{"x":1,"y":2},"b":2}`, `{"a":{"x":1}}`},
		{`[{"k":2}]`, `[{"k":1,"v":"a"},{"k":2,"v":"b"}]`, `[{"k":2}]`},
		{`[null,null]`, `[1,2,3]`, `[1,2]`},
		{`1`, `[1,2]`, `[1,2]`},
	}
	for _, tt := range tests {
		if got := Trim(mustParse(t, tt.pattern), mustParse(t, tt.doc)).String(); got != tt.want {
			t.Errorf("trim(%s, %s) = %s want %s", tt.pattern, tt.doc, got, tt.want)
		}
	}
}
