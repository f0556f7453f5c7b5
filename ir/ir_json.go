package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/jsonir/errs"
)

// AppendJSON appends the compact JSON text of n to dst. Invalid UTF-8 in
// strings is replaced by U+FFFD; NaN and infinities are written as null.
//
// Binary values are written as {"bytes":[...],"subtype":...} and discarded
// values as "<discarded>".
func AppendJSON(dst []byte, n *Node) []byte {
	type frame struct {
		n    *Node
		next int
	}
	dst = appendOpen(dst, n)
	if !hasChildren(n) {
		return dst
	}
	stack := []frame{{n: n}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == top.n.Size() {
			if top.n.typ == ArrayType {
				dst = append(dst, ']')
			} else {
				dst = append(dst, '}')
			}
			stack = stack[:len(stack)-1]
			continue
		}
		if top.next > 0 {
			dst = append(dst, ',')
		}
		var child *Node
		if top.n.typ == ArrayType {
			child = top.n.arr[top.next]
		} else {
			var k string
			k, child = top.n.obj.At(top.next)
			dst = AppendQuoted(dst, k)
			dst = append(dst, ':')
		}
		top.next++
		dst = appendOpen(dst, child)
		if hasChildren(child) {
			stack = append(stack, frame{n: child})
		}
	}
	return dst
}

func hasChildren(n *Node) bool {
	return n.IsStructured() && n.Size() > 0
}

// appendOpen writes a leaf, an empty container, or the opening bracket of a container.
func appendOpen(dst []byte, n *Node) []byte {
	switch n.typ {
	case NullType:
		return append(dst, "null"...)
	case BoolType:
		return strconv.AppendBool(dst, n.b)
	case IntType:
		return strconv.AppendInt(dst, n.i, 10)
	case UintType:
		return strconv.AppendUint(dst, n.u, 10)
	case FloatType:
		return AppendFloat(dst, n.f)
	case StringType:
		return AppendQuoted(dst, n.s)
	case ArrayType:
		if len(n.arr) == 0 {
			return append(dst, "[]"...)
		}
		return append(dst, '[')
	case ObjectType:
		if n.obj.Len() == 0 {
			return append(dst, "{}"...)
		}
		return append(dst, '{')
	case BinaryType:
		dst = append(dst, `{"bytes":[`...)
		for i, b := range n.bin.Bytes {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = strconv.AppendUint(dst, uint64(b), 10)
		}
		dst = append(dst, `],"subtype":`...)
		if n.bin.HasSubtype {
			dst = strconv.AppendUint(dst, uint64(n.bin.Subtype), 10)
		} else {
			dst = append(dst, "null"...)
		}
		return append(dst, '}')
	case DiscardedType:
		return append(dst, `"<discarded>"`...)
	}
	return dst
}

// AppendFloat appends the shortest representation of f which reads back
// as f. Integral values keep a ".0" suffix so they read back as floats.
func AppendFloat(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}
	start := len(dst)
	dst = strconv.AppendFloat(dst, f, 'g', -1, 64)
	if !bytes.ContainsAny(dst[start:], ".e") {
		dst = append(dst, ".0"...)
	}
	return dst
}

const hexDigits = "0123456789abcdef"

// AppendQuoted appends s as a JSON string literal.
func AppendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch c {
			case '"':
				dst = append(dst, `\"`...)
			case '\\':
				dst = append(dst, `\\`...)
			case '\b':
				dst = append(dst, `\b`...)
			case '\f':
				dst = append(dst, `\f`...)
			case '\n':
				dst = append(dst, `\n`...)
			case '\r':
				dst = append(dst, `\r`...)
			case '\t':
				dst = append(dst, `\t`...)
			default:
				if c < 0x20 {
					dst = append(dst, `\u00`...)
					dst = append(dst, hexDigits[c>>4], hexDigits[c&0xf])
				} else {
					dst = append(dst, c)
				}
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = append(dst, "\uFFFD"...)
		} else {
			dst = append(dst, s[i:i+size]...)
		}
		i += size
	}
	return append(dst, '"')
}

// String returns the compact JSON text of n.
func (n *Node) String() string {
	return string(AppendJSON(nil, n))
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return AppendJSON(nil, n), nil
}

// UnmarshalJSON decodes JSON text into n. Integers which fit 64 bits stay
// integers; object members are held in key order. Failures are
// parse_error 101, or out_of_range 406 for a float overflow.
//
// The decoding is done with encoding/json since the parse package depends
// on ir. Prefer the parse package, which reports positions and supports
// the full set of options; UnmarshalJSON exists for use with
// encoding/json.
func (n *Node) UnmarshalJSON(d []byte) error {
	if !utf8.Valid(d) {
		return errs.Parse(101, -1, "parse error: invalid UTF-8")
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return unmarshalErr(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return errs.Parse(101, dec.InputOffset(), "parse error: expected end of input")
	}
	v, err := fromJSONNumbers(v)
	if err != nil {
		return err
	}
	res, err := From(v)
	if err != nil {
		return err
	}
	*n = *res
	return nil
}

func unmarshalErr(err error) error {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return errs.Parse(101, se.Offset, "parse error: %s", se)
	}
	return errs.Parse(101, -1, "parse error: %s", err)
}

func fromJSONNumbers(v any) (any, error) {
	var err error
	switch x := v.(type) {
	case json.Number:
		s := string(x)
		if !strings.ContainsAny(s, ".eE") {
			if !strings.HasPrefix(s, "-") {
				if u, err := strconv.ParseUint(s, 10, 64); err == nil {
					return u, nil
				}
			} else if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return i, nil
			}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && math.IsInf(f, 0) {
			return nil, errs.OutOfRange(406, "number overflow parsing '%s'", s)
		}
		return f, nil
	case []any:
		for i, e := range x {
			if x[i], err = fromJSONNumbers(e); err != nil {
				return nil, err
			}
		}
	case map[string]any:
		for k, e := range x {
			if x[k], err = fromJSONNumbers(e); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}
