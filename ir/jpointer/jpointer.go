package jpointer

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/jsonir/errs"
)

// AppendToken is the reference token denoting the position one past the
// end of an array.
const AppendToken = "-"

type Pointer []string

func New(tokens ...string) Pointer {
	return Pointer(slices.Clone(tokens))
}

func Parse(s string) (Pointer, error) {
	if s == "" {
		return Pointer{}, nil
	}
	if s[0] != '/' {
		return nil, errs.Parse(107, 1, "JSON pointer must be empty or begin with '/' - was: '%s'", s)
	}
	parts := strings.Split(s[1:], "/")
	res := make(Pointer, len(parts))
	for i, part := range parts {
		tok, err := Unescape(part)
		if err != nil {
			return nil, err
		}
		res[i] = tok
	}
	return res, nil
}

func MustParse(s string) Pointer {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Unescape replaces ~1 with / and ~0 with ~. Any other use of ~ is an
// error.
func Unescape(tok string) (string, error) {
	if !strings.Contains(tok, "~") {
		return tok, nil
	}
	b := &strings.Builder{}
	b.Grow(len(tok))
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c != '~' {
			b.WriteByte(c)
			continue
		}
		if i+1 == len(tok) || (tok[i+1] != '0' && tok[i+1] != '1') {
			return "", errs.Parse(108, 0, "escape character '~' must be followed with '0' or '1'")
		}
		if tok[i+1] == '0' {
			b.WriteByte('~')
		} else {
			b.WriteByte('/')
		}
		i++
	}
	return b.String(), nil
}

func Escape(tok string) string {
	if !strings.ContainsAny(tok, "~/") {
		return tok
	}
	tok = strings.ReplaceAll(tok, "~", "~0")
	return strings.ReplaceAll(tok, "/", "~1")
}

func (p Pointer) String() string {
	b := &strings.Builder{}
	for _, tok := range p {
		b.WriteByte('/')
		b.WriteString(Escape(tok))
	}
	return b.String()
}

func (p Pointer) IsRoot() bool {
	return len(p) == 0
}

// Parent returns the pointer to the parent of p. The parent of the root is
// the root.
func (p Pointer) Parent() Pointer {
	if len(p) == 0 {
		return Pointer{}
	}
	return slices.Clone(p[:len(p)-1])
}

// Back returns the last reference token.
func (p Pointer) Back() (string, error) {
	if len(p) == 0 {
		return "", errs.OutOfRange(405, "JSON pointer has no parent")
	}
	return p[len(p)-1], nil
}

func (p *Pointer) PopBack() error {
	if len(*p) == 0 {
		return errs.OutOfRange(405, "JSON pointer has no parent")
	}
	*p = (*p)[:len(*p)-1]
	return nil
}

// PushBack returns a new pointer with tok appended.
func (p Pointer) PushBack(tok string) Pointer {
	res := make(Pointer, len(p), len(p)+1)
	copy(res, p)
	return append(res, tok)
}

func (p Pointer) PushIndex(i int) Pointer {
	return p.PushBack(strconv.Itoa(i))
}

// Append returns the concatenation of p and q.
func (p Pointer) Append(q Pointer) Pointer {
	return slices.Concat(p, q)
}

func Join(ps ...Pointer) Pointer {
	return slices.Concat(ps...)
}

func (p Pointer) Equal(q Pointer) bool {
	return slices.Equal(p, q)
}

// ArrayIndex converts a reference token to an array index. The token must
// be a non-negative decimal number without leading zeros.
func ArrayIndex(tok string) (int, error) {
	if len(tok) > 1 && tok[0] == '0' {
		return 0, errs.Parse(106, 0, "array index '%s' must not begin with '0'", tok)
	}
	if tok == "" {
		return 0, errs.Parse(109, 0, "array index '%s' is not a number", tok)
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, errs.Parse(109, 0, "array index '%s' is not a number", tok)
		}
	}
	u, err := strconv.ParseUint(tok, 10, 64)
	if err != nil || u > math.MaxInt {
		return 0, errs.OutOfRange(410, "array index %s exceeds size_type", tok)
	}
	return int(u), nil
}
