// Package errs defines the categorized failures reported by jsonir
// packages.
//
// Every failure is an *Error carrying a Kind and a stable numeric ID. The
// ID does not change when message text does, so callers may dispatch on it:
//
//	if errs.IDOf(err) == 403 {
//	    // key not found
//	}
//
// Each Kind also unwraps to a sentinel so that errors.Is works against the
// category:
//
//	errors.Is(err, errs.ErrOutOfRange)
package errs

import (
	"errors"
	"fmt"
)

type Kind int

const (
	ParseKind Kind = iota
	IteratorKind
	TypeKind
	RangeKind
	OtherKind
)

var (
	ErrParse           = errors.New("parse error")
	ErrInvalidIterator = errors.New("invalid iterator")
	ErrType            = errors.New("type error")
	ErrOutOfRange      = errors.New("out of range")
	ErrOther           = errors.New("other error")
)

func (k Kind) String() string {
	switch k {
	case ParseKind:
		return "parse_error"
	case IteratorKind:
		return "invalid_iterator"
	case TypeKind:
		return "type_error"
	case RangeKind:
		return "out_of_range"
	case OtherKind:
		return "other_error"
	}
	return "<unknown error kind>"
}

func (k Kind) sentinel() error {
	switch k {
	case ParseKind:
		return ErrParse
	case IteratorKind:
		return ErrInvalidIterator
	case TypeKind:
		return ErrType
	case RangeKind:
		return ErrOutOfRange
	default:
		return ErrOther
	}
}

// Error is a categorized failure.
//
// Offset is the byte offset in the input at which a parse error was
// detected; it is -1 when not applicable.
type Error struct {
	Kind   Kind
	ID     int
	Msg    string
	Offset int64
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s.%d] %s", e.Kind, e.ID, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

func New(k Kind, id int, format string, args ...any) *Error {
	return &Error{Kind: k, ID: id, Msg: fmt.Sprintf(format, args...), Offset: -1}
}

func Parse(id int, offset int64, format string, args ...any) *Error {
	e := New(ParseKind, id, format, args...)
	e.Offset = offset
	return e
}

func Type(id int, format string, args ...any) *Error {
	return New(TypeKind, id, format, args...)
}

func OutOfRange(id int, format string, args ...any) *Error {
	return New(RangeKind, id, format, args...)
}

func Iterator(id int, format string, args ...any) *Error {
	return New(IteratorKind, id, format, args...)
}

func Other(id int, format string, args ...any) *Error {
	return New(OtherKind, id, format, args...)
}

// IDOf returns the ID of the first *Error in err's chain, or 0.
func IDOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.ID
	}
	return 0
}

// HasID reports whether err's chain contains an *Error of kind k with the
// given id.
func HasID(err error, k Kind, id int) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == k && e.ID == id
}
