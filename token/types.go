package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TEOF TokenType = iota
	TTrue
	TFalse
	TNull
	TString
	TUint
	TInt
	TFloat
	TLSquare
	TLCurl
	TRSquare
	TRCurl
	TColon
	TComma
	TError
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:     "TEOF",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
		TString:  "TString",
		TUint:    "TUint",
		TInt:     "TInt",
		TFloat:   "TFloat",
		TLSquare: "TLSquare",
		TLCurl:   "TLCurl",
		TRSquare: "TRSquare",
		TRCurl:   "TRCurl",
		TColon:   "TColon",
		TComma:   "TComma",
		TError:   "TError",
	}[t]
}

// Describe returns the name of t as used in parse error messages.
func (t TokenType) Describe() string {
	switch t {
	case TTrue:
		return "true literal"
	case TFalse:
		return "false literal"
	case TNull:
		return "null literal"
	case TString:
		return "string literal"
	case TUint, TInt, TFloat:
		return "number literal"
	case TLSquare:
		return "'['"
	case TLCurl:
		return "'{'"
	case TRSquare:
		return "']'"
	case TRCurl:
		return "'}'"
	case TColon:
		return "':'"
	case TComma:
		return "','"
	case TError:
		return "<parse error>"
	case TEOF:
		return "end of input"
	}
	return "unknown token"
}

func (t TokenType) IsNumber() bool {
	return t == TUint || t == TInt || t == TFloat
}

// Token is a lexical unit. Bytes holds the raw lexeme; the decoded value
// is in the field matching Type.
type Token struct {
	Type  TokenType
	Pos   Pos
	Bytes []byte

	Str   string
	Int   int64
	Uint  uint64
	Float float64

	// Err describes a TError token.
	Err string
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos)
}

func (t *Token) String() string {
	switch t.Type {
	case TString:
		return strconv.Quote(t.Str)
	case TError:
		return t.Err
	case TEOF:
		return ""
	default:
		return string(t.Bytes)
	}
}
