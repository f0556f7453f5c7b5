package encode

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/signadot/jsonir/errs"
)

// ErrorHandler selects how invalid UTF-8 in strings is encoded.
type ErrorHandler int

const (
	ErrorStrict ErrorHandler = iota
	ErrorReplace
	ErrorIgnore
)

const hexDigits = "0123456789abcdef"

func appendU4(dst []byte, r rune) []byte {
	return append(dst, '\\', 'u',
		hexDigits[r>>12&0xf], hexDigits[r>>8&0xf], hexDigits[r>>4&0xf], hexDigits[r&0xf])
}

func (es *EncState) quote(dst []byte, s string) ([]byte, error) {
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
				if c < 0x20 || (es.ensureASCII && c == 0x7f) {
					dst = appendU4(dst, rune(c))
				} else {
					dst = append(dst, c)
				}
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			switch es.invalid {
			case ErrorStrict:
				return nil, invalidUTF8(s, i)
			case ErrorReplace:
				if es.ensureASCII {
					dst = appendU4(dst, utf8.RuneError)
				} else {
					dst = utf8.AppendRune(dst, utf8.RuneError)
				}
			}
			i++
			continue
		}
		switch {
		case !es.ensureASCII:
			dst = append(dst, s[i:i+size]...)
		case r > 0xffff:
			hi, lo := utf16.EncodeRune(r)
			dst = appendU4(appendU4(dst, hi), lo)
		default:
			dst = appendU4(dst, r)
		}
		i += size
	}
	return append(dst, '"'), nil
}

// invalidUTF8 describes the ill-formed sequence starting at s[i].
func invalidUTF8(s string, i int) error {
	lead := s[i]
	var n int
	lo, hi := byte(0x80), byte(0xbf)
	switch {
	case lead >= 0xc2 && lead <= 0xdf:
		n = 1
	case lead == 0xe0:
		n, lo = 2, 0xa0
	case lead == 0xed:
		n, hi = 2, 0x9f
	case lead >= 0xe1 && lead <= 0xef:
		n = 2
	case lead == 0xf0:
		n, lo = 3, 0x90
	case lead == 0xf4:
		n, hi = 3, 0x8f
	case lead >= 0xf1 && lead <= 0xf3:
		n = 3
	default:
		return errs.Type(316, "invalid UTF-8 byte at index %d: 0x%02X", i, lead)
	}
	for j := i + 1; j <= i+n; j++ {
		if j == len(s) {
			return errs.Type(316, "incomplete UTF-8 string; last byte: 0x%02X", s[len(s)-1])
		}
		if s[j] < lo || s[j] > hi {
			return errs.Type(316, "invalid UTF-8 byte at index %d: 0x%02X", j, s[j])
		}
		lo, hi = 0x80, 0xbf
	}
	return errs.Type(316, "invalid UTF-8 byte at index %d: 0x%02X", i, lead)
}
