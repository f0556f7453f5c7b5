package token

import "unicode/utf8"

func (l *Lexer) scanString(start Pos) Token {
	l.buf = l.buf[:0]
	for {
		c := l.get()
		switch {
		case c == eof:
			return l.errorToken(start, "invalid string: missing closing quote")
		case c == '"':
			tok := l.token(TString, start)
			tok.Str = string(l.buf)
			return tok
		case c == '\\':
			if msg := l.scanEscape(); msg != "" {
				return l.errorToken(start, "%s", msg)
			}
		case c < 0x20:
			return l.errorToken(start, "invalid string: control character U+%04X must be escaped to \\u%04X", c, c)
		case c < 0x80:
			l.buf = append(l.buf, byte(c))
		default:
			if !l.scanUTF8(c) {
				return l.errorToken(start, "invalid string: ill-formed UTF-8 byte")
			}
		}
	}
}

func (l *Lexer) scanEscape() string {
	switch c := l.get(); c {
	case '"', '\\', '/':
		l.buf = append(l.buf, byte(c))
	case 'b':
		l.buf = append(l.buf, '\b')
	case 'f':
		l.buf = append(l.buf, '\f')
	case 'n':
		l.buf = append(l.buf, '\n')
	case 'r':
		l.buf = append(l.buf, '\r')
	case 't':
		l.buf = append(l.buf, '\t')
	case 'u':
		cp := l.hex4()
		if cp < 0 {
			return "invalid string: '\\u' must be followed by 4 hex digits"
		}
		switch {
		case cp >= 0xD800 && cp <= 0xDBFF:
			if l.get() != '\\' || l.get() != 'u' {
				return "invalid string: surrogate U+D800..U+DBFF must be followed by U+DC00..U+DFFF"
			}
			lo := l.hex4()
			if lo < 0 {
				return "invalid string: '\\u' must be followed by 4 hex digits"
			}
			if lo < 0xDC00 || lo > 0xDFFF {
				return "invalid string: surrogate U+D800..U+DBFF must be followed by U+DC00..U+DFFF"
			}
			cp = 0x10000 + (cp-0xD800)<<10 + (lo - 0xDC00)
		case cp >= 0xDC00 && cp <= 0xDFFF:
			return "invalid string: surrogate U+DC00..U+DFFF must follow U+D800..U+DBFF"
		}
		l.buf = utf8.AppendRune(l.buf, rune(cp))
	default:
		return "invalid string: forbidden character after backslash"
	}
	return ""
}

// hex4 reads four hex digits, returning -1 if they are not.
func (l *Lexer) hex4() int {
	v := 0
	for range 4 {
		c := l.get()
		switch {
		case c >= '0' && c <= '9':
			v = v<<4 | (c - '0')
		case c >= 'a' && c <= 'f':
			v = v<<4 | (c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			v = v<<4 | (c - 'A' + 10)
		default:
			return -1
		}
	}
	return v
}

type byteRange struct{ lo, hi int }

var cont = byteRange{0x80, 0xBF}

// scanUTF8 validates and copies a multi-byte sequence whose first byte is
// c, following the well-formed sequences table of RFC 3629.
func (l *Lexer) scanUTF8(c int) bool {
	var tail []byteRange
	switch {
	case c >= 0xC2 && c <= 0xDF:
		tail = []byteRange{cont}
	case c == 0xE0:
		tail = []byteRange{{0xA0, 0xBF}, cont}
	case c >= 0xE1 && c <= 0xEC, c == 0xEE, c == 0xEF:
		tail = []byteRange{cont, cont}
	case c == 0xED:
		tail = []byteRange{{0x80, 0x9F}, cont}
	case c == 0xF0:
		tail = []byteRange{{0x90, 0xBF}, cont, cont}
	case c >= 0xF1 && c <= 0xF3:
		tail = []byteRange{cont, cont, cont}
	case c == 0xF4:
		tail = []byteRange{{0x80, 0x8F}, cont, cont}
	default:
		return false
	}
	l.buf = append(l.buf, byte(c))
	for _, r := range tail {
		b := l.get()
		if b < r.lo || b > r.hi {
			return false
		}
		l.buf = append(l.buf, byte(b))
	}
	return true
}
