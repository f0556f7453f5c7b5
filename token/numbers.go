package token

import "strconv"

func digit(c int) bool {
	return c >= '0' && c <= '9'
}

func (l *Lexer) scanNumber(start Pos, c int) Token {
	neg, float := false, false
	if c == '-' {
		neg = true
		c = l.get()
		if !digit(c) {
			return l.errorToken(start, "invalid number; expected digit after '-'")
		}
	}
	if c == '0' {
		c = l.get()
	} else {
		for digit(c) {
			c = l.get()
		}
	}
	if c == '.' {
		float = true
		c = l.get()
		if !digit(c) {
			return l.errorToken(start, "invalid number; expected digit after '.'")
		}
		for digit(c) {
			c = l.get()
		}
	}
	if c == 'e' || c == 'E' {
		float = true
		c = l.get()
		if c == '+' || c == '-' {
			c = l.get()
			if !digit(c) {
				return l.errorToken(start, "invalid number; expected digit after exponent sign")
			}
		} else if !digit(c) {
			return l.errorToken(start, "invalid number; expected '+', '-', or digit after exponent")
		}
		for digit(c) {
			c = l.get()
		}
	}
	l.unget()

	text := string(l.lexeme)
	if !float {
		if neg {
			if v, err := strconv.ParseInt(text, 10, 64); err == nil {
				tok := l.token(TInt, start)
				tok.Int = v
				return tok
			}
		} else if v, err := strconv.ParseUint(text, 10, 64); err == nil {
			tok := l.token(TUint, start)
			tok.Uint = v
			return tok
		}
	}
	// out of range values come back as infinities; the parser reports them
	f, _ := strconv.ParseFloat(text, 64)
	tok := l.token(TFloat, start)
	tok.Float = f
	return tok
}
