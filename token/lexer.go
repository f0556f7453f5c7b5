package token

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
)

const eof = -1

// Lexer produces tokens from a byte source on demand.
type Lexer struct {
	r    io.ByteReader
	opts lexOpts

	cur   int
	ungot bool
	pos   Pos
	prev  Pos

	// lexeme holds the bytes of the token being read.
	lexeme []byte
	// buf holds the decoded value of a string token.
	buf []byte

	started bool
	err     error
}

// NewLexer returns a lexer reading from r. r is wrapped in a bufio.Reader
// unless it already implements io.ByteReader.
func NewLexer(r io.Reader, opts ...LexOption) *Lexer {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return newLexer(br, opts)
}

func NewLexerBytes(d []byte, opts ...LexOption) *Lexer {
	return newLexer(bytes.NewReader(d), opts)
}

func newLexer(r io.ByteReader, opts []LexOption) *Lexer {
	l := &Lexer{r: r, pos: Pos{Line: 1}}
	for _, o := range opts {
		o(&l.opts)
	}
	return l
}

// Pos returns the position just after the last byte read.
func (l *Lexer) Pos() Pos {
	return l.pos
}

// Err returns the first error other than io.EOF returned by the source.
func (l *Lexer) Err() error {
	return l.err
}

func (l *Lexer) get() int {
	l.prev = l.pos
	if l.ungot {
		l.ungot = false
	} else {
		c, err := l.r.ReadByte()
		switch {
		case err == nil:
			l.cur = int(c)
		case errors.Is(err, io.EOF):
			l.cur = eof
		default:
			if l.err == nil {
				l.err = err
			}
			l.cur = eof
		}
	}
	if l.cur != eof {
		l.pos.advance(byte(l.cur))
		l.lexeme = append(l.lexeme, byte(l.cur))
	}
	return l.cur
}

// unget makes the next get return the current byte again.
func (l *Lexer) unget() {
	l.ungot = true
	l.pos = l.prev
	if l.cur != eof {
		l.lexeme = l.lexeme[:len(l.lexeme)-1]
	}
}

func (l *Lexer) token(t TokenType, start Pos) Token {
	return Token{Type: t, Pos: start, Bytes: slices.Clone(l.lexeme)}
}

func (l *Lexer) errorToken(start Pos, format string, args ...any) Token {
	tok := l.token(TError, start)
	tok.Err = fmt.Sprintf(format, args...)
	return tok
}

// Next returns the next token. After a TEOF or TError token, further
// calls return undefined tokens.
func (l *Lexer) Next() Token {
	if !l.started {
		l.started = true
		if !l.skipBOM() {
			return l.errorToken(Pos{Line: 1}, "invalid BOM; must be 0xEF 0xBB 0xBF if given")
		}
	}
	for {
		l.skipWhitespace()
		if !l.opts.comments {
			break
		}
		start := l.pos
		l.lexeme = l.lexeme[:0]
		if l.get() != '/' {
			l.unget()
			break
		}
		if msg := l.scanComment(); msg != "" {
			return l.errorToken(start, "%s", msg)
		}
	}

	start := l.pos
	l.lexeme = l.lexeme[:0]
	c := l.get()
	switch c {
	case eof:
		if l.err != nil {
			return l.errorToken(start, "input error: %v", l.err)
		}
		return l.token(TEOF, start)
	case '[':
		return l.token(TLSquare, start)
	case ']':
		return l.token(TRSquare, start)
	case '{':
		return l.token(TLCurl, start)
	case '}':
		return l.token(TRCurl, start)
	case ':':
		return l.token(TColon, start)
	case ',':
		return l.token(TComma, start)
	case 't':
		return l.scanLiteral(start, "true", TTrue)
	case 'f':
		return l.scanLiteral(start, "false", TFalse)
	case 'n':
		return l.scanLiteral(start, "null", TNull)
	case '"':
		return l.scanString(start)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return l.scanNumber(start, c)
	}
	return l.errorToken(start, "invalid literal")
}

func (l *Lexer) skipBOM() bool {
	if l.get() != 0xEF {
		l.unget()
		return true
	}
	return l.get() == 0xBB && l.get() == 0xBF
}

func (l *Lexer) skipWhitespace() {
	for {
		switch l.get() {
		case ' ', '\t', '\n', '\r':
		default:
			l.unget()
			return
		}
	}
}

// scanComment reads a comment after its leading '/' and returns an error
// message, or "" on success.
func (l *Lexer) scanComment() string {
	switch l.get() {
	case '/':
		for {
			switch l.get() {
			case '\n', '\r', eof:
				return ""
			}
		}
	case '*':
		for {
			switch l.get() {
			case eof:
				return "invalid comment; missing closing '*/'"
			case '*':
				if l.get() == '/' {
					return ""
				}
				l.unget()
			}
		}
	}
	return "invalid comment; expecting '/' or '*' after '/'"
}

func (l *Lexer) scanLiteral(start Pos, lit string, t TokenType) Token {
	for i := 1; i < len(lit); i++ {
		if l.get() != int(lit[i]) {
			return l.errorToken(start, "invalid literal")
		}
	}
	return l.token(t, start)
}
