package parse

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/signadot/jsonir/debug"
	"github.com/signadot/jsonir/errs"
	"github.com/signadot/jsonir/format"
	"github.com/signadot/jsonir/ir"
	"github.com/signadot/jsonir/token"
)

// Parse parses a document.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts(opts)
	if pOpts.format == format.YAMLFormat {
		n, err := parseYAML(d, pOpts)
		return finish(n, err, pOpts)
	}
	return parseLexer(token.NewLexerBytes(d, pOpts.LexOpts()...), pOpts)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseReader parses a document read from r. JSON is read incrementally;
// YAML is read in full first.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts(opts)
	if pOpts.format == format.YAMLFormat {
		d, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		n, err := parseYAML(d, pOpts)
		return finish(n, err, pOpts)
	}
	return parseLexer(token.NewLexer(r, pOpts.LexOpts()...), pOpts)
}

func parseLexer(lex *token.Lexer, pOpts *parseOpts) (*ir.Node, error) {
	b := newDOMBuilder(pOpts)
	p := &parser{lex: lex, h: b, opts: pOpts}
	if _, err := p.parse(); err != nil {
		if pOpts.noErrors {
			if debug.Parse() {
				debug.Logf("parse failed: %v\n", err)
			}
			return ir.Discarded(), nil
		}
		return nil, err
	}
	return b.result(), nil
}

// finish applies the NoErrors option to a result which did not come from
// the JSON parser.
func finish(n *ir.Node, err error, pOpts *parseOpts) (*ir.Node, error) {
	if err != nil && pOpts.noErrors {
		return ir.Discarded(), nil
	}
	return n, err
}

// Accept reports whether d is a valid JSON document.
func Accept(d []byte, opts ...ParseOption) bool {
	pOpts := newParseOpts(opts)
	if pOpts.format == format.YAMLFormat {
		_, err := parseYAML(d, pOpts)
		return err == nil
	}
	p := &parser{lex: token.NewLexerBytes(d, pOpts.LexOpts()...), h: acceptor{}, opts: pOpts}
	_, err := p.parse()
	return err == nil
}

// SAXParse parses d, reporting events to h. It returns false without an
// error if h stopped the parse. Callback and NoErrors do not apply.
func SAXParse(d []byte, h Handler, opts ...ParseOption) (bool, error) {
	pOpts := newParseOpts(opts)
	p := &parser{lex: token.NewLexerBytes(d, pOpts.LexOpts()...), h: h, opts: pOpts}
	return p.parse()
}

type acceptor struct{}

func (acceptor) Null() bool                 { return true }
func (acceptor) Bool(bool) bool             { return true }
func (acceptor) Int(int64) bool             { return true }
func (acceptor) Uint(uint64) bool           { return true }
func (acceptor) Float(float64, string) bool { return true }
func (acceptor) String(string) bool         { return true }
func (acceptor) StartObject() bool          { return true }
func (acceptor) Key(string) bool            { return true }
func (acceptor) EndObject() bool            { return true }
func (acceptor) StartArray() bool           { return true }
func (acceptor) EndArray() bool             { return true }

// literalOrValue describes what may start a value.
const literalOrValue = "'[', '{', or a literal"

type parser struct {
	lex  *token.Lexer
	tok  token.Token
	h    Handler
	opts *parseOpts
}

func (p *parser) next() token.TokenType {
	p.tok = p.lex.Next()
	return p.tok.Type
}

// parse drives the handler over one value. Containers are tracked on an
// explicit stack so that nesting depth does not grow the Go stack.
func (p *parser) parse() (bool, error) {
	ok, err := p.value()
	if err != nil || !ok {
		return ok, err
	}
	if p.opts.strict && p.next() != token.TEOF {
		return false, p.syntaxErr(token.TEOF.Describe(), "value")
	}
	return true, nil
}

func (p *parser) value() (bool, error) {
	// arrays records, per open container, whether it is an array.
	var arrays []bool
	p.next()
	for {
		switch p.tok.Type {
		case token.TLCurl:
			if err := p.checkDepth(len(arrays)); err != nil {
				return false, err
			}
			if !p.h.StartObject() {
				return false, nil
			}
			if p.next() == token.TRCurl {
				if !p.h.EndObject() {
					return false, nil
				}
				break
			}
			if ok, err := p.key(); !ok || err != nil {
				return ok, err
			}
			arrays = append(arrays, false)
			p.next()
			continue
		case token.TLSquare:
			if err := p.checkDepth(len(arrays)); err != nil {
				return false, err
			}
			if !p.h.StartArray() {
				return false, nil
			}
			if p.next() == token.TRSquare {
				if !p.h.EndArray() {
					return false, nil
				}
				break
			}
			arrays = append(arrays, true)
			continue
		case token.TNull:
			if !p.h.Null() {
				return false, nil
			}
		case token.TTrue, token.TFalse:
			if !p.h.Bool(p.tok.Type == token.TTrue) {
				return false, nil
			}
		case token.TInt:
			if !p.h.Int(p.tok.Int) {
				return false, nil
			}
		case token.TUint:
			if !p.h.Uint(p.tok.Uint) {
				return false, nil
			}
		case token.TFloat:
			if math.IsInf(p.tok.Float, 0) {
				return false, errs.OutOfRange(406, "number overflow parsing '%s'", p.tok.Bytes)
			}
			if !p.h.Float(p.tok.Float, string(p.tok.Bytes)) {
				return false, nil
			}
		case token.TString:
			if !p.h.String(p.tok.Str) {
				return false, nil
			}
		case token.TEOF:
			if len(arrays) == 0 && p.lex.Pos().Col == 0 {
				return false, p.errorf("attempting to parse an empty input; check that your input string or stream contains the expected JSON")
			}
			return false, p.syntaxErr(literalOrValue, "value")
		case token.TError:
			return false, p.syntaxErr("", "value")
		default:
			return false, p.syntaxErr(literalOrValue, "value")
		}

		// a value is complete; find what follows it
		for {
			if len(arrays) == 0 {
				return true, nil
			}
			if arrays[len(arrays)-1] {
				switch p.next() {
				case token.TComma:
					p.next()
				case token.TRSquare:
					if !p.h.EndArray() {
						return false, nil
					}
					arrays = arrays[:len(arrays)-1]
					continue
				default:
					return false, p.syntaxErr(token.TRSquare.Describe(), "array")
				}
				break
			}
			switch p.next() {
			case token.TComma:
				p.next()
				if ok, err := p.key(); !ok || err != nil {
					return ok, err
				}
				p.next()
			case token.TRCurl:
				if !p.h.EndObject() {
					return false, nil
				}
				arrays = arrays[:len(arrays)-1]
				continue
			default:
				return false, p.syntaxErr(token.TRCurl.Describe(), "object")
			}
			break
		}
	}
}

// key handles the current token as an object key followed by ':'.
func (p *parser) key() (bool, error) {
	if p.tok.Type != token.TString {
		return false, p.syntaxErr(token.TString.Describe(), "object key")
	}
	if !p.h.Key(p.tok.Str) {
		return false, nil
	}
	if p.next() != token.TColon {
		return false, p.syntaxErr(token.TColon.Describe(), "object separator")
	}
	return true, nil
}

func (p *parser) checkDepth(depth int) error {
	if p.opts.maxDepth > 0 && depth >= p.opts.maxDepth {
		return p.errorf("syntax error while parsing value - maximum depth %d exceeded", p.opts.maxDepth)
	}
	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	pos := p.lex.Pos()
	return errs.Parse(101, pos.Offset, "parse error at %s: %s", pos, fmt.Sprintf(format, args...))
}

// syntaxErr reports the current token as unexpected in context.
func (p *parser) syntaxErr(expected, context string) error {
	if err := p.lex.Err(); err != nil {
		return fmt.Errorf("%w: %w", errs.Parse(101, p.lex.Pos().Offset, "parse error at %s: read failed", p.lex.Pos()), err)
	}
	msg := &strings.Builder{}
	msg.WriteString("syntax error ")
	if context != "" {
		fmt.Fprintf(msg, "while parsing %s ", context)
	}
	msg.WriteString("- ")
	if p.tok.Type == token.TError {
		fmt.Fprintf(msg, "%s; last read: '%s'", p.tok.Err, lexemeString(p.tok.Bytes))
	} else {
		fmt.Fprintf(msg, "unexpected %s", p.tok.Type.Describe())
	}
	if expected != "" {
		fmt.Fprintf(msg, "; expected %s", expected)
	}
	return p.errorf("%s", msg.String())
}

// lexemeString renders control characters in a lexeme as <U+XXXX>.
func lexemeString(d []byte) string {
	if !bytes.ContainsFunc(d, func(r rune) bool { return r < 0x20 }) {
		return string(d)
	}
	b := &strings.Builder{}
	for _, c := range d {
		if c < 0x20 {
			fmt.Fprintf(b, "<U+%04X>", c)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
