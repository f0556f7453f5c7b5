package parse

import (
	"github.com/signadot/jsonir/format"
	"github.com/signadot/jsonir/token"
)

type parseOpts struct {
	format   format.Format
	comments bool
	callback CallbackFunc
	noErrors bool
	strict   bool
	ordered  bool
	maxDepth int
}

func newParseOpts(opts []ParseOption) *parseOpts {
	res := &parseOpts{format: format.JSONFormat, strict: true}
	for _, f := range opts {
		f(res)
	}
	return res
}

func (o *parseOpts) LexOpts() []token.LexOption {
	return []token.LexOption{token.SkipComments(o.comments)}
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// SkipComments allows // and /* */ comments wherever whitespace may
// appear.
func SkipComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// Callback installs a filter invoked for each parse event. See
// CallbackFunc.
func Callback(f CallbackFunc) ParseOption {
	return func(o *parseOpts) { o.callback = f }
}

// NoErrors makes a failed parse return a discarded node and a nil error.
func NoErrors() ParseOption {
	return func(o *parseOpts) { o.noErrors = true }
}

// Strict controls whether anything other than whitespace may follow the
// value. It defaults to true.
func Strict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}

// OrderedObjects makes parsed objects keep their members in input order.
func OrderedObjects() ParseOption {
	return func(o *parseOpts) { o.ordered = true }
}

// MaxDepth limits the nesting of arrays and objects. Zero means no limit.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
