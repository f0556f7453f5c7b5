package token

type lexOpts struct {
	comments bool
}

type LexOption func(*lexOpts)

// SkipComments makes the lexer treat // and /* */ comments as whitespace.
func SkipComments(v bool) LexOption {
	return func(o *lexOpts) { o.comments = v }
}
