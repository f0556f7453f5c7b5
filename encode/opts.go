package encode

import "github.com/signadot/jsonir/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeIndent selects pretty printing with n indent characters per
// level. A negative n, the default, selects compact output; zero puts
// each element on its own line without indentation.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeIndentChar(c byte) EncodeOption {
	return func(es *EncState) { es.indentChar = c }
}

// EnsureASCII escapes every non-ASCII character in strings.
func EnsureASCII(v bool) EncodeOption {
	return func(es *EncState) { es.ensureASCII = v }
}
func EncodeErrorHandler(h ErrorHandler) EncodeOption {
	return func(es *EncState) { es.invalid = h }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
