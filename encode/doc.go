// Package encode encodes IR nodes to JSON or YAML text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// pretty printed, ASCII only
//	err := encode.Encode(node, os.Stdout, encode.EncodeIndent(4), encode.EnsureASCII(true))
//
//	// YAML
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// Output always ends with a newline. MustString trims it.
//
// # Strings
//
// Strings are expected to hold UTF-8. What happens to invalid bytes is
// chosen with EncodeErrorHandler: ErrorStrict (the default) fails with
// type_error 316, ErrorReplace writes U+FFFD for each invalid byte and
// ErrorIgnore drops them.
//
// # Related Packages
//
//   - github.com/signadot/jsonir/ir - IR representation
//   - github.com/signadot/jsonir/parse - Parse text to IR
package encode
