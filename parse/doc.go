// Package parse parses JSON and YAML text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// keep member order and allow comments
//	node, err := parse.Parse(data, parse.OrderedObjects(), parse.SkipComments(true))
//
//	// drop every member named "secret"
//	node, err := parse.Parse(data, parse.Callback(func(_ int, ev parse.Event, n *ir.Node) bool {
//	    if ev != parse.Key {
//	        return true
//	    }
//	    s, _ := n.AsString()
//	    return s != "secret"
//	}))
//
// # Errors
//
// Syntax errors are parse_error 101 and carry the line and column of the
// offending token, what was being parsed, the last lexeme read and what
// was expected instead. A float which overflows float64 is out_of_range
// 406. With NoErrors, a failed parse yields a discarded node and no error.
//
// # Events
//
// SAXParse reports a parse to a Handler without building a tree; Accept
// only validates. Containers are tracked on an explicit stack, so deeply
// nested input is limited only by MaxDepth.
//
// # Related Packages
//
//   - github.com/signadot/jsonir/ir - IR representation
//   - github.com/signadot/jsonir/encode - Encode IR to text
//   - github.com/signadot/jsonir/token - Tokenization
package parse
