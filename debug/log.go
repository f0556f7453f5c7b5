package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsonir/encode"
	"github.com/signadot/jsonir/ir"
)

// Logf writes a formatted message to standard error. *ir.Node arguments
// are rendered as indented JSON, and maps and slices from encoding/json
// likewise.
func Logf(msg string, args ...any) {
	fprintf(os.Stderr, msg, args...)
}

func fprintf(w io.Writer, msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = encode.MustString(x, encode.EncodeIndent(2))
		}
	}
	fmt.Fprintf(w, msg, args...)
}
