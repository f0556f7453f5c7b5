package main

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"os"

	"github.com/signadot/jsonir/encode"
	"github.com/signadot/jsonir/ir"

	"github.com/itchyny/gojq"
	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires a jq program", cli.ErrUsage)
	}
	code, err := compileQuery(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.encOpts(cc.Out)
	return eachDoc(cc, cc.Out, args[1:], cfg.parseOpts(), func(_ string, doc *ir.Node) error {
		return runQuery(code, doc, func(v *ir.Node) error {
			if s, err := v.AsString(); err == nil && cfg.Raw {
				_, err := io.WriteString(cc.Out, s+"\n")
				return err
			}
			return encode.Encode(v, cc.Out, opts...)
		})
	})
}

func compileQuery(src string) (*gojq.Code, error) {
	q, err := gojq.Parse(src)
	if err != nil {
		return nil, err
	}
	return gojq.Compile(q, gojq.WithEnvironLoader(os.Environ))
}

// runQuery runs code with doc as input and calls f with each result.
func runQuery(code *gojq.Code, doc *ir.Node, f func(*ir.Node) error) error {
	iter := code.Run(toJQ(ir.ToAny(doc)))
	for {
		v, ok := iter.Next()
		if !ok {
			return nil
		}
		if err, ok := v.(error); ok {
			return err
		}
		n, err := ir.From(fromJQ(v))
		if err != nil {
			return err
		}
		if err := f(n); err != nil {
			return err
		}
	}
}

// toJQ converts the output of ir.ToAny to the value kinds gojq accepts:
// integers become int or *big.Int and binaries become arrays of bytes.
func toJQ(v any) any {
	switch x := v.(type) {
	case int64:
		if x >= math.MinInt && x <= math.MaxInt {
			return int(x)
		}
		return big.NewInt(x)
	case uint64:
		if x <= math.MaxInt {
			return int(x)
		}
		return new(big.Int).SetUint64(x)
	case []byte:
		res := make([]any, len(x))
		for i, b := range x {
			res[i] = int(b)
		}
		return res
	case []any:
		for i, e := range x {
			x[i] = toJQ(e)
		}
		return x
	case map[string]any:
		for k, e := range x {
			x[k] = toJQ(e)
		}
		return x
	}
	return v
}

func fromJQ(v any) any {
	switch x := v.(type) {
	case *big.Int:
		if x.IsInt64() {
			return x.Int64()
		}
		if x.IsUint64() {
			return x.Uint64()
		}
		f, _ := new(big.Float).SetInt(x).Float64()
		return f
	case []any:
		for i, e := range x {
			x[i] = fromJQ(e)
		}
		return x
	case map[string]any:
		for k, e := range x {
			x[k] = fromJQ(e)
		}
		return x
	}
	return v
}
