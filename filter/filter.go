// Package filter compiles expressions into parse callbacks.
//
// An expression is evaluated at every parse event with these variables:
//
//	depth  the nesting level of the event
//	event  "object_start", "key", "object_end", "array_start", "array_end" or "value"
//	key    the member name, for "key" events
//	type   the type name of the subject: "object", "string", ...
//	value  the subject as a plain Go value; nil for start events
//
// and the function getenv(name). The subject is kept when the result is
// truthy in the sense of ir.Truth. Expressions use the expr-lang/expr
// language.
package filter

import (
	"os"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/jsonir/debug"
	"github.com/signadot/jsonir/ir"
	"github.com/signadot/jsonir/parse"
)

type Filter struct {
	src string
	prg *vm.Program

	mu  sync.Mutex
	err error
}

// env holds the variables of one evaluation.
type env struct {
	Depth int    `expr:"depth"`
	Event string `expr:"event"`
	Key   string `expr:"key"`
	Type  string `expr:"type"`
	Value any    `expr:"value"`
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(env{}),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Compile compiles src.
func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, err
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string {
	return f.src
}

// Eval evaluates f for one event.
func (f *Filter) Eval(depth int, ev parse.Event, n *ir.Node) (bool, error) {
	e := env{
		Depth: depth,
		Event: ev.String(),
		Type:  n.TypeName(),
	}
	switch {
	case ev == parse.Key:
		s, _ := n.AsString()
		e.Key = s
		e.Value = s
	case !n.IsDiscarded():
		e.Value = ir.ToAny(n)
	}
	res, err := expr.Run(f.prg, e)
	if err != nil {
		return false, err
	}
	if b, ok := res.(bool); ok {
		return b, nil
	}
	v, err := ir.From(res)
	if err != nil {
		return res != nil, nil
	}
	return ir.Truth(v), nil
}

// Callback returns a parse callback evaluating f. An evaluation error
// keeps the subject; the first such error is reported by Err.
func (f *Filter) Callback() parse.CallbackFunc {
	return func(depth int, ev parse.Event, n *ir.Node) bool {
		keep, err := f.Eval(depth, ev, n)
		if err != nil {
			f.mu.Lock()
			if f.err == nil {
				f.err = err
			}
			f.mu.Unlock()
			if debug.Parse() {
				debug.Logf("filter %q at %s: %v\n", f.src, ev, err)
			}
			return true
		}
		return keep
	}
}

// Err returns the first evaluation error seen by a callback of f.
func (f *Filter) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}
