package parse

import "github.com/signadot/jsonir/ir"

// CallbackFunc filters a parse. depth is the nesting level of the event:
// 0 for the start and end of the root container and for a scalar root, 1
// for its keys and values, and so on. n is
//
//   - a discarded node for ObjectStart and ArrayStart,
//   - the key, as a string node, for Key,
//   - the completed container for ObjectEnd and ArrayEnd,
//   - the value for Value.
//
// Returning false excludes the subject of the event from the result:
// the container and everything in it for ObjectStart, ArrayStart,
// ObjectEnd and ArrayEnd; the member for Key; the value for Value. No
// further events are reported from within an excluded container. An
// excluded root parses as null.
type CallbackFunc func(depth int, ev Event, n *ir.Node) bool

type frame struct {
	obj     bool
	keep    bool
	vals    []*ir.Node
	kvs     []ir.KeyVal
	key     string
	keepKey bool
}

// domBuilder is a Handler which builds an ir.Node tree, consulting an
// optional callback.
type domBuilder struct {
	build ir.Builder
	cb    CallbackFunc
	stack []frame
	root  *ir.Node
}

func newDOMBuilder(opts *parseOpts) *domBuilder {
	return &domBuilder{build: ir.Builder{Ordered: opts.ordered}, cb: opts.callback}
}

func (b *domBuilder) result() *ir.Node {
	if b.root == nil {
		return ir.Null()
	}
	return b.root
}

func (b *domBuilder) call(ev Event, n *ir.Node) bool {
	return b.cb == nil || b.cb(len(b.stack), ev, n)
}

// live reports whether values at the current level may be kept.
func (b *domBuilder) live() bool {
	if len(b.stack) == 0 {
		return true
	}
	top := &b.stack[len(b.stack)-1]
	return top.keep && (!top.obj || top.keepKey)
}

// attach adds v at the current level.
func (b *domBuilder) attach(v *ir.Node) {
	if len(b.stack) == 0 {
		b.root = v
		return
	}
	top := &b.stack[len(b.stack)-1]
	if top.obj {
		top.kvs = append(top.kvs, ir.KeyVal{Key: top.key, Val: v})
		return
	}
	top.vals = append(top.vals, v)
}

func (b *domBuilder) value(v *ir.Node) bool {
	if b.live() && b.call(Value, v) {
		b.attach(v)
	}
	return true
}

func (b *domBuilder) Null() bool           { return b.value(ir.Null()) }
func (b *domBuilder) Bool(v bool) bool     { return b.value(ir.FromBool(v)) }
func (b *domBuilder) Int(v int64) bool     { return b.value(ir.FromInt(v)) }
func (b *domBuilder) Uint(v uint64) bool   { return b.value(ir.FromUint(v)) }
func (b *domBuilder) String(v string) bool { return b.value(ir.FromString(v)) }
func (b *domBuilder) Float(v float64, _ string) bool {
	return b.value(ir.FromFloat(v))
}

func (b *domBuilder) start(obj bool, ev Event) bool {
	keep := b.live() && b.call(ev, ir.Discarded())
	b.stack = append(b.stack, frame{obj: obj, keep: keep})
	return true
}

func (b *domBuilder) StartObject() bool { return b.start(true, ObjectStart) }
func (b *domBuilder) StartArray() bool  { return b.start(false, ArrayStart) }

func (b *domBuilder) Key(k string) bool {
	top := &b.stack[len(b.stack)-1]
	top.key = k
	top.keepKey = top.keep && b.call(Key, ir.FromString(k))
	return true
}

func (b *domBuilder) end(ev Event) bool {
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	if !f.keep {
		return true
	}
	var n *ir.Node
	if f.obj {
		n = b.build.Object(f.kvs)
	} else {
		n = b.build.Array(f.vals)
	}
	if b.call(ev, n) {
		b.attach(n)
	}
	return true
}

func (b *domBuilder) EndObject() bool { return b.end(ObjectEnd) }
func (b *domBuilder) EndArray() bool  { return b.end(ArrayEnd) }
