package parse

// Handler receives the events of a parse in document order. Returning
// false from any method stops the parse.
type Handler interface {
	Null() bool
	Bool(v bool) bool
	Int(v int64) bool
	Uint(v uint64) bool
	Float(v float64, lexeme string) bool
	String(v string) bool
	StartObject() bool
	Key(k string) bool
	EndObject() bool
	StartArray() bool
	EndArray() bool
}

// Event identifies the point of a parse at which a CallbackFunc is
// invoked.
type Event int

const (
	ObjectStart Event = iota
	Key
	ObjectEnd
	ArrayStart
	ArrayEnd
	Value
)

func (e Event) String() string {
	switch e {
	case ObjectStart:
		return "object_start"
	case Key:
		return "key"
	case ObjectEnd:
		return "object_end"
	case ArrayStart:
		return "array_start"
	case ArrayEnd:
		return "array_end"
	case Value:
		return "value"
	}
	return "<unknown event>"
}
