package validjson

import (
	"math"
	"strconv"

	"github.com/go-faster/jx"
)

// Node is a generic JSON value.
//
// Node is immutable once built and safe for concurrent reads.
type Node struct {
	typ jx.Type
	// str holds the string value or the source text of a number.
	str     string
	boolean bool
	items   []*Node
	members []Member
}

// Member is a single key-value pair of an object Node.
type Member struct {
	Key   string
	Value *Node
}

// NewNull creates null Node.
func NewNull() *Node {
	return &Node{typ: jx.Null}
}

// NewBool creates boolean Node.
func NewBool(v bool) *Node {
	return &Node{typ: jx.Bool, boolean: v}
}

// NewString creates string Node.
func NewString(s string) *Node {
	return &Node{typ: jx.String, str: s}
}

// NewNumber creates number Node from JSON number text.
//
// Text is not validated, caller must pass well-formed number.
func NewNumber(text string) *Node {
	return &Node{typ: jx.Number, str: text}
}

// NewInt creates number Node from integer.
func NewInt(v int64) *Node {
	return NewNumber(strconv.FormatInt(v, 10))
}

// NewFloat creates number Node from float.
func NewFloat(v float64) *Node {
	return NewNumber(strconv.FormatFloat(v, 'g', -1, 64))
}

// NewArray creates array Node.
func NewArray(items ...*Node) *Node {
	if items == nil {
		items = []*Node{}
	}
	return &Node{typ: jx.Array, items: items}
}

// NewObject creates object Node.
//
// If key is repeated, the first position and the last value are kept.
func NewObject(members ...Member) *Node {
	b := newObjectBuilder(len(members))
	for _, m := range members {
		b.set(m.Key, m.Value)
	}
	return b.node
}

// objectBuilder collects object members, resolving repeated keys.
type objectBuilder struct {
	node *Node
	// index maps key to its position in node.members.
	index map[string]int
}

func newObjectBuilder(size int) objectBuilder {
	return objectBuilder{
		node:  &Node{typ: jx.Object, members: make([]Member, 0, size)},
		index: make(map[string]int, size),
	}
}

func (b *objectBuilder) set(key string, value *Node) {
	if i, ok := b.index[key]; ok {
		b.node.members[i].Value = value
		return
	}
	b.index[key] = len(b.node.members)
	b.node.members = append(b.node.members, Member{Key: key, Value: value})
}

// Type returns JSON type of value.
func (n *Node) Type() jx.Type {
	if n == nil {
		return jx.Invalid
	}
	return n.typ
}

// Str returns string value.
func (n *Node) Str() (string, bool) {
	if n.Type() != jx.String {
		return "", false
	}
	return n.str, true
}

// Bool returns boolean value.
func (n *Node) Bool() (v, ok bool) {
	if n.Type() != jx.Bool {
		return false, false
	}
	return n.boolean, true
}

// Num returns number text as it appeared in source.
func (n *Node) Num() (jx.Num, bool) {
	if n.Type() != jx.Number {
		return nil, false
	}
	return jx.Num(n.str), true
}

// Int64 returns integer value.
//
// Fractional numbers with zero fraction, like 3.0 or 1e2, are integers.
func (n *Node) Int64() (int64, bool) {
	if n.Type() != jx.Number {
		return 0, false
	}
	if v, err := strconv.ParseInt(n.str, 10, 64); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(n.str, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	// 2^63 is exactly representable, anything at or above it overflows.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// Float64 returns floating point value.
func (n *Node) Float64() (float64, bool) {
	if n.Type() != jx.Number {
		return 0, false
	}
	f, err := strconv.ParseFloat(n.str, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Len returns number of array elements or object members.
func (n *Node) Len() int {
	switch n.Type() {
	case jx.Array:
		return len(n.items)
	case jx.Object:
		return len(n.members)
	default:
		return 0
	}
}

// Items returns array elements.
//
// Returned slice must not be modified.
func (n *Node) Items() []*Node {
	if n.Type() != jx.Array {
		return nil
	}
	return n.items
}

// Members returns object members in source order.
//
// Returned slice must not be modified.
func (n *Node) Members() []Member {
	if n.Type() != jx.Object {
		return nil
	}
	return n.members
}

// Find returns value of object member with given key.
func (n *Node) Find(key string) (*Node, bool) {
	if n.Type() != jx.Object {
		return nil, false
	}
	for _, m := range n.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Encode writes value to encoder.
func (n *Node) Encode(e *jx.Encoder) {
	switch n.Type() {
	case jx.Null:
		e.Null()
	case jx.Bool:
		e.Bool(n.boolean)
	case jx.Number:
		e.Raw([]byte(n.str))
	case jx.String:
		e.Str(n.str)
	case jx.Array:
		e.ArrStart()
		for _, item := range n.items {
			item.Encode(e)
		}
		e.ArrEnd()
	case jx.Object:
		e.ObjStart()
		for _, m := range n.members {
			e.FieldStart(m.Key)
			m.Value.Encode(e)
		}
		e.ObjEnd()
	default:
		// Invalid (nil) node is encoded as null.
		e.Null()
	}
}

// MarshalJSON implements json.Marshaler.
func (n *Node) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	n.Encode(&e)
	return e.Bytes(), nil
}

// String returns compact JSON representation.
func (n *Node) String() string {
	var e jx.Encoder
	n.Encode(&e)
	return e.String()
}
