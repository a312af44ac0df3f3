// Package dom defines the semantic document tree projected from nota
// syntax trees: values and annotation metadata without formatting or
// trivia, each node keeping the byte range it came from.
package dom

import "github.com/nota-format/nota/diag"

// Key is an object key together with the range of its own source text, so
// key-level diagnostics can point at the key rather than the value.
type Key struct {
	Name string
	Span diag.Span
}

// Entry is one key/value pair of an Object.
type Entry struct {
	Key   Key
	Value *Node
}

// Node is one semantic value. Type selects which payload fields are
// meaningful. Nodes carry no parent reference; parent-aware traversals are
// computed by whoever holds the root.
type Node struct {
	Type Type

	// Span is the byte range of the originating syntax, excluding any
	// annotation markers. AnnoSpan covers the annotation marker when
	// Anno is set.
	Span     diag.Span
	Anno     string
	AnnoSpan diag.Span

	Entries []*Entry // Object, in source order
	Elems   []*Node  // Array, in source order

	// Strays holds projections of error regions found inside an Object,
	// which have no key to file them under. Consumers that report on
	// Invalid nodes traverse these too.
	Strays []*Node

	Str   string
	Int   int64
	Float float64
	Bool  bool

	// Raw preserves the verbatim source of an Invalid node.
	Raw string
}

// Null returns a fresh null node.
func Null() *Node { return &Node{Type: NullType} }

func Bool(v bool) *Node { return &Node{Type: BoolType, Bool: v} }

func Integer(v int64) *Node { return &Node{Type: IntegerType, Int: v} }

func Float(v float64) *Node { return &Node{Type: FloatType, Float: v} }

func String(v string) *Node { return &Node{Type: StringType, Str: v} }

func Array(elems ...*Node) *Node { return &Node{Type: ArrayType, Elems: elems} }

func Object(entries ...*Entry) *Node { return &Node{Type: ObjectType, Entries: entries} }

// WithAnno attaches an annotation identifier.
func (n *Node) WithAnno(name string) *Node {
	n.Anno = name
	return n
}

// Get returns the value for an object key, or nil.
func (n *Node) Get(name string) *Node {
	if n == nil || n.Type != ObjectType {
		return nil
	}
	for _, e := range n.Entries {
		if e.Key.Name == name {
			return e.Value
		}
	}
	return nil
}

// Index returns the i-th array element, or nil when out of range.
func (n *Node) Index(i int) *Node {
	if n == nil || n.Type != ArrayType || i < 0 || i >= len(n.Elems) {
		return nil
	}
	return n.Elems[i]
}

// Keys returns the object's key names in source order.
func (n *Node) Keys() []string {
	if n == nil || n.Type != ObjectType {
		return nil
	}
	out := make([]string, len(n.Entries))
	for i, e := range n.Entries {
		out[i] = e.Key.Name
	}
	return out
}

// Walk visits n and every descendant value in source order, objects before
// their entries and arrays before their elements. It stops when f returns
// false.
func (n *Node) Walk(f func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !f(n) {
		return false
	}
	for _, e := range n.Entries {
		if !e.Value.Walk(f) {
			return false
		}
	}
	for _, s := range n.Strays {
		if !s.Walk(f) {
			return false
		}
	}
	for _, e := range n.Elems {
		if !e.Walk(f) {
			return false
		}
	}
	return true
}
