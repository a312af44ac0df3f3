// Package syntax defines the lossless concrete syntax tree for nota.
//
// A [Tree] owns all of its nodes in one arena; nodes refer to children by
// index and never to their parent, so identical subtrees can be shared and
// compared without reference cycles. Tokens, including whitespace and
// comments, stay attached to the tree: rendering the depth-first token
// sequence of the root reproduces the source byte for byte, whether or not
// the parse recorded errors.
package syntax

import (
	"bytes"
	"io"

	"github.com/nota-format/nota/diag"
	"github.com/nota-format/nota/token"
)

// NodeID indexes a node within its Tree.
type NodeID int32

const noNode NodeID = -1

// child references either a node or a token of the owning tree.
type child struct {
	node NodeID // noNode when the child is a token
	tok  int32
}

type nodeData struct {
	kind     Kind
	span     diag.Span
	children []child
}

// Tree is an immutable concrete syntax tree. The zero Tree is empty; trees
// are produced by a [Builder], normally via the parse package.
type Tree struct {
	src   []byte
	toks  []token.Token
	nodes []nodeData
	root  NodeID
}

// Source returns the text the tree was built from. Callers must not
// mutate it.
func (t *Tree) Source() []byte { return t.src }

// Root returns the document node.
func (t *Tree) Root() Node { return Node{t: t, id: t.root} }

// Render writes the full token sequence, reproducing the source exactly.
func (t *Tree) Render(w io.Writer) error {
	for i := range t.toks {
		if _, err := w.Write(t.toks[i].Bytes); err != nil {
			return err
		}
	}
	return nil
}

// Text returns the rendered source text.
func (t *Tree) Text() string {
	var buf bytes.Buffer
	t.Render(&buf)
	return buf.String()
}

// Node is a handle on one node of a Tree. It is a small value; copying it
// does not copy the subtree.
type Node struct {
	t  *Tree
	id NodeID
}

// IsValid reports whether the handle refers to a node.
func (n Node) IsValid() bool { return n.t != nil && n.id != noNode }

func (n Node) data() *nodeData { return &n.t.nodes[n.id] }

func (n Node) Kind() Kind { return n.data().kind }

// Span is the byte range covered by the node's tokens.
func (n Node) Span() diag.Span { return n.data().span }

// Text returns the exact source slice for the node, trivia included.
func (n Node) Text() string {
	s := n.Span()
	return string(n.t.src[s.Start:s.End])
}

func (n Node) NumChildren() int { return len(n.data().children) }

// Child returns the i-th child, which is either a node or a token.
func (n Node) Child(i int) Element {
	c := n.data().children[i]
	return Element{t: n.t, node: c.node, tok: c.tok}
}

// Nodes returns the child nodes in order, skipping tokens.
func (n Node) Nodes() []Node {
	var out []Node
	for _, c := range n.data().children {
		if c.node != noNode {
			out = append(out, Node{t: n.t, id: c.node})
		}
	}
	return out
}

// AppendTokens appends the node's depth-first token sequence to dst.
func (n Node) AppendTokens(dst []token.Token) []token.Token {
	for _, c := range n.data().children {
		if c.node == noNode {
			dst = append(dst, n.t.toks[c.tok])
		} else {
			dst = (Node{t: n.t, id: c.node}).AppendTokens(dst)
		}
	}
	return dst
}

// Tokens returns the node's depth-first token sequence.
func (n Node) Tokens() []token.Token {
	return n.AppendTokens(nil)
}

// Equal reports structural equality: same kind and same token sequence by
// type and text, independent of node identity or position.
func (n Node) Equal(o Node) bool {
	if n.Kind() != o.Kind() {
		return false
	}
	a, b := n.Tokens(), o.Tokens()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Type != b[i].Type || !bytes.Equal(a[i].Bytes, b[i].Bytes) {
			return false
		}
	}
	return true
}

// Element is one child slot of a node: a node or a token.
type Element struct {
	t    *Tree
	node NodeID
	tok  int32
}

func (e Element) IsToken() bool { return e.node == noNode }

// Token returns the token in this slot; it panics when IsToken is false.
func (e Element) Token() token.Token {
	if !e.IsToken() {
		panic("syntax: Token on node element")
	}
	return e.t.toks[e.tok]
}

// Node returns the node in this slot; it panics when IsToken is true.
func (e Element) Node() Node {
	if e.IsToken() {
		panic("syntax: Node on token element")
	}
	return Node{t: e.t, id: e.node}
}
