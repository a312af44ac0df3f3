package syntax

import (
	"github.com/nota-format/nota/diag"
	"github.com/nota-format/nota/token"
)

// Builder assembles a Tree bottom-up from start/token/finish events in
// source order. The parse package is its only intended caller, but it is
// exported so tests and tools can construct trees directly.
type Builder struct {
	t       *Tree
	stack   []NodeID
	lastEnd int
}

func NewBuilder(src []byte) *Builder {
	return &Builder{t: &Tree{src: src, root: noNode}}
}

// Start opens a node of the given kind. Children added until the matching
// Finish belong to it.
func (b *Builder) Start(kind Kind) {
	id := NodeID(len(b.t.nodes))
	b.t.nodes = append(b.t.nodes, nodeData{kind: kind})
	b.stack = append(b.stack, id)
}

// Token appends tok as a child of the open node.
func (b *Builder) Token(tok token.Token) {
	if len(b.stack) == 0 {
		panic("syntax: Token outside any node")
	}
	ti := int32(len(b.t.toks))
	b.t.toks = append(b.t.toks, tok)
	id := b.stack[len(b.stack)-1]
	b.t.nodes[id].children = append(b.t.nodes[id].children, child{node: noNode, tok: ti})
	b.lastEnd = tok.End()
}

// Finish closes the open node, computing its span as the cover of its
// children. A node finished without children gets a zero-width span at the
// current position.
func (b *Builder) Finish() {
	if len(b.stack) == 0 {
		panic("syntax: Finish without Start")
	}
	id := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	nd := &b.t.nodes[id]
	if len(nd.children) == 0 {
		nd.span = diag.Span{Start: b.lastEnd, End: b.lastEnd}
	} else {
		nd.span = b.childSpan(nd.children[0])
		for _, c := range nd.children[1:] {
			nd.span = nd.span.Cover(b.childSpan(c))
		}
	}

	if len(b.stack) == 0 {
		b.t.root = id
		return
	}
	parent := b.stack[len(b.stack)-1]
	b.t.nodes[parent].children = append(b.t.nodes[parent].children, child{node: id, tok: 0})
}

func (b *Builder) childSpan(c child) diag.Span {
	if c.node == noNode {
		return b.t.toks[c.tok].Span()
	}
	return b.t.nodes[c.node].span
}

// Build returns the finished tree. All started nodes must be finished.
func (b *Builder) Build() *Tree {
	if len(b.stack) != 0 {
		panic("syntax: Build with open nodes")
	}
	if b.t.root == noNode {
		// an empty build still yields a usable document
		b.Start(KindDocument)
		b.Finish()
	}
	return b.t
}
