// Package nota ties the front end together: one call turns source text
// into a lossless syntax tree, a DOM projection and the diagnostics of
// every stage.
//
// The pipeline never fails: malformed input yields a tree that still
// renders byte for byte, a DOM with invalid placeholders and a non-empty
// diagnostic list.
package nota

import (
	"github.com/nota-format/nota/diag"
	"github.com/nota-format/nota/dom"
	"github.com/nota-format/nota/keys"
	"github.com/nota-format/nota/parse"
	"github.com/nota-format/nota/syntax"
)

// Document is one fully analyzed source text.
type Document struct {
	Source []byte
	Tree   *syntax.Tree
	Root   *dom.Node
	Diags  []diag.Diag
}

// Load runs the whole front end over src.
func Load(src []byte, opts ...parse.ParseOption) *Document {
	tree, diags := parse.Parse(src, opts...)
	root, pDiags := dom.FromSyntax(tree)
	diags = append(diags, pDiags...)
	diag.Sort(diags)
	return &Document{
		Source: src,
		Tree:   tree,
		Root:   root,
		Diags:  diags,
	}
}

// OK reports whether the document loaded without diagnostics.
func (d *Document) OK() bool {
	return len(d.Diags) == 0
}

// Get resolves a dotted key such as "servers.1.host" against the DOM.
// It returns nil when the key does not lead to a value.
func (d *Document) Get(key string) (*dom.Node, error) {
	ks, err := keys.Parse(key)
	if err != nil {
		return nil, err
	}
	return ks.Resolve(d.Root), nil
}
