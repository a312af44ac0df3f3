package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/nota-format/nota/diag"
	"github.com/nota-format/nota/dom"
	"github.com/nota-format/nota/parse"
	"github.com/nota-format/nota/syntax"
)

// document is one loaded input: its source bytes, lossless tree, DOM
// projection and the combined diagnostics of both stages.
type document struct {
	path  string
	src   []byte
	tree  *syntax.Tree
	root  *dom.Node
	diags []diag.Diag
}

func loadDocument(cc *cli.Context, path string, opts ...parse.ParseOption) (*document, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	tree, diags := parse.Parse(src, opts...)
	root, pDiags := dom.FromSyntax(tree)
	diags = append(diags, pDiags...)
	diag.Sort(diags)
	return &document{
		path:  path,
		src:   src,
		tree:  tree,
		root:  root,
		diags: diags,
	}, nil
}

func parseString(s string) (*dom.Node, []diag.Diag) {
	tree, diags := parse.Parse([]byte(s))
	root, pDiags := dom.FromSyntax(tree)
	return root, append(diags, pDiags...)
}

func (d *document) printDiags(w io.Writer) error {
	if len(d.diags) == 0 {
		return nil
	}
	return diag.NewPrinter(w, d.path, d.src).Print(d.diags)
}
