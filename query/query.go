// Package query filters DOM nodes with compiled expressions.
//
// An expression sees one node at a time through four variables:
//
//	key        the node's dotted key, for example "servers.0.host"
//	value      the node's plain Go value (no annotation wrappers)
//	type       the node's lowercased type name, for example "string"
//	annotation the node's annotation name, "" when absent
//
// Expressions must evaluate to a boolean, so
//
//	type == "integer" && value > 10
//
// selects large integers anywhere in the document.
package query

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/nota-format/nota/dom"
	"github.com/nota-format/nota/keys"
)

// Query is a compiled predicate, safe for concurrent use.
type Query struct {
	src string
	prg *vm.Program
}

// queryEnv is the expression environment. Value stays untyped so that
// comparisons against any scalar compile; they are checked at run time
// against the node actually visited.
type queryEnv struct {
	Key        string `expr:"key"`
	Value      any    `expr:"value"`
	Type       string `expr:"type"`
	Annotation string `expr:"annotation"`
}

// Compile compiles src into a predicate over DOM nodes.
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.Env(queryEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCompile, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Match reports whether the predicate holds for n addressed by key.
func (q *Query) Match(key keys.Keys, n *dom.Node) (bool, error) {
	res, err := expr.Run(q.prg, env(key.String(), n))
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrRun, err)
	}
	return res.(bool), nil
}

// Result pairs a matched node with its key.
type Result struct {
	Key  keys.Keys
	Node *dom.Node
}

// Select walks root and collects every node the predicate matches, in
// document order. The root itself is visited with an empty key.
func (q *Query) Select(root *dom.Node) ([]Result, error) {
	var (
		out  []Result
		walk func(key keys.Keys, n *dom.Node) error
	)
	walk = func(key keys.Keys, n *dom.Node) error {
		ok, err := q.Match(key, n)
		if err != nil {
			return err
		}
		if ok {
			out = append(out, Result{Key: append(keys.Keys(nil), key...), Node: n})
		}
		switch n.Type {
		case dom.ObjectType:
			for _, e := range n.Entries {
				if err := walk(append(key, keys.Name(e.Key.Name)), e.Value); err != nil {
					return err
				}
			}
		case dom.ArrayType:
			for i, e := range n.Elems {
				if err := walk(append(key, keys.Index(i)), e); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(nil, root); err != nil {
		return nil, err
	}
	return out, nil
}

func env(key string, n *dom.Node) queryEnv {
	e := queryEnv{Key: key}
	if n != nil {
		e.Value = n.Plain()
		e.Type = strings.ToLower(n.Type.String())
		e.Annotation = n.Anno
	}
	return e
}
