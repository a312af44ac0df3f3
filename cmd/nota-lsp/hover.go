package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/nota-format/nota/dom"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}

	off, err := doc.mapper.UTF16ColOffset(int(params.Position.Line), int(params.Position.Character))
	if err != nil {
		return nil, nil
	}

	target := nodeAt(doc.root, off)
	if target == nil {
		return nil, nil
	}

	hoverText := buildHoverText(target)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// nodeAt returns the deepest value whose span contains off.
func nodeAt(n *dom.Node, off int) *dom.Node {
	if n == nil || !n.Span.Contains(off) {
		return nil
	}
	for _, e := range n.Entries {
		if sub := nodeAt(e.Value, off); sub != nil {
			return sub
		}
	}
	for _, e := range n.Elems {
		if sub := nodeAt(e, off); sub != nil {
			return sub
		}
	}
	return n
}

func buildHoverText(node *dom.Node) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("**Type:** %s", node.Type))
	if node.Anno != "" {
		parts = append(parts, fmt.Sprintf("**Annotation:** `@%s`", node.Anno))
	}
	if v := valueInfo(node); v != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", v))
	}

	return strings.Join(parts, "\n\n")
}

func valueInfo(node *dom.Node) string {
	switch node.Type {
	case dom.NullType:
		return "`null`"
	case dom.BoolType:
		if node.Bool {
			return "`true`"
		}
		return "`false`"
	case dom.IntegerType:
		return fmt.Sprintf("`%d`", node.Int)
	case dom.FloatType:
		return fmt.Sprintf("`%g`", node.Float)
	case dom.StringType:
		val := node.Str
		if len(val) > 50 {
			val = val[:50] + "..."
		}
		return fmt.Sprintf("`%s`", val)
	case dom.ArrayType:
		return fmt.Sprintf("array with %d elements", len(node.Elems))
	case dom.ObjectType:
		return fmt.Sprintf("object with %d keys", len(node.Entries))
	}
	return ""
}
