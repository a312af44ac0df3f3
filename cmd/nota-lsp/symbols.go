package main

import (
	"context"
	"strconv"

	"go.lsp.dev/protocol"

	"github.com/nota-format/nota/diag"
	"github.com/nota-format/nota/dom"
	"github.com/nota-format/nota/textpos"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}
	syms := valueSymbols(doc.mapper, doc.root)
	out := make([]interface{}, len(syms))
	for i := range syms {
		out[i] = syms[i]
	}
	return out, nil
}

// valueSymbols lists the children of a container as document symbols;
// leaves have none.
func valueSymbols(m *textpos.Mapper, n *dom.Node) []protocol.DocumentSymbol {
	if n.Type.IsLeaf() {
		return nil
	}
	var out []protocol.DocumentSymbol
	for _, e := range n.Entries {
		sym, ok := newSymbol(m, e.Key.Name, e.Key.Span.Cover(e.Value.Span), e.Value)
		if !ok {
			continue
		}
		out = append(out, sym)
	}
	for i, e := range n.Elems {
		sym, ok := newSymbol(m, strconv.Itoa(i), e.Span, e)
		if !ok {
			continue
		}
		out = append(out, sym)
	}
	return out
}

func newSymbol(m *textpos.Mapper, name string, span diag.Span, v *dom.Node) (protocol.DocumentSymbol, bool) {
	rng, err := diag.ProtocolRange(m, span)
	if err != nil {
		return protocol.DocumentSymbol{}, false
	}
	selRng, err := diag.ProtocolRange(m, v.Span)
	if err != nil {
		return protocol.DocumentSymbol{}, false
	}
	detail := v.Type.String()
	if v.Anno != "" {
		detail = "@" + v.Anno + " " + detail
	}
	return protocol.DocumentSymbol{
		Name:           name,
		Detail:         detail,
		Kind:           symbolKind(v.Type),
		Range:          rng,
		SelectionRange: selRng,
		Children:       valueSymbols(m, v),
	}, true
}

func symbolKind(t dom.Type) protocol.SymbolKind {
	switch t {
	case dom.ObjectType:
		return protocol.SymbolKindObject
	case dom.ArrayType:
		return protocol.SymbolKindArray
	case dom.StringType:
		return protocol.SymbolKindString
	case dom.IntegerType, dom.FloatType:
		return protocol.SymbolKindNumber
	case dom.BoolType:
		return protocol.SymbolKindBoolean
	default:
		return protocol.SymbolKindNull
	}
}
