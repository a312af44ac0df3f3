package main

import (
	"context"
	"sync"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/nota-format/nota/debug"
	"github.com/nota-format/nota/diag"
	"github.com/nota-format/nota/dom"
	"github.com/nota-format/nota/parse"
	"github.com/nota-format/nota/syntax"
	"github.com/nota-format/nota/textpos"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32

	tree   *syntax.Tree
	root   *dom.Node
	diags  []diag.Diag
	mapper *textpos.Mapper
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	src := []byte(content)
	tree, diags := parse.Parse(src)
	root, pDiags := dom.FromSyntax(tree)
	diags = append(diags, pDiags...)
	diag.Sort(diags)

	doc := &document{
		uri:     uri,
		content: content,
		version: version,
		tree:    tree,
		root:    root,
		diags:   diags,
		mapper:  textpos.New(src, true),
	}
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil || s.conn == nil {
		return
	}
	diagnostics, err := diag.ToProtocol(doc.mapper, doc.diags)
	if err != nil {
		s.logger.Warn("diagnostics conversion failed", zap.Error(err))
		return
	}
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(uri),
		Diagnostics: diagnostics,
	})
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if debug.LSP() {
		debug.LogAny(params)
	}
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		rangeVal := change.Range
		if rangeVal.Start == rangeVal.End && rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 {
			content = change.Text
			continue
		}
		m := textpos.New([]byte(content), true)
		start, err := m.UTF16ColOffset(int(rangeVal.Start.Line), int(rangeVal.Start.Character))
		if err != nil {
			s.logger.Warn("bad change range", zap.Error(err))
			continue
		}
		end, err := m.UTF16ColOffset(int(rangeVal.End.Line), int(rangeVal.End.Character))
		if err != nil {
			s.logger.Warn("bad change range", zap.Error(err))
			continue
		}
		content = content[:start] + change.Text + content[end:]
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
