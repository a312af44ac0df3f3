package syntax

import (
	"strings"
	"testing"

	"github.com/nota-format/nota/token"
)

// buildScalarDoc wraps the tokens of src in a document with one child of
// the given kind, trivia included.
func buildScalarDoc(t *testing.T, src string, kind Kind) *Tree {
	t.Helper()
	toks, diags := token.Tokenize(nil, []byte(src))
	if len(diags) != 0 {
		t.Fatalf("%q: unexpected diagnostics %v", src, diags)
	}
	b := NewBuilder([]byte(src))
	b.Start(KindDocument)
	b.Start(kind)
	for _, tok := range toks {
		b.Token(tok)
	}
	b.Finish()
	b.Finish()
	return b.Build()
}

func TestRenderLossless(t *testing.T) {
	srcs := []string{
		`42`,
		`  42  `,
		"// pre\n42 // post",
		"/* a */ 42\t",
	}
	for _, src := range srcs {
		tree := buildScalarDoc(t, src, KindInteger)
		var sb strings.Builder
		if err := tree.Render(&sb); err != nil {
			t.Fatal(err)
		}
		if sb.String() != src {
			t.Errorf("got %q want %q", sb.String(), src)
		}
		if tree.Text() != src {
			t.Errorf("Text: got %q want %q", tree.Text(), src)
		}
	}
}

func TestNodeShape(t *testing.T) {
	tree := buildScalarDoc(t, `  42`, KindInteger)
	root := tree.Root()
	if root.Kind() != KindDocument {
		t.Fatalf("got %v want %v", root.Kind(), KindDocument)
	}
	if root.NumChildren() != 1 {
		t.Fatalf("got %d children", root.NumChildren())
	}
	lit := root.Child(0)
	if lit.IsToken() {
		t.Fatal("child should be a node")
	}
	n := lit.Node()
	if n.Kind() != KindInteger {
		t.Errorf("got %v want %v", n.Kind(), KindInteger)
	}
	// the node span covers its tokens, trivia included
	if n.Span().Start != 0 || n.Span().End != 4 {
		t.Errorf("got span %v", n.Span())
	}
	if n.Text() != `  42` {
		t.Errorf("got %q", n.Text())
	}
	toks := n.Tokens()
	if len(toks) != 2 || toks[0].Type != token.TSpace || toks[1].Type != token.TInteger {
		t.Errorf("got tokens %v", toks)
	}
}

// buildLeadDoc is like buildScalarDoc but attaches leading trivia to the
// document instead of the literal node.
func buildLeadDoc(t *testing.T, src string, kind Kind) *Tree {
	t.Helper()
	toks, diags := token.Tokenize(nil, []byte(src))
	if len(diags) != 0 {
		t.Fatalf("%q: unexpected diagnostics %v", src, diags)
	}
	b := NewBuilder([]byte(src))
	b.Start(KindDocument)
	started := false
	for _, tok := range toks {
		if !started && !tok.Type.IsTrivia() {
			b.Start(kind)
			started = true
		}
		b.Token(tok)
	}
	if started {
		b.Finish()
	}
	b.Finish()
	return b.Build()
}

func TestEqualIgnoresPosition(t *testing.T) {
	a := buildLeadDoc(t, `42`, KindInteger)
	b := buildLeadDoc(t, `  42`, KindInteger)
	c := buildLeadDoc(t, `43`, KindInteger)

	if !a.Root().Equal(a.Root()) {
		t.Error("tree should equal itself")
	}
	// same literal at a different offset is structurally equal
	if !a.Root().Nodes()[0].Equal(b.Root().Nodes()[0]) {
		t.Error("literal nodes at different offsets should be equal")
	}
	// the documents differ: b carries an extra trivia token
	if a.Root().Equal(b.Root()) {
		t.Error("documents with different trivia should differ")
	}
	if a.Root().Equal(c.Root()) {
		t.Error("trees with different literals should differ")
	}
}

func TestEmptyBuild(t *testing.T) {
	b := NewBuilder(nil)
	tree := b.Build()
	root := tree.Root()
	if !root.IsValid() {
		t.Fatal("empty build should still have a root")
	}
	if root.Kind() != KindDocument {
		t.Errorf("got %v", root.Kind())
	}
	if root.NumChildren() != 0 {
		t.Errorf("got %d children", root.NumChildren())
	}
	if tree.Text() != "" {
		t.Errorf("got %q", tree.Text())
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("got %v want %v", back, k)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("nope")); err == nil {
		t.Error("expected error for unknown kind")
	}
}
