package nota

import (
	"strings"
	"testing"

	"github.com/nota-format/nota/diag"
	"github.com/nota-format/nota/dom"
)

// A well-formed document with spacing, comments and a nested array: parse,
// render and address it.
func TestScenarioWellFormed(t *testing.T) {
	src := `{
  // service config
  a: 1,
  b: [1, 2, 3],
}`
	doc := Load([]byte(src))
	if !doc.OK() {
		t.Fatalf("unexpected diagnostics %v", doc.Diags)
	}
	if got := doc.Tree.Text(); got != src {
		t.Errorf("render: got %q", got)
	}
	n, err := doc.Get("b.1")
	if err != nil {
		t.Fatal(err)
	}
	if n == nil || n.Type != dom.IntegerType || n.Int != 2 {
		t.Errorf("b.1: got %v", n)
	}
	if n, _ := doc.Get("a"); n.Int != 1 {
		t.Errorf("a: got %v", n)
	}
	if n, _ := doc.Get("b.7"); n != nil {
		t.Errorf("b.7: got %v", n)
	}
}

// A missing separator yields one parse diagnostic at the gap and both
// entries survive projection.
func TestScenarioMissingSeparator(t *testing.T) {
	src := `{a: 1 b: 2}`
	doc := Load([]byte(src))
	if len(doc.Diags) != 1 {
		t.Fatalf("got %v", doc.Diags)
	}
	d := doc.Diags[0]
	if d.Stage != diag.Parse || d.Span.Start != 5 || d.Span.End != 6 {
		t.Errorf("got %v", d)
	}
	if got := doc.Tree.Text(); got != src {
		t.Errorf("render: got %q", got)
	}
	if a, _ := doc.Get("a"); a == nil || a.Int != 1 {
		t.Errorf("a: got %v", a)
	}
	if b, _ := doc.Get("b"); b == nil || b.Int != 2 {
		t.Errorf("b: got %v", b)
	}
}

// An annotated value exposes the marker and its span through the DOM.
func TestScenarioAnnotation(t *testing.T) {
	src := `@myAnnotation "x"`
	doc := Load([]byte(src))
	if !doc.OK() {
		t.Fatalf("got %v", doc.Diags)
	}
	root := doc.Root
	if root.Type != dom.StringType || root.Str != "x" {
		t.Fatalf("got %v", root)
	}
	if root.Anno != "myAnnotation" {
		t.Errorf("got %q", root.Anno)
	}
	if root.AnnoSpan != (diag.Span{Start: 0, End: 13}) {
		t.Errorf("got %v", root.AnnoSpan)
	}
}

// Duplicate keys keep the last value and report the earlier occurrence.
func TestScenarioDuplicateKey(t *testing.T) {
	src := `{a: 1, a: 2}`
	doc := Load([]byte(src))
	if len(doc.Diags) != 1 {
		t.Fatalf("got %v", doc.Diags)
	}
	d := doc.Diags[0]
	if d.Stage != diag.Project || !strings.Contains(d.Msg, "duplicate key") {
		t.Errorf("got %v", d)
	}
	if d.Span.Start != 1 {
		t.Errorf("got span %v", d.Span)
	}
	if a, _ := doc.Get("a"); a == nil || a.Int != 2 {
		t.Errorf("a: got %v", a)
	}
	if len(doc.Root.Entries) != 1 {
		t.Errorf("got %d entries", len(doc.Root.Entries))
	}
}

func TestGetBadKey(t *testing.T) {
	doc := Load([]byte(`{a: 1}`))
	if _, err := doc.Get("a..b"); err == nil {
		t.Error("expected error")
	}
}
