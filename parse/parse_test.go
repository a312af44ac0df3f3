package parse

import (
	"strings"
	"testing"

	"github.com/nota-format/nota/syntax"
)

type parseTest struct {
	in    string
	diags int
	msg   string // substring of some diagnostic, when non-empty
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `null`},
		{in: `true`},
		{in: `false`},
		{in: `22`},
		{in: `-22`},
		{in: `0x16`},
		{in: `1e14`},
		{in: `3.25`},
		{in: `"hello"`},
		{in: `'hello'`},
		{in: "`raw`"},
		{in: `[]`},
		{in: `[1]`},
		{in: `[1, 2, 3]`},
		{in: `[[]]`},
		{in: `[1, [2, [3]]]`},
		{in: `[1, 2, 3,]`},
		{in: `{}`},
		{in: `{a: 1}`},
		{in: `{a: 1,}`},
		{in: `{"quoted key": 1}`},
		{in: `{'single': [1, 2], b: {c: null}}`},
		{in: `{a: 1, b: [1, 2, 3]}`},
		{in: `@name 1`},
		{in: `@myAnnotation "x"`},
		{in: `@a @b 1`},
		{in: `[@tag {x: true}]`},
		{in: `{k: @tag []}`},
		{in: "// comment\n42"},
		{in: "42 // trailing"},
		{in: "/* block */ {a: /* mid */ 1}"},
		{in: "\n\t {\na: 1\n}\n"},
		{in: `@a`}, // dangling markers are the projector's business
	}
	for _, pt := range pts {
		tree, diags := Parse([]byte(pt.in))
		if len(diags) != 0 {
			t.Errorf("%q: unexpected diagnostics %v", pt.in, diags)
		}
		if tree.Text() != pt.in {
			t.Errorf("%q: rendered %q", pt.in, tree.Text())
		}
	}
}

func TestParseRecovery(t *testing.T) {
	pts := []parseTest{
		{in: ``, diags: 1, msg: "empty document"},
		{in: " \t\n", diags: 1, msg: "empty document"},
		{in: "// only a comment\n", diags: 1, msg: "empty document"},
		{in: `{a: 1 b: 2}`, diags: 1, msg: "expected ',' or '}'"},
		{in: `[1 2]`, diags: 1, msg: "expected ',' or ']'"},
		{in: `[1,,2]`, diags: 1, msg: "unexpected ','"},
		{in: `{,}`, diags: 1, msg: "unexpected ','"},
		{in: `{a}`, diags: 1, msg: "expected value"},
		{in: `{a:}`, diags: 1, msg: "expected value"},
		{in: `{a 1}`, diags: 1, msg: "expected ':'"},
		{in: `{: 1}`, diags: 1, msg: "expected object key"},
		{in: `[}]`, diags: 1, msg: "expected value"},
		{in: `{a: 1`, diags: 1, msg: "unterminated object"},
		{in: `[1, 2`, diags: 1, msg: "unterminated array"},
		{in: `1 2`, diags: 1, msg: "unexpected trailing content"},
		{in: `"open`, diags: 1, msg: "unterminated"},
		{in: `§`, diags: 1},
		{in: `{a: 1 b: 2 c: 3}`, diags: 2},
	}
	for _, pt := range pts {
		tree, diags := Parse([]byte(pt.in))
		if len(diags) != pt.diags {
			t.Errorf("%q: got %d diagnostics want %d: %v", pt.in, len(diags), pt.diags, diags)
		}
		if pt.msg != "" {
			found := false
			for _, d := range diags {
				if strings.Contains(d.Msg, pt.msg) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%q: no diagnostic contains %q in %v", pt.in, pt.msg, diags)
			}
		}
		if tree.Text() != pt.in {
			t.Errorf("%q: rendered %q", pt.in, tree.Text())
		}
	}
}

func TestParseGapSpan(t *testing.T) {
	src := `{a: 1 b: 2}`
	_, diags := Parse([]byte(src))
	if len(diags) != 1 {
		t.Fatalf("got %v", diags)
	}
	// the missing separator is reported between "1" and "b"
	d := diags[0]
	if d.Span.Start != 5 || d.Span.End != 6 {
		t.Errorf("got span %v want [5, 6)", d.Span)
	}
}

func TestParseDepthBound(t *testing.T) {
	src := `[[[[1]]]]`
	tree, diags := Parse([]byte(src), MaxDepth(2))
	if len(diags) != 1 {
		t.Fatalf("got %v", diags)
	}
	if !strings.Contains(diags[0].Msg, ErrDepth.Error()) {
		t.Errorf("got %q", diags[0].Msg)
	}
	if tree.Text() != src {
		t.Errorf("rendered %q", tree.Text())
	}
	if _, deep := Parse([]byte(src), MaxDepth(5)); len(deep) != 0 {
		t.Errorf("got %v", deep)
	}
}

func TestParseShape(t *testing.T) {
	tree, _ := Parse([]byte(`{a: [1, @t "x"]}`))
	root := tree.Root()
	if root.Kind() != syntax.KindDocument {
		t.Fatalf("got %v", root.Kind())
	}
	obj := root.Nodes()[0]
	if obj.Kind() != syntax.KindObject {
		t.Fatalf("got %v", obj.Kind())
	}
	entry := obj.Nodes()[0]
	if entry.Kind() != syntax.KindEntry {
		t.Fatalf("got %v", entry.Kind())
	}
	sub := entry.Nodes()
	if len(sub) != 2 || sub[0].Kind() != syntax.KindKey || sub[1].Kind() != syntax.KindArray {
		t.Fatalf("got %v", sub)
	}
	arr := sub[1].Nodes()
	if len(arr) != 3 {
		t.Fatalf("got %d array children", len(arr))
	}
	kinds := []syntax.Kind{syntax.KindInteger, syntax.KindAnnotation, syntax.KindString}
	for i, k := range kinds {
		if arr[i].Kind() != k {
			t.Errorf("child %d: got %v want %v", i, arr[i].Kind(), k)
		}
	}
}
