package parse

import (
	"testing"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// primitives
		`null`,
		`true`,
		`false`,
		`42`,
		`-17`,
		`0xff`,
		`0o17`,
		`0b101`,
		`3.14`,
		`-1e10`,
		`""`,
		`"hello"`,
		`'single'`,
		"`raw`",
		`ident`,

		// containers
		`[]`,
		`[1, 2, 3]`,
		`[[nested], [arrays]]`,
		`{}`,
		`{foo: "bar"}`,
		`{a: 1, b: 2}`,
		`{nested: {object: null}}`,
		`{users: [{name: "alice"}, {name: "bob"}]}`,

		// annotations
		`@tag 1`,
		`@a @b []`,
		`[@elem {x: true}]`,
		`@dangling`,

		// comments and spacing
		"// comment\n1",
		"1 // trailing",
		"/* block */ {a: 1}",
		"{\n  a: 1,\n  b: 2,\n}",

		// strings with escapes
		`"with\nescape"`,
		`"quote \" inside"`,
		`"A𝄞"`,

		// malformed
		`{a: 1 b: 2}`,
		`[1,,2]`,
		`{a}`,
		`"open`,
		`{{{{`,
		`]]]]`,
		`@ @ @`,
		"\xff\xfe",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// the front end is total: no panic, and the tree renders the
		// input byte for byte no matter how malformed it is
		tree, diags := Parse(data)
		if got := tree.Text(); got != string(data) {
			t.Fatalf("render mismatch: got %q want %q", got, data)
		}

		// a clean parse of the rendition is identical and stays clean
		if len(diags) != 0 {
			return
		}
		tree2, diags2 := Parse([]byte(tree.Text()))
		if len(diags2) != 0 {
			t.Fatalf("reparse produced diagnostics: %v", diags2)
		}
		if !tree.Root().Equal(tree2.Root()) {
			t.Fatal("reparse produced a different tree")
		}
	})
}
