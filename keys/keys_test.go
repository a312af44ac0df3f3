package keys

import (
	"errors"
	"testing"

	"github.com/nota-format/nota/dom"
	"github.com/nota-format/nota/parse"
)

func TestParseString(t *testing.T) {
	type kt struct {
		in   string
		want Keys
	}
	kts := []kt{
		{in: "", want: Keys{}},
		{in: "a", want: Keys{Name("a")}},
		{in: "a.b", want: Keys{Name("a"), Name("b")}},
		{in: "b.1", want: Keys{Name("b"), Index(1)}},
		{in: "0", want: Keys{Index(0)}},
		{in: "servers.0.host", want: Keys{Name("servers"), Index(0), Name("host")}},
		{in: "'weird.key'", want: Keys{Name("weird.key")}},
		{in: "a.'dot.ted'.b", want: Keys{Name("a"), Name("dot.ted"), Name("b")}},
		{in: `'qu\'ote'`, want: Keys{Name("qu'ote")}},
		{in: `'back\\slash'`, want: Keys{Name(`back\slash`)}},
		{in: "''", want: Keys{Name("")}},
		{in: "'42'", want: Keys{Name("42")}},
	}
	for _, k := range kts {
		got, err := Parse(k.in)
		if err != nil {
			t.Errorf("%q: %v", k.in, err)
			continue
		}
		if !got.Equal(k.want) {
			t.Errorf("%q: got %#v want %#v", k.in, got, k.want)
		}
		// String is the inverse of Parse on canonical text
		if got.String() != k.in {
			t.Errorf("%q: String gave %q", k.in, got.String())
		}
	}
}

func TestParseStringErrors(t *testing.T) {
	bad := []string{
		"a..b",
		"a.",
		".a",
		"'open",
		`'bad\q'`,
		"'a'b",
		"it's",
	}
	for _, in := range bad {
		if _, err := Parse(in); !errors.Is(err, ErrQuery) {
			t.Errorf("%q: got %v want ErrQuery", in, err)
		}
	}
}

func TestStringQuoting(t *testing.T) {
	type qt struct {
		key  Key
		want string
	}
	qts := []qt{
		{key: Name("plain"), want: "plain"},
		{key: Name("with-dash"), want: "with-dash"},
		{key: Name("dot.ted"), want: "'dot.ted'"},
		{key: Name("42"), want: "'42'"},
		{key: Name(""), want: "''"},
		{key: Name("it's"), want: `'it\'s'`},
		{key: Index(7), want: "7"},
	}
	for _, q := range qts {
		if got := q.key.String(); got != q.want {
			t.Errorf("%#v: got %q want %q", q.key, got, q.want)
		}
		// every rendered segment parses back to itself
		ks, err := Parse(q.key.String())
		if err != nil {
			t.Errorf("%q: %v", q.key.String(), err)
			continue
		}
		if len(ks) != 1 || ks[0] != q.key {
			t.Errorf("%q: got %#v", q.key.String(), ks)
		}
	}
}

func load(t *testing.T, src string) *dom.Node {
	t.Helper()
	tree, pDiags := parse.Parse([]byte(src))
	root, diags := dom.FromSyntax(tree)
	if len(pDiags)+len(diags) != 0 {
		t.Fatalf("%q: unexpected diagnostics %v %v", src, pDiags, diags)
	}
	return root
}

func TestResolve(t *testing.T) {
	root := load(t, `{a: 1, b: [1, 2, 3], c: {host: "x"}}`)

	type rt struct {
		path string
		want any // nil means absent
	}
	rts := []rt{
		{path: "", want: root.Plain()},
		{path: "a", want: int64(1)},
		{path: "b.1", want: int64(2)},
		{path: "c.host", want: "x"},
		{path: "b.3", want: nil},
		{path: "missing", want: nil},
		{path: "a.b", want: nil},   // scalar has no children
		{path: "b.c", want: nil},   // name segment into array
		{path: "c.0", want: nil},   // index segment into object
	}
	for _, r := range rts {
		ks, err := Parse(r.path)
		if err != nil {
			t.Errorf("%q: %v", r.path, err)
			continue
		}
		n := ks.Resolve(root)
		if r.want == nil {
			if r.path == "" {
				continue
			}
			if n != nil {
				t.Errorf("%q: got %v want nil", r.path, n)
			}
			continue
		}
		if n == nil {
			t.Errorf("%q: got nil", r.path)
			continue
		}
		switch want := r.want.(type) {
		case int64:
			if n.Int != want {
				t.Errorf("%q: got %d want %d", r.path, n.Int, want)
			}
		case string:
			if n.Str != want {
				t.Errorf("%q: got %q want %q", r.path, n.Str, want)
			}
		}
	}
}

func TestEnsure(t *testing.T) {
	root := dom.Null()
	ks, err := Parse("servers.1.host")
	if err != nil {
		t.Fatal(err)
	}
	n, err := ks.Ensure(root)
	if err != nil {
		t.Fatal(err)
	}
	n.Type = dom.StringType
	n.Str = "db"

	if root.Type != dom.ObjectType {
		t.Fatalf("got %v", root.Type)
	}
	servers := root.Get("servers")
	if servers == nil || servers.Type != dom.ArrayType || len(servers.Elems) != 2 {
		t.Fatalf("got %v", servers)
	}
	if servers.Index(0).Type != dom.NullType {
		t.Errorf("got %v", servers.Index(0).Type)
	}
	if got := ks.Resolve(root); got == nil || got.Str != "db" {
		t.Errorf("got %v", got)
	}
}

func TestEnsureTypeMismatch(t *testing.T) {
	root := load(t, `{a: 1}`)
	ks := Keys{Name("a"), Name("b")}
	if _, err := ks.Ensure(root); !errors.Is(err, ErrQuery) {
		t.Errorf("got %v", err)
	}
	ks = Keys{Index(0)}
	if _, err := ks.Ensure(root); !errors.Is(err, ErrQuery) {
		t.Errorf("got %v", err)
	}
}

func TestIndexNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Index(-1)
}
