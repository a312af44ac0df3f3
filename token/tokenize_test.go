package token

import (
	"bytes"
	"testing"
)

type lexTest struct {
	in    string
	types []TokenType
	diags int
}

func TestTokenize(t *testing.T) {
	lts := []lexTest{
		{in: ``, types: nil},
		{in: `null`, types: []TokenType{TNull}},
		{in: `true`, types: []TokenType{TTrue}},
		{in: `false`, types: []TokenType{TFalse}},
		{in: `42`, types: []TokenType{TInteger}},
		{in: `-42`, types: []TokenType{TInteger}},
		{in: `0x2a`, types: []TokenType{TInteger}},
		{in: `0o52`, types: []TokenType{TInteger}},
		{in: `0b101010`, types: []TokenType{TInteger}},
		{in: `3.14`, types: []TokenType{TFloat}},
		{in: `-1e10`, types: []TokenType{TFloat}},
		{in: `2.5E-3`, types: []TokenType{TFloat}},
		{in: `"hello"`, types: []TokenType{TString}},
		{in: `'hello'`, types: []TokenType{TString}},
		{in: "`raw\\n`", types: []TokenType{TString}},
		{in: `hello`, types: []TokenType{TIdent}},
		{in: `he-llo_2`, types: []TokenType{TIdent}},
		{in: `@name`, types: []TokenType{TAnno}},
		{
			in:    `{a: 1}`,
			types: []TokenType{TLCurl, TIdent, TColon, TSpace, TInteger, TRCurl},
		},
		{
			in:    `[1, 2]`,
			types: []TokenType{TLSquare, TInteger, TComma, TSpace, TInteger, TRSquare},
		},
		{
			in:    "// line\nx",
			types: []TokenType{TLineComment, TSpace, TIdent},
		},
		{
			in:    "/* block */x",
			types: []TokenType{TBlockComment, TIdent},
		},
		{
			in:    "/* open",
			types: []TokenType{TBlockComment},
			diags: 1,
		},
		{
			in:    `"open`,
			types: []TokenType{TError},
			diags: 1,
		},
		{
			in:    "\"broken\nx",
			types: []TokenType{TError, TSpace, TIdent},
			diags: 1,
		},
		{
			in:    `@`,
			types: []TokenType{TError},
			diags: 1,
		},
		{
			in:    `@ x`,
			types: []TokenType{TError, TSpace, TIdent},
			diags: 1,
		},
		{
			in:    `1.2.3`,
			types: []TokenType{TFloat, TError, TInteger},
			diags: 1,
		},
		{
			in:    `0x`,
			types: []TokenType{TError},
			diags: 1,
		},
		{
			in:    `§§`,
			types: []TokenType{TError},
			diags: 1,
		},
		{
			in:    `§§ {`,
			types: []TokenType{TError, TSpace, TLCurl},
			diags: 1,
		},
		{
			in:    "\xff\xfe",
			types: []TokenType{TError},
			diags: 1,
		},
	}
	for _, lt := range lts {
		toks, diags := Tokenize(nil, []byte(lt.in))
		var types []TokenType
		for i := range toks {
			types = append(types, toks[i].Type)
		}
		if !typesEqual(types, lt.types) {
			t.Errorf("%q: got %v want %v", lt.in, types, lt.types)
		}
		if len(diags) != lt.diags {
			t.Errorf("%q: got %d diagnostics want %d: %v", lt.in, len(diags), lt.diags, diags)
		}
	}
}

func typesEqual(a, b []TokenType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Token bytes concatenate back to the input regardless of how malformed
// it is.
func TestTokenizeTotal(t *testing.T) {
	ins := []string{
		``,
		`{a: 1, b: [1, 2, 3]}`,
		"// c\n{a: @x 'y'}",
		`"unterminated`,
		"\"broken\nline",
		"/* open",
		"§garbage§ {k: v} \xff",
		"@ @@ @@@",
		"0x 1.2.3e 99x",
	}
	for _, in := range ins {
		toks, _ := Tokenize(nil, []byte(in))
		var buf bytes.Buffer
		end := 0
		for i := range toks {
			if toks[i].Start != end {
				t.Errorf("%q: token %d starts at %d want %d", in, i, toks[i].Start, end)
			}
			end = toks[i].End()
			buf.Write(toks[i].Bytes)
		}
		if got := buf.String(); got != in {
			t.Errorf("coverage broken: got %q want %q", got, in)
		}
	}
}

func TestTokenText(t *testing.T) {
	// {, key, :, space, "val", }
	toks, _ := Tokenize(nil, []byte(`{key: "val"}`))
	if len(toks) != 6 {
		t.Fatalf("got %d tokens", len(toks))
	}
	if toks[1].Text() != "key" {
		t.Errorf("got %q want %q", toks[1].Text(), "key")
	}
	if toks[4].Text() != `"val"` {
		t.Errorf("got %q want %q", toks[4].Text(), `"val"`)
	}
}
