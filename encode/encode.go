// Package encode serializes DOM trees to nota, json or yaml text.
//
// Output is canonical and deterministic for a given tree: object entries
// keep their source order and scalars have one spelling. The lossless
// byte-for-byte rendition of unmodified input is the syntax tree's Render,
// not this package.
package encode

import (
	"io"
	"strconv"
	"strings"

	"go4.org/mem"

	"github.com/nota-format/nota/dom"
	"github.com/nota-format/nota/internal/escape"
)

type encState struct {
	format    Format
	annotated bool
	indent    int
	compact   bool
	colors    *Colors

	w   io.Writer
	err error
}

// Encode writes n to w in the configured format. The default is pretty
// nota output with two-space indents, annotations included.
func Encode(n *dom.Node, w io.Writer, opts ...EncodeOption) error {
	es := &encState{format: NotaFormat, indent: 2, annotated: true, w: w}
	for _, o := range opts {
		o(es)
	}
	switch es.format {
	case JSONFormat:
		es.json(n, 0)
	case YAMLFormat:
		return es.yaml(n)
	default:
		es.nota(n, 0)
	}
	es.put("\n")
	return es.err
}

// MustString encodes to a string and panics on writer-less failure, which
// cannot happen with the built-in formats.
func MustString(n *dom.Node, opts ...EncodeOption) string {
	var sb strings.Builder
	if err := Encode(n, &sb, opts...); err != nil {
		panic(err)
	}
	return sb.String()
}

func (es *encState) put(s string) {
	if es.err != nil {
		return
	}
	_, es.err = io.WriteString(es.w, s)
}

func (es *encState) newline(depth int) {
	if es.compact {
		return
	}
	es.put("\n")
	es.put(strings.Repeat(" ", depth*es.indent))
}

func (es *encState) nota(n *dom.Node, depth int) {
	if es.annotated && n.Anno != "" {
		es.put(es.colors.paint(n.Type, AnnoColor, "@"+n.Anno))
		es.put(" ")
	}
	switch n.Type {
	case dom.ObjectType:
		if len(n.Entries) == 0 {
			es.put("{}")
			return
		}
		es.put("{")
		for i, e := range n.Entries {
			if i > 0 {
				es.put(",")
				if es.compact {
					es.put(" ")
				}
			}
			es.newline(depth + 1)
			es.put(es.colors.paint(n.Type, KeyColor, notaKey(e.Key.Name)))
			es.put(es.colors.paint(n.Type, SepColor, ":"))
			es.put(" ")
			es.nota(e.Value, depth+1)
		}
		es.newline(depth)
		es.put("}")
	case dom.ArrayType:
		if len(n.Elems) == 0 {
			es.put("[]")
			return
		}
		es.put("[")
		for i, e := range n.Elems {
			if i > 0 {
				es.put(",")
				if es.compact {
					es.put(" ")
				}
			}
			es.newline(depth + 1)
			es.nota(e, depth+1)
		}
		es.newline(depth)
		es.put("]")
	default:
		es.put(es.colors.paint(n.Type, ValueColor, scalarText(n)))
	}
}

// notaKey renders an object key, bare when it is a well-formed identifier.
func notaKey(name string) string {
	if identOK(name) {
		return name
	}
	return `"` + escape.Quote(mem.S(name)) + `"`
}

func identOK(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		ok := c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
			i > 0 && (c >= '0' && c <= '9' || c == '-')
		if !ok {
			return false
		}
	}
	switch s {
	case "true", "false", "null":
		return false
	}
	return true
}

func scalarText(n *dom.Node) string {
	switch n.Type {
	case dom.NullType, dom.InvalidType:
		return "null"
	case dom.BoolType:
		return strconv.FormatBool(n.Bool)
	case dom.IntegerType:
		return strconv.FormatInt(n.Int, 10)
	case dom.FloatType:
		return floatText(n.Float)
	case dom.StringType:
		return `"` + escape.Quote(mem.S(n.Str)) + `"`
	}
	return "null"
}

// floatText keeps a float spelling that re-parses as a float.
func floatText(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
