package encode

import (
	"strings"

	"go4.org/mem"

	"github.com/nota-format/nota/dom"
	"github.com/nota-format/nota/internal/escape"
)

// json writes strict JSON. Annotated nodes become a two-entry wrapper
// object when the annotated mode is on, otherwise just their value.
// Comments and spelling variants are gone by construction.
func (es *encState) json(n *dom.Node, depth int) {
	if es.annotated && n.Anno != "" {
		es.put("{")
		es.newline(depth + 1)
		es.put(jsonString(dom.AnnoKey))
		es.put(": ")
		es.put(jsonString(n.Anno))
		es.put(",")
		if es.compact {
			es.put(" ")
		}
		es.newline(depth + 1)
		es.put(jsonString(dom.ValueKey))
		es.put(": ")
		es.jsonValue(n, depth+1)
		es.newline(depth)
		es.put("}")
		return
	}
	es.jsonValue(n, depth)
}

func (es *encState) jsonValue(n *dom.Node, depth int) {
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
			es.put(es.colors.paint(n.Type, KeyColor, jsonString(e.Key.Name)))
			es.put(es.colors.paint(n.Type, SepColor, ":"))
			es.put(" ")
			es.json(e.Value, depth+1)
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
			es.json(e, depth+1)
		}
		es.newline(depth)
		es.put("]")
	case dom.StringType:
		es.put(es.colors.paint(n.Type, ValueColor, jsonString(n.Str)))
	case dom.FloatType:
		es.put(es.colors.paint(n.Type, ValueColor, jsonFloat(n.Float)))
	default:
		es.put(es.colors.paint(n.Type, ValueColor, scalarText(n)))
	}
}

func jsonString(s string) string {
	return `"` + escape.Quote(mem.S(s)) + `"`
}

// jsonFloat avoids spellings JSON parsers reject, such as Inf and NaN.
func jsonFloat(v float64) string {
	s := floatText(v)
	if strings.ContainsAny(s, "IN") {
		return "null"
	}
	return s
}
