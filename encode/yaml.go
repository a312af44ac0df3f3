package encode

import (
	"github.com/goccy/go-yaml"

	"github.com/nota-format/nota/dom"
)

// yaml marshals through yaml.MapSlice so object entries keep their
// source order. Colors and compact mode do not apply to yaml output.
func (es *encState) yaml(n *dom.Node) error {
	if es.err != nil {
		return es.err
	}
	out, err := yaml.MarshalWithOptions(es.yamlValue(n), yaml.Indent(es.indent))
	if err != nil {
		return err
	}
	_, err = es.w.Write(out)
	return err
}

func (es *encState) yamlValue(n *dom.Node) any {
	if es.annotated && n.Anno != "" {
		anno := n.Anno
		plain := *n
		plain.Anno = ""
		return yaml.MapSlice{
			{Key: dom.AnnoKey, Value: anno},
			{Key: dom.ValueKey, Value: es.yamlValue(&plain)},
		}
	}
	switch n.Type {
	case dom.ObjectType:
		ms := make(yaml.MapSlice, 0, len(n.Entries))
		for _, e := range n.Entries {
			ms = append(ms, yaml.MapItem{Key: e.Key.Name, Value: es.yamlValue(e.Value)})
		}
		return ms
	case dom.ArrayType:
		vs := make([]any, 0, len(n.Elems))
		for _, e := range n.Elems {
			vs = append(vs, es.yamlValue(e))
		}
		return vs
	case dom.BoolType:
		return n.Bool
	case dom.IntegerType:
		return n.Int
	case dom.FloatType:
		return n.Float
	case dom.StringType:
		return n.Str
	default:
		return nil
	}
}
