package dom

import (
	"fmt"
	"math"
	"sort"
)

// Annotated-mode wrapper keys. A value carrying an annotation converts to
// {"$annotation": name, "$value": value}; unannotated values convert
// plainly in both modes.
const (
	AnnoKey  = "$annotation"
	ValueKey = "$value"
)

// Plain converts the tree to generic JSON-like Go values, dropping
// annotations. Invalid nodes convert to nil.
func (n *Node) Plain() any { return n.toValue(false) }

// Annotated converts the tree to generic values, preserving annotations as
// wrapper maps.
func (n *Node) Annotated() any { return n.toValue(true) }

func (n *Node) toValue(annotated bool) any {
	var v any
	switch n.Type {
	case NullType, InvalidType:
		v = nil
	case BoolType:
		v = n.Bool
	case IntegerType:
		v = n.Int
	case FloatType:
		v = n.Float
	case StringType:
		v = n.Str
	case ArrayType:
		elems := make([]any, len(n.Elems))
		for i, e := range n.Elems {
			elems[i] = e.toValue(annotated)
		}
		v = elems
	case ObjectType:
		obj := make(map[string]any, len(n.Entries))
		for _, e := range n.Entries {
			obj[e.Key.Name] = e.Value.toValue(annotated)
		}
		v = obj
	}
	if annotated && n.Anno != "" {
		return map[string]any{AnnoKey: n.Anno, ValueKey: v}
	}
	return v
}

// FromValue builds a tree from generic Go values. Map keys are ordered
// lexically so the mapping is deterministic. Wrapper maps produced by
// [Node.Annotated] are recognized and converted back to annotations.
func FromValue(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Integer(int64(x)), nil
	case int32:
		return Integer(int64(x)), nil
	case int64:
		return Integer(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d out of range", x)
		}
		return Integer(int64(x)), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		// json decoding yields float64 for every number; map integral
		// values back to Integer
		if x == math.Trunc(x) && math.Abs(x) < 1e15 {
			return Integer(int64(x)), nil
		}
		return Float(x), nil
	case []any:
		arr := &Node{Type: ArrayType}
		for _, e := range x {
			n, err := FromValue(e)
			if err != nil {
				return nil, err
			}
			arr.Elems = append(arr.Elems, n)
		}
		return arr, nil
	case map[string]any:
		if anno, ok := x[AnnoKey].(string); ok && len(x) == 2 {
			if inner, ok := x[ValueKey]; ok {
				n, err := FromValue(inner)
				if err != nil {
					return nil, err
				}
				return n.WithAnno(anno), nil
			}
		}
		obj := &Node{Type: ObjectType}
		names := make([]string, 0, len(x))
		for name := range x {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			n, err := FromValue(x[name])
			if err != nil {
				return nil, err
			}
			obj.Entries = append(obj.Entries, &Entry{Key: Key{Name: name}, Value: n})
		}
		return obj, nil
	}
	return nil, fmt.Errorf("cannot convert %T to a document value", v)
}
