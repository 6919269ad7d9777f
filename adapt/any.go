// Package adapt sits at the boundary of the node model: it decodes
// concrete text formats into trees built under that format's
// conventions and encodes such trees back out.  The core packages
// never parse or serialize; only this package does.
package adapt

import (
	"fmt"
	"maps"
	"slices"

	"github.com/treema-format/treema/ir"
)

func stringify(v any) string {
	return fmt.Sprintf("%v", v)
}

// FromAny builds a JSON-shaped tree from plain Go values: maps become
// Records (members sorted by key), slices become Collections, scalars
// become Fields or anonymous Values.
func FromAny(v any) *ir.Node {
	return fromAny("", v)
}

func fromAny(name string, v any) *ir.Node {
	switch x := v.(type) {
	case map[string]any:
		res := &ir.Node{Kind: ir.RecordKind, Name: name}
		for _, key := range slices.Sorted(maps.Keys(x)) {
			res.Children = append(res.Children, fromAny(key, x[key]))
		}
		return res
	case []any:
		res := &ir.Node{Kind: ir.CollectionKind, Name: name}
		for _, item := range x {
			res.Children = append(res.Children, fromAny("", item))
		}
		return res
	default:
		kind := ir.ValueKind
		if name != "" {
			kind = ir.FieldKind
		}
		return &ir.Node{Kind: kind, Name: name, Value: scalarValue(v)}
	}
}

func scalarValue(v any) *ir.Value {
	switch x := v.(type) {
	case nil:
		return ir.Null()
	case string:
		return ir.String(x)
	case bool:
		return ir.Bool(x)
	case int:
		return ir.Int(int64(x))
	case int64:
		return ir.Int(x)
	case uint64:
		return ir.Int(int64(x))
	case float64:
		if x == float64(int64(x)) {
			return ir.Int(int64(x))
		}
		return ir.Float(x)
	case float32:
		return ir.Float(float64(x))
	default:
		return ir.String(stringify(v))
	}
}

// ToAny renders a tree as plain Go values: Collections as slices,
// Records as maps, leaves as primitives.  Comments and instructions
// have no slot in plain values and are skipped; attributes surface
// under "@"-prefixed keys.
func ToAny(n *ir.Node) any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case ir.CollectionKind:
		res := make([]any, 0, len(n.Children))
		for _, c := range n.Children {
			switch c.Kind {
			case ir.CommentKind, ir.InstructionKind:
				continue
			}
			res = append(res, ToAny(c))
		}
		return res
	case ir.RecordKind, ir.AttributesKind, ir.CustomKind:
		res := make(map[string]any, len(n.Children)+len(n.Attributes))
		for _, c := range n.Children {
			switch c.Kind {
			case ir.CommentKind, ir.InstructionKind:
				continue
			}
			if c.Name == "" {
				continue
			}
			res[c.Name] = ToAny(c)
		}
		for _, a := range n.Attributes {
			res["@"+a.Name] = valuePrim(a.Value)
		}
		return res
	case ir.CommentKind, ir.InstructionKind:
		return nil
	default:
		return valuePrim(n.Value)
	}
}

func valuePrim(v *ir.Value) any {
	if v == nil {
		return nil
	}
	switch v.Type {
	case ir.StringValue:
		return v.String
	case ir.BoolValue:
		return v.Bool
	case ir.NumberValue:
		if v.Int64 != nil {
			return *v.Int64
		}
		if v.Float64 != nil {
			return *v.Float64
		}
		return nil
	case ir.NullValue:
		return nil
	default:
		panic("value type")
	}
}
