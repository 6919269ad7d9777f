package ops

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/treema-format/treema/debug"
	"github.com/treema-format/treema/ir"
)

// PredExpr compiles an expression into an item predicate.  The
// expression sees the item as plain Go values: `name`, `value`, `id`,
// `label`, the full `item` view, and the helpers `field(key)`,
// `attr(key)`, `truth()`.
func PredExpr(src string) (Pred, error) {
	prog, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("bad predicate %q: %w", src, err)
	}
	return func(n *ir.Node) bool {
		out, err := run(prog, n)
		if err != nil {
			if debug.Query() {
				debug.Logf("predicate %q on %v: %v\n", src, n, err)
			}
			return false
		}
		b, ok := out.(bool)
		return ok && b
	}, nil
}

// KeyExpr compiles an expression into a groupBy key function.  Non-
// string results are rendered with %v.
func KeyExpr(src string) (KeyFunc, error) {
	prog, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("bad key expression %q: %w", src, err)
	}
	return func(n *ir.Node) string {
		out, err := run(prog, n)
		if err != nil {
			return ""
		}
		if s, ok := out.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", out)
	}, nil
}

// LessExpr compiles an expression into a sort key and compares items
// by it with ir ordering of the rendered keys.
func LessExpr(src string) (LessFunc, error) {
	key, err := KeyExpr(src)
	if err != nil {
		return nil, err
	}
	return func(a, b *ir.Node) bool {
		return key(a) < key(b)
	}, nil
}

func run(prog *vm.Program, n *ir.Node) (any, error) {
	return expr.Run(prog, exprEnv(n))
}

func exprEnv(n *ir.Node) map[string]any {
	return map[string]any{
		"name":  n.Name,
		"id":    n.ID,
		"label": n.Label,
		"value": valueAny(n.Value),
		"item":  anyView(n),
		"field": func(key string) any {
			c := ir.Get(n, key)
			if c == nil {
				return nil
			}
			return valueAny(c.Value)
		},
		"attr": func(key string) any {
			a := ir.Attr(n, key)
			if a == nil {
				return nil
			}
			return valueAny(a.Value)
		},
		"truth": func() bool {
			return ir.Truth(n)
		},
	}
}

func valueAny(v *ir.Value) any {
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
			return int(*v.Int64)
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

// anyView renders a node as plain Go values for expression evaluation:
// collections as slices, everything else as a name-keyed map with
// attributes under "@"-prefixed keys.
func anyView(n *ir.Node) any {
	if n == nil {
		return nil
	}
	if len(n.Children) == 0 && len(n.Attributes) == 0 {
		return valueAny(n.Value)
	}
	if n.Kind == ir.CollectionKind {
		res := make([]any, len(n.Children))
		for i, c := range n.Children {
			res[i] = anyView(c)
		}
		return res
	}
	res := make(map[string]any, len(n.Children)+len(n.Attributes))
	for _, c := range n.Children {
		if c.Name == "" {
			continue
		}
		res[c.Name] = anyView(c)
	}
	for _, a := range n.Attributes {
		res["@"+a.Name] = valueAny(a.Value)
	}
	return res
}
