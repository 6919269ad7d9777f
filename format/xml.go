package format

import (
	"strings"

	"github.com/treema-format/treema/ir"
	"github.com/treema-format/treema/sem"
)

// XMLSemantics describes XML-like trees: elements are Records named by
// tag, attributes live in the attribute list, text content is an
// anonymous Value child, comments and processing instructions keep
// their own kinds.
func XMLSemantics() *Semantics {
	return &Semantics{
		ID:         XML,
		KindRoles:  jsonKindRoles(),
		RoleKinds:  jsonRoleKinds(),
		Strategies: map[sem.Category]sem.Strategy{
			// all Preserve: XML has a first-class slot for everything
		},
		LocateItems:  xmlLocateItems,
		ExtractValue: xmlExtractValue,
		NavigatePath: xmlNavigatePath,
		Rebuild:      rebuildChildren,
	}
}

// xmlLocateItems: element children are the queryable items.
func xmlLocateItems(node *ir.Node) []*ir.Node {
	if node == nil {
		return nil
	}
	var items []*ir.Node
	for _, c := range node.Children {
		switch c.Kind {
		case ir.RecordKind, ir.CollectionKind:
			items = append(items, c)
		}
	}
	return items
}

// xmlExtractValue is attribute-aware: attributes win over child
// elements of the same name.
func xmlExtractValue(node *ir.Node, key string) *ir.Value {
	if a := ir.Attr(node, key); a != nil {
		return a.Value
	}
	c := ir.Get(node, key)
	if c == nil {
		return nil
	}
	if c.Value != nil {
		return c.Value
	}
	// element with a lone text child
	if len(c.Children) == 1 && c.Children[0].Kind == ir.ValueKind {
		return c.Children[0].Value
	}
	return nil
}

// xmlNavigatePath: "@name" looks up an attribute and stops (attributes
// are leaves); any other segment is a child-name lookup.
func xmlNavigatePath(node *ir.Node, segs []string) *ir.Node {
	res := node
	for _, seg := range segs {
		if strings.HasPrefix(seg, "@") {
			a := ir.Attr(res, seg[1:])
			if a == nil {
				return nil
			}
			return a
		}
		res = ir.Get(res, seg)
		if res == nil {
			return nil
		}
	}
	return res
}
