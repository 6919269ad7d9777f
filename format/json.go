package format

import (
	"github.com/treema-format/treema/ir"
	"github.com/treema-format/treema/sem"
)

// JSONSemantics describes JSON-like trees: objects are Records whose
// scalar members are Fields, arrays are Collections, array scalars are
// anonymous Values.
func JSONSemantics() *Semantics {
	return &Semantics{
		ID:         JSON,
		KindRoles:  jsonKindRoles(),
		RoleKinds:  jsonRoleKinds(),
		Strategies: map[sem.Category]sem.Strategy{
			// all Preserve: JSON round trips keep every slot
		},
		LocateItems:  jsonLocateItems,
		ExtractValue: jsonExtractValue,
		NavigatePath: jsonNavigatePath,
		Rebuild:      rebuildChildren,
	}
}

func jsonKindRoles() map[ir.Kind]sem.Role {
	return map[ir.Kind]sem.Role{
		ir.CollectionKind:  sem.ContainerRole,
		ir.RecordKind:      sem.ItemRole,
		ir.FieldKind:       sem.PropertyRole,
		ir.ValueKind:       sem.ValueRole,
		ir.AttributesKind:  sem.MetadataRole,
		ir.CommentKind:     sem.AnnotationRole,
		ir.InstructionKind: sem.AnnotationRole,
	}
}

func jsonRoleKinds() map[sem.Role]ir.Kind {
	return map[sem.Role]ir.Kind{
		sem.ContainerRole:  ir.CollectionKind,
		sem.ItemRole:       ir.RecordKind,
		sem.PropertyRole:   ir.FieldKind,
		sem.ValueRole:      ir.ValueKind,
		sem.MetadataRole:   ir.AttributesKind,
		sem.AnnotationRole: ir.CommentKind,
	}
}

func jsonLocateItems(node *ir.Node) []*ir.Node {
	if node == nil || node.Kind != ir.CollectionKind {
		return nil
	}
	return node.Children
}

func jsonExtractValue(node *ir.Node, key string) *ir.Value {
	c := ir.Get(node, key)
	if c == nil {
		return nil
	}
	return c.Value
}

// jsonNavigatePath: every segment is a direct child lookup by name.
func jsonNavigatePath(node *ir.Node, segs []string) *ir.Node {
	res := node
	for _, seg := range segs {
		res = ir.Get(res, seg)
		if res == nil {
			return nil
		}
	}
	return res
}
