package convert

import (
	"github.com/treema-format/treema/format"
	"github.com/treema-format/treema/ir"
	"github.com/treema-format/treema/sem"
)

// lowerer rebuilds a Node tree from the role tree under the target
// format's tables.  seen keys on semNode identity, mirroring the
// lifter, so cyclic role graphs lower to cyclic Node graphs instead of
// recursing forever.
type lowerer struct {
	sem  *format.Semantics
	seen map[*semNode]*ir.Node
}

func (lo *lowerer) lower(sn *semNode) *ir.Node {
	if sn == nil {
		return nil
	}
	if n, ok := lo.seen[sn]; ok {
		return n
	}
	n := &ir.Node{
		Kind:      lo.sem.Kind(sn.role),
		Name:      sn.name,
		Value:     sn.value.Clone(),
		ID:        sn.id,
		Namespace: sn.namespace,
		Label:     sn.label,
	}
	// formats that identify items by name (CSV rows) only see items
	// carrying their canonical name
	if sn.role == sem.ItemRole && lo.sem.ItemName != "" {
		n.Name = lo.sem.ItemName
	}
	lo.seen[sn] = n
	n.Children = lo.lowerChildren(n, sn.children)
	lo.lowerAttributes(n, sn.attributes)
	for _, b := range sn.backrefs {
		n.Backrefs = append(n.Backrefs, lo.lower(b))
	}
	return n
}

// lowerChildren rebuilds a child sequence, applying the strategy the
// target format assigns to each child's structural category.  Demoted
// children land in parent's attribute list rather than the returned
// sequence.
func (lo *lowerer) lowerChildren(parent *ir.Node, children []*semNode) []*ir.Node {
	var res []*ir.Node
	for _, c := range children {
		switch lo.strategyFor(c) {
		case sem.Drop:
		case sem.Flatten:
			// splice grandchildren at the child's position; nested
			// Flatten-tagged levels collapse recursively
			res = append(res, lo.lowerChildren(parent, c.children)...)
		case sem.Convert:
			res = append(res, attrsToFields(lo.lower(c)))
		case sem.Promote:
			lc := lo.lower(c)
			lc.Kind = ir.CommentKind
			res = append(res, lc)
		case sem.Demote:
			lc := lo.lower(c)
			lc.Kind = ir.AttributesKind
			parent.Attributes = append(parent.Attributes, lc)
		default:
			res = append(res, lo.lower(c))
		}
	}
	return res
}

// lowerAttributes rebuilds an attribute list under the target's
// attributes strategy.  Drop leaves the list absent, not empty.
func (lo *lowerer) lowerAttributes(parent *ir.Node, attrs []*semNode) {
	if len(attrs) == 0 {
		return
	}
	switch lo.sem.Strategy(sem.Attributes) {
	case sem.Drop:
	case sem.Convert:
		for _, a := range attrs {
			la := lo.lower(a)
			la.Kind = ir.FieldKind
			parent.Children = append(parent.Children, la)
		}
	case sem.Promote:
		for _, a := range attrs {
			la := lo.lower(a)
			la.Kind = ir.CommentKind
			parent.Children = append(parent.Children, la)
		}
	case sem.Flatten:
		for _, a := range attrs {
			for _, c := range a.children {
				parent.Attributes = append(parent.Attributes, lo.lower(c))
			}
		}
	default: // Preserve, Demote: attributes are already metadata
		for _, a := range attrs {
			parent.Attributes = append(parent.Attributes, lo.lower(a))
		}
	}
}

func (lo *lowerer) strategyFor(c *semNode) sem.Strategy {
	cat, ok := sem.CategoryOf(c.role)
	if !ok {
		return sem.Preserve
	}
	return lo.sem.Strategy(cat)
}

// attrsToFields retypes a node's attribute entries into ordinary Field
// children.  This is the whole difference between Convert and
// Preserve.
func attrsToFields(n *ir.Node) *ir.Node {
	for _, a := range n.Attributes {
		a.Kind = ir.FieldKind
		n.Children = append(n.Children, a)
	}
	n.Attributes = nil
	return n
}
