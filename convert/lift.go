package convert

import (
	"github.com/treema-format/treema/format"
	"github.com/treema-format/treema/ir"
	"github.com/treema-format/treema/sem"
)

// semNode is the transient role-tagged intermediate.  It exists only
// for the duration of one Convert call and never escapes the package.
type semNode struct {
	role      sem.Role
	name      string
	value     *ir.Value
	id        string
	namespace string
	label     string

	children   []*semNode
	attributes []*semNode
	backrefs   []*semNode
}

// lifter maps a concrete-format tree into the role tree.  seen keys on
// node identity so that back-reference cycles lift to a finite graph:
// a revisited node is substituted by its already-lifted counterpart.
type lifter struct {
	sem  *format.Semantics
	seen map[*ir.Node]*semNode
}

func (l *lifter) lift(n *ir.Node) *semNode {
	if n == nil {
		return nil
	}
	if sn, ok := l.seen[n]; ok {
		return sn
	}
	sn := &semNode{
		role:      l.sem.Role(n.Kind),
		name:      n.Name,
		value:     n.Value.Clone(),
		id:        n.ID,
		namespace: n.Namespace,
		label:     n.Label,
	}
	l.seen[n] = sn
	if n.Children != nil {
		sn.children = make([]*semNode, len(n.Children))
		for i, c := range n.Children {
			sn.children[i] = l.lift(c)
		}
	}
	if n.Attributes != nil {
		sn.attributes = make([]*semNode, len(n.Attributes))
		for i, a := range n.Attributes {
			sn.attributes[i] = l.lift(a)
		}
	}
	if n.Backrefs != nil {
		sn.backrefs = make([]*semNode, len(n.Backrefs))
		for i, b := range n.Backrefs {
			sn.backrefs[i] = l.lift(b)
		}
	}
	return sn
}
