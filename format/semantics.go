package format

import (
	"fmt"

	"github.com/treema-format/treema/ir"
	"github.com/treema-format/treema/sem"
)

// Semantics is the declarative record for one format.  It is pure
// data plus the four query primitives; adding a format is a matter of
// registering another record, not of writing new engine code.
type Semantics struct {
	ID ID

	// KindRoles maps node kinds to roles when reading a tree of this
	// format.  A kind absent from the map reads as sem.ValueRole.
	KindRoles map[ir.Kind]sem.Role

	// RoleKinds maps roles to node kinds when writing a tree of this
	// format.  May be partial; an unmapped role writes as ir.ValueKind.
	RoleKinds map[sem.Role]ir.Kind

	// Strategies picks the rebuild strategy per structural category
	// when this format is the conversion target.  A missing category
	// rebuilds as sem.Preserve.
	Strategies map[sem.Category]sem.Strategy

	// ItemName is the canonical name rebuilt items take in this
	// format, "" to keep the original names.  CSV locates items purely
	// by name, so its rebuilt items must be renamed.
	ItemName string

	// LocateItems returns the children of node that count as queryable
	// items for this format.
	LocateItems func(node *ir.Node) []*ir.Node

	// ExtractValue returns the named value under node, or nil.  For
	// formats with attributes it is attribute-aware.
	ExtractValue func(node *ir.Node, key string) *ir.Value

	// NavigatePath walks the format's path grammar, returning nil when
	// any segment is absent.
	NavigatePath func(node *ir.Node, segs []string) *ir.Node

	// Rebuild reconstructs the container around a new item sequence.
	Rebuild func(container *ir.Node, items []*ir.Node) *ir.Node
}

// Role reads the role of a kind under this format.
func (s *Semantics) Role(k ir.Kind) sem.Role {
	r, ok := s.KindRoles[k]
	if !ok {
		return sem.ValueRole
	}
	return r
}

// Kind writes the kind of a role under this format.
func (s *Semantics) Kind(r sem.Role) ir.Kind {
	k, ok := s.RoleKinds[r]
	if !ok {
		return ir.ValueKind
	}
	return k
}

// Strategy picks the rebuild strategy for a structural category.
func (s *Semantics) Strategy(c sem.Category) sem.Strategy {
	st, ok := s.Strategies[c]
	if !ok {
		return sem.Preserve
	}
	return st
}

func (s *Semantics) validate() error {
	if s.LocateItems == nil || s.ExtractValue == nil || s.NavigatePath == nil || s.Rebuild == nil {
		return fmt.Errorf("format %s: all four query primitives are required", s.ID)
	}
	return nil
}

// rebuildChildren is the default container reconstruction: same
// container, new children.  Formats that identify items by name wrap
// this with a rename.
func rebuildChildren(container *ir.Node, items []*ir.Node) *ir.Node {
	res := &ir.Node{
		Kind:      container.Kind,
		Name:      container.Name,
		Value:     container.Value.Clone(),
		ID:        container.ID,
		Namespace: container.Namespace,
		Label:     container.Label,
		Children:  items,
	}
	if container.Attributes != nil {
		res.Attributes = make([]*ir.Node, len(container.Attributes))
		for i, a := range container.Attributes {
			res.Attributes[i] = a.Clone()
		}
	}
	return res
}
