// Package libdiff computes structural diffs between two trees of the
// same format, producing a diff tree whose Labels carry the markers.
package libdiff

import "github.com/treema-format/treema/ir"

// MakeDiff builds the replace/insert/delete node for a pair where one
// side is absent or no finer-grained diff applies.
func MakeDiff(from, to *ir.Node) *ir.Node {
	switch {
	case from == nil:
		return to.Clone().WithLabel(InsertLabel)
	case to == nil:
		return from.Clone().WithLabel(DeleteLabel)
	default:
		return ir.NewRecord("",
			markName(from.Clone(), "from"),
			markName(to.Clone(), "to"),
		).WithLabel(ReplaceLabel)
	}
}

func markName(n *ir.Node, name string) *ir.Node {
	n.Name = name
	return n
}
