package libdiff

import "github.com/treema-format/treema/ir"

// Diff returns a diff tree describing how to get from one tree to the
// other, or nil when they are equal.  Records with named children diff
// by name, everything else by position; string leaves get character
// diffs.
func Diff(from, to *ir.Node) *ir.Node {
	switch {
	case from == nil && to == nil:
		return nil
	case from == nil || to == nil:
		return MakeDiff(from, to)
	}
	if from.Kind != to.Kind || from.Name != to.Name {
		return MakeDiff(from, to)
	}
	if from.Kind.IsLeaf() {
		return diffLeaf(from, to)
	}
	if from.Kind == ir.RecordKind && allNamed(from) && allNamed(to) {
		return diffByName(from, to)
	}
	return diffByIndex(from, to)
}

func diffLeaf(from, to *ir.Node) *ir.Node {
	if from.Value.Equal(to.Value) {
		return nil
	}
	if from.Value != nil && to.Value != nil &&
		from.Value.Type == ir.StringValue && to.Value.Type == ir.StringValue {
		if d := DiffString(from, to); d != nil {
			d.Name = from.Name
			return d
		}
		return nil
	}
	return MakeDiff(from, to)
}

func diffByName(from, to *ir.Node) *ir.Node {
	res := &ir.Node{Kind: from.Kind, Name: from.Name}
	for _, fc := range from.Children {
		tc := ir.Get(to, fc.Name)
		if d := Diff(fc, tc); d != nil {
			d.Name = fc.Name
			res.Children = append(res.Children, d)
		}
	}
	for _, tc := range to.Children {
		if ir.Get(from, tc.Name) != nil {
			continue
		}
		res.Children = append(res.Children, tc.Clone().WithLabel(InsertLabel))
	}
	if len(res.Children) == 0 {
		return nil
	}
	return res
}

func diffByIndex(from, to *ir.Node) *ir.Node {
	res := &ir.Node{Kind: from.Kind, Name: from.Name}
	n := len(from.Children)
	if len(to.Children) > n {
		n = len(to.Children)
	}
	for i := 0; i < n; i++ {
		var fc, tc *ir.Node
		if i < len(from.Children) {
			fc = from.Children[i]
		}
		if i < len(to.Children) {
			tc = to.Children[i]
		}
		if d := Diff(fc, tc); d != nil {
			res.Children = append(res.Children, d)
		}
	}
	if len(res.Children) == 0 {
		return nil
	}
	return res
}

func allNamed(n *ir.Node) bool {
	seen := map[string]bool{}
	for _, c := range n.Children {
		if c.Name == "" || seen[c.Name] {
			return false
		}
		seen[c.Name] = true
	}
	return true
}
