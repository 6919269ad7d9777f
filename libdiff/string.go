package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/treema-format/treema/ir"
)

// DiffString diffs two string leaves character-wise.  The result is a
// Collection of run nodes labeled insert/delete, with unmarked runs
// equal on both sides; nil when the strings are equal.
func DiffString(from, to *ir.Node) *ir.Node {
	if from.Value.Equal(to.Value) {
		return nil
	}
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from.Value.String, "\n") &&
		strings.Contains(to.Value.String, "\n")
	diffs := diffCfg.DiffMain(from.Value.String, to.Value.String, doMultiLine)
	res := ir.NewCollection("").WithLabel(StringDiffLabel)
	changed := false
	for i := range diffs {
		diff := &diffs[i]
		run := ir.NewValue(ir.String(diff.Text))
		switch diff.Type {
		case diffpatch.DiffInsert:
			run.Label = InsertLabel
			changed = true
		case diffpatch.DiffDelete:
			run.Label = DeleteLabel
			changed = true
		case diffpatch.DiffEqual:
		}
		res.Children = append(res.Children, run)
	}
	if !changed {
		return nil
	}
	return res
}
