package format

import (
	"strings"

	"github.com/treema-format/treema/ir"
	"github.com/treema-format/treema/sem"
)

// RowName is the canonical item name in CSV-like trees.  CSV locates
// items purely by this name, so rebuilt items are renamed to it.
const RowName = "row"

// CSVSemantics describes CSV-like trees: a table is a Collection whose
// items are Records named "row", each holding one Field per column.
// CSV is flat: converting into it flattens nested collections and
// drops metadata and annotations.
func CSVSemantics() *Semantics {
	return &Semantics{
		ID:        CSV,
		KindRoles: jsonKindRoles(),
		RoleKinds: map[sem.Role]ir.Kind{
			sem.ContainerRole: ir.CollectionKind,
			sem.ItemRole:      ir.RecordKind,
			sem.PropertyRole:  ir.FieldKind,
			sem.ValueRole:     ir.ValueKind,
		},
		Strategies: map[sem.Category]sem.Strategy{
			sem.Collections: sem.Flatten,
			sem.Records:     sem.Preserve,
			sem.Attributes:  sem.Drop,
			sem.Comments:    sem.Drop,
		},
		ItemName:     RowName,
		LocateItems:  csvLocateItems,
		ExtractValue: csvExtractValue,
		NavigatePath: csvNavigatePath,
		Rebuild:      csvRebuild,
	}
}

func csvLocateItems(node *ir.Node) []*ir.Node {
	if node == nil {
		return nil
	}
	var rows []*ir.Node
	for _, c := range node.Children {
		if c.Name == RowName {
			rows = append(rows, c)
		}
	}
	return rows
}

func csvExtractValue(node *ir.Node, key string) *ir.Value {
	c := ir.Get(node, key)
	if c == nil {
		return nil
	}
	return c.Value
}

// csvNavigatePath: "row" descends into the first row, an all-digit
// segment is a zero-based index among the current node's rows, and
// anything else is a name lookup.  "row" directly followed by an index
// selects that row rather than descending first.
func csvNavigatePath(node *ir.Node, segs []string) *ir.Node {
	res := node
	for i := 0; i < len(segs); i++ {
		seg := segs[i]
		switch {
		case seg == RowName:
			rows := csvLocateItems(res)
			if len(rows) == 0 {
				return nil
			}
			if i+1 < len(segs) && isDigits(segs[i+1]) {
				idx := atoi(segs[i+1])
				i++
				if idx >= len(rows) {
					return nil
				}
				res = rows[idx]
				continue
			}
			res = rows[0]
		case isDigits(seg):
			rows := csvLocateItems(res)
			idx := atoi(seg)
			if idx >= len(rows) {
				return nil
			}
			res = rows[idx]
		default:
			res = ir.Get(res, seg)
			if res == nil {
				return nil
			}
		}
	}
	return res
}

func csvRebuild(container *ir.Node, items []*ir.Node) *ir.Node {
	renamed := make([]*ir.Node, len(items))
	for i, item := range items {
		if item.Name == RowName {
			renamed[i] = item
			continue
		}
		r := item.Clone()
		r.Name = RowName
		renamed[i] = r
	}
	return rebuildChildren(container, renamed)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	}) == -1
}

func atoi(s string) int {
	res := 0
	for i := 0; i < len(s); i++ {
		res = res*10 + int(s[i]-'0')
	}
	return res
}
