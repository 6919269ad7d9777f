package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Ordering is by kind rank, then name, then value, then children.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	rankA := rank(a.Kind)
	rankB := rank(b.Kind)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := compareValues(a.Value, b.Value); c != 0 {
		return c
	}
	return compareChildren(a, b)
}

func rank(k Kind) int {
	switch k {
	case CommentKind:
		return 0
	case InstructionKind:
		return 1
	case ValueKind:
		return 2
	case FieldKind:
		return 3
	case AttributesKind:
		return 4
	case CollectionKind:
		return 5
	case RecordKind:
		return 6
	case CustomKind:
		return 7
	default:
		return 8
	}
}

func compareValues(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	switch a.Type {
	case NullValue:
		return 0
	case BoolValue:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case StringValue:
		return strings.Compare(a.String, b.String)
	case NumberValue:
		return cmp.Compare(numf(a), numf(b))
	default:
		return 0
	}
}

func numf(v *Value) float64 {
	if v.Int64 != nil {
		return float64(*v.Int64)
	}
	if v.Float64 != nil {
		return *v.Float64
	}
	return 0
}

func compareChildren(a, b *Node) int {
	n := len(a.Children)
	if len(b.Children) < n {
		n = len(b.Children)
	}
	for i := 0; i < n; i++ {
		if c := Compare(a.Children[i], b.Children[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Children), len(b.Children))
}
