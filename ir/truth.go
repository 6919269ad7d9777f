package ir

// Truth reports whether a node is truthy: non-empty containers,
// non-zero scalars.
func Truth(n *Node) bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case RecordKind, CollectionKind, AttributesKind:
		return len(n.Children) != 0
	case CommentKind, InstructionKind:
		return false
	default:
	}
	v := n.Value
	if v == nil {
		return len(n.Children) != 0
	}
	switch v.Type {
	case StringValue:
		return v.String != ""
	case NumberValue:
		if v.Int64 != nil {
			return *v.Int64 != 0
		}
		if v.Float64 != nil {
			return *v.Float64 != 0.0
		}
		return false
	case BoolValue:
		return v.Bool
	case NullValue:
		return false
	default:
		panic("value type")
	}
}
