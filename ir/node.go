package ir

// Node is the universal tree element.  One Node type represents trees
// built under any supported format's conventions; the format package
// assigns meaning to kinds per format.
//
// Children and Attributes are owned by the node.  Backrefs are
// non-owning references to nodes that logically contain this one and
// may form cycles; nothing in this package follows them.
type Node struct {
	Kind      Kind
	Name      string
	Value     *Value
	ID        string
	Namespace string
	Label     string

	Children   []*Node
	Attributes []*Node
	Backrefs   []*Node
}

func (n *Node) WithLabel(label string) *Node {
	n.Label = label
	return n
}

func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

func (n *Node) WithAttr(name string, v *Value) *Node {
	n.Attributes = append(n.Attributes, &Node{
		Kind:  ValueKind,
		Name:  name,
		Value: v,
	})
	return n
}

// NewValue returns an anonymous scalar leaf.
func NewValue(v *Value) *Node {
	return &Node{Kind: ValueKind, Value: v}
}

// NewField returns a named leaf, the shape of an object member or a
// table cell.
func NewField(name string, v *Value) *Node {
	return &Node{Kind: FieldKind, Name: name, Value: v}
}

func NewRecord(name string, children ...*Node) *Node {
	return &Node{Kind: RecordKind, Name: name, Children: children}
}

func NewCollection(name string, children ...*Node) *Node {
	return &Node{Kind: CollectionKind, Name: name, Children: children}
}

func NewComment(text string) *Node {
	return &Node{Kind: CommentKind, Value: String(text)}
}

// Get returns the first child with the given name, or nil.
func Get(n *Node, name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Attr returns the first attribute with the given name, or nil.
func Attr(n *Node, name string) *Node {
	if n == nil {
		return nil
	}
	for _, a := range n.Attributes {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Clone deep-copies the node, its children and its attributes.
// Backrefs are carried over as-is: they are relational, not owned, and
// re-pointing them is the caller's business.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Kind = n.Kind
	dst.Name = n.Name
	dst.Value = n.Value.Clone()
	dst.ID = n.ID
	dst.Namespace = n.Namespace
	dst.Label = n.Label
	if n.Children != nil {
		dst.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			dst.Children[i] = c.Clone()
		}
	}
	if n.Attributes != nil {
		dst.Attributes = make([]*Node, len(n.Attributes))
		for i, a := range n.Attributes {
			dst.Attributes[i] = a.Clone()
		}
	}
	if n.Backrefs != nil {
		dst.Backrefs = make([]*Node, len(n.Backrefs))
		copy(dst.Backrefs, n.Backrefs)
	}
	return dst
}

// Visit walks the node and its children pre- and post-order.  The
// callback's bool return gates descent on the pre-order call.
// Attributes and backrefs are not visited.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
