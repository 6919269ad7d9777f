package sem

import "fmt"

// Strategy governs how a role-tagged subtree is rebuilt when a tree is
// lowered into a target format.
type Strategy int

const (
	// Preserve rebuilds the subtree in place.
	Preserve Strategy = iota
	// Convert rebuilds in place and retypes attribute entries into
	// ordinary Field structure.
	Convert
	// Flatten discards the node and splices its children into the
	// enclosing level.
	Flatten
	// Promote rebuilds the subtree as an annotation (Comment kind).
	Promote
	// Demote rebuilds the subtree as metadata (Attributes kind) on the
	// enclosing node.
	Demote
	// Drop omits the subtree entirely.
	Drop
)

func (s Strategy) String() string {
	v, ok := map[Strategy]string{
		Preserve: "Preserve",
		Convert:  "Convert",
		Flatten:  "Flatten",
		Promote:  "Promote",
		Demote:   "Demote",
		Drop:     "Drop",
	}[s]
	if ok {
		return v
	}
	return "<unknown strategy>"
}

func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(d []byte) error {
	ss, ok := map[string]Strategy{
		"Preserve": Preserve,
		"Convert":  Convert,
		"Flatten":  Flatten,
		"Promote":  Promote,
		"Demote":   Demote,
		"Drop":     Drop,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized strategy %q", d)
	}
	*s = ss
	return nil
}

// Category is the structural bucket a strategy choice is keyed by in a
// format's rule set.
type Category int

const (
	Collections Category = iota
	Records
	Attributes
	Comments
)

func (c Category) String() string {
	v, ok := map[Category]string{
		Collections: "Collections",
		Records:     "Records",
		Attributes:  "Attributes",
		Comments:    "Comments",
	}[c]
	if ok {
		return v
	}
	return "<unknown category>"
}

func Categories() []Category {
	return []Category{Collections, Records, Attributes, Comments}
}

// CategoryOf maps a role to its structural category.  Roles without a
// category (Root, Property, Value) always rebuild as Preserve.
func CategoryOf(r Role) (Category, bool) {
	switch r {
	case ContainerRole:
		return Collections, true
	case ItemRole:
		return Records, true
	case MetadataRole:
		return Attributes, true
	case AnnotationRole:
		return Comments, true
	default:
		return 0, false
	}
}
