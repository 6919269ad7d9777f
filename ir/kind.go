package ir

import "fmt"

// Kind classifies a node structurally, independent of what the node
// means to any particular format.
type Kind int

const (
	ValueKind Kind = iota
	FieldKind
	RecordKind
	CollectionKind
	AttributesKind
	CommentKind
	InstructionKind
	CustomKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		ValueKind:       "Value",
		FieldKind:       "Field",
		RecordKind:      "Record",
		CollectionKind:  "Collection",
		AttributesKind:  "Attributes",
		CommentKind:     "Comment",
		InstructionKind: "Instruction",
		CustomKind:      "Custom",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Value":       ValueKind,
		"Field":       FieldKind,
		"Record":      RecordKind,
		"Collection":  CollectionKind,
		"Attributes":  AttributesKind,
		"Comment":     CommentKind,
		"Instruction": InstructionKind,
		"Custom":      CustomKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		ValueKind,
		FieldKind,
		RecordKind,
		CollectionKind,
		AttributesKind,
		CommentKind,
		InstructionKind,
		CustomKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case RecordKind, CollectionKind, AttributesKind:
		return false
	default:
		return true
	}
}
