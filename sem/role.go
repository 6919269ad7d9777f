// Package sem is the format-independent vocabulary: what a node means
// (its role) and how a role-tagged subtree is rebuilt when targeting a
// format (its strategy).
package sem

import "fmt"

type Role int

const (
	ValueRole Role = iota
	PropertyRole
	ItemRole
	ContainerRole
	MetadataRole
	AnnotationRole
	RootRole
)

func (r Role) String() string {
	s, ok := map[Role]string{
		ValueRole:      "Value",
		PropertyRole:   "Property",
		ItemRole:       "Item",
		ContainerRole:  "Container",
		MetadataRole:   "Metadata",
		AnnotationRole: "Annotation",
		RootRole:       "Root",
	}[r]
	if ok {
		return s
	}
	return "<unknown role>"
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(d []byte) error {
	rr, ok := map[string]Role{
		"Value":      ValueRole,
		"Property":   PropertyRole,
		"Item":       ItemRole,
		"Container":  ContainerRole,
		"Metadata":   MetadataRole,
		"Annotation": AnnotationRole,
		"Root":       RootRole,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized role %q", d)
	}
	*r = rr
	return nil
}

func Roles() []Role {
	return []Role{
		ValueRole,
		PropertyRole,
		ItemRole,
		ContainerRole,
		MetadataRole,
		AnnotationRole,
		RootRole,
	}
}

// CoreRoles are the roles a format must be able to write for it to
// serve as a conversion target.
func CoreRoles() []Role {
	return []Role{ContainerRole, ItemRole, ValueRole}
}
