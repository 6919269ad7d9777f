package sem

import "testing"

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		role Role
		cat  Category
		ok   bool
	}{
		{ContainerRole, Collections, true},
		{ItemRole, Records, true},
		{MetadataRole, Attributes, true},
		{AnnotationRole, Comments, true},
		{ValueRole, 0, false},
		{PropertyRole, 0, false},
		{RootRole, 0, false},
	}
	for _, tc := range tests {
		cat, ok := CategoryOf(tc.role)
		if ok != tc.ok || (ok && cat != tc.cat) {
			t.Errorf("CategoryOf(%s) = %v, %v; want %v, %v",
				tc.role, cat, ok, tc.cat, tc.ok)
		}
	}
}

func TestCoreRoles(t *testing.T) {
	core := map[Role]bool{}
	for _, r := range CoreRoles() {
		core[r] = true
	}
	for _, r := range []Role{ContainerRole, ItemRole, ValueRole} {
		if !core[r] {
			t.Errorf("core roles missing %s", r)
		}
	}
	if core[MetadataRole] || core[AnnotationRole] {
		t.Errorf("metadata and annotation are not core roles")
	}
}
