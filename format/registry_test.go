package format

import (
	"errors"
	"testing"

	"github.com/treema-format/treema/ir"
	"github.com/treema-format/treema/sem"
)

func TestDefaultRegistry(t *testing.T) {
	reg := Default()
	for _, f := range Builtin() {
		s, err := reg.Lookup(f)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", f, err)
		}
		if s.ID != f {
			t.Errorf("Lookup(%s) returned record for %s", f, s.ID)
		}
	}
}

func TestLookupNotRegistered(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Lookup(JSON)
	if !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("got %v, want ErrNotRegistered", err)
	}
}

func TestRegisterValidates(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(nil); err == nil {
		t.Error("nil semantics should not register")
	}
	if err := reg.Register(&Semantics{ID: JSON}); err == nil {
		t.Error("semantics without query primitives should not register")
	}
}

func TestRegisterOverwrites(t *testing.T) {
	reg := NewRegistry()
	first := JSONSemantics()
	if err := reg.Register(first); err != nil {
		t.Fatal(err)
	}
	second := JSONSemantics()
	second.ItemName = "entry"
	if err := reg.Register(second); err != nil {
		t.Fatal(err)
	}
	s, err := reg.Lookup(JSON)
	if err != nil {
		t.Fatal(err)
	}
	if s.ItemName != "entry" {
		t.Errorf("register should overwrite, got ItemName %q", s.ItemName)
	}
}

func TestSupported(t *testing.T) {
	reg := Default()
	sup := reg.Supported()
	if len(sup) != len(Builtin()) {
		t.Fatalf("Supported() = %v", sup)
	}
	seen := map[ID]bool{}
	for _, f := range sup {
		seen[f] = true
	}
	for _, f := range Builtin() {
		if !seen[f] {
			t.Errorf("Supported() missing %s", f)
		}
	}
}

func TestDefaults(t *testing.T) {
	s := JSONSemantics()
	if got := s.Role(ir.CustomKind); got != sem.ValueRole {
		t.Errorf("unmapped kind should read as Value role, got %s", got)
	}
	if got := s.Kind(sem.RootRole); got != ir.ValueKind {
		t.Errorf("unmapped role should write as Value kind, got %s", got)
	}
	if got := s.Strategy(sem.Comments); got != sem.Preserve {
		t.Errorf("unset strategy should be Preserve, got %s", got)
	}
}
