package format

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var ErrNotRegistered = errors.New("format not registered")

// Registry maps format IDs to their semantics records.  It is
// constructed explicitly and passed by reference to the engine and the
// operations layer; there is no package-global instance.  Registration
// is expected to complete before lookups start; the lock makes the
// single-writer, many-reader pattern safe regardless.
type Registry struct {
	mu   sync.RWMutex
	sems map[ID]*Semantics
}

func NewRegistry() *Registry {
	return &Registry{sems: map[ID]*Semantics{}}
}

// Default returns a fresh registry populated with the builtin formats.
func Default() *Registry {
	r := NewRegistry()
	for _, s := range []*Semantics{
		JSONSemantics(),
		CSVSemantics(),
		XMLSemantics(),
		YAMLSemantics(),
	} {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

// Register inserts or overwrites the record for s.ID.
func (r *Registry) Register(s *Semantics) error {
	if s == nil {
		return fmt.Errorf("cannot register nil semantics")
	}
	if err := s.validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sems[s.ID] = s
	return nil
}

// Lookup returns the record for f, or ErrNotRegistered.
func (r *Registry) Lookup(f ID) (*Semantics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sems[f]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, f)
	}
	return s, nil
}

// Supported returns the registered format IDs in sorted order.
func (r *Registry) Supported() []ID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]ID, 0, len(r.sems))
	for f := range r.sems {
		res = append(res, f)
	}
	slices.Sort(res)
	return res
}
