// Package convert rebuilds trees from one format's conventions into
// another's.  Conversion is two-phase: lift the source tree into a
// role-tagged intermediate, then lower that intermediate into the
// target format's kinds, applying the target's per-category rebuild
// strategies.
package convert

import (
	"time"

	"github.com/treema-format/treema/debug"
	"github.com/treema-format/treema/envelope"
	"github.com/treema-format/treema/format"
	"github.com/treema-format/treema/ir"
	"github.com/treema-format/treema/sem"
)

type Engine struct {
	reg *format.Registry
}

func New(reg *format.Registry) *Engine {
	return &Engine{reg: reg}
}

// Convert rebuilds node from src's shape into dst's shape.  The input
// is never mutated.  The only failure is an unregistered format: every
// kind lifts to some role and every role lowers to some kind.
func (e *Engine) Convert(node *ir.Node, src, dst format.ID) (*ir.Node, error) {
	ss, err := e.reg.Lookup(src)
	if err != nil {
		return nil, err
	}
	ds, err := e.reg.Lookup(dst)
	if err != nil {
		return nil, err
	}
	if debug.Convert() {
		debug.Logf("convert %s -> %s root %v\n", src, dst, node)
	}
	lf := &lifter{sem: ss, seen: map[*ir.Node]*semNode{}}
	lo := &lowerer{sem: ds, seen: map[*semNode]*ir.Node{}}
	return lo.lower(lf.lift(node)), nil
}

// MetaSource, MetaTarget and MetaTime are the provenance metadata keys
// ConvertEnvelope stamps on the result.
const (
	MetaSource = "treema.convert.source"
	MetaTarget = "treema.convert.target"
	MetaTime   = "treema.convert.time"
)

// ConvertEnvelope converts the envelope's payload and stamps
// provenance metadata on a new envelope.  The input envelope is never
// mutated.
func (e *Engine) ConvertEnvelope(env *envelope.Envelope, src, dst format.ID) (*envelope.Envelope, error) {
	data, err := e.Convert(env.Data, src, dst)
	if err != nil {
		return nil, err
	}
	return env.With(data, map[string]any{
		MetaSource: src.String(),
		MetaTarget: dst.String(),
		MetaTime:   time.Now().UTC().Format(time.RFC3339Nano),
	}), nil
}

// IsCompatible reports whether every core role src can read is one dst
// can write.  It is purely table-driven: it can return true even when
// converting a specific tree would shed data through Drop or Flatten
// rules.
func (e *Engine) IsCompatible(src, dst format.ID) (bool, error) {
	ss, err := e.reg.Lookup(src)
	if err != nil {
		return false, err
	}
	ds, err := e.reg.Lookup(dst)
	if err != nil {
		return false, err
	}
	present := map[sem.Role]bool{}
	for _, r := range ss.KindRoles {
		present[r] = true
	}
	for _, r := range sem.CoreRoles() {
		if !present[r] {
			continue
		}
		if _, ok := ds.RoleKinds[r]; !ok {
			return false, nil
		}
	}
	return true, nil
}
