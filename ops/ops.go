// Package ops runs uniform query and transform operations over the
// items of an envelope, dispatched through the active format's query
// primitives.  Structural operations rebuild the container through the
// format's own Rebuild primitive, so per-format item naming (CSV rows)
// stays table data rather than per-operation code.
package ops

import (
	"sort"
	"time"

	"github.com/treema-format/treema/debug"
	"github.com/treema-format/treema/envelope"
	"github.com/treema-format/treema/format"
	"github.com/treema-format/treema/ir"
)

type Pred func(*ir.Node) bool

type MapFunc func(*ir.Node) *ir.Node

type KeyFunc func(*ir.Node) string

type LessFunc func(a, b *ir.Node) bool

type ReduceFunc func(acc any, item *ir.Node) any

// Processing metadata keys stamped on every structural operation's
// result, additive to whatever the envelope already carries.
const (
	MetaOp    = "treema.ops.name"
	MetaCount = "treema.ops.count"
	MetaTime  = "treema.ops.time"
)

type Ops struct {
	reg *format.Registry
}

func New(reg *format.Registry) *Ops {
	return &Ops{reg: reg}
}

func (o *Ops) items(env *envelope.Envelope, f format.ID) ([]*ir.Node, *format.Semantics, error) {
	s, err := o.reg.Lookup(f)
	if err != nil {
		return nil, nil, err
	}
	if env == nil || env.Data == nil {
		return nil, s, nil
	}
	return s.LocateItems(env.Data), s, nil
}

func (o *Ops) rebuilt(env *envelope.Envelope, s *format.Semantics, items []*ir.Node, opName string) *envelope.Envelope {
	if debug.Ops() {
		debug.Logf("%s on %s -> %d items\n", opName, s.ID, len(items))
	}
	if env == nil {
		env = envelope.New(nil)
	}
	data := env.Data
	if data != nil {
		data = s.Rebuild(data, items)
	}
	return env.With(data, map[string]any{
		MetaOp:    opName,
		MetaCount: len(items),
		MetaTime:  time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Find returns all items satisfying pred, in item order.
func (o *Ops) Find(env *envelope.Envelope, f format.ID, pred Pred) ([]*ir.Node, error) {
	items, _, err := o.items(env, f)
	if err != nil {
		return nil, err
	}
	var res []*ir.Node
	for _, item := range items {
		if pred(item) {
			res = append(res, item)
		}
	}
	return res, nil
}

// FindFirst returns the first item satisfying pred, or nil.
func (o *Ops) FindFirst(env *envelope.Envelope, f format.ID, pred Pred) (*ir.Node, error) {
	items, _, err := o.items(env, f)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if pred(item) {
			return item, nil
		}
	}
	return nil, nil
}

// Filter rebuilds the envelope around the items satisfying pred.
func (o *Ops) Filter(env *envelope.Envelope, f format.ID, pred Pred) (*envelope.Envelope, error) {
	items, s, err := o.items(env, f)
	if err != nil {
		return nil, err
	}
	kept := make([]*ir.Node, 0, len(items))
	for _, item := range items {
		if pred(item) {
			kept = append(kept, item)
		}
	}
	return o.rebuilt(env, s, kept, "filter"), nil
}

// Map applies fn to each item and returns the results without touching
// the envelope.
func (o *Ops) Map(env *envelope.Envelope, f format.ID, fn MapFunc) ([]*ir.Node, error) {
	items, _, err := o.items(env, f)
	if err != nil {
		return nil, err
	}
	res := make([]*ir.Node, len(items))
	for i, item := range items {
		res[i] = fn(item)
	}
	return res, nil
}

// Transform applies fn to each item in place and rebuilds the
// envelope.
func (o *Ops) Transform(env *envelope.Envelope, f format.ID, fn MapFunc) (*envelope.Envelope, error) {
	items, s, err := o.items(env, f)
	if err != nil {
		return nil, err
	}
	mapped := make([]*ir.Node, len(items))
	for i, item := range items {
		mapped[i] = fn(item)
	}
	return o.rebuilt(env, s, mapped, "transform"), nil
}

// Reduce folds fn over the items, starting from init.
func (o *Ops) Reduce(env *envelope.Envelope, f format.ID, init any, fn ReduceFunc) (any, error) {
	items, _, err := o.items(env, f)
	if err != nil {
		return nil, err
	}
	acc := init
	for _, item := range items {
		acc = fn(acc, item)
	}
	return acc, nil
}

// Some reports whether any item satisfies pred.
func (o *Ops) Some(env *envelope.Envelope, f format.ID, pred Pred) (bool, error) {
	first, err := o.FindFirst(env, f, pred)
	if err != nil {
		return false, err
	}
	return first != nil, nil
}

// Every reports whether all items satisfy pred.  Vacuously true on an
// empty item sequence.
func (o *Ops) Every(env *envelope.Envelope, f format.ID, pred Pred) (bool, error) {
	items, _, err := o.items(env, f)
	if err != nil {
		return false, err
	}
	for _, item := range items {
		if !pred(item) {
			return false, nil
		}
	}
	return true, nil
}

// Count returns the number of items, or of items satisfying pred when
// one is given.
func (o *Ops) Count(env *envelope.Envelope, f format.ID, preds ...Pred) (int, error) {
	items, _, err := o.items(env, f)
	if err != nil {
		return 0, err
	}
	if len(preds) == 0 {
		return len(items), nil
	}
	n := 0
	for _, item := range items {
		ok := true
		for _, pred := range preds {
			if !pred(item) {
				ok = false
				break
			}
		}
		if ok {
			n++
		}
	}
	return n, nil
}

// Sort rebuilds the envelope with items in less order.  A nil less
// sorts by ir.Compare.  The sort is stable.
func (o *Ops) Sort(env *envelope.Envelope, f format.ID, less LessFunc) (*envelope.Envelope, error) {
	items, s, err := o.items(env, f)
	if err != nil {
		return nil, err
	}
	if less == nil {
		less = func(a, b *ir.Node) bool { return ir.Compare(a, b) < 0 }
	}
	sorted := make([]*ir.Node, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return o.rebuilt(env, s, sorted, "sort"), nil
}

// Take rebuilds the envelope with the first n items.
func (o *Ops) Take(env *envelope.Envelope, f format.ID, n int) (*envelope.Envelope, error) {
	items, s, err := o.items(env, f)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return o.rebuilt(env, s, items[:n], "take"), nil
}

// Skip rebuilds the envelope without the first n items.
func (o *Ops) Skip(env *envelope.Envelope, f format.ID, n int) (*envelope.Envelope, error) {
	items, s, err := o.items(env, f)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return o.rebuilt(env, s, items[n:], "skip"), nil
}

// GroupBy buckets items by key, preserving item order within each
// bucket.  Every item lands in exactly one bucket.
func (o *Ops) GroupBy(env *envelope.Envelope, f format.ID, key KeyFunc) (map[string][]*ir.Node, error) {
	items, _, err := o.items(env, f)
	if err != nil {
		return nil, err
	}
	res := map[string][]*ir.Node{}
	for _, item := range items {
		k := key(item)
		res[k] = append(res[k], item)
	}
	return res, nil
}
