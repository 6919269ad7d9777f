package ops

import (
	"github.com/treema-format/treema/envelope"
	"github.com/treema-format/treema/format"
	"github.com/treema-format/treema/ir"
)

// Query is a fluent chain over one envelope and format.  Structural
// calls replace the internal envelope and return the query; terminal
// calls read the current envelope without advancing it.  Errors stick:
// after the first failure every call passes it through.
type Query struct {
	o   *Ops
	env *envelope.Envelope
	f   format.ID
	err error
}

func (o *Ops) Query(env *envelope.Envelope, f format.ID) *Query {
	return &Query{o: o, env: env, f: f}
}

func (q *Query) Filter(pred Pred) *Query {
	if q.err != nil {
		return q
	}
	q.env, q.err = q.o.Filter(q.env, q.f, pred)
	return q
}

func (q *Query) Transform(fn MapFunc) *Query {
	if q.err != nil {
		return q
	}
	q.env, q.err = q.o.Transform(q.env, q.f, fn)
	return q
}

func (q *Query) Sort(less LessFunc) *Query {
	if q.err != nil {
		return q
	}
	q.env, q.err = q.o.Sort(q.env, q.f, less)
	return q
}

func (q *Query) Take(n int) *Query {
	if q.err != nil {
		return q
	}
	q.env, q.err = q.o.Take(q.env, q.f, n)
	return q
}

func (q *Query) Skip(n int) *Query {
	if q.err != nil {
		return q
	}
	q.env, q.err = q.o.Skip(q.env, q.f, n)
	return q
}

// Execute returns the current envelope.
func (q *Query) Execute() (*envelope.Envelope, error) {
	return q.env, q.err
}

func (q *Query) Map(fn MapFunc) ([]*ir.Node, error) {
	if q.err != nil {
		return nil, q.err
	}
	return q.o.Map(q.env, q.f, fn)
}

func (q *Query) Count(preds ...Pred) (int, error) {
	if q.err != nil {
		return 0, q.err
	}
	return q.o.Count(q.env, q.f, preds...)
}

func (q *Query) GroupBy(key KeyFunc) (map[string][]*ir.Node, error) {
	if q.err != nil {
		return nil, q.err
	}
	return q.o.GroupBy(q.env, q.f, key)
}

func (q *Query) Err() error {
	return q.err
}
