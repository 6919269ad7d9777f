// Package envelope is the message wrapper the pipeline hands to the
// engine and the operations layer: a data node, an open namespaced
// metadata map, and an opaque execution context that passes through
// unchanged.
package envelope

import "github.com/treema-format/treema/ir"

type Envelope struct {
	Data     *ir.Node
	Metadata map[string]any
	Context  any
}

func New(data *ir.Node) *Envelope {
	return &Envelope{Data: data, Metadata: map[string]any{}}
}

// With returns a copy of the envelope carrying new data and any extra
// metadata entries.  Existing metadata is carried over, never replaced;
// the input envelope is not touched.
func (e *Envelope) With(data *ir.Node, meta map[string]any) *Envelope {
	res := &Envelope{
		Data:     data,
		Metadata: make(map[string]any, len(e.Metadata)+len(meta)),
		Context:  e.Context,
	}
	for k, v := range e.Metadata {
		res.Metadata[k] = v
	}
	for k, v := range meta {
		res.Metadata[k] = v
	}
	return res
}
