package adapt

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/treema-format/treema/debug"
	"github.com/treema-format/treema/ir"
)

// DecodeJSON parses a JSON document into a JSON-shaped tree.
func DecodeJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	res := fromAny("", normNumbers(v))
	if debug.Adapt() {
		debug.Logf("decoded json root %v\n", res)
	}
	return res, nil
}

// EncodeJSON renders a JSON-shaped tree as an indented JSON document.
func EncodeJSON(n *ir.Node) ([]byte, error) {
	return json.MarshalIndent(ToAny(n), "", "  ")
}

func normNumbers(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = normNumbers(e)
		}
		return x
	case []any:
		for i, e := range x {
			x[i] = normNumbers(e)
		}
		return x
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	default:
		return v
	}
}
