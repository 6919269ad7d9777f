package adapt

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/treema-format/treema/ir"
)

// DecodeYAML parses a YAML document into a YAML-shaped tree (the JSON
// shape under the YAML format identifier).
func DecodeYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return fromAny("", normKeys(v)), nil
}

// EncodeYAML renders a YAML-shaped tree as a YAML document.
func EncodeYAML(n *ir.Node) ([]byte, error) {
	return yaml.Marshal(ToAny(n))
}

// normKeys rewrites map[any]any mappings (YAML's default) to
// string-keyed maps.
func normKeys(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = normKeys(e)
		}
		return x
	case map[any]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			res[stringify(k)] = normKeys(e)
		}
		return res
	case []any:
		for i, e := range x {
			x[i] = normKeys(e)
		}
		return x
	default:
		return v
	}
}
