package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/treema-format/treema/ir"
)

// Logf writes to stderr, rendering nodes and plain Go containers
// readably.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = nodeString(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func nodeString(n *ir.Node) string {
	if n == nil {
		return "<nil>"
	}
	if n.Name != "" {
		return fmt.Sprintf("%s(%s=%s)", n.Kind, n.Name, n.Value.Text())
	}
	return fmt.Sprintf("%s(%s)", n.Kind, n.Value.Text())
}
