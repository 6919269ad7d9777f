package adapt

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/treema-format/treema/ir"
)

// MergePatch merges patch into doc per RFC 7386.  Both trees must be
// JSON-shaped; the merge runs over the serialized form, so comments do
// not survive it.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	docJSON, err := EncodeJSON(doc)
	if err != nil {
		return nil, err
	}
	patchJSON, err := EncodeJSON(patch)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(docJSON, patchJSON)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return DecodeJSON(out)
}

// Patch applies an RFC 6902 patch document (a JSON-shaped Collection
// of operations) to a JSON-shaped doc.
func Patch(doc, patch *ir.Node) (*ir.Node, error) {
	patchJSON, err := EncodeJSON(patch)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	docJSON, err := EncodeJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(docJSON)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	return DecodeJSON(out)
}
