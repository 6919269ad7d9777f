package format

// YAMLSemantics describes YAML-like trees.  YAML's tree shape is the
// JSON shape; only the adapter boundary differs.
func YAMLSemantics() *Semantics {
	s := JSONSemantics()
	s.ID = YAML
	return s
}
