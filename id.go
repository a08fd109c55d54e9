package jsonschema

// schemaID returns the schema node's own identifier keyword if declared:
// "$id", or else "id". Both are recognized under every draft; the active
// draft is not consulted. compileObjectSchema uses it
// to rebase relative $refs beneath this node, and Compiler.CompileWithURI
// uses it to pick a default base URI when the caller doesn't name one.
func schemaID(node *Value) (string, bool) {
	if node.Kind() != KindObject {
		return "", false
	}
	if idVal, ok := node.ObjectGet("$id"); ok && idVal.Kind() == KindString {
		return idVal.Str(), true
	}
	if idVal, ok := node.ObjectGet("id"); ok && idVal.Kind() == KindString {
		return idVal.Str(), true
	}
	return "", false
}
