package jsonschema

// compileExclusiveMinimum handles Draft6+, where "exclusiveMinimum" is an
// independent numeric keyword rather than Draft4's boolean sibling of
// "minimum" (see compileMinimum).
func compileExclusiveMinimum(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	if value.Kind() != KindNumber {
		return nil, false, NewSchemaError("exclusiveMinimum must be a number")
	}
	return &minimumValidator{limit: value.Float64(), exclusive: true}, true, nil
}
