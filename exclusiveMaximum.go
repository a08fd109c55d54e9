package jsonschema

// compileExclusiveMaximum handles Draft6+, where "exclusiveMaximum" is an
// independent numeric keyword rather than Draft4's boolean sibling of
// "maximum" (see compileMaximum).
func compileExclusiveMaximum(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	if value.Kind() != KindNumber {
		return nil, false, NewSchemaError("exclusiveMaximum must be a number")
	}
	return &maximumValidator{limit: value.Float64(), exclusive: true}, true, nil
}
