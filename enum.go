package jsonschema

type enumValidator struct {
	values []*Value
}

func (v *enumValidator) IsValid(instance *Value) bool {
	for _, want := range v.values {
		if Equal(instance, want) {
			return true
		}
	}
	return false
}

func (v *enumValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if v.IsValid(instance) {
		return noError()
	}
	return singleError(newError(KindEnum, path, instance,
		"value does not match any of the allowed values",
		map[string]any{"allowed": v.values}))
}

func (v *enumValidator) Name() string { return "enum" }

func compileEnum(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	if value.Kind() != KindArray {
		return nil, false, NewSchemaError("enum must be an array")
	}
	return &enumValidator{values: value.Array()}, true, nil
}
