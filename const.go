package jsonschema

type constValidator struct {
	value *Value
}

func (v *constValidator) IsValid(instance *Value) bool { return Equal(instance, v.value) }

func (v *constValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if v.IsValid(instance) {
		return noError()
	}
	return singleError(newError(KindConst, path, instance,
		"value does not equal the required constant",
		map[string]any{"allowed": v.value}))
}

func (v *constValidator) Name() string { return "const" }

func compileConst(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	return &constValidator{value: value}, true, nil
}
