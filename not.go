package jsonschema

type notValidator struct {
	validators []Validator
}

func (v *notValidator) IsValid(instance *Value) bool {
	for _, sub := range v.validators {
		if !sub.IsValid(instance) {
			return true
		}
	}
	return false
}

func (v *notValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if v.IsValid(instance) {
		return noError()
	}
	return singleError(newError(KindNot, path, instance,
		"value must not match the not schema",
		nil))
}

func (v *notValidator) Name() string { return "not" }

func compileNot(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	validators, err := compileValidators(value, ctx)
	if err != nil {
		return nil, false, err
	}
	return &notValidator{validators: validators}, true, nil
}
