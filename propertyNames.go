package jsonschema

type propertyNamesValidator struct {
	validators []Validator
}

func (v *propertyNamesValidator) IsValid(instance *Value) bool {
	if instance.Kind() != KindObject {
		return true
	}
	for _, key := range instance.ObjectKeys() {
		name := NewString(key)
		for _, sub := range v.validators {
			if !sub.IsValid(name) {
				return false
			}
		}
	}
	return true
}

func (v *propertyNamesValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if instance.Kind() != KindObject {
		return noError()
	}
	var iters []ErrorIterator
	for _, key := range instance.ObjectKeys() {
		name := NewString(key)
		childPath := path.WithProperty(key)
		for _, sub := range v.validators {
			iters = append(iters, sub.Validate(name, childPath))
		}
	}
	return chain(iters...)
}

func (v *propertyNamesValidator) Name() string { return "propertyNames" }

func compilePropertyNames(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	validators, err := compileValidators(value, ctx)
	if err != nil {
		return nil, false, err
	}
	return &propertyNamesValidator{validators: validators}, true, nil
}
