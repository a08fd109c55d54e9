package jsonschema

type anyOfValidator struct {
	branches [][]Validator
}

func (v *anyOfValidator) branchValid(branch []Validator, instance *Value) bool {
	for _, sub := range branch {
		if !sub.IsValid(instance) {
			return false
		}
	}
	return true
}

func (v *anyOfValidator) IsValid(instance *Value) bool {
	for _, branch := range v.branches {
		if v.branchValid(branch, instance) {
			return true
		}
	}
	return false
}

func (v *anyOfValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if v.IsValid(instance) {
		return noError()
	}
	return singleError(newError(KindAnyOf, path, instance,
		"value does not match any of the anyOf schemas",
		nil))
}

func (v *anyOfValidator) Name() string { return "anyOf" }

func compileAnyOf(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	if value.Kind() != KindArray || value.Len() == 0 {
		return nil, false, NewSchemaError("anyOf must be a non-empty array")
	}
	v := &anyOfValidator{}
	for _, sub := range value.Array() {
		validators, err := compileValidators(sub, ctx)
		if err != nil {
			return nil, false, err
		}
		v.branches = append(v.branches, validators)
	}
	return v, true, nil
}
