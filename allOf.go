package jsonschema

type allOfValidator struct {
	branches [][]Validator
}

func (v *allOfValidator) IsValid(instance *Value) bool {
	for _, branch := range v.branches {
		for _, sub := range branch {
			if !sub.IsValid(instance) {
				return false
			}
		}
	}
	return true
}

func (v *allOfValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	var iters []ErrorIterator
	for _, branch := range v.branches {
		for _, sub := range branch {
			iters = append(iters, sub.Validate(instance, path))
		}
	}
	return chain(iters...)
}

func (v *allOfValidator) Name() string { return "allOf" }

func compileAllOf(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	if value.Kind() != KindArray || value.Len() == 0 {
		return nil, false, NewSchemaError("allOf must be a non-empty array")
	}
	v := &allOfValidator{}
	for _, sub := range value.Array() {
		validators, err := compileValidators(sub, ctx)
		if err != nil {
			return nil, false, err
		}
		v.branches = append(v.branches, validators)
	}
	return v, true, nil
}
