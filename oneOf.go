package jsonschema

import "fmt"

type oneOfValidator struct {
	branches [][]Validator
}

func (v *oneOfValidator) branchValid(branch []Validator, instance *Value) bool {
	for _, sub := range branch {
		if !sub.IsValid(instance) {
			return false
		}
	}
	return true
}

func (v *oneOfValidator) matchCount(instance *Value) int {
	count := 0
	for _, branch := range v.branches {
		if v.branchValid(branch, instance) {
			count++
		}
	}
	return count
}

func (v *oneOfValidator) IsValid(instance *Value) bool {
	return v.matchCount(instance) == 1
}

func (v *oneOfValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	count := v.matchCount(instance)
	if count == 1 {
		return noError()
	}
	return singleError(newError(KindOneOf, path, instance,
		fmt.Sprintf("value matches %d schemas, expected exactly one", count),
		map[string]any{"matches": count}))
}

func (v *oneOfValidator) Name() string { return "oneOf" }

func compileOneOf(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	if value.Kind() != KindArray || value.Len() == 0 {
		return nil, false, NewSchemaError("oneOf must be a non-empty array")
	}
	v := &oneOfValidator{}
	for _, sub := range value.Array() {
		validators, err := compileValidators(sub, ctx)
		if err != nil {
			return nil, false, err
		}
		v.branches = append(v.branches, validators)
	}
	return v, true, nil
}
