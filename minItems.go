package jsonschema

import "fmt"

type minItemsValidator struct {
	limit int
}

func (v *minItemsValidator) IsValid(instance *Value) bool {
	if instance.Kind() != KindArray {
		return true
	}
	return instance.Len() >= v.limit
}

func (v *minItemsValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if v.IsValid(instance) {
		return noError()
	}
	return singleError(newError(KindMinItems, path, instance,
		fmt.Sprintf("array has fewer than %d items", v.limit),
		map[string]any{"limit": v.limit}))
}

func (v *minItemsValidator) Name() string { return "minItems" }

func compileMinItems(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	n, ok := positiveIntFromValue(value)
	if !ok {
		return nil, false, NewSchemaError("minItems must be a non-negative integer")
	}
	return &minItemsValidator{limit: n}, true, nil
}
