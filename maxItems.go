package jsonschema

import "fmt"

type maxItemsValidator struct {
	limit int
}

func (v *maxItemsValidator) IsValid(instance *Value) bool {
	if instance.Kind() != KindArray {
		return true
	}
	return instance.Len() <= v.limit
}

func (v *maxItemsValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if v.IsValid(instance) {
		return noError()
	}
	return singleError(newError(KindMaxItems, path, instance,
		fmt.Sprintf("array has more than %d items", v.limit),
		map[string]any{"limit": v.limit}))
}

func (v *maxItemsValidator) Name() string { return "maxItems" }

func compileMaxItems(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	n, ok := positiveIntFromValue(value)
	if !ok {
		return nil, false, NewSchemaError("maxItems must be a non-negative integer")
	}
	return &maxItemsValidator{limit: n}, true, nil
}
