package jsonschema

import "fmt"

type minPropertiesValidator struct {
	limit int
}

func (v *minPropertiesValidator) IsValid(instance *Value) bool {
	if instance.Kind() != KindObject {
		return true
	}
	return len(instance.ObjectKeys()) >= v.limit
}

func (v *minPropertiesValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if v.IsValid(instance) {
		return noError()
	}
	return singleError(newError(KindMinProperties, path, instance,
		fmt.Sprintf("object has fewer than %d properties", v.limit),
		map[string]any{"limit": v.limit}))
}

func (v *minPropertiesValidator) Name() string { return "minProperties" }

func compileMinProperties(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	n, ok := positiveIntFromValue(value)
	if !ok {
		return nil, false, NewSchemaError("minProperties must be a non-negative integer")
	}
	return &minPropertiesValidator{limit: n}, true, nil
}
