package jsonschema

import "fmt"

type maxPropertiesValidator struct {
	limit int
}

func (v *maxPropertiesValidator) IsValid(instance *Value) bool {
	if instance.Kind() != KindObject {
		return true
	}
	return len(instance.ObjectKeys()) <= v.limit
}

func (v *maxPropertiesValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if v.IsValid(instance) {
		return noError()
	}
	return singleError(newError(KindMaxProperties, path, instance,
		fmt.Sprintf("object has more than %d properties", v.limit),
		map[string]any{"limit": v.limit}))
}

func (v *maxPropertiesValidator) Name() string { return "maxProperties" }

func compileMaxProperties(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	n, ok := positiveIntFromValue(value)
	if !ok {
		return nil, false, NewSchemaError("maxProperties must be a non-negative integer")
	}
	return &maxPropertiesValidator{limit: n}, true, nil
}
