package jsonschema

import (
	"fmt"
	"unicode/utf8"
)

type minLengthValidator struct {
	limit int
}

func (v *minLengthValidator) IsValid(instance *Value) bool {
	if instance.Kind() != KindString {
		return true
	}
	return utf8.RuneCountInString(instance.Str()) >= v.limit
}

func (v *minLengthValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if v.IsValid(instance) {
		return noError()
	}
	return singleError(newError(KindMinLength, path, instance,
		fmt.Sprintf("string is shorter than minimum length %d", v.limit),
		map[string]any{"limit": v.limit}))
}

func (v *minLengthValidator) Name() string { return "minLength" }

func compileMinLength(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	n, ok := positiveIntFromValue(value)
	if !ok {
		return nil, false, NewSchemaError("minLength must be a non-negative integer")
	}
	return &minLengthValidator{limit: n}, true, nil
}
