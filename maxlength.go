package jsonschema

import (
	"fmt"
	"unicode/utf8"
)

type maxLengthValidator struct {
	limit int
}

func (v *maxLengthValidator) IsValid(instance *Value) bool {
	if instance.Kind() != KindString {
		return true
	}
	return utf8.RuneCountInString(instance.Str()) <= v.limit
}

func (v *maxLengthValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if v.IsValid(instance) {
		return noError()
	}
	return singleError(newError(KindMaxLength, path, instance,
		fmt.Sprintf("string is longer than maximum length %d", v.limit),
		map[string]any{"limit": v.limit}))
}

func (v *maxLengthValidator) Name() string { return "maxLength" }

func compileMaxLength(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	n, ok := positiveIntFromValue(value)
	if !ok {
		return nil, false, NewSchemaError("maxLength must be a non-negative integer")
	}
	return &maxLengthValidator{limit: n}, true, nil
}
