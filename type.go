package jsonschema

import (
	"fmt"
	"strings"
)

type typeValidator struct{ types []string }

func (v *typeValidator) matches(instance *Value) bool {
	actual := jsonTypeName(instance)
	for _, t := range v.types {
		if t == actual {
			return true
		}
		if t == "number" && actual == "integer" {
			return true
		}
	}
	return false
}

func (v *typeValidator) IsValid(instance *Value) bool { return v.matches(instance) }

func (v *typeValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if v.matches(instance) {
		return noError()
	}
	return singleError(newError(KindType, path, instance,
		fmt.Sprintf("value is %s but should be %s", jsonTypeName(instance), strings.Join(v.types, " or ")),
		map[string]any{"expected": v.types, "actual": jsonTypeName(instance)}))
}

func (v *typeValidator) Name() string { return "type" }

// jsonTypeName returns the JSON Schema type name for instance, reporting
// "integer" for a Number whose magnitude is exactly integral.
func jsonTypeName(instance *Value) string {
	switch instance.Kind() {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		if instance.IsInteger() {
			return "integer"
		}
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

func compileType(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	var types []string
	switch value.Kind() {
	case KindString:
		types = []string{value.Str()}
	case KindArray:
		for _, item := range value.Array() {
			if item.Kind() != KindString {
				return nil, false, NewSchemaError("type array items must be strings")
			}
			types = append(types, item.Str())
		}
	default:
		return nil, false, NewSchemaError("type must be a string or array of strings")
	}
	for _, t := range types {
		if !validTypeName(t) {
			return nil, false, NewSchemaError(fmt.Sprintf("unknown type %q", t))
		}
	}
	return &typeValidator{types: types}, true, nil
}

func validTypeName(t string) bool {
	switch t {
	case "null", "boolean", "object", "array", "number", "string", "integer":
		return true
	default:
		return false
	}
}
