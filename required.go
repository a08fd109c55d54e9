package jsonschema

import (
	"fmt"
	"strings"
)

type requiredValidator struct {
	names []string
}

func (v *requiredValidator) missing(instance *Value) []string {
	if instance.Kind() != KindObject {
		return nil
	}
	var missing []string
	for _, name := range v.names {
		if _, ok := instance.ObjectGet(name); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

func (v *requiredValidator) IsValid(instance *Value) bool {
	return len(v.missing(instance)) == 0
}

func (v *requiredValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	missing := v.missing(instance)
	if len(missing) == 0 {
		return noError()
	}
	return singleError(newError(KindRequired, path, instance,
		fmt.Sprintf("missing required properties: %s", strings.Join(missing, ", ")),
		map[string]any{"missing": missing}))
}

func (v *requiredValidator) Name() string { return "required" }

func compileRequired(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	if value.Kind() != KindArray {
		return nil, false, NewSchemaError("required must be an array of strings")
	}
	seen := make(map[string]bool, value.Len())
	var names []string
	for _, item := range value.Array() {
		if item.Kind() != KindString {
			return nil, false, NewSchemaError("required items must be strings")
		}
		if seen[item.Str()] {
			continue
		}
		seen[item.Str()] = true
		names = append(names, item.Str())
	}
	return &requiredValidator{names: names}, true, nil
}
