package jsonschema

import (
	"fmt"
	"strings"
)

type dependentRequiredEntry struct {
	key      string
	required []string
}

type dependentRequiredValidator struct {
	deps []dependentRequiredEntry
}

func (v *dependentRequiredValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if instance.Kind() != KindObject {
		return noError()
	}
	var iters []ErrorIterator
	for _, dep := range v.deps {
		if _, ok := instance.ObjectGet(dep.key); !ok {
			continue
		}
		var missing []string
		for _, name := range dep.required {
			if _, ok := instance.ObjectGet(name); !ok {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			iters = append(iters, singleError(newError(KindRequired, path, instance,
				fmt.Sprintf("%q requires missing properties: %s", dep.key, strings.Join(missing, ", ")),
				map[string]any{"key": dep.key, "missing": missing})))
		}
	}
	return chain(iters...)
}

func (v *dependentRequiredValidator) IsValid(instance *Value) bool {
	if instance.Kind() != KindObject {
		return true
	}
	for _, dep := range v.deps {
		if _, ok := instance.ObjectGet(dep.key); !ok {
			continue
		}
		for _, name := range dep.required {
			if _, ok := instance.ObjectGet(name); !ok {
				return false
			}
		}
	}
	return true
}

func (v *dependentRequiredValidator) Name() string { return "dependentRequired" }

func compileDependentRequired(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	if value.Kind() != KindObject {
		return nil, false, NewSchemaError("dependentRequired must be an object")
	}
	deps := make([]dependentRequiredEntry, 0, len(value.ObjectKeys()))
	for _, key := range value.ObjectKeys() {
		arr, _ := value.ObjectGet(key)
		if arr.Kind() != KindArray {
			return nil, false, NewSchemaError("dependentRequired values must be arrays of strings")
		}
		var names []string
		seen := make(map[string]bool, len(arr.Array()))
		for _, item := range arr.Array() {
			if item.Kind() != KindString {
				return nil, false, NewSchemaError("dependentRequired arrays must contain strings")
			}
			name := item.Str()
			if seen[name] {
				return nil, false, NewSchemaError(fmt.Sprintf("dependentRequired[%q] has duplicate entry %q", key, name))
			}
			seen[name] = true
			names = append(names, name)
		}
		deps = append(deps, dependentRequiredEntry{key: key, required: names})
	}
	return &dependentRequiredValidator{deps: deps}, true, nil
}
