package jsonschema

import (
	"fmt"
	"strings"
)

// dependenciesEntry holds one key's overloaded value from "dependencies",
// tagged by which form it took, in the order the schema declared it — a
// single object can interleave array-form and schema-form keys, and that
// declaration order (not a per-form grouping) is what error emission follows.
type dependenciesEntry struct {
	key        string
	isSchema   bool
	required   []string
	validators []Validator
}

// dependenciesValidator implements Draft4-Draft7's "dependencies"
// keyword, which overloads a single object: each value is either an array
// of required property names or a subschema, decided per-key at compile
// time. Draft2019-09 split this into dependentRequired/dependentSchemas;
// this package registers dependencies for Draft4 through Draft7 only.
type dependenciesValidator struct {
	entries []dependenciesEntry
}

func missingFor(instance *Value, required []string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := instance.ObjectGet(name); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

func (v *dependenciesValidator) IsValid(instance *Value) bool {
	if instance.Kind() != KindObject {
		return true
	}
	for _, dep := range v.entries {
		if _, ok := instance.ObjectGet(dep.key); !ok {
			continue
		}
		if dep.isSchema {
			for _, sub := range dep.validators {
				if !sub.IsValid(instance) {
					return false
				}
			}
		} else if len(missingFor(instance, dep.required)) > 0 {
			return false
		}
	}
	return true
}

func (v *dependenciesValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if instance.Kind() != KindObject {
		return noError()
	}
	var iters []ErrorIterator
	for _, dep := range v.entries {
		if _, ok := instance.ObjectGet(dep.key); !ok {
			continue
		}
		if dep.isSchema {
			for _, sub := range dep.validators {
				iters = append(iters, sub.Validate(instance, path))
			}
			continue
		}
		missing := missingFor(instance, dep.required)
		if len(missing) > 0 {
			iters = append(iters, singleError(newError(KindRequired, path, instance,
				fmt.Sprintf("%q requires missing properties: %s", dep.key, strings.Join(missing, ", ")),
				map[string]any{"key": dep.key, "missing": missing})))
		}
	}
	return chain(iters...)
}

func (v *dependenciesValidator) Name() string { return "dependencies" }

func compileDependencies(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	if value.Kind() != KindObject {
		return nil, false, NewSchemaError("dependencies must be an object")
	}
	v := &dependenciesValidator{}
	for _, key := range value.ObjectKeys() {
		entry, _ := value.ObjectGet(key)
		switch entry.Kind() {
		case KindArray:
			var names []string
			for _, item := range entry.Array() {
				if item.Kind() != KindString {
					return nil, false, NewSchemaError("dependencies array entries must be strings")
				}
				names = append(names, item.Str())
			}
			v.entries = append(v.entries, dependenciesEntry{key: key, required: names})
		default:
			validators, err := compileValidators(entry, ctx)
			if err != nil {
				return nil, false, err
			}
			v.entries = append(v.entries, dependenciesEntry{key: key, isSchema: true, validators: validators})
		}
	}
	return v, true, nil
}
