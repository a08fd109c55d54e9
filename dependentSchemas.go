package jsonschema

type dependentSchemasEntry struct {
	key        string
	validators []Validator
}

type dependentSchemasValidator struct {
	deps []dependentSchemasEntry
}

func (v *dependentSchemasValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if instance.Kind() != KindObject {
		return noError()
	}
	var iters []ErrorIterator
	for _, dep := range v.deps {
		if _, ok := instance.ObjectGet(dep.key); !ok {
			continue
		}
		for _, sub := range dep.validators {
			iters = append(iters, sub.Validate(instance, path))
		}
	}
	return chain(iters...)
}

func (v *dependentSchemasValidator) IsValid(instance *Value) bool {
	if instance.Kind() != KindObject {
		return true
	}
	for _, dep := range v.deps {
		if _, ok := instance.ObjectGet(dep.key); !ok {
			continue
		}
		for _, sub := range dep.validators {
			if !sub.IsValid(instance) {
				return false
			}
		}
	}
	return true
}

func (v *dependentSchemasValidator) Name() string { return "dependentSchemas" }

func compileDependentSchemas(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	if value.Kind() != KindObject {
		return nil, false, NewSchemaError("dependentSchemas must be an object")
	}
	deps := make([]dependentSchemasEntry, 0, len(value.ObjectKeys()))
	for _, key := range value.ObjectKeys() {
		sub, _ := value.ObjectGet(key)
		validators, err := compileValidators(sub, ctx)
		if err != nil {
			return nil, false, err
		}
		deps = append(deps, dependentSchemasEntry{key: key, validators: validators})
	}
	return &dependentSchemasValidator{deps: deps}, true, nil
}
