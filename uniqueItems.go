package jsonschema

type uniqueItemsValidator struct{}

func (v *uniqueItemsValidator) firstDuplicate(instance *Value) (int, int, bool) {
	items := instance.Array()
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if Equal(items[i], items[j]) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func (v *uniqueItemsValidator) IsValid(instance *Value) bool {
	if instance.Kind() != KindArray {
		return true
	}
	_, _, dup := v.firstDuplicate(instance)
	return !dup
}

func (v *uniqueItemsValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if instance.Kind() != KindArray {
		return noError()
	}
	i, j, dup := v.firstDuplicate(instance)
	if !dup {
		return noError()
	}
	return singleError(newError(KindUniqueItems, path, instance,
		"array items must be unique",
		map[string]any{"first": i, "second": j}))
}

func (v *uniqueItemsValidator) Name() string { return "uniqueItems" }

func compileUniqueItems(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	if value.Kind() != KindBool {
		return nil, false, NewSchemaError("uniqueItems must be a boolean")
	}
	if !value.Bool() {
		return nil, false, nil
	}
	return &uniqueItemsValidator{}, true, nil
}
