package jsonschema

import "fmt"

type maximumValidator struct {
	limit     float64
	exclusive bool
}

func (v *maximumValidator) IsValid(instance *Value) bool {
	if instance.Kind() != KindNumber {
		return true
	}
	n := instance.Float64()
	if v.exclusive {
		return n < v.limit
	}
	return n <= v.limit
}

func (v *maximumValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if v.IsValid(instance) {
		return noError()
	}
	kind := KindMaximum
	verb := "less than or equal to"
	if v.exclusive {
		kind = KindExclusiveMaximum
		verb = "strictly less than"
	}
	return singleError(newError(kind, path, instance,
		sprintfBound(instance, verb, v.limit),
		map[string]any{"limit": v.limit}))
}

func (v *maximumValidator) Name() string { return "maximum" }

func compileMaximum(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	if value.Kind() != KindNumber {
		return nil, false, NewSchemaError("maximum must be a number")
	}
	exclusive := false
	if ctx.draft == Draft4 {
		if sibling, ok := parent.ObjectGet("exclusiveMaximum"); ok && sibling.Kind() == KindBool {
			exclusive = sibling.Bool()
		}
	}
	return &maximumValidator{limit: value.Float64(), exclusive: exclusive}, true, nil
}

func sprintfBound(instance *Value, verb string, limit float64) string {
	return fmt.Sprintf("value %v must be %s %v", instance.Float64(), verb, limit)
}
