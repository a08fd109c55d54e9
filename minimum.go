package jsonschema

type minimumValidator struct {
	limit     float64
	exclusive bool
}

func (v *minimumValidator) IsValid(instance *Value) bool {
	if instance.Kind() != KindNumber {
		return true
	}
	n := instance.Float64()
	if v.exclusive {
		return n > v.limit
	}
	return n >= v.limit
}

func (v *minimumValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if v.IsValid(instance) {
		return noError()
	}
	kind := KindMinimum
	verb := "greater than or equal to"
	if v.exclusive {
		kind = KindExclusiveMinimum
		verb = "strictly greater than"
	}
	return singleError(newError(kind, path, instance,
		sprintfBound(instance, verb, v.limit),
		map[string]any{"limit": v.limit}))
}

func (v *minimumValidator) Name() string { return "minimum" }

// compileMinimum is draft-aware: under Draft4, "exclusiveMinimum" is a
// boolean sibling that merely changes whether "minimum" is an inclusive or
// exclusive bound. Under Draft6+ it is an independent numeric keyword with
// its own compiler in exclusiveMinimum.go.
func compileMinimum(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	if value.Kind() != KindNumber {
		return nil, false, NewSchemaError("minimum must be a number")
	}
	exclusive := false
	if ctx.draft == Draft4 {
		if sibling, ok := parent.ObjectGet("exclusiveMinimum"); ok && sibling.Kind() == KindBool {
			exclusive = sibling.Bool()
		}
	}
	return &minimumValidator{limit: value.Float64(), exclusive: exclusive}, true, nil
}
