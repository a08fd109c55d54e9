package jsonschema

// alwaysValidValidator implements the "true" schema: every instance
// passes.
type alwaysValidValidator struct{}

func (alwaysValidValidator) IsValid(*Value) bool { return true }

func (alwaysValidValidator) Validate(*Value, *InstancePath) ErrorIterator { return noError() }

func (alwaysValidValidator) Name() string { return "true" }

// alwaysInvalidValidator implements the "false" schema: every instance
// fails.
type alwaysInvalidValidator struct{}

func (alwaysInvalidValidator) IsValid(*Value) bool { return false }

func (alwaysInvalidValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	return singleError(newError(KindFalseSchema, path, instance, "schema is always invalid", nil))
}

func (alwaysInvalidValidator) Name() string { return "false" }
