package jsonschema

// refValidator delegates entirely to the validators its refHandle
// resolves to, which may still be empty at construction time for a
// cyclic reference — see resolver.go for how the cache-before-compile
// ordering guarantees the handle is filled before it is ever evaluated.
type refValidator struct {
	handle *refHandle
}

func (v *refValidator) IsValid(instance *Value) bool {
	for _, sub := range v.handle.resolve() {
		if !sub.IsValid(instance) {
			return false
		}
	}
	return true
}

func (v *refValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	var iters []ErrorIterator
	for _, sub := range v.handle.resolve() {
		iters = append(iters, sub.Validate(instance, path))
	}
	return chain(iters...)
}

func (v *refValidator) Name() string { return "$ref" }

func compileRef(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	if value.Kind() != KindString {
		return nil, false, NewSchemaError("$ref must be a string")
	}
	handle, err := ctx.resolver.resolve(value.Str(), ctx)
	if err != nil {
		return nil, false, err
	}
	return &refValidator{handle: handle}, true, nil
}
