package jsonschema

import "fmt"

// FormatFunc reports whether instance conforms to a named format. It
// always returns true for a non-string instance: format only constrains
// strings, per every draft's own wording.
type FormatFunc func(instance *Value) bool

type formatValidator struct {
	name   string
	fn     FormatFunc
	assert bool
}

func (v *formatValidator) IsValid(instance *Value) bool {
	if v.fn == nil || !v.assert {
		return true
	}
	return v.fn(instance)
}

func (v *formatValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if v.IsValid(instance) {
		return noError()
	}
	return singleError(newError(KindFormat, path, instance,
		fmt.Sprintf("value does not match format %q", v.name),
		map[string]any{"format": v.name}))
}

func (v *formatValidator) Name() string { return "format" }

// compileFormat looks up name first among the compiler's custom formats
// (which start pre-seeded with builtinFormats), falling back to a no-op
// validator if the format is unknown — format is annotation-only unless
// WithAssertFormat(true) was set, and an unknown format never fails
// validation even then.
func compileFormat(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	if value.Kind() != KindString {
		return nil, false, NewSchemaError("format must be a string")
	}
	name := value.Str()
	fn, _ := ctx.compiler.lookupFormat(name)
	return &formatValidator{name: name, fn: fn, assert: ctx.compiler.assertFormat}, true, nil
}
