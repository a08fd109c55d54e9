package jsonschema

import (
	"fmt"
	"regexp"
)

// patternValidator matches against Go's RE2 regexp engine. RE2 does not
// support ECMA-262 features like lookaround or backreferences; a pattern
// that relies on those fails to compile here even though it is valid per
// the JSON Schema spec's regular-expression dialect.
type patternValidator struct {
	re  *regexp.Regexp
	src string
}

func (v *patternValidator) IsValid(instance *Value) bool {
	if instance.Kind() != KindString {
		return true
	}
	return v.re.MatchString(instance.Str())
}

func (v *patternValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if v.IsValid(instance) {
		return noError()
	}
	return singleError(newError(KindPattern, path, instance,
		fmt.Sprintf("string does not match pattern %q", v.src),
		map[string]any{"pattern": v.src}))
}

func (v *patternValidator) Name() string { return "pattern" }

func compilePattern(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	if value.Kind() != KindString {
		return nil, false, NewSchemaError("pattern must be a string")
	}
	re, err := regexp.Compile(value.Str())
	if err != nil {
		return nil, false, fmt.Errorf("%w: invalid pattern %q: %s", ErrSchemaError, value.Str(), err)
	}
	return &patternValidator{re: re, src: value.Str()}, true, nil
}
