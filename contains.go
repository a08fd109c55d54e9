package jsonschema

import "fmt"

// containsValidator implements "contains" together with its siblings
// "minContains"/"maxContains", combined into one validator the same way
// properties/patternProperties/additionalProperties are, since all three
// share one pass over the array counting schema matches.
type containsValidator struct {
	schema      []Validator
	hasMin      bool
	min         int
	hasMax      bool
	max         int
}

func (v *containsValidator) countMatches(instance *Value) int {
	count := 0
	for _, item := range instance.Array() {
		matched := true
		for _, sub := range v.schema {
			if !sub.IsValid(item) {
				matched = false
				break
			}
		}
		if matched {
			count++
		}
	}
	return count
}

// valid applies the documented bug-compatible rule: an explicit
// "maxContains" alone (no "minContains" present) still requires at least
// one match, matching the upstream Rust contains keyword's behavior rather
// than the JSON Schema spec's literal text.
func (v *containsValidator) valid(count int) bool {
	min := 1
	if v.hasMin {
		min = v.min
	}
	if v.hasMax && !v.hasMin && count == 0 {
		return false
	}
	if count < min {
		return false
	}
	if v.hasMax && count > v.max {
		return false
	}
	return true
}

func (v *containsValidator) IsValid(instance *Value) bool {
	if instance.Kind() != KindArray {
		return true
	}
	return v.valid(v.countMatches(instance))
}

func (v *containsValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if instance.Kind() != KindArray {
		return noError()
	}
	count := v.countMatches(instance)
	if v.valid(count) {
		return noError()
	}
	msg := fmt.Sprintf("array does not contain enough matching items (found %d)", count)
	if v.hasMax && count > v.max {
		msg = fmt.Sprintf("array contains too many matching items (found %d)", count)
	}
	return singleError(newError(KindContains, path, instance,
		msg,
		map[string]any{"count": count, "minContains": v.min, "maxContains": v.max}))
}

func (v *containsValidator) Name() string { return "contains" }

func compileContainsGroup(schema *Value, ctx *compileContext) (Validator, bool, error) {
	containsSchema, ok := schema.ObjectGet("contains")
	if !ok {
		return nil, false, nil
	}
	validators, err := compileValidators(containsSchema, ctx)
	if err != nil {
		return nil, false, err
	}
	v := &containsValidator{schema: validators}

	if minVal, ok := schema.ObjectGet("minContains"); ok && ctx.draft >= Draft2019_09 {
		n, ok := nonNegativeIntFromValue(minVal)
		if !ok {
			return nil, false, NewSchemaError("minContains must be a non-negative integer")
		}
		v.hasMin = true
		v.min = n
	}
	if maxVal, ok := schema.ObjectGet("maxContains"); ok && ctx.draft >= Draft2019_09 {
		n, ok := nonNegativeIntFromValue(maxVal)
		if !ok {
			return nil, false, NewSchemaError("maxContains must be a non-negative integer")
		}
		v.hasMax = true
		v.max = n
	}

	return v, true, nil
}
