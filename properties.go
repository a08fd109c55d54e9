package jsonschema

import "fmt"

// compiledProperties is the combined validator for "properties",
// "patternProperties", and "additionalProperties": which properties
// additionalProperties sees depends on what the other two matched, so
// compileObjectSchema dispatches all three keywords through this single
// validator instead of three independent table entries.
type compiledProperties struct {
	named         []compiledNamedProperty
	namedIndex    map[string]int
	patterns      []compiledPatternProperty
	additional    []Validator
	hasAdditional bool
}

// compiledNamedProperty pairs a "properties" entry with its compiled
// subschema, kept in the schema's own declared key order rather than a bare
// map so error emission can follow that order instead of the instance's.
type compiledNamedProperty struct {
	name       string
	validators []Validator
}

type compiledPatternProperty struct {
	validator *patternValidator
	schema    []Validator
}

func (v *compiledProperties) matchedKeys(key string) bool {
	if _, ok := v.namedIndex[key]; ok {
		return true
	}
	for _, p := range v.patterns {
		if p.validator.re.MatchString(key) {
			return true
		}
	}
	return false
}

func (v *compiledProperties) IsValid(instance *Value) bool {
	if instance.Kind() != KindObject {
		return true
	}
	for _, np := range v.named {
		child, ok := instance.ObjectGet(np.name)
		if !ok {
			continue
		}
		for _, sub := range np.validators {
			if !sub.IsValid(child) {
				return false
			}
		}
	}
	for _, key := range instance.ObjectKeys() {
		child, _ := instance.ObjectGet(key)
		_, matched := v.namedIndex[key]
		for _, p := range v.patterns {
			if !p.validator.re.MatchString(key) {
				continue
			}
			matched = true
			for _, sub := range p.schema {
				if !sub.IsValid(child) {
					return false
				}
			}
		}
		if !matched && v.hasAdditional {
			for _, sub := range v.additional {
				if !sub.IsValid(child) {
					return false
				}
			}
		}
	}
	return true
}

// Validate drives the schema's own "properties" key order first (skipping
// names the instance doesn't have), then walks all of the instance's keys
// for patternProperties, and for additionalProperties on keys neither of the
// other two keywords matched, building each key's iterators
// lazily rather than all up front: an object with thousands of keys but an
// error on the first one never compiles iterators for the rest.
func (v *compiledProperties) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if instance.Kind() != KindObject {
		return noError()
	}
	namedIdx := 0
	restKeys := instance.ObjectKeys()
	restIdx := 0
	var current ErrorIterator

	var advance func() (*ValidationError, bool)
	advance = func() (*ValidationError, bool) {
		for {
			if current != nil {
				if e, ok := current.Next(); ok {
					return e, true
				}
				current = nil
			}

			for namedIdx < len(v.named) {
				np := v.named[namedIdx]
				namedIdx++
				child, ok := instance.ObjectGet(np.name)
				if !ok {
					continue
				}
				childPath := path.WithProperty(np.name)
				var iters []ErrorIterator
				for _, sub := range np.validators {
					iters = append(iters, sub.Validate(child, childPath))
				}
				current = chain(iters...)
				break
			}
			if current != nil {
				continue
			}

			var key string
			found := false
			for restIdx < len(restKeys) {
				key = restKeys[restIdx]
				restIdx++
				found = true
				break
			}
			if !found {
				return nil, false
			}

			child, _ := instance.ObjectGet(key)
			childPath := path.WithProperty(key)
			_, matched := v.namedIndex[key]
			var iters []ErrorIterator
			for _, p := range v.patterns {
				if !p.validator.re.MatchString(key) {
					continue
				}
				matched = true
				for _, sub := range p.schema {
					iters = append(iters, sub.Validate(child, childPath))
				}
			}
			if !matched && v.hasAdditional {
				for _, sub := range v.additional {
					iters = append(iters, sub.Validate(child, childPath))
				}
			}
			current = chain(iters...)
		}
	}
	return &funcIterator{next: advance}
}

func (v *compiledProperties) Name() string { return "properties" }

func compilePropertiesGroup(schema *Value, ctx *compileContext) (Validator, bool, error) {
	v := &compiledProperties{namedIndex: map[string]int{}}

	if props, ok := schema.ObjectGet("properties"); ok {
		if props.Kind() != KindObject {
			return nil, false, NewSchemaError("properties must be an object")
		}
		for _, key := range props.ObjectKeys() {
			sub, _ := props.ObjectGet(key)
			validators, err := compileValidators(sub, ctx)
			if err != nil {
				return nil, false, err
			}
			v.namedIndex[key] = len(v.named)
			v.named = append(v.named, compiledNamedProperty{name: key, validators: validators})
		}
	}

	if patternProps, ok := schema.ObjectGet("patternProperties"); ok {
		if patternProps.Kind() != KindObject {
			return nil, false, NewSchemaError("patternProperties must be an object")
		}
		for _, pattern := range patternProps.ObjectKeys() {
			sub, _ := patternProps.ObjectGet(pattern)
			reValidator, _, err := compilePattern(schema, NewString(pattern), ctx)
			if err != nil {
				return nil, false, fmt.Errorf("patternProperties: %w", err)
			}
			validators, err := compileValidators(sub, ctx)
			if err != nil {
				return nil, false, err
			}
			v.patterns = append(v.patterns, compiledPatternProperty{
				validator: reValidator.(*patternValidator),
				schema:    validators,
			})
		}
	}

	if additional, ok := schema.ObjectGet("additionalProperties"); ok {
		validators, err := compileValidators(additional, ctx)
		if err != nil {
			return nil, false, err
		}
		v.additional = validators
		v.hasAdditional = true
	}

	if len(v.named) == 0 && len(v.patterns) == 0 && !v.hasAdditional {
		return nil, false, nil
	}
	return v, true, nil
}
