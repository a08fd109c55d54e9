package jsonschema

import (
	"fmt"
)

// itemsValidator implements Draft4-Draft2019-09's "items", which overloads
// a single keyword for both forms the later 2020-12 draft split into
// "prefixItems"+"items": an array value means positional (tuple) schemas,
// with "additionalItems" governing array elements beyond the tuple; a
// single schema value means every element shares one schema.
type itemsValidator struct {
	tuple         [][]Validator
	listSchema    []Validator
	additional    []Validator
	hasAdditional bool
}

func (v *itemsValidator) IsValid(instance *Value) bool {
	if instance.Kind() != KindArray {
		return true
	}
	items := instance.Array()
	if v.tuple != nil {
		for i, validators := range v.tuple {
			if i >= len(items) {
				break
			}
			for _, sub := range validators {
				if !sub.IsValid(items[i]) {
					return false
				}
			}
		}
		if v.hasAdditional {
			for i := len(v.tuple); i < len(items); i++ {
				for _, sub := range v.additional {
					if !sub.IsValid(items[i]) {
						return false
					}
				}
			}
		}
		return true
	}
	for _, item := range items {
		for _, sub := range v.listSchema {
			if !sub.IsValid(item) {
				return false
			}
		}
	}
	return true
}

func (v *itemsValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if instance.Kind() != KindArray {
		return noError()
	}
	items := instance.Array()
	var iters []ErrorIterator
	if v.tuple != nil {
		for i, validators := range v.tuple {
			if i >= len(items) {
				break
			}
			childPath := path.WithIndex(i)
			for _, sub := range validators {
				iters = append(iters, sub.Validate(items[i], childPath))
			}
		}
		if v.hasAdditional {
			for i := len(v.tuple); i < len(items); i++ {
				childPath := path.WithIndex(i)
				for _, sub := range v.additional {
					iters = append(iters, sub.Validate(items[i], childPath))
				}
			}
		}
		return chain(iters...)
	}
	for i, item := range items {
		childPath := path.WithIndex(i)
		for _, sub := range v.listSchema {
			iters = append(iters, sub.Validate(item, childPath))
		}
	}
	return chain(iters...)
}

func (v *itemsValidator) Name() string { return "items" }

func compileItems(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	v := &itemsValidator{}

	if value.Kind() == KindArray {
		for i, sub := range value.Array() {
			validators, err := compileValidators(sub, ctx)
			if err != nil {
				return nil, false, fmt.Errorf("items[%d]: %w", i, err)
			}
			v.tuple = append(v.tuple, validators)
		}
		if additional, ok := parent.ObjectGet("additionalItems"); ok {
			validators, err := compileValidators(additional, ctx)
			if err != nil {
				return nil, false, err
			}
			v.additional = validators
			v.hasAdditional = true
		}
		return v, true, nil
	}

	validators, err := compileValidators(value, ctx)
	if err != nil {
		return nil, false, err
	}
	v.listSchema = validators
	return v, true, nil
}
