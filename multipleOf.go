package jsonschema

import (
	"fmt"
	"math"
)

type multipleOfValidator struct {
	divisor float64
}

func (v *multipleOfValidator) IsValid(instance *Value) bool {
	if instance.Kind() != KindNumber {
		return true
	}
	quotient := instance.Float64() / v.divisor
	return math.Abs(quotient-math.Round(quotient)) < 1e-9
}

func (v *multipleOfValidator) Validate(instance *Value, path *InstancePath) ErrorIterator {
	if v.IsValid(instance) {
		return noError()
	}
	return singleError(newError(KindMultipleOf, path, instance,
		fmt.Sprintf("value %v is not a multiple of %v", instance.Float64(), v.divisor),
		map[string]any{"divisor": v.divisor}))
}

func (v *multipleOfValidator) Name() string { return "multipleOf" }

func compileMultipleOf(parent, value *Value, ctx *compileContext) (Validator, bool, error) {
	if value.Kind() != KindNumber || value.Float64() <= 0 {
		return nil, false, NewSchemaError("multipleOf must be a positive number")
	}
	return &multipleOfValidator{divisor: value.Float64()}, true, nil
}
