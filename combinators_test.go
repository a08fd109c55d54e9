package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllOf(t *testing.T) {
	schema := mustCompile(t, `{"allOf": [{"type": "number"}, {"minimum": 5}]}`)
	assert.True(t, schema.IsValid(mustParse(t, `10`)))
	assert.False(t, schema.IsValid(mustParse(t, `3`)))
	assert.False(t, schema.IsValid(mustParse(t, `"nope"`)))
}

func TestAnyOf(t *testing.T) {
	schema := mustCompile(t, `{"anyOf": [{"type": "string"}, {"type": "number"}]}`)
	assert.True(t, schema.IsValid(mustParse(t, `"a"`)))
	assert.True(t, schema.IsValid(mustParse(t, `1`)))
	assert.False(t, schema.IsValid(mustParse(t, `true`)))
}

func TestOneOf(t *testing.T) {
	schema := mustCompile(t, `{"oneOf": [
		{"type": "number", "minimum": 0},
		{"type": "number", "multipleOf": 5}
	]}`)
	assert.False(t, schema.IsValid(mustParse(t, `"text"`))) // matches neither branch
	assert.False(t, schema.IsValid(mustParse(t, `5`)))      // matches both branches
	assert.True(t, schema.IsValid(mustParse(t, `3`)))

	result := schema.Validate(mustParse(t, `5`))
	errs := result.Errors()
	if assert.Len(t, errs, 1) {
		assert.Equal(t, KindOneOf, errs[0].Kind)
		assert.Equal(t, 2, errs[0].Params["matches"])
	}
}

func TestNot(t *testing.T) {
	schema := mustCompile(t, `{"not": {"type": "string"}}`)
	assert.True(t, schema.IsValid(mustParse(t, `1`)))
	assert.False(t, schema.IsValid(mustParse(t, `"a"`)))
}

func TestBooleanSchemas(t *testing.T) {
	trueSchema := mustCompile(t, `true`)
	assert.True(t, trueSchema.IsValid(mustParse(t, `"anything"`)))

	falseSchema := mustCompile(t, `false`)
	assert.False(t, falseSchema.IsValid(mustParse(t, `"anything"`)))

	result := falseSchema.Validate(mustParse(t, `1`))
	assert.Equal(t, KindFalseSchema, result.Errors()[0].Kind)
}
