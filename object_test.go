package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectSizeKeywords(t *testing.T) {
	tests := []struct {
		name    string
		schema  string
		valid   string
		invalid string
	}{
		{"minProperties", `{"minProperties": 2}`, `{"a": 1, "b": 2}`, `{"a": 1}`},
		{"maxProperties", `{"maxProperties": 1}`, `{"a": 1}`, `{"a": 1, "b": 2}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := mustCompile(t, tt.schema)
			assert.True(t, schema.IsValid(mustParse(t, tt.valid)))
			assert.False(t, schema.IsValid(mustParse(t, tt.invalid)))
		})
	}
}

func TestRequired(t *testing.T) {
	schema := mustCompile(t, `{"required": ["name", "age"]}`)
	assert.True(t, schema.IsValid(mustParse(t, `{"name": "a", "age": 1}`)))
	assert.False(t, schema.IsValid(mustParse(t, `{"name": "a"}`)))

	result := schema.Validate(mustParse(t, `{}`))
	errs := result.Errors()
	if assert.Len(t, errs, 1) {
		assert.Equal(t, KindRequired, errs[0].Kind)
		assert.ElementsMatch(t, []string{"name", "age"}, errs[0].Params["missing"])
	}
}

func TestRequiredDedupsNames(t *testing.T) {
	schema := mustCompile(t, `{"required": ["name", "name"]}`)
	result := schema.Validate(mustParse(t, `{}`))
	assert.Equal(t, []string{"name"}, result.Errors()[0].Params["missing"])
}

func TestPropertiesPatternPropertiesAdditionalProperties(t *testing.T) {
	schema := mustCompile(t, `{
		"properties": {"name": {"type": "string"}},
		"patternProperties": {"^x-": {"type": "boolean"}},
		"additionalProperties": false
	}`)
	assert.True(t, schema.IsValid(mustParse(t, `{"name": "a", "x-flag": true}`)))
	assert.False(t, schema.IsValid(mustParse(t, `{"name": "a", "extra": 1}`)))
	assert.False(t, schema.IsValid(mustParse(t, `{"name": 1}`)))
	assert.False(t, schema.IsValid(mustParse(t, `{"x-flag": "not a bool"}`)))
}

func TestAdditionalPropertiesSchemaForm(t *testing.T) {
	schema := mustCompile(t, `{
		"properties": {"name": {"type": "string"}},
		"additionalProperties": {"type": "number"}
	}`)
	assert.True(t, schema.IsValid(mustParse(t, `{"name": "a", "score": 5}`)))
	assert.False(t, schema.IsValid(mustParse(t, `{"name": "a", "score": "five"}`)))
}

func TestPropertyNames(t *testing.T) {
	schema := mustCompileDraft(t, Draft6, `{"propertyNames": {"pattern": "^[a-z]+$"}}`)
	assert.True(t, schema.IsValid(mustParse(t, `{"abc": 1}`)))
	assert.False(t, schema.IsValid(mustParse(t, `{"ABC": 1}`)))
}

func TestDependentRequired(t *testing.T) {
	schema := mustCompileDraft(t, Draft2019_09, `{
		"dependentRequired": {"creditCard": ["billingAddress"]}
	}`)
	assert.True(t, schema.IsValid(mustParse(t, `{"creditCard": "1234", "billingAddress": "x"}`)))
	assert.False(t, schema.IsValid(mustParse(t, `{"creditCard": "1234"}`)))
	assert.True(t, schema.IsValid(mustParse(t, `{}`)))
}

func TestDependentSchemas(t *testing.T) {
	schema := mustCompileDraft(t, Draft2019_09, `{
		"dependentSchemas": {"creditCard": {"required": ["billingAddress"]}}
	}`)
	assert.True(t, schema.IsValid(mustParse(t, `{"creditCard": "1234", "billingAddress": "x"}`)))
	assert.False(t, schema.IsValid(mustParse(t, `{"creditCard": "1234"}`)))
}

func TestDependenciesArrayForm(t *testing.T) {
	schema := mustCompileDraft(t, Draft7, `{
		"dependencies": {"creditCard": ["billingAddress"]}
	}`)
	assert.True(t, schema.IsValid(mustParse(t, `{"creditCard": "1234", "billingAddress": "x"}`)))
	assert.False(t, schema.IsValid(mustParse(t, `{"creditCard": "1234"}`)))
}

func TestDependenciesSchemaForm(t *testing.T) {
	schema := mustCompileDraft(t, Draft7, `{
		"dependencies": {"creditCard": {"properties": {"creditCard": {"type": "string"}}, "required": ["billingAddress"]}}
	}`)
	assert.True(t, schema.IsValid(mustParse(t, `{"creditCard": "1234", "billingAddress": "x"}`)))
	assert.False(t, schema.IsValid(mustParse(t, `{"creditCard": "1234"}`)))
	assert.True(t, schema.IsValid(mustParse(t, `{}`)))
}
