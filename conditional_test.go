package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIfThenElse(t *testing.T) {
	schema := mustCompileDraft(t, Draft7, `{
		"if": {"properties": {"country": {"const": "US"}}},
		"then": {"required": ["zipCode"]},
		"else": {"required": ["postalCode"]}
	}`)
	assert.True(t, schema.IsValid(mustParse(t, `{"country": "US", "zipCode": "90210"}`)))
	assert.False(t, schema.IsValid(mustParse(t, `{"country": "US"}`)))
	assert.True(t, schema.IsValid(mustParse(t, `{"country": "DE", "postalCode": "10115"}`)))
	assert.False(t, schema.IsValid(mustParse(t, `{"country": "DE"}`)))
}

func TestIfWithoutThenOrElseIsANoOp(t *testing.T) {
	schema := mustCompileDraft(t, Draft7, `{"if": {"type": "string"}}`)
	assert.True(t, schema.IsValid(mustParse(t, `1`)))
	assert.True(t, schema.IsValid(mustParse(t, `"a"`)))
}

func TestIfErrorsDelegateToActiveBranch(t *testing.T) {
	schema := mustCompileDraft(t, Draft7, `{
		"if": {"const": true},
		"then": {"type": "string", "minLength": 5}
	}`)
	result := schema.Validate(mustParse(t, `true`))
	errs := result.Errors()
	if assert.Len(t, errs, 1) {
		assert.Equal(t, KindType, errs[0].Kind)
	}
}
