package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericKeywords(t *testing.T) {
	tests := []struct {
		name    string
		schema  string
		valid   string
		invalid string
	}{
		{"minimum", `{"minimum": 5}`, `5`, `4.9`},
		{"maximum", `{"maximum": 5}`, `5`, `5.1`},
		{"exclusiveMinimum draft6", `{"exclusiveMinimum": 5}`, `5.1`, `5`},
		{"exclusiveMaximum draft6", `{"exclusiveMaximum": 5}`, `4.9`, `5`},
		{"multipleOf", `{"multipleOf": 2.5}`, `7.5`, `7`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := mustCompile(t, tt.schema)
			assert.True(t, schema.IsValid(mustParse(t, tt.valid)))
			assert.False(t, schema.IsValid(mustParse(t, tt.invalid)))
		})
	}
}

func TestDraft4ExclusiveMinimumIsBooleanSibling(t *testing.T) {
	schema := mustCompileDraft(t, Draft4, `{"minimum": 5, "exclusiveMinimum": true}`)
	assert.True(t, schema.IsValid(mustParse(t, `5.1`)))
	assert.False(t, schema.IsValid(mustParse(t, `5`)))

	schema = mustCompileDraft(t, Draft4, `{"minimum": 5, "exclusiveMinimum": false}`)
	assert.True(t, schema.IsValid(mustParse(t, `5`)))
}

func TestMultipleOfRejectsNonPositiveDivisor(t *testing.T) {
	_, err := NewCompiler().Compile([]byte(`{"multipleOf": 0}`))
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaError)
}

func TestMinimumErrorReporting(t *testing.T) {
	schema := mustCompile(t, `{"minimum": 10}`)
	result := schema.Validate(mustParse(t, `5`))
	assert.False(t, result.Valid())
	errs := result.Errors()
	if assert.Len(t, errs, 1) {
		assert.Equal(t, KindMinimum, errs[0].Kind)
		assert.Equal(t, float64(10), errs[0].Params["limit"])
	}
}
