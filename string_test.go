package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringKeywords(t *testing.T) {
	tests := []struct {
		name    string
		schema  string
		valid   string
		invalid string
	}{
		{"minLength", `{"minLength": 3}`, `"abc"`, `"ab"`},
		{"maxLength", `{"maxLength": 3}`, `"abc"`, `"abcd"`},
		{"pattern", `{"pattern": "^[a-z]+$"}`, `"abc"`, `"ABC"`},
		{"minLength counts runes not bytes", `{"minLength": 2}`, `"日本"`, `"日"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := mustCompile(t, tt.schema)
			assert.True(t, schema.IsValid(mustParse(t, tt.valid)))
			assert.False(t, schema.IsValid(mustParse(t, tt.invalid)))
		})
	}
}

func TestPatternRejectsInvalidRegexAtCompile(t *testing.T) {
	_, err := NewCompiler().Compile([]byte(`{"pattern": "(unclosed"}`))
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaError)
}

func TestStringKeywordsIgnoreNonStringInstances(t *testing.T) {
	schema := mustCompile(t, `{"minLength": 5, "pattern": "^x"}`)
	assert.True(t, schema.IsValid(mustParse(t, `42`)))
	assert.True(t, schema.IsValid(mustParse(t, `true`)))
}
