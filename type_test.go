package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType(t *testing.T) {
	tests := []struct {
		name    string
		schema  string
		valid   string
		invalid string
	}{
		{"string", `{"type": "string"}`, `"a"`, `1`},
		{"integer rejects non-integral number", `{"type": "integer"}`, `1`, `1.5`},
		{"number accepts integer", `{"type": "number"}`, `1`, `"a"`},
		{"union type", `{"type": ["string", "null"]}`, `null`, `1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := mustCompile(t, tt.schema)
			assert.True(t, schema.IsValid(mustParse(t, tt.valid)))
			assert.False(t, schema.IsValid(mustParse(t, tt.invalid)))
		})
	}
}

func TestTypeRejectsUnknownTypeName(t *testing.T) {
	_, err := NewCompiler().Compile([]byte(`{"type": "weird"}`))
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaError)
}

func TestEnum(t *testing.T) {
	schema := mustCompile(t, `{"enum": [1, "two", {"three": 3}]}`)
	assert.True(t, schema.IsValid(mustParse(t, `1`)))
	assert.True(t, schema.IsValid(mustParse(t, `"two"`)))
	assert.True(t, schema.IsValid(mustParse(t, `{"three": 3}`)))
	assert.False(t, schema.IsValid(mustParse(t, `"three"`)))
}

func TestEnumRequiresArray(t *testing.T) {
	_, err := NewCompiler().Compile([]byte(`{"enum": "not-an-array"}`))
	assert.Error(t, err)
}

func TestConst(t *testing.T) {
	schema := mustCompileDraft(t, Draft6, `{"const": {"a": [1, 2]}}`)
	assert.True(t, schema.IsValid(mustParse(t, `{"a": [1, 2]}`)))
	assert.False(t, schema.IsValid(mustParse(t, `{"a": [1, 3]}`)))
}

func TestConstAcceptsNull(t *testing.T) {
	schema := mustCompileDraft(t, Draft6, `{"const": null}`)
	assert.True(t, schema.IsValid(mustParse(t, `null`)))
	assert.False(t, schema.IsValid(mustParse(t, `0`)))
}
