package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefSameDocumentPointer(t *testing.T) {
	schema := mustCompile(t, `{
		"$defs": {"positiveInt": {"type": "integer", "minimum": 1}},
		"properties": {"count": {"$ref": "#/$defs/positiveInt"}}
	}`)
	assert.True(t, schema.IsValid(mustParse(t, `{"count": 3}`)))
	assert.False(t, schema.IsValid(mustParse(t, `{"count": 0}`)))
	assert.False(t, schema.IsValid(mustParse(t, `{"count": "three"}`)))
}

func TestRefRemoteDocument(t *testing.T) {
	provider := MapProvider{
		"http://example.com/base.json": []byte(`{"type": "object", "properties": {"name": {"type": "string"}}}`),
	}
	schema, err := NewCompiler().WithDocumentProvider(provider).
		Compile([]byte(`{"$ref": "http://example.com/base.json"}`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	assert.True(t, schema.IsValid(mustParse(t, `{"name": "ok"}`)))
	assert.False(t, schema.IsValid(mustParse(t, `{"name": 1}`)))
}

func TestRefCycleDoesNotInfiniteLoop(t *testing.T) {
	schema := mustCompile(t, `{
		"$defs": {
			"node": {
				"type": "object",
				"properties": {"next": {"$ref": "#/$defs/node"}}
			}
		},
		"$ref": "#/$defs/node"
	}`)
	assert.True(t, schema.IsValid(mustParse(t, `{"next": {"next": {}}}`)))
	assert.False(t, schema.IsValid(mustParse(t, `{"next": "not an object"}`)))
}

func TestRefUnresolvableReturnsCompileError(t *testing.T) {
	_, err := NewCompiler().Compile([]byte(`{"$ref": "#/$defs/missing"}`))
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrResolutionError)
}
