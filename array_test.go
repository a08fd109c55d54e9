package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrayKeywords(t *testing.T) {
	tests := []struct {
		name    string
		schema  string
		valid   string
		invalid string
	}{
		{"minItems", `{"minItems": 2}`, `[1, 2]`, `[1]`},
		{"maxItems", `{"maxItems": 2}`, `[1, 2]`, `[1, 2, 3]`},
		{"uniqueItems true rejects duplicates", `{"uniqueItems": true}`, `[1, 2, 3]`, `[1, 2, 2]`},
		{"uniqueItems false is a no-op", `{"uniqueItems": false}`, `[1, 1]`, `"unreachable"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := mustCompile(t, tt.schema)
			assert.True(t, schema.IsValid(mustParse(t, tt.valid)))
			if tt.name != "uniqueItems false is a no-op" {
				assert.False(t, schema.IsValid(mustParse(t, tt.invalid)))
			}
		})
	}
}

func TestUniqueItemsDeepEquality(t *testing.T) {
	schema := mustCompile(t, `{"uniqueItems": true}`)
	assert.False(t, schema.IsValid(mustParse(t, `[{"a": 1}, {"a": 1}]`)))
	assert.True(t, schema.IsValid(mustParse(t, `[{"a": 1}, {"a": 2}]`)))
}

func TestItemsTupleForm(t *testing.T) {
	schema := mustCompile(t, `{
		"items": [{"type": "string"}, {"type": "number"}],
		"additionalItems": false
	}`)
	assert.True(t, schema.IsValid(mustParse(t, `["a", 1]`)))
	assert.False(t, schema.IsValid(mustParse(t, `["a", 1, "extra"]`)))
	assert.False(t, schema.IsValid(mustParse(t, `[1, "a"]`)))
}

func TestItemsTupleFormAllowsExtraByDefault(t *testing.T) {
	schema := mustCompile(t, `{"items": [{"type": "string"}]}`)
	assert.True(t, schema.IsValid(mustParse(t, `["a", 1, true]`)))
}

func TestItemsListForm(t *testing.T) {
	schema := mustCompile(t, `{"items": {"type": "integer"}}`)
	assert.True(t, schema.IsValid(mustParse(t, `[1, 2, 3]`)))
	assert.False(t, schema.IsValid(mustParse(t, `[1, "two"]`)))
}

func TestContainsGroup(t *testing.T) {
	tests := []struct {
		name    string
		schema  string
		valid   string
		invalid string
	}{
		{"contains alone", `{"contains": {"type": "number"}}`, `["a", 1]`, `["a", "b"]`},
		{"minContains", `{"contains": {"type": "number"}, "minContains": 2}`, `[1, 2, "a"]`, `[1, "a"]`},
		{"maxContains", `{"contains": {"type": "number"}, "maxContains": 1}`, `[1, "a"]`, `[1, 2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := mustCompile(t, tt.schema)
			assert.True(t, schema.IsValid(mustParse(t, tt.valid)))
			assert.False(t, schema.IsValid(mustParse(t, tt.invalid)))
		})
	}
}

// TestContainsMaxWithoutMinRejectsZeroMatches documents the bug-compatible
// rule carried over from the original implementation: maxContains alone,
// with zero matching items, is invalid even though "at most N matches"
// would otherwise accept zero.
func TestContainsMaxWithoutMinRejectsZeroMatches(t *testing.T) {
	schema := mustCompile(t, `{"contains": {"type": "number"}, "maxContains": 2}`)
	assert.False(t, schema.IsValid(mustParse(t, `["a", "b"]`)))
	assert.True(t, schema.IsValid(mustParse(t, `["a", 1]`)))
}
