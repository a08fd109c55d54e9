package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatIsAnnotationOnlyByDefault(t *testing.T) {
	schema := mustCompile(t, `{"format": "email"}`)
	assert.True(t, schema.IsValid(mustParse(t, `"not-an-email"`)))
}

func TestFormatAssertionMode(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		valid   string
		invalid string
	}{
		{"date-time", "date-time", `"2024-01-02T15:04:05Z"`, `"not-a-date"`},
		{"date", "date", `"2024-01-02"`, `"2024-13-40"`},
		{"email", "email", `"user@example.com"`, `"not-an-email"`},
		{"hostname", "hostname", `"example.com"`, `"-bad-.com"`},
		{"ipv4", "ipv4", `"192.168.1.1"`, `"999.1.1.1"`},
		{"ipv6", "ipv6", `"::1"`, `"not-ipv6"`},
		{"uri", "uri", `"https://example.com/path"`, `"not a uri"`},
		{"uuid", "uuid", `"123e4567-e89b-12d3-a456-426614174000"`, `"not-a-uuid"`},
		{"regex", "regex", `"^[a-z]+$"`, `"("`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			schema, err := NewCompiler().WithAssertFormat(true).Compile([]byte(`{"format": "` + tt.format + `"}`))
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			assert.True(t, schema.IsValid(mustParse(t, tt.valid)), "expected %s to be valid", tt.valid)
			assert.False(t, schema.IsValid(mustParse(t, tt.invalid)), "expected %s to be invalid", tt.invalid)
		})
	}
}

func TestFormatUnknownNameNeverFails(t *testing.T) {
	schema, err := NewCompiler().WithAssertFormat(true).Compile([]byte(`{"format": "made-up-format"}`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	assert.True(t, schema.IsValid(mustParse(t, `"anything"`)))
}

func TestRegisterFormat(t *testing.T) {
	compiler := NewCompiler().WithAssertFormat(true)
	compiler.RegisterFormat("even-digits", func(v *Value) bool {
		s, ok := asString(v)
		if !ok {
			return true
		}
		return len(s)%2 == 0
	})
	schema, err := compiler.Compile([]byte(`{"format": "even-digits"}`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	assert.True(t, schema.IsValid(mustParse(t, `"1234"`)))
	assert.False(t, schema.IsValid(mustParse(t, `"123"`)))
}
