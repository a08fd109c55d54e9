package jsonschema

import "testing"

// mustCompile compiles schemaJSON against the latest supported draft and
// fails the test immediately if compilation errors, mirroring the
// require.NoError pattern used throughout the teacher's own test suite.
func mustCompile(t *testing.T, schemaJSON string) *CompiledSchema {
	t.Helper()
	schema, err := NewCompiler().Compile([]byte(schemaJSON))
	if err != nil {
		t.Fatalf("compile %s: %v", schemaJSON, err)
	}
	return schema
}

func mustCompileDraft(t *testing.T, d Draft, schemaJSON string) *CompiledSchema {
	t.Helper()
	schema, err := NewCompiler().WithDraft(d).Compile([]byte(schemaJSON))
	if err != nil {
		t.Fatalf("compile %s: %v", schemaJSON, err)
	}
	return schema
}

func mustParse(t *testing.T, instanceJSON string) *Value {
	t.Helper()
	v, err := Parse([]byte(instanceJSON))
	if err != nil {
		t.Fatalf("parse %s: %v", instanceJSON, err)
	}
	return v
}
