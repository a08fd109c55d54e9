package jsonschema

import (
	"context"
	"fmt"
	"sync"
)

// Compiler builds CompiledSchema values from raw JSON Schema documents. A
// Compiler may be shared across goroutines; RegisterFormat and Compile
// serialize against each other via an internal mutex, the same way the
// teacher's Compiler guards its schema cache.
type Compiler struct {
	mu sync.RWMutex

	draft    Draft
	provider DocumentProvider

	assertFormat  bool
	customFormats map[string]FormatFunc

	validateAgainstMeta bool
}

// NewCompiler returns a Compiler defaulted to the latest supported draft
// (2019-09) with format assertions disabled — format is annotation-only
// until WithAssertFormat(true) is called, matching every draft's own
// default.
func NewCompiler() *Compiler {
	return &Compiler{
		draft:         Draft2019_09,
		customFormats: builtinFormats(),
	}
}

// WithDraft selects which draft's keyword table governs compilation.
func (c *Compiler) WithDraft(d Draft) *Compiler {
	c.draft = d
	return c
}

// WithDocumentProvider injects the collaborator used to fetch remote $ref
// targets and, when meta-schema validation is enabled, the meta-schema
// document named by the schema's own "$schema".
func (c *Compiler) WithDocumentProvider(p DocumentProvider) *Compiler {
	c.provider = p
	return c
}

// WithAssertFormat toggles whether "format" actually rejects
// non-conforming instances, as opposed to being annotation-only.
func (c *Compiler) WithAssertFormat(assert bool) *Compiler {
	c.assertFormat = assert
	return c
}

// WithMetaSchemaValidation enables validating an input schema document
// against its own declared "$schema" meta-schema before compiling it.
// The check runs only when the schema declares a string "$schema" and a
// document provider is set; otherwise the schema compiles unchecked. The
// draft selected with WithDraft does not pick a meta-schema.
func (c *Compiler) WithMetaSchemaValidation(enabled bool) *Compiler {
	c.validateAgainstMeta = enabled
	return c
}

// RegisterFormat adds or overrides a named format check.
func (c *Compiler) RegisterFormat(name string, fn FormatFunc) *Compiler {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.customFormats == nil {
		c.customFormats = make(map[string]FormatFunc)
	}
	c.customFormats[name] = fn
	return c
}

// UnregisterFormat removes a named format check, so an unknown-format
// keyword becomes a no-op again under assertion mode.
func (c *Compiler) UnregisterFormat(name string) *Compiler {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.customFormats, name)
	return c
}

func (c *Compiler) lookupFormat(name string) (FormatFunc, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn, ok := c.customFormats[name]
	return fn, ok
}

// Compile parses and compiles a JSON Schema document, resolving $ref
// against any document provider configured on the compiler.
func (c *Compiler) Compile(schemaJSON []byte) (*CompiledSchema, error) {
	return c.CompileWithURI(schemaJSON, "")
}

// CompileWithURI compiles schemaJSON as the document identified by uri,
// which relative $refs within it (and any remote document that refers
// back to it) resolve against. uri may be "", in which case the schema's
// own "$id" (or else "id") is used if present.
func (c *Compiler) CompileWithURI(schemaJSON []byte, uri string) (*CompiledSchema, error) {
	root, err := Parse(schemaJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSchemaError, err)
	}

	if c.validateAgainstMeta {
		if err := c.validateAgainstMetaSchema(root); err != nil {
			return nil, err
		}
	}

	baseURI := uri
	if baseURI == "" {
		if id, ok := schemaID(root); ok {
			baseURI = id
		}
	}

	resolver := newResolver(c.provider)
	resolver.addDocument(baseURI, root)

	ctx := &compileContext{
		draft:    c.draft,
		compiler: c,
		resolver: resolver,
		baseURI:  baseURI,
	}

	validators, err := compileValidators(root, ctx)
	if err != nil {
		return nil, err
	}

	return &CompiledSchema{validators: validators, draft: c.draft}, nil
}

// validateAgainstMetaSchema fetches and compiles the document named by the
// schema's own "$schema" keyword (if any) and validates the schema against
// it. It uses a plain nested Compiler rather than recursing through c
// itself, so a meta-schema that declares its own "$schema" doesn't loop.
func (c *Compiler) validateAgainstMetaSchema(root *Value) error {
	schemaURI, ok := root.ObjectGet("$schema")
	if !ok || schemaURI.Kind() != KindString {
		return nil
	}
	if c.provider == nil {
		return nil
	}
	raw, err := c.provider.Fetch(context.Background(), schemaURI.Str())
	if err != nil {
		return fmt.Errorf("%w: %s: %s", ErrResolutionError, schemaURI.Str(), err)
	}
	nested := &Compiler{draft: c.draft, provider: c.provider, assertFormat: c.assertFormat, customFormats: c.customFormats}
	meta, err := nested.CompileWithURI(raw, schemaURI.Str())
	if err != nil {
		return err
	}
	if !meta.IsValid(root) {
		return fmt.Errorf("%w: schema does not conform to %s", ErrSchemaError, schemaURI.Str())
	}
	return nil
}
