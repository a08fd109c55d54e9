package jsonschema

// compileContext carries per-compilation state shared across the
// recursive walk: the active draft, the owning compiler (format lookups
// and options), the resolver (for $ref), and the base URI relative $refs
// at the current point in the schema tree resolve against.
type compileContext struct {
	draft    Draft
	compiler *Compiler
	resolver *Resolver
	baseURI  string
}

// withBaseURI returns a context with baseURI replaced, used when
// descending into a subschema that carries its own "$id".
func (c *compileContext) withBaseURI(uri string) *compileContext {
	if uri == "" || uri == c.baseURI {
		return c
	}
	nc := *c
	nc.baseURI = uri
	return &nc
}

// keywordCompiler compiles a single keyword occurrence into at most one
// Validator. parent is the full schema object the keyword lives in, so a
// compiler that must consult a sibling keyword (Draft4's boolean
// exclusiveMinimum, if's then/else) can look it up. A result of
// (nil, false, nil) means "this keyword intentionally produced no
// validator here" — not an error; forward-compatible keywords unknown to
// a draft's table are skipped the same way, just without ever reaching a
// keywordCompiler at all.
type keywordCompiler func(parent *Value, value *Value, ctx *compileContext) (Validator, bool, error)

// compileValidators is the recursive entry point: given a schema node
// (boolean or object) it returns the validators for that node. A $ref
// compiles its target once, through the resolver, which registers a handle
// before recursing so that a reference cycle stops at that handle — see
// resolver.go.
func compileValidators(schema *Value, ctx *compileContext) ([]Validator, error) {
	switch schema.Kind() {
	case KindBool:
		if schema.Bool() {
			return []Validator{alwaysValidValidator{}}, nil
		}
		return []Validator{alwaysInvalidValidator{}}, nil
	case KindObject:
		return compileObjectSchema(schema, ctx)
	default:
		return nil, NewSchemaError("schema must be a JSON object or boolean")
	}
}

func compileObjectSchema(schema *Value, ctx *compileContext) ([]Validator, error) {
	if id, ok := schemaID(schema); ok {
		ctx = ctx.withBaseURI(resolveURIReference(ctx.baseURI, id))
	}

	table := draftTable(ctx.draft)

	var validators []Validator
	propertiesGroupHandled := false
	containsGroupHandled := false

	for _, key := range schema.ObjectKeys() {
		value, _ := schema.ObjectGet(key)

		switch {
		case isPropertiesGroupKey(key):
			if propertiesGroupHandled {
				continue
			}
			propertiesGroupHandled = true
			v, emitted, err := compilePropertiesGroup(schema, ctx)
			if err != nil {
				return nil, err
			}
			if emitted {
				validators = append(validators, v)
			}

		case isContainsGroupKey(key) && draftHasContains(ctx.draft):
			if containsGroupHandled {
				continue
			}
			containsGroupHandled = true
			v, emitted, err := compileContainsGroup(schema, ctx)
			if err != nil {
				return nil, err
			}
			if emitted {
				validators = append(validators, v)
			}

		case key == "$defs" || key == "definitions":
			// Not a validator itself: a pool of reusable subschemas
			// reached through $ref. Compiled here only so a malformed
			// entry is caught even if nothing ever references it; the
			// result is discarded, and an actual $ref re-compiles its
			// target independently through the resolver's cache.
			if value.Kind() != KindObject {
				return nil, NewSchemaError(key + " must be an object")
			}
			for _, defKey := range value.ObjectKeys() {
				defVal, _ := value.ObjectGet(defKey)
				if _, err := compileValidators(defVal, ctx); err != nil {
					return nil, err
				}
			}

		default:
			compiler, ok := table[key]
			if !ok {
				continue // unknown keyword: forward-compatible no-op
			}
			v, emitted, err := compiler(schema, value, ctx)
			if err != nil {
				return nil, err
			}
			if emitted {
				validators = append(validators, v)
			}
		}
	}

	return validators, nil
}

// draftTable returns the keyword dispatch table for d. Each draft's table
// is built by layering that draft's additions onto the keywords common to
// every draft, mirroring how the specification itself evolved. Keywords
// that compile as part of a combined group (properties/patternProperties/
// additionalProperties, contains/minContains/maxContains) or that are only
// ever consulted as a sibling (then/else, Draft4's boolean
// exclusiveMinimum/exclusiveMaximum) are deliberately absent: they never
// reach a standalone keywordCompiler.
func draftTable(d Draft) map[string]keywordCompiler {
	base := map[string]keywordCompiler{
		"type":          compileType,
		"enum":          compileEnum,
		"minimum":       compileMinimum,
		"maximum":       compileMaximum,
		"multipleOf":    compileMultipleOf,
		"minLength":     compileMinLength,
		"maxLength":     compileMaxLength,
		"pattern":       compilePattern,
		"minItems":      compileMinItems,
		"maxItems":      compileMaxItems,
		"uniqueItems":   compileUniqueItems,
		"minProperties": compileMinProperties,
		"maxProperties": compileMaxProperties,
		"required":      compileRequired,
		"items":         compileItems,
		"allOf":         compileAllOf,
		"anyOf":         compileAnyOf,
		"oneOf":         compileOneOf,
		"not":           compileNot,
		"format":        compileFormat,
		"$ref":          compileRef,
	}

	switch d {
	case Draft4:
		base["dependencies"] = compileDependencies
	case Draft6:
		base["exclusiveMinimum"] = compileExclusiveMinimum
		base["exclusiveMaximum"] = compileExclusiveMaximum
		base["const"] = compileConst
		base["propertyNames"] = compilePropertyNames
		base["dependencies"] = compileDependencies
	case Draft7:
		base["exclusiveMinimum"] = compileExclusiveMinimum
		base["exclusiveMaximum"] = compileExclusiveMaximum
		base["const"] = compileConst
		base["propertyNames"] = compilePropertyNames
		base["dependencies"] = compileDependencies
		base["if"] = compileIf
	case Draft2019_09:
		base["exclusiveMinimum"] = compileExclusiveMinimum
		base["exclusiveMaximum"] = compileExclusiveMaximum
		base["const"] = compileConst
		base["propertyNames"] = compilePropertyNames
		base["if"] = compileIf
		base["dependentRequired"] = compileDependentRequired
		base["dependentSchemas"] = compileDependentSchemas
	}
	return base
}
