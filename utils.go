package jsonschema

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

func positiveIntFromValue(v *Value) (int, bool) {
	if v.Kind() != KindNumber || !v.IsInteger() {
		return 0, false
	}
	f := v.Float64()
	if f < 0 {
		return 0, false
	}
	return int(f), true
}

// nonNegativeIntFromValue is an alias kept distinct from
// positiveIntFromValue for readability at call sites (minContains/
// maxContains are explicitly "non-negative integer" in the keyword
// vocabulary, minLength/minItems/minProperties are "non-negative integer"
// too — same rule, different name to match each keyword's own wording).
func nonNegativeIntFromValue(v *Value) (int, bool) {
	return positiveIntFromValue(v)
}

func isPropertiesGroupKey(key string) bool {
	switch key {
	case "properties", "patternProperties", "additionalProperties":
		return true
	default:
		return false
	}
}

func isContainsGroupKey(key string) bool {
	switch key {
	case "contains", "minContains", "maxContains":
		return true
	default:
		return false
	}
}

func draftHasContains(d Draft) bool {
	return d >= Draft6
}

// resolveURIReference joins ref against base per RFC 3986, returning ref
// unchanged if either side fails to parse as a URI.
func resolveURIReference(base, ref string) string {
	if ref == "" {
		return base
	}
	if base == "" {
		return ref
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

// splitFragment splits an absolute reference into its document URI and
// fragment (a JSON Pointer, without the leading '#').
func splitFragment(ref string) (docURI string, pointer string) {
	idx := strings.IndexByte(ref, '#')
	if idx < 0 {
		return ref, ""
	}
	return ref[:idx], ref[idx+1:]
}

// navigatePointer walks an RFC 6901 JSON Pointer (already split from its
// leading '#') from doc's root.
func navigatePointer(doc *Value, pointer string) (*Value, error) {
	if pointer == "" {
		return doc, nil
	}
	segments := jsonpointer.Parse(pointer)
	cur := doc
	for _, raw := range segments {
		// jsonpointer.Parse handles ~0/~1 escaping but not URL percent
		// encoding; a pointer embedded in a $ref fragment can carry both.
		seg, err := url.PathUnescape(raw)
		if err != nil {
			return nil, NewResolutionError(pointer)
		}
		switch cur.Kind() {
		case KindObject:
			next, ok := cur.ObjectGet(seg)
			if !ok {
				return nil, NewResolutionError(pointer)
			}
			cur = next
		case KindArray:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(cur.Array()) {
				return nil, NewResolutionError(pointer)
			}
			cur = cur.Array()[idx]
		default:
			return nil, NewResolutionError(pointer)
		}
	}
	return cur, nil
}
