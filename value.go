package jsonschema

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// Kind identifies which of the seven JSON value shapes a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String renders the JSON Schema type name for k ("integer" is not a Kind:
// it is a Number whose magnitude happens to be exactly integral, see
// Value.IsInteger).
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// NumberClass records the magnitude class the originating JSON token falls
// into, per the data model's requirement to distinguish integral literals
// that fit an unsigned range, a signed range, or neither.
type NumberClass int

const (
	ClassFloat NumberClass = iota
	ClassInt
	ClassUint
)

// Value is a tagged union over the seven JSON kinds. Object preserves
// insertion order (keys are unique; a repeated key keeps its original
// position but takes the last-seen value, matching encoding/json's own
// decoding behavior). Number retains its parsed float64 magnitude, the
// originating token text, and whether that magnitude is exactly integral
// (1.0 is recognized as integral).
type Value struct {
	kind Kind

	boolVal bool

	numRaw   string
	numFloat float64
	numIsInt bool
	numClass NumberClass

	strVal string

	arrVal []*Value

	objKeys []string
	objVal  map[string]*Value
}

// Constructors.

func NewNull() *Value { return &Value{kind: KindNull} }

func NewBool(b bool) *Value { return &Value{kind: KindBool, boolVal: b} }

func NewString(s string) *Value { return &Value{kind: KindString, strVal: s} }

// NewNumberFromFloat builds a Number Value from a plain float64, used when
// constructing synthetic instances (e.g. property names turned into string
// Values, not numbers) or in tests. The resulting Value has no raw token,
// so IsInteger falls back to checking the float's fractional part.
func NewNumberFromFloat(f float64) *Value {
	isInt := !math.IsInf(f, 0) && f == math.Trunc(f)
	class := ClassFloat
	if isInt {
		if f < 0 {
			class = ClassInt
		} else {
			class = ClassUint
		}
	}
	return &Value{kind: KindNumber, numFloat: f, numIsInt: isInt, numClass: class}
}

func NewArray(items []*Value) *Value { return &Value{kind: KindArray, arrVal: items} }

// NewObject returns an empty, ordered object Value; use Set to populate it.
func NewObject() *Value {
	return &Value{kind: KindObject, objVal: make(map[string]*Value)}
}

// Set appends key (or overwrites it in place if already present),
// preserving insertion order.
func (v *Value) Set(key string, val *Value) {
	if v.objVal == nil {
		v.objVal = make(map[string]*Value)
	}
	if _, exists := v.objVal[key]; !exists {
		v.objKeys = append(v.objKeys, key)
	}
	v.objVal[key] = val
}

// Accessors. Each returns the zero value for kinds other than the one it
// names; callers are expected to branch on Kind() first, exactly as every
// keyword validator in this package does.

func (v *Value) Kind() Kind { return v.kind }

func (v *Value) Bool() bool { return v.boolVal }

func (v *Value) Float64() float64 { return v.numFloat }

// IsInteger reports whether this Number's magnitude is exactly integral —
// the rule "type": "integer" uses, independent of how the literal was
// spelled (1, 1.0, and 1e0 are all integral).
func (v *Value) IsInteger() bool { return v.numIsInt }

func (v *Value) NumberClass() NumberClass { return v.numClass }

// RawNumber returns the originating token text for a Number Value, or ""
// if this Value was constructed synthetically rather than parsed.
func (v *Value) RawNumber() string { return v.numRaw }

func (v *Value) Str() string { return v.strVal }

func (v *Value) Array() []*Value { return v.arrVal }

func (v *Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arrVal)
	case KindObject:
		return len(v.objKeys)
	case KindString:
		return len([]rune(v.strVal))
	default:
		return 0
	}
}

// ObjectKeys returns object keys in insertion (document) order.
func (v *Value) ObjectKeys() []string { return v.objKeys }

// ObjectGet looks up a property by name.
func (v *Value) ObjectGet(key string) (*Value, bool) {
	if v.objVal == nil {
		return nil, false
	}
	val, ok := v.objVal[key]
	return val, ok
}

// Pointer walks segments (property names or array indices) from v,
// mirroring RFC 6901 navigation. It is the function every emitted
// ValidationError's Instance must agree with when re-applied to the root
// instance (spec invariant: root.Pointer(err.Path.Segments()) ==
// err.Instance).
func (v *Value) Pointer(segments []Segment) (*Value, bool) {
	cur := v
	for _, seg := range segments {
		switch cur.Kind() {
		case KindObject:
			next, ok := cur.ObjectGet(seg.name)
			if !ok {
				return nil, false
			}
			cur = next
		case KindArray:
			if !seg.isIndex || seg.index < 0 || seg.index >= len(cur.arrVal) {
				return nil, false
			}
			cur = cur.arrVal[seg.index]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Equal reports deep structural equality, honoring JSON Schema's numeric
// equality rule that a value's representation doesn't matter (1 == 1.0)
// and that array/object comparison is purely structural (key order does
// not affect object equality).
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.boolVal == b.boolVal
	case KindNumber:
		return a.numFloat == b.numFloat
	case KindString:
		return a.strVal == b.strVal
	case KindArray:
		if len(a.arrVal) != len(b.arrVal) {
			return false
		}
		for i := range a.arrVal {
			if !Equal(a.arrVal[i], b.arrVal[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.objKeys) != len(b.objKeys) {
			return false
		}
		for _, key := range a.objKeys {
			bv, ok := b.ObjectGet(key)
			if !ok {
				return false
			}
			if !Equal(a.objVal[key], bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Parse decodes data into the Value tagged union every validator in this
// package operates on.
func Parse(data []byte) (*Value, error) {
	v := &Value{}
	if err := v.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return v, nil
}

// UnmarshalJSON implements the standard unmarshaler interface by walking a
// jsontext.Decoder's token stream directly, rather than decoding into
// map[string]any first. That token-level control is what lets a Number
// retain whether its literal had a fractional part or exponent, which a
// post-hoc float64 can no longer tell you (see SPEC_FULL.md's note on
// this).
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := jsontext.NewDecoder(bytes.NewReader(data))
	parsed, err := decodeValue(dec)
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}

func decodeValue(dec *jsontext.Decoder) (*Value, error) {
	switch dec.PeekKind() {
	case '0':
		// ReadValue, not ReadToken: the raw bytes are what let
		// newNumberFromToken tell "1" from "1.0" from "1e0".
		raw, err := dec.ReadValue()
		if err != nil {
			return nil, err
		}
		return newNumberFromToken(string(raw))
	case '{':
		return decodeObject(dec)
	case '[':
		return decodeArray(dec)
	default:
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		return decodeScalarToken(tok)
	}
}

func decodeScalarToken(tok jsontext.Token) (*Value, error) {
	switch tok.Kind() {
	case 'n':
		return NewNull(), nil
	case 't', 'f':
		return NewBool(tok.Bool()), nil
	case '"':
		return NewString(tok.String()), nil
	default:
		return nil, fmt.Errorf("jsonschema: unexpected token kind %q", tok.Kind())
	}
}

func decodeArray(dec *jsontext.Decoder) (*Value, error) {
	if _, err := dec.ReadToken(); err != nil { // consume '['
		return nil, err
	}
	items := make([]*Value, 0)
	for dec.PeekKind() != ']' {
		item, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if _, err := dec.ReadToken(); err != nil { // consume ']'
		return nil, err
	}
	return &Value{kind: KindArray, arrVal: items}, nil
}

func decodeObject(dec *jsontext.Decoder) (*Value, error) {
	if _, err := dec.ReadToken(); err != nil { // consume '{'
		return nil, err
	}
	obj := NewObject()
	for dec.PeekKind() != '}' {
		keyTok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		if keyTok.Kind() != '"' {
			return nil, fmt.Errorf("jsonschema: object key is not a string")
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(keyTok.String(), val)
	}
	if _, err := dec.ReadToken(); err != nil { // consume '}'
		return nil, err
	}
	return obj, nil
}

func newNumberFromToken(raw string) (*Value, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("jsonschema: invalid number literal %q: %w", raw, err)
	}
	hasFracOrExp := strings.ContainsAny(raw, ".eE")
	isInt := !hasFracOrExp
	if !isInt {
		isInt = !math.IsInf(f, 0) && f == math.Trunc(f)
	}
	class := ClassFloat
	switch {
	case isInt && strings.HasPrefix(raw, "-"):
		class = ClassInt
	case isInt:
		class = ClassUint
	}
	return &Value{kind: KindNumber, numRaw: raw, numFloat: f, numIsInt: isInt, numClass: class}, nil
}

// MarshalJSON round-trips a Value back to JSON text, preserving object key
// order.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) writeJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.boolVal {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		if v.numRaw != "" {
			buf.WriteString(v.numRaw)
		} else {
			buf.WriteString(strconv.FormatFloat(v.numFloat, 'g', -1, 64))
		}
	case KindString:
		encoded, err := jsontext.AppendQuote(nil, v.strVal)
		if err != nil {
			return err
		}
		buf.Write(encoded)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.arrVal {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, key := range v.objKeys {
			if i > 0 {
				buf.WriteByte(',')
			}
			encodedKey, err := jsontext.AppendQuote(nil, key)
			if err != nil {
				return err
			}
			buf.Write(encodedKey)
			buf.WriteByte(':')
			if err := v.objVal[key].writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
