package jsonschema

import (
	"errors"
	"fmt"

	"github.com/kaptinlin/go-i18n"
)

// Sentinel errors that every compilation error wraps, following the
// teacher's package-level sentinel-plus-wrap convention: construct with
// fmt.Errorf("%w: ...", sentinel) and compare with errors.Is.
var (
	ErrSchemaError       = errors.New("schema error")
	ErrResolutionError   = errors.New("reference resolution error")
	ErrFetchFailed       = errors.New("document fetch failed")
	ErrInvalidStatusCode = errors.New("invalid http status code")
)

// NewSchemaError reports that a schema document itself is malformed —
// e.g. "minimum" holding a string, or "allOf" holding an empty array.
func NewSchemaError(reason string) error {
	return fmt.Errorf("%w: %s", ErrSchemaError, reason)
}

// NewResolutionError reports that a $ref could not be resolved to a
// schema: the document failed to fetch, the JSON Pointer didn't resolve,
// or no document provider was registered to fetch it.
func NewResolutionError(uri string) error {
	return fmt.Errorf("%w: %s", ErrResolutionError, uri)
}

// ErrorKind is one of the stable, public validation error identifiers a
// caller can switch on without string-matching a message.
type ErrorKind string

const (
	KindType             ErrorKind = "Type"
	KindEnum             ErrorKind = "Enum"
	KindRequired         ErrorKind = "Required"
	KindContains         ErrorKind = "Contains"
	KindMinimum          ErrorKind = "Minimum"
	KindMaximum          ErrorKind = "Maximum"
	KindExclusiveMinimum ErrorKind = "ExclusiveMinimum"
	KindExclusiveMaximum ErrorKind = "ExclusiveMaximum"
	KindMaxItems         ErrorKind = "MaxItems"
	KindMinItems         ErrorKind = "MinItems"
	KindMaxProperties    ErrorKind = "MaxProperties"
	KindMinProperties    ErrorKind = "MinProperties"
	KindMaxLength        ErrorKind = "MaxLength"
	KindMinLength        ErrorKind = "MinLength"
	KindPattern          ErrorKind = "Pattern"
	KindUniqueItems      ErrorKind = "UniqueItems"
	KindMultipleOf       ErrorKind = "MultipleOf"
	KindFormat           ErrorKind = "Format"
	KindConst            ErrorKind = "Const"
	KindAnyOf            ErrorKind = "AnyOf"
	KindOneOf            ErrorKind = "OneOf"
	KindNot              ErrorKind = "Not"
	KindFalseSchema      ErrorKind = "FalseSchema"
)

// ValidationError is the structured result of one failing validator: its
// kind, where in the instance it failed, and the offending value itself.
// root.Pointer(err.Path.Segments()) always yields exactly err.Instance.
type ValidationError struct {
	Kind     ErrorKind
	Path     *InstancePath
	Instance *Value
	Params   map[string]any

	message string
}

func newError(kind ErrorKind, path *InstancePath, instance *Value, message string, params map[string]any) *ValidationError {
	return &ValidationError{Kind: kind, Path: path, Instance: instance, Params: params, message: message}
}

// InstancePointer renders the JSON Pointer to the failing value.
func (e *ValidationError) InstancePointer() string {
	return e.Path.String()
}

// Error implements the error interface with the default English message.
func (e *ValidationError) Error() string {
	if e.Path.String() == "" {
		return string(e.Kind) + ": " + e.message
	}
	return string(e.Kind) + " at " + e.Path.String() + ": " + e.message
}

// Localize renders the error through a go-i18n localizer, mirroring the
// teacher's EvaluationError.Localize: a nil localizer falls back to
// Error() rather than panicking.
func (e *ValidationError) Localize(localizer *i18n.Localizer) string {
	if localizer == nil {
		return e.Error()
	}
	vars := make(map[string]any, len(e.Params)+1)
	for k, v := range e.Params {
		vars[k] = v
	}
	vars["path"] = e.Path.String()
	return localizer.Get(string(e.Kind), i18n.Vars(vars))
}
