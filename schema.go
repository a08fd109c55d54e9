package jsonschema

// CompiledSchema is the top-level facade produced by Compiler.Compile: an
// immutable validator tree, safe to evaluate concurrently from multiple
// goroutines.
type CompiledSchema struct {
	validators []Validator
	draft      Draft
}

// Draft reports which draft this schema was compiled against.
func (s *CompiledSchema) Draft() Draft { return s.draft }

// IsValid is the fast, short-circuit boolean form: it returns false on the
// first failing top-level validator without constructing any
// ValidationError.
func (s *CompiledSchema) IsValid(instance *Value) bool {
	for _, v := range s.validators {
		if !v.IsValid(instance) {
			return false
		}
	}
	return true
}

// Validate evaluates instance against the compiled schema and returns a
// ValidationResult backed by a lazy, single-pass error sequence.
func (s *CompiledSchema) Validate(instance *Value) *ValidationResult {
	iters := make([]ErrorIterator, 0, len(s.validators))
	for _, v := range s.validators {
		iters = append(iters, v.Validate(instance, Root))
	}
	return &ValidationResult{iterator: chain(iters...)}
}

// ValidationResult wraps the lazy error sequence produced by Validate. It
// is itself single-pass: Next/Errors/Valid all draw from the same
// underlying cursor, so once an error has been consumed by one of them it
// will not be reported again by another.
type ValidationResult struct {
	iterator ErrorIterator
	pending  []*ValidationError
	done     bool
}

// Valid reports whether validation produced any error, by pulling at most
// one error from the sequence. It is equivalent to, but cheaper than,
// checking whether Next returns ok=false immediately.
func (r *ValidationResult) Valid() bool {
	if len(r.pending) > 0 {
		return false
	}
	if r.done {
		return true
	}
	e, ok := r.iterator.Next()
	if !ok {
		r.done = true
		return true
	}
	r.pending = append(r.pending, e)
	return false
}

// Next pulls the next error from the sequence.
func (r *ValidationResult) Next() (*ValidationError, bool) {
	if len(r.pending) > 0 {
		e := r.pending[0]
		r.pending = r.pending[1:]
		return e, true
	}
	if r.done {
		return nil, false
	}
	e, ok := r.iterator.Next()
	if !ok {
		r.done = true
	}
	return e, ok
}

// First returns only the first error, or nil if the instance is valid.
func (r *ValidationResult) First() *ValidationError {
	e, ok := r.Next()
	if !ok {
		return nil
	}
	return e
}

// Errors drains the remaining sequence into a slice.
func (r *ValidationResult) Errors() []*ValidationError {
	var out []*ValidationError
	for {
		e, ok := r.Next()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}
