package jsonschema

// Validator is a compiled, executable representation of a single JSON
// Schema keyword (or a constant true/false schema). It is immutable after
// compilation, so a single compiled schema is safe to evaluate from
// multiple goroutines concurrently.
type Validator interface {
	// IsValid is the short-circuit boolean form: equivalent to asking
	// whether Validate would yield no error, but cheaper — it never
	// constructs a ValidationError.
	IsValid(instance *Value) bool

	// Validate returns a lazy, pull-based sequence of the errors this
	// validator (and any subvalidators it owns) produces for instance at
	// path.
	Validate(instance *Value, path *InstancePath) ErrorIterator

	// Name is a short diagnostic identifier, e.g. "minimum" or "properties".
	Name() string
}

// ErrorIterator is a single-pass, pull-based sequence of validation
// errors. Once Next returns ok=false it keeps returning ok=false.
type ErrorIterator interface {
	Next() (*ValidationError, bool)
}

type emptyIterator struct{}

func (emptyIterator) Next() (*ValidationError, bool) { return nil, false }

// noError is the iterator every validator returns for a passing instance;
// it never allocates.
func noError() ErrorIterator { return emptyIterator{} }

type singleIterator struct {
	err  *ValidationError
	done bool
}

func (s *singleIterator) Next() (*ValidationError, bool) {
	if s.done || s.err == nil {
		return nil, false
	}
	s.done = true
	return s.err, true
}

// singleError wraps exactly one error in an iterator, for the common case
// of a leaf keyword that produces at most one failure.
func singleError(err *ValidationError) ErrorIterator {
	return &singleIterator{err: err}
}

// chainIterator lazily concatenates a fixed list of iterators, advancing
// to the next one only once the current is exhausted. A caller that only
// pulls the first element never drives the later iterators at all.
type chainIterator struct {
	iters []ErrorIterator
	idx   int
}

func (c *chainIterator) Next() (*ValidationError, bool) {
	for c.idx < len(c.iters) {
		if c.iters[c.idx] == nil {
			c.idx++
			continue
		}
		if e, ok := c.iters[c.idx].Next(); ok {
			return e, true
		}
		c.idx++
	}
	return nil, false
}

// chain concatenates iterators in declaration order, lazily.
func chain(iters ...ErrorIterator) ErrorIterator {
	return &chainIterator{iters: iters}
}

// funcIterator adapts a plain closure to ErrorIterator. Compound
// validators that need to interleave instance traversal with child
// validator calls (rather than building a fixed slice of child iterators
// up front) use this to stay a true generator.
type funcIterator struct {
	next func() (*ValidationError, bool)
}

func (f *funcIterator) Next() (*ValidationError, bool) { return f.next() }
