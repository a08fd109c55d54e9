package jsonschema

import (
	"strconv"

	"github.com/kaptinlin/jsonpointer"
)

// Segment is one step of an InstancePath: either a property name or an
// array index.
type Segment struct {
	name    string
	index   int
	isIndex bool
}

// String renders a single segment as its JSON Pointer token (unescaped;
// escaping of "~" and "/" happens when the full path is formatted).
func (s Segment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.name
}

// InstancePath is a persistent, append-only chain of segments identifying
// where in the instance a validator is currently operating. Extending a
// path (WithProperty/WithIndex) never mutates the parent: many children of
// the same validator can each extend the same parent path independently,
// which is what lets the same *InstancePath be handed to every branch of
// an allOf/anyOf/properties fan-out without copying.
type InstancePath struct {
	parent  *InstancePath
	segment Segment
	depth   int
}

// Root is the empty instance path, the starting point of every Validate
// call, rendered as "".
var Root = (*InstancePath)(nil)

// WithProperty returns a new path with a property-name segment appended.
func (p *InstancePath) WithProperty(name string) *InstancePath {
	return &InstancePath{parent: p, segment: Segment{name: name}, depth: p.len() + 1}
}

// WithIndex returns a new path with an array-index segment appended.
func (p *InstancePath) WithIndex(index int) *InstancePath {
	return &InstancePath{parent: p, segment: Segment{index: index, isIndex: true}, depth: p.len() + 1}
}

func (p *InstancePath) len() int {
	if p == nil {
		return 0
	}
	return p.depth
}

// Segments materializes the path as an ordered slice from root to leaf.
func (p *InstancePath) Segments() []Segment {
	n := p.len()
	if n == 0 {
		return nil
	}
	segs := make([]Segment, n)
	for cur := p; cur != nil; cur = cur.parent {
		segs[cur.depth-1] = cur.segment
	}
	return segs
}

// String renders the path as a JSON Pointer, e.g. "/a/0/b". The root path
// renders as "".
func (p *InstancePath) String() string {
	segs := p.Segments()
	if len(segs) == 0 {
		return ""
	}
	tokens := make([]string, len(segs))
	for i, s := range segs {
		tokens[i] = s.String()
	}
	return jsonpointer.Format(tokens...)
}
