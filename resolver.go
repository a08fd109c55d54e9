package jsonschema

import (
	"context"
	"fmt"
)

// DocumentProvider fetches the raw JSON bytes for a schema document named
// by an absolute URI. It is this package's only I/O surface; resolving a
// remote $ref blocks on it and surfaces its errors wrapped in
// ErrResolutionError.
type DocumentProvider interface {
	Fetch(ctx context.Context, uri string) ([]byte, error)
}

// refHandle is the indirection a $ref validator owns instead of owning its
// target's validator tree directly. Because the handle is a separate,
// shared object, two schemas that $ref each other never need to own one
// another: each refValidator just holds a pointer to a handle that gets
// filled in once, whichever of the two finishes compiling its side first.
type refHandle struct {
	validators []Validator
	resolved   bool
}

// resolve returns the target's validators, or nil if the handle hasn't
// been filled yet — which only happens if a cyclic $ref is evaluated
// before compilation as a whole completes, which compileValidators never
// does (it always finishes filling every handle before Compile returns).
func (h *refHandle) resolve() []Validator {
	if h == nil || !h.resolved {
		return nil
	}
	return h.validators
}

func (h *refHandle) fill(validators []Validator) {
	h.validators = validators
	h.resolved = true
}

// Resolver owns the documents a compilation may draw $ref targets from,
// the cache of already-fetched documents, and the cache of handles for
// refs already seen — the latter is what turns a reference cycle into a
// lazy indirection instead of infinite recursion: the second time the same
// absolute URI is resolved, the already-registered (possibly still
// unresolved) handle is returned immediately instead of compiling again.
type Resolver struct {
	provider DocumentProvider
	documents map[string]*Value
	compiled  map[string]*refHandle
}

func newResolver(provider DocumentProvider) *Resolver {
	return &Resolver{
		provider:  provider,
		documents: make(map[string]*Value),
		compiled:  make(map[string]*refHandle),
	}
}

// addDocument registers an already-parsed document under uri, used to seed
// the resolver with the root schema being compiled so that a same-document
// $ref never needs the document provider.
func (r *Resolver) addDocument(uri string, doc *Value) {
	r.documents[uri] = doc
}

// resolve returns the handle for ref resolved against ctx's base URI,
// compiling the target the first time this absolute URI is seen and
// registering the handle before recursing so a cycle finds it already
// cached.
func (r *Resolver) resolve(ref string, ctx *compileContext) (*refHandle, error) {
	absolute := resolveURIReference(ctx.baseURI, ref)

	if handle, ok := r.compiled[absolute]; ok {
		return handle, nil
	}

	handle := &refHandle{}
	r.compiled[absolute] = handle

	docURI, pointer := splitFragment(absolute)
	doc, err := r.document(docURI, ctx)
	if err != nil {
		return nil, err
	}

	target, err := navigatePointer(doc, pointer)
	if err != nil {
		return nil, err
	}

	childCtx := ctx.withBaseURI(docURI)
	validators, err := compileValidators(target, childCtx)
	if err != nil {
		return nil, err
	}
	handle.fill(validators)
	return handle, nil
}

// document returns the parsed document for docURI, fetching it through the
// provider and caching it if it isn't already known.
func (r *Resolver) document(docURI string, ctx *compileContext) (*Value, error) {
	if docURI == "" {
		if doc, ok := r.documents[ctx.baseURI]; ok {
			return doc, nil
		}
		return nil, NewResolutionError(ctx.baseURI)
	}
	if doc, ok := r.documents[docURI]; ok {
		return doc, nil
	}
	if r.provider == nil {
		return nil, NewResolutionError(docURI)
	}
	raw, err := r.provider.Fetch(context.Background(), docURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrResolutionError, docURI, err)
	}
	doc, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrResolutionError, docURI, err)
	}
	r.documents[docURI] = doc
	return doc, nil
}
