package jsonschema

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MapProvider is a DocumentProvider backed by an in-memory set of
// documents keyed by absolute URI. It never performs I/O; tests and
// air-gapped compilations register their $ref targets here.
type MapProvider map[string][]byte

// Fetch implements DocumentProvider.
func (p MapProvider) Fetch(_ context.Context, uri string) ([]byte, error) {
	doc, ok := p[uri]
	if !ok {
		return nil, NewResolutionError(uri)
	}
	return doc, nil
}

// HTTPProvider fetches remote schema documents over HTTP(S), mirroring the
// teacher's default schema loader: a bounded-timeout client that treats
// any non-200 response as a failure.
type HTTPProvider struct {
	Client *http.Client
}

// NewHTTPProvider returns an HTTPProvider with a 10-second request
// timeout, the same default the teacher's loader uses.
func NewHTTPProvider() *HTTPProvider {
	return &HTTPProvider{Client: &http.Client{Timeout: 10 * time.Second}}
}

// Fetch implements DocumentProvider.
func (p *HTTPProvider) Fetch(ctx context.Context, uri string) ([]byte, error) {
	client := p.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: status %d", ErrInvalidStatusCode, uri, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
