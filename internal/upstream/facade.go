package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// CallOptions carries the per-call arguments for a facade call. All fields
// are optional.
type CallOptions struct {
	// PathParams fills the ":key" tokens of the endpoint's path template.
	// Values are inserted verbatim; pre-encode reserved characters.
	PathParams map[string]string

	// Query is appended to the built URL.
	Query url.Values

	// Body is serialized to JSON when non-nil.
	Body any

	// Header holds per-call header overrides.
	Header http.Header
}

// Facade is the typed dispatch surface over the executor. It resolves the
// endpoint, builds the URL, marshals the body, delegates to the executor,
// and decodes the response. It never retries, times out, or breaks circuits
// itself; all of that belongs to the executor.
type Facade struct {
	registry *Registry
	executor *Executor
}

// NewFacade creates a facade over the given registry and executor.
func NewFacade(registry *Registry, executor *Executor) *Facade {
	return &Facade{registry: registry, executor: executor}
}

// Call executes one logical call against the named endpoint with the given
// HTTP method. On success the response body is decoded as JSON into out when
// out is non-nil, except for 204 No Content (and empty bodies), which are
// success with an empty payload. The raw response is returned alongside so
// callers can inspect status and headers.
func (f *Facade) Call(ctx context.Context, endpoint, method string, opts CallOptions, out any) (*Response, error) {
	desc, err := f.registry.Resolve(endpoint)
	if err != nil {
		return nil, err
	}

	callURL, err := f.registry.BuildURL(endpoint, opts.PathParams)
	if err != nil {
		return nil, err
	}
	if len(opts.Query) > 0 {
		callURL += "?" + opts.Query.Encode()
	}

	header := opts.Header.Clone()
	var body []byte
	if opts.Body != nil {
		body, err = json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s %s body: %w", method, endpoint, err)
		}
		if header == nil {
			header = make(http.Header)
		}
		header.Set("Content-Type", "application/json")
	}

	resp, err := f.executor.Execute(ctx, Request{
		Descriptor: desc,
		Method:     method,
		URL:        callURL,
		Header:     header,
		Body:       body,
	})
	if err != nil {
		return nil, err
	}

	if out != nil && resp.StatusCode != http.StatusNoContent && len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, out); err != nil {
			return nil, fmt.Errorf("decoding %s %s response: %w", method, endpoint, err)
		}
	}

	return resp, nil
}

// Get executes a GET call against the named endpoint.
func (f *Facade) Get(ctx context.Context, endpoint string, opts CallOptions, out any) (*Response, error) {
	return f.Call(ctx, endpoint, http.MethodGet, opts, out)
}

// Post executes a POST call against the named endpoint.
func (f *Facade) Post(ctx context.Context, endpoint string, opts CallOptions, out any) (*Response, error) {
	return f.Call(ctx, endpoint, http.MethodPost, opts, out)
}

// Put executes a PUT call against the named endpoint.
func (f *Facade) Put(ctx context.Context, endpoint string, opts CallOptions, out any) (*Response, error) {
	return f.Call(ctx, endpoint, http.MethodPut, opts, out)
}

// Patch executes a PATCH call against the named endpoint.
func (f *Facade) Patch(ctx context.Context, endpoint string, opts CallOptions, out any) (*Response, error) {
	return f.Call(ctx, endpoint, http.MethodPatch, opts, out)
}

// Delete executes a DELETE call against the named endpoint.
func (f *Facade) Delete(ctx context.Context, endpoint string, opts CallOptions, out any) (*Response, error) {
	return f.Call(ctx, endpoint, http.MethodDelete, opts, out)
}
