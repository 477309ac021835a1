// Package upstream implements the outbound call core of the BFF: a static
// endpoint registry, per-service resilience policies, and an executor that
// composes retry, per-attempt timeouts, and circuit breaking around a single
// HTTP call.
//
// Layering for one logical call, outer to inner:
//
//	Retry → Per-Attempt Timeout → Circuit Breaker → HTTP
//
// The circuit breaker is innermost so an attempt that finds the circuit open
// fails fast instead of waiting out a timeout. The timeout bounds each
// individual attempt, not the retry sequence. Circuit breaker state is shared
// per target service: failures against one endpoint of a degraded service
// trip the breaker for its sibling endpoints.
//
// Typical use goes through the Facade:
//
//	resp, err := facade.Get(ctx, "getUser", upstream.CallOptions{
//	    PathParams: map[string]string{"id": "42"},
//	}, &user)
package upstream

import (
	"fmt"
	"strings"
	"time"
)

// RetryPolicy holds exponential backoff parameters for one endpoint.
// MaxAttempts counts the first attempt; delays double from InitialDelay up
// to MaxDelay.
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// BreakerPolicy holds circuit breaker parameters for one target service.
// Breaker policy is strictly per-service; endpoints cannot override it.
type BreakerPolicy struct {
	// FailureThreshold is the number of consecutive failures that opens
	// the circuit.
	FailureThreshold int

	// OpenDuration is how long the circuit stays open before a single
	// trial call is allowed through.
	OpenDuration time.Duration

	// MinimumThroughput, when positive, requires at least that many calls
	// in the current window before the breaker may trip.
	MinimumThroughput int
}

// RateLimit bounds the outbound request rate to one target service.
// A zero RequestsPerSecond disables rate limiting.
type RateLimit struct {
	RequestsPerSecond float64
	Burst             int
}

// ServiceDefaults holds the per-service settings that endpoints inherit.
type ServiceDefaults struct {
	BaseURL   string
	Timeout   time.Duration
	Retry     RetryPolicy
	Breaker   BreakerPolicy
	RateLimit RateLimit
}

// Endpoint declares one named route against a target service. Zero-valued
// optional fields inherit the service defaults at registry construction.
type Endpoint struct {
	Name         string
	Service      string
	PathTemplate string

	// Timeout overrides the service default per-attempt deadline when set.
	Timeout time.Duration

	// Retry overrides the service default retry policy when non-nil.
	Retry *RetryPolicy
}

// Descriptor is a fully merged, immutable endpoint record. Descriptors are
// built once at registry construction and shared by value across calls.
type Descriptor struct {
	Name         string
	Service      string
	BaseURL      string
	PathTemplate string
	Timeout      time.Duration
	Retry        RetryPolicy
	Breaker      BreakerPolicy
	RateLimit    RateLimit
}

// Registry maps symbolic endpoint names to merged descriptors. Defaulting
// against the owning service happens exactly once, at construction, so
// lookups are a plain map read.
type Registry struct {
	endpoints map[string]Descriptor
}

// NewRegistry builds a registry from per-service defaults and endpoint
// declarations. Endpoints referencing an unknown service, duplicate endpoint
// names, and empty path templates are construction errors.
func NewRegistry(services map[string]ServiceDefaults, endpoints []Endpoint) (*Registry, error) {
	merged := make(map[string]Descriptor, len(endpoints))

	for _, ep := range endpoints {
		if ep.Name == "" {
			return nil, fmt.Errorf("endpoint with path %q has no name", ep.PathTemplate)
		}
		if ep.PathTemplate == "" {
			return nil, fmt.Errorf("endpoint %q has no path template", ep.Name)
		}
		if _, dup := merged[ep.Name]; dup {
			return nil, fmt.Errorf("duplicate endpoint name %q", ep.Name)
		}

		svc, ok := services[ep.Service]
		if !ok {
			return nil, fmt.Errorf("endpoint %q references unknown service %q", ep.Name, ep.Service)
		}

		d := Descriptor{
			Name:         ep.Name,
			Service:      ep.Service,
			BaseURL:      strings.TrimSuffix(svc.BaseURL, "/"),
			PathTemplate: ep.PathTemplate,
			Timeout:      svc.Timeout,
			Retry:        svc.Retry,
			Breaker:      svc.Breaker,
			RateLimit:    svc.RateLimit,
		}
		if ep.Timeout > 0 {
			d.Timeout = ep.Timeout
		}
		if ep.Retry != nil {
			d.Retry = *ep.Retry
		}

		merged[ep.Name] = d
	}

	return &Registry{endpoints: merged}, nil
}

// Resolve returns the merged descriptor for the named endpoint, or
// ErrUnknownEndpoint if it is not registered.
func (r *Registry) Resolve(name string) (Descriptor, error) {
	d, ok := r.endpoints[name]
	if !ok {
		return Descriptor{}, fmt.Errorf("%q: %w", name, ErrUnknownEndpoint)
	}
	return d, nil
}

// BuildURL resolves the endpoint and substitutes every ":key" token in its
// path template with the matching value from pathParams. Values are inserted
// verbatim; callers must pre-encode reserved characters. A template token
// with no matching parameter is an error.
func (r *Registry) BuildURL(name string, pathParams map[string]string) (string, error) {
	d, err := r.Resolve(name)
	if err != nil {
		return "", err
	}

	path, err := substitutePath(d.PathTemplate, pathParams)
	if err != nil {
		return "", fmt.Errorf("endpoint %q: %w", name, err)
	}
	return d.BaseURL + path, nil
}

// substitutePath replaces ":key" segments with values from params.
func substitutePath(template string, params map[string]string) (string, error) {
	segments := strings.Split(template, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		key := seg[1:]
		val, ok := params[key]
		if !ok || val == "" {
			return "", fmt.Errorf("missing path parameter %q for template %s", key, template)
		}
		segments[i] = val
	}
	return strings.Join(segments, "/"), nil
}
