package upstream

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker/v2"
)

// ServiceHealth reports a target service's availability from its circuit
// breaker state without making a network call. It satisfies the
// ports.HealthChecker interface structurally.
type ServiceHealth struct {
	service string
	cache   *PolicyCache
}

// NewServiceHealth creates a health checker for the named target service.
func NewServiceHealth(service string, cache *PolicyCache) *ServiceHealth {
	return &ServiceHealth{service: service, cache: cache}
}

// Name returns the target service identifier.
func (h *ServiceHealth) Name() string { return h.service }

// HealthCheck maps breaker state to a health result:
//
//   - closed, or no calls made yet — healthy; returns nil.
//   - half-open — degraded; returns a descriptive error.
//   - open — failing; returns a descriptive error.
//
// This reports downstream status, not BFF readiness; the BFF keeps serving
// while a downstream is failing.
func (h *ServiceHealth) HealthCheck(_ context.Context) error {
	state, ok := h.cache.State(h.service)
	if !ok {
		return nil
	}

	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", h.service)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", h.service)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", h.service, state)
	}
}
