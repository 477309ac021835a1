package upstream

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

// servicePolicies bundles the process-lifetime resilience state shared by
// every endpoint of one target service.
type servicePolicies struct {
	breaker *gobreaker.CircuitBreaker[*Response]
	limiter *rate.Limiter // nil when rate limiting is disabled
}

// PolicyCache lazily builds and caches one circuit breaker (and optional rate
// limiter) per target service. The cache is owned by the composition root and
// lives for the process lifetime; there is no eviction because the set of
// upstream services is small and fixed.
//
// Reference identity matters: every call against a service must observe and
// mutate the same breaker counters, so getOrCreate always returns the cached
// instance after the first call.
type PolicyCache struct {
	mu       sync.Mutex
	logger   *slog.Logger
	policies map[string]*servicePolicies
}

// NewPolicyCache creates an empty policy cache. State transitions of the
// breakers it builds are logged at WARN through the given logger.
func NewPolicyCache(logger *slog.Logger) *PolicyCache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PolicyCache{
		logger:   logger,
		policies: make(map[string]*servicePolicies),
	}
}

// getOrCreate returns the shared policy state for the service, constructing
// it from the descriptor's service-level settings on first use.
func (c *PolicyCache) getOrCreate(service string, d Descriptor) *servicePolicies {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.policies[service]; ok {
		return p
	}

	p := &servicePolicies{
		breaker: newBreaker(service, d.Breaker, c.logger),
	}
	if d.RateLimit.RequestsPerSecond > 0 {
		p.limiter = rate.NewLimiter(rate.Limit(d.RateLimit.RequestsPerSecond), d.RateLimit.Burst)
	}

	c.policies[service] = p
	return p
}

// newBreaker constructs a gobreaker instance from a service's breaker policy.
//
// MaxRequests is 1 so that exactly one trial call passes through after the
// open duration elapses. Terminal client errors (4xx other than 408/429) and
// caller cancellation do not count as breaker failures: the service answered,
// it is not degraded.
func newBreaker(service string, pol BreakerPolicy, logger *slog.Logger) *gobreaker.CircuitBreaker[*Response] {
	return gobreaker.NewCircuitBreaker[*Response](gobreaker.Settings{
		Name:        service,
		MaxRequests: 1,
		Timeout:     pol.OpenDuration,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if pol.MinimumThroughput > 0 && counts.Requests < toUint32(pol.MinimumThroughput) {
				return false
			}
			return int(counts.ConsecutiveFailures) >= pol.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			if errors.Is(err, context.Canceled) {
				return true
			}
			var httpErr *UpstreamHTTPError
			if errors.As(err, &httpErr) {
				return !httpErr.Retryable()
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("service", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// State returns the breaker state for a service. The second return is false
// when no call against the service has been made yet.
func (c *PolicyCache) State(service string) (gobreaker.State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.policies[service]
	if !ok {
		return gobreaker.StateClosed, false
	}
	return p.breaker.State(), true
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
