package acl

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/examstack/exam-bff/internal/platform/config"
	"github.com/examstack/exam-bff/internal/upstream"
)

// newTestFacade wires a real registry, policy cache, and executor against an
// httptest server standing in for both downstream services. Retries are
// disabled so tests observe exactly one attempt per call.
func newTestFacade(t *testing.T, handler http.Handler) *upstream.Facade {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	upstreamCfg := config.UpstreamConfig{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:  1,
			InitialDelay: time.Millisecond,
			MaxDelay:     time.Millisecond,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			FailureThreshold: 100,
			OpenDuration:     time.Minute,
		},
	}

	registry, err := upstream.NewRegistry(
		Services(config.UpstreamsConfig{User: upstreamCfg, Exam: upstreamCfg}),
		Endpoints(),
	)
	require.NoError(t, err)

	executor := upstream.NewExecutor(nil, upstream.NewPolicyCache(nil), nil, nil)
	return upstream.NewFacade(registry, executor)
}

func problemJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
