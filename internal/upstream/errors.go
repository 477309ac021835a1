package upstream

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnknownEndpoint is returned when an endpoint name is not present in the
// registry. It is always terminal; no network I/O is attempted.
var ErrUnknownEndpoint = errors.New("unknown endpoint")

// TransportError indicates the connection to the upstream could not be
// established or was reset before a response arrived. Retryable.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error on %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// TimeoutError indicates a single attempt exceeded its per-attempt deadline.
// The in-flight network call was aborted. Retryable.
type TimeoutError struct {
	Method  string
	URL     string
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s %s timed out after %s", e.Method, e.URL, e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// UpstreamHTTPError indicates the upstream responded with a non-2xx status.
// The response body and headers are attached so callers can surface upstream
// detail. Retryable only for 5xx, 408, and 429.
type UpstreamHTTPError struct {
	Service    string
	Endpoint   string
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (e *UpstreamHTTPError) Error() string {
	return fmt.Sprintf("%s: HTTP %d from %s", e.Endpoint, e.StatusCode, e.Service)
}

// Retryable reports whether the status code indicates a transient condition.
func (e *UpstreamHTTPError) Retryable() bool { return retryableStatus(e.StatusCode) }

// CircuitOpenError indicates the service's circuit breaker rejected the call
// without attempting network I/O. Terminal: retrying into an open breaker
// would burn the remaining attempts and delay the caller pointlessly.
type CircuitOpenError struct {
	Service string
	Err     error
}

func (e *CircuitOpenError) Error() string {
	return fmt.Sprintf("circuit breaker open for service %s", e.Service)
}

func (e *CircuitOpenError) Unwrap() error { return e.Err }

// retryableStatus reports whether an HTTP status code is worth retrying.
// Server errors, request timeouts, and throttling responses are transient;
// everything else is treated as terminal.
func retryableStatus(statusCode int) bool {
	return statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests
}

// isRetryable reports whether a classified attempt failure should consume
// another retry attempt. CircuitOpenError and context errors are terminal.
func isRetryable(err error) bool {
	var (
		transportErr *TransportError
		timeoutErr   *TimeoutError
		httpErr      *UpstreamHTTPError
	)
	switch {
	case errors.As(err, &timeoutErr), errors.As(err, &transportErr):
		return true
	case errors.As(err, &httpErr):
		return httpErr.Retryable()
	default:
		return false
	}
}
