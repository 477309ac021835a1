// Package acl implements the Anti-Corruption Layer that translates between
// the downstream user and exam services' representations and domain types.
// Service-specific translators live in subpackages (acl/user, acl/exam);
// shared error mapping lives here.
package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/examstack/exam-bff/internal/domain"
	"github.com/examstack/exam-bff/internal/upstream"
)

// problemDetail represents an RFC 7807 Problem Details response from a
// downstream service.
type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

// errorDetail represents a single field-level error within an RFC 7807 response.
type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateError maps a failed upstream call to a domain error.
//
// HTTP error responses are mapped by status code, with RFC 7807 bodies parsed
// for detail text and field-level validation errors. Circuit breaker
// rejections, timeouts, and transport failures all map to
// domain.ErrUnavailable: from the caller's point of view the downstream could
// not serve the request. Anything else passes through unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *upstream.UpstreamHTTPError
	if errors.As(err, &httpErr) {
		return translateHTTPError(httpErr)
	}

	var openErr *upstream.CircuitOpenError
	if errors.As(err, &openErr) {
		return fmt.Errorf("%s is unreachable (circuit open): %w", openErr.Service, domain.ErrUnavailable)
	}

	var timeoutErr *upstream.TimeoutError
	if errors.As(err, &timeoutErr) {
		return fmt.Errorf("%s: %w", timeoutErr.Error(), domain.ErrUnavailable)
	}

	var transportErr *upstream.TransportError
	if errors.As(err, &transportErr) {
		return fmt.Errorf("%s: %w", transportErr.Error(), domain.ErrUnavailable)
	}

	return err
}

// translateHTTPError maps an upstream HTTP error response to a domain error.
// For 400/422 responses with field-level errors, it returns a
// *domain.ValidationError.
func translateHTTPError(httpErr *upstream.UpstreamHTTPError) error {
	pd := parseProblemDetail(httpErr)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(httpErr.StatusCode)
	}

	switch {
	case httpErr.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case httpErr.StatusCode == http.StatusBadRequest || httpErr.StatusCode == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case httpErr.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case httpErr.StatusCode >= http.StatusInternalServerError ||
		httpErr.StatusCode == http.StatusRequestTimeout ||
		httpErr.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d from %s: %s", httpErr.StatusCode, httpErr.Service, detail)
	}
}

// parseProblemDetail attempts to parse an RFC 7807 body from the error
// response. Returns an empty problemDetail if parsing fails.
func parseProblemDetail(httpErr *upstream.UpstreamHTTPError) problemDetail {
	if len(httpErr.Body) == 0 {
		return problemDetail{}
	}

	ct := httpErr.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(httpErr.Body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError converts RFC 7807 error details to a domain ValidationError.
// It strips the "body." prefix from locations to produce clean field names.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "body.")
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
