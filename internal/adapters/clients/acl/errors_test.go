package acl

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examstack/exam-bff/internal/domain"
	"github.com/examstack/exam-bff/internal/upstream"
)

func httpError(status int, contentType string, body string) *upstream.UpstreamHTTPError {
	header := make(http.Header)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &upstream.UpstreamHTTPError{
		Service:    "exam-service",
		Endpoint:   "getExam",
		StatusCode: status,
		Header:     header,
		Body:       []byte(body),
	}
}

func TestTranslateError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "404 maps to not found",
			err:  httpError(http.StatusNotFound, "", ""),
			want: domain.ErrNotFound,
		},
		{
			name: "400 without details maps to validation",
			err:  httpError(http.StatusBadRequest, "", ""),
			want: domain.ErrValidation,
		},
		{
			name: "422 without details maps to validation",
			err:  httpError(http.StatusUnprocessableEntity, "", ""),
			want: domain.ErrValidation,
		},
		{
			name: "409 maps to conflict",
			err:  httpError(http.StatusConflict, "", ""),
			want: domain.ErrConflict,
		},
		{
			name: "401 maps to forbidden",
			err:  httpError(http.StatusUnauthorized, "", ""),
			want: domain.ErrForbidden,
		},
		{
			name: "403 maps to forbidden",
			err:  httpError(http.StatusForbidden, "", ""),
			want: domain.ErrForbidden,
		},
		{
			name: "500 maps to unavailable",
			err:  httpError(http.StatusInternalServerError, "", ""),
			want: domain.ErrUnavailable,
		},
		{
			name: "429 maps to unavailable",
			err:  httpError(http.StatusTooManyRequests, "", ""),
			want: domain.ErrUnavailable,
		},
		{
			name: "circuit open maps to unavailable",
			err:  &upstream.CircuitOpenError{Service: "exam-service"},
			want: domain.ErrUnavailable,
		},
		{
			name: "timeout maps to unavailable",
			err:  &upstream.TimeoutError{Method: "GET", URL: "http://x/y", Timeout: time.Second},
			want: domain.ErrUnavailable,
		},
		{
			name: "transport failure maps to unavailable",
			err:  &upstream.TransportError{Method: "GET", URL: "http://x/y", Err: errors.New("connection refused")},
			want: domain.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TranslateError(tt.err)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestTranslateError_ProblemDetailUsed(t *testing.T) {
	t.Parallel()

	err := TranslateError(httpError(http.StatusNotFound,
		"application/problem+json",
		`{"detail":"exam e-7 does not exist"}`))

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "exam e-7 does not exist")
}

func TestTranslateError_FieldErrorsBecomeValidationError(t *testing.T) {
	t.Parallel()

	err := TranslateError(httpError(http.StatusUnprocessableEntity,
		"application/problem+json",
		`{"detail":"invalid request","errors":[{"location":"body.email","message":"must be a valid email address"}]}`))

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be a valid email address", verr.Fields["email"])
}

func TestTranslateError_MalformedProblemBodyIgnored(t *testing.T) {
	t.Parallel()

	err := TranslateError(httpError(http.StatusNotFound,
		"application/problem+json",
		`{not json`))

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), http.StatusText(http.StatusNotFound))
}

func TestTranslateError_PassThrough(t *testing.T) {
	t.Parallel()

	assert.NoError(t, TranslateError(nil))

	sentinel := errors.New("something else")
	assert.ErrorIs(t, TranslateError(sentinel), sentinel)
}
