package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/examstack/exam-bff/internal/platform/logging"
	"github.com/examstack/exam-bff/internal/platform/telemetry"
)

// maxResponseBytes caps how much of an upstream response body is read per
// attempt. Responses are fully drained so retries never leak open bodies.
const maxResponseBytes = 10 << 20 // 10 MB

// Doer issues a single HTTP request. *http.Client satisfies it; tests inject
// fakes. The executor never relies on a client-level timeout: each attempt is
// bounded by its own context deadline.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Request is one logical outbound call, already resolved against the
// registry. Body carries the serialized payload; a fresh reader is created
// per attempt so retries replay the body.
type Request struct {
	Descriptor Descriptor
	Method     string
	URL        string
	Header     http.Header
	Body       []byte
}

// Response is a fully read upstream response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Executor runs one logical call with retry, per-attempt timeouts, and
// circuit breaking, classifying every failure into the package error
// taxonomy. It performs no logging or metric recording of its own beyond the
// injected collaborators, all of which are nil-safe.
type Executor struct {
	transport Doer
	cache     *PolicyCache
	metrics   *telemetry.Metrics
	logger    *slog.Logger
}

// NewExecutor creates an executor over the given transport and policy cache.
// metrics may be nil to skip metric recording.
func NewExecutor(transport Doer, cache *PolicyCache, metrics *telemetry.Metrics, logger *slog.Logger) *Executor {
	if transport == nil {
		transport = &http.Client{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Executor{
		transport: transport,
		cache:     cache,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute runs the call until it succeeds, a terminal failure occurs, or the
// retry budget is exhausted, in which case the last classified failure is
// surfaced. Attempts within one call are strictly sequential; the delay
// between them doubles from the policy's initial delay up to its cap.
func (e *Executor) Execute(ctx context.Context, call Request) (*Response, error) {
	pol := call.Descriptor.Retry
	if pol.MaxAttempts < 1 {
		return nil, fmt.Errorf("upstream: maxAttempts must be >= 1, got %d", pol.MaxAttempts)
	}

	policies := e.cache.getOrCreate(call.Descriptor.Service, call.Descriptor)

	start := time.Now()
	ctx, span := e.startSpan(ctx, call)
	defer span.End()

	backoff := retry.WithMaxRetries(uint64(pol.MaxAttempts-1),
		retry.WithCappedDuration(pol.MaxDelay,
			retry.NewExponential(pol.InitialDelay)))

	var resp *Response
	attempt := 0

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		r, attemptErr := e.attempt(ctx, call, policies)
		if attemptErr != nil {
			if !isRetryable(attemptErr) {
				return attemptErr
			}
			e.logAttemptFailure(ctx, call, attempt, pol.MaxAttempts, attemptErr)
			return retry.RetryableError(attemptErr)
		}

		resp = r
		return nil
	})

	e.finishSpan(span, resp, err)
	e.recordMetrics(ctx, call, start, resp, err)

	if err != nil {
		return nil, err
	}
	return resp, nil
}

// attempt runs one breaker-guarded, deadline-bounded try. The breaker sits
// inside the timeout so an open circuit fails fast without waiting out the
// deadline, and the rejection is classified like any other attempt failure.
func (e *Executor) attempt(ctx context.Context, call Request, policies *servicePolicies) (*Response, error) {
	if policies.limiter != nil {
		if err := policies.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	attemptCtx, cancel := context.WithTimeout(ctx, call.Descriptor.Timeout)
	defer cancel()

	resp, err := policies.breaker.Execute(func() (*Response, error) {
		return e.roundTrip(attemptCtx, call)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &CircuitOpenError{Service: call.Descriptor.Service, Err: err}
		}
		return nil, err
	}
	return resp, nil
}

// roundTrip issues the raw HTTP call and reads the full response, translating
// transport failures and non-2xx statuses into classified errors.
func (e *Executor) roundTrip(ctx context.Context, call Request) (*Response, error) {
	var body io.Reader = http.NoBody
	if len(call.Body) > 0 {
		body = bytes.NewReader(call.Body)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, call.URL, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", call.Method, call.URL, err)
	}
	for name, values := range call.Header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	injectHeaders(ctx, req)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	httpResp, err := e.transport.Do(req)
	if err != nil {
		return nil, e.classifyTransport(call, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, e.classifyTransport(call, err)
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return nil, &UpstreamHTTPError{
			Service:    call.Descriptor.Service,
			Endpoint:   call.Descriptor.Name,
			StatusCode: httpResp.StatusCode,
			Header:     httpResp.Header.Clone(),
			Body:       data,
		}
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header.Clone(),
		Body:       data,
	}, nil
}

// classifyTransport maps a raw network failure to the error taxonomy.
// Caller cancellation passes through unclassified so it is never retried.
func (e *Executor) classifyTransport(call Request, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &TimeoutError{
			Method:  call.Method,
			URL:     call.URL,
			Timeout: call.Descriptor.Timeout,
			Err:     err,
		}
	}

	return &TransportError{Method: call.Method, URL: call.URL, Err: err}
}

// logAttemptFailure logs a failed attempt at WARN before the backoff delay.
func (e *Executor) logAttemptFailure(ctx context.Context, call Request, attempt, maxAttempts int, err error) {
	logger := logging.FromContext(ctx)
	logger.WarnContext(ctx, "upstream call attempt failed",
		slog.String("operation", "upstream.Execute"),
		slog.String("endpoint", call.Descriptor.Name),
		slog.String("service", call.Descriptor.Service),
		slog.String("method", call.Method),
		slog.String("url", call.URL),
		slog.Int("attempt", attempt),
		slog.Int("max_attempts", maxAttempts),
		slog.Any("error", err),
	)
}

// startSpan creates an OTEL client span for the logical call. Trace context
// is injected into the outbound headers per attempt, in roundTrip.
func (e *Executor) startSpan(ctx context.Context, call Request) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("upstream")

	spanName := fmt.Sprintf("HTTP %s %s", call.Method, call.Descriptor.Service)
	return tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", call.Method),
			attribute.String("http.url", call.URL),
			attribute.String("peer.service", call.Descriptor.Service),
			attribute.String("upstream.endpoint", call.Descriptor.Name),
		),
	)
}

// finishSpan records the call outcome on the span.
func (e *Executor) finishSpan(span trace.Span, resp *Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics records duration and count for the logical call, including
// circuit-open rejections. Safe to call with nil metrics.
func (e *Executor) recordMetrics(ctx context.Context, call Request, start time.Time, resp *Response, err error) {
	if e.metrics == nil {
		return
	}

	duration := time.Since(start).Seconds()

	statusCode := 0
	result := "success"
	if resp != nil {
		statusCode = resp.StatusCode
	}

	var (
		openErr *CircuitOpenError
		httpErr *UpstreamHTTPError
	)
	switch {
	case err == nil:
	case errors.As(err, &openErr):
		result = "circuit_open"
	case errors.As(err, &httpErr):
		result = "error"
		statusCode = httpErr.StatusCode
	default:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(call.Method),
		telemetry.AttrHTTPStatus.Int(statusCode),
		telemetry.AttrPeerService.String(call.Descriptor.Service),
		telemetry.AttrResult.String(result),
	)

	e.metrics.ClientRequestDuration.Record(ctx, duration, attrs)
	e.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}
